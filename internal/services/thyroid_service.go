package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclesense/internal/models"
)

var (
	ErrInvalidThyroidLog      = errors.New("invalid thyroid log")
	ErrInvalidThyroidRange    = errors.New("invalid thyroid log range")
	ErrThyroidLogNotFound     = errors.New("thyroid log not found")
	ErrThyroidLogLoadFailed   = errors.New("load thyroid logs failed")
	ErrThyroidLogCreateFailed = errors.New("create thyroid log failed")
	ErrThyroidLogUpdateFailed = errors.New("update thyroid log failed")
	ErrThyroidLogDeleteFailed = errors.New("delete thyroid log failed")
)

const (
	DefaultThyroidAnalysisDays = 30
	MaxThyroidAnalysisDays     = 366
)

type ThyroidLogRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ThyroidLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.ThyroidLog, bool, error)
	Create(entry *models.ThyroidLog) error
	Save(entry *models.ThyroidLog) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
}

type ThyroidService struct {
	indicators IndicatorTable
	logs       ThyroidLogRepository
}

func NewThyroidService(book *RuleBook, logs ThyroidLogRepository) *ThyroidService {
	return &ThyroidService{
		indicators: book.ThyroidIndicators(),
		logs:       logs,
	}
}

func (service *ThyroidService) Analyze(logs []models.ThyroidLog) TrendAnalysis {
	return AnalyzeThyroidLogs(logs)
}

// UpsertLog stores one log per calendar day. The returned flag reports whether
// a new row was created.
func (service *ThyroidService) UpsertLog(userID uint, entry models.ThyroidLog, location *time.Location) (models.ThyroidLog, bool, error) {
	normalized, err := NormalizeThyroidLog(entry)
	if err != nil {
		return models.ThyroidLog{}, false, err
	}

	dayStart, dayEnd := DayRange(normalized.Date, location)
	existing, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.ThyroidLog{}, false, fmt.Errorf("%w: %v", ErrThyroidLogLoadFailed, err)
	}

	normalized.UserID = userID
	normalized.Date = dayStart
	if found {
		normalized.ID = existing.ID
		normalized.CreatedAt = existing.CreatedAt
		if err := service.logs.Save(&normalized); err != nil {
			return models.ThyroidLog{}, false, fmt.Errorf("%w: %v", ErrThyroidLogUpdateFailed, err)
		}
		return normalized, false, nil
	}

	normalized.ID = 0
	if err := service.logs.Create(&normalized); err != nil {
		return models.ThyroidLog{}, false, fmt.Errorf("%w: %v", ErrThyroidLogCreateFailed, err)
	}
	return normalized, true, nil
}

func (service *ThyroidService) ListLogs(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.ThyroidLog, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}
	if fromStart != nil && toEnd != nil && !fromStart.Before(*toEnd) {
		return nil, ErrInvalidThyroidRange
	}

	logs, err := service.logs.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThyroidLogLoadFailed, err)
	}
	return logs, nil
}

func (service *ThyroidService) DeleteLog(userID uint, day time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	deleted, err := service.logs.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrThyroidLogDeleteFailed, err)
	}
	if deleted == 0 {
		return ErrThyroidLogNotFound
	}
	return nil
}

// AnalyzeStoredLogs runs the trend rules over the user's stored logs for the
// inclusive day range. A zero from defaults to the last DefaultThyroidAnalysisDays.
func (service *ThyroidService) AnalyzeStoredLogs(userID uint, from time.Time, to time.Time, location *time.Location) (TrendAnalysis, error) {
	from, to, err := ResolveThyroidAnalysisRange(from, to, location)
	if err != nil {
		return TrendAnalysis{}, err
	}

	logs, err := service.ListLogs(userID, &from, &to, location)
	if err != nil {
		return TrendAnalysis{}, err
	}
	return AnalyzeThyroidLogs(logs), nil
}

func ResolveThyroidAnalysisRange(from time.Time, to time.Time, location *time.Location) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	to = DateAtLocation(to, location)
	if from.IsZero() {
		from = to.AddDate(0, 0, -(DefaultThyroidAnalysisDays - 1))
	}
	from = DateAtLocation(from, location)

	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidThyroidRange
	}
	if to.Sub(from) > time.Duration(MaxThyroidAnalysisDays)*24*time.Hour {
		return time.Time{}, time.Time{}, ErrInvalidThyroidRange
	}
	return from, to, nil
}
