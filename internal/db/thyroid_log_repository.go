package db

import (
	"time"

	"github.com/terraincognita07/cyclesense/internal/models"
	"gorm.io/gorm"
)

type ThyroidLogRepository struct {
	database *gorm.DB
}

func NewThyroidLogRepository(database *gorm.DB) *ThyroidLogRepository {
	return &ThyroidLogRepository{database: database}
}

func (repo *ThyroidLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ThyroidLog, error) {
	query := repo.database.Model(&models.ThyroidLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.ThyroidLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ThyroidLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.ThyroidLog, bool, error) {
	entry := models.ThyroidLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.ThyroidLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ThyroidLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *ThyroidLogRepository) Create(entry *models.ThyroidLog) error {
	return repo.database.Create(entry).Error
}

func (repo *ThyroidLogRepository) Save(entry *models.ThyroidLog) error {
	return repo.database.Save(entry).Error
}

func (repo *ThyroidLogRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.ThyroidLog{})
	return result.RowsAffected, result.Error
}
