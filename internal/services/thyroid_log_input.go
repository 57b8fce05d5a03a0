package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/cyclesense/internal/models"
)

// NormalizeThyroidLog lower-cases the enumerated text readings and rejects
// values outside their vocabularies. Ranges are checked at the boundary.
func NormalizeThyroidLog(entry models.ThyroidLog) (models.ThyroidLog, error) {
	if entry.Date.IsZero() {
		return entry, fmt.Errorf("%w: missing date", ErrInvalidThyroidLog)
	}

	if entry.WeightChange != nil {
		value := strings.ToLower(strings.TrimSpace(*entry.WeightChange))
		if !IsValidWeightChange(value) {
			return entry, fmt.Errorf("%w: weight change %q", ErrInvalidThyroidLog, *entry.WeightChange)
		}
		entry.WeightChange = &value
	}
	if entry.SleepIssues != nil {
		value := strings.ToLower(strings.TrimSpace(*entry.SleepIssues))
		if !IsValidSleepIssue(value) {
			return entry, fmt.Errorf("%w: sleep issues %q", ErrInvalidThyroidLog, *entry.SleepIssues)
		}
		entry.SleepIssues = &value
	}
	return entry, nil
}

func IsValidWeightChange(value string) bool {
	switch value {
	case models.WeightChangeGain, models.WeightChangeLoss, models.WeightChangeStable:
		return true
	default:
		return false
	}
}

func IsValidSleepIssue(value string) bool {
	switch value {
	case models.SleepIssueInsomnia, models.SleepIssueOversleeping, models.SleepIssueDisturbed, models.SleepIssueNone:
		return true
	default:
		return false
	}
}
