package services

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidCycleHistory = errors.New("invalid cycle history")

const (
	MinPredictionCycles     = 4
	MinPredictableCycleDays = 20
	MaxPredictableCycleDays = 45
	predictionWindowCycles  = 6
	confidenceZScore        = 1.96
	PredictionMethod        = "statistical"
	predictionDateLayout    = "2006-01-02"
	predictionDisplayLayout = "January 02, 2006"
)

type CycleStatistics struct {
	Mean   float64 `json:"mean"`
	Median int     `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Count  int     `json:"count"`
}

type ConfidenceInterval struct {
	Lower      int     `json:"lower"`
	Upper      int     `json:"upper"`
	Confidence float64 `json:"confidence"`
}

type CyclePrediction struct {
	PredictedCycleLength         int                `json:"predicted_cycle_length"`
	PredictedNextPeriod          string             `json:"predicted_next_period"`
	PredictedNextPeriodFormatted string             `json:"predicted_next_period_formatted"`
	ConfidenceInterval           ConfidenceInterval `json:"confidence_interval"`
	Statistics                   CycleStatistics    `json:"statistics"`
	UncertaintyDays              float64            `json:"uncertainty_days"`
	Method                       string             `json:"method"`
	ConfidenceScore              float64            `json:"confidence_score"`
	ConfidenceLevel              ConfidenceLevel    `json:"confidence_level"`
	DataQuality                  DataQuality        `json:"data_quality"`
	Insights                     []string           `json:"insights"`
}

// PredictNextCycle estimates the next cycle from the median of the most recent
// cycles. The interval is a normal approximation over the same window; the
// confidence score and insights grade how much history backs it.
func PredictNextCycle(pastCycles []int, lastPeriodStart time.Time) (CyclePrediction, error) {
	if len(pastCycles) < MinPredictionCycles {
		return CyclePrediction{}, fmt.Errorf("%w: need at least %d past cycles", ErrInvalidCycleHistory, MinPredictionCycles)
	}
	for _, length := range pastCycles {
		if length < MinPredictableCycleDays || length > MaxPredictableCycleDays {
			return CyclePrediction{}, fmt.Errorf("%w: cycle length %d outside %d-%d", ErrInvalidCycleHistory, length, MinPredictableCycleDays, MaxPredictableCycleDays)
		}
	}
	if lastPeriodStart.IsZero() {
		return CyclePrediction{}, fmt.Errorf("%w: missing last period date", ErrInvalidCycleHistory)
	}

	recent := tailInts(pastCycles, predictionWindowCycles)
	predicted := medianInt(recent)
	spread := stdDevInts(recent)
	if !isFinite(spread) {
		return CyclePrediction{}, fmt.Errorf("%w: cycle spread is not finite", ErrComputationFailed)
	}
	margin := int(math.Ceil(confidenceZScore * spread))

	quality := assessPrediction(pastCycles, recent)

	next := dateOnly(lastPeriodStart).AddDate(0, 0, predicted)
	return CyclePrediction{
		PredictedCycleLength:         predicted,
		PredictedNextPeriod:          next.Format(predictionDateLayout),
		PredictedNextPeriodFormatted: next.Format(predictionDisplayLayout),
		ConfidenceInterval: ConfidenceInterval{
			Lower:      clampInt(predicted-margin, MinPredictableCycleDays, MaxPredictableCycleDays),
			Upper:      clampInt(predicted+margin, MinPredictableCycleDays, MaxPredictableCycleDays),
			Confidence: 0.95,
		},
		Statistics:      buildCycleStatistics(pastCycles),
		UncertaintyDays: roundToTenth(spread),
		Method:          PredictionMethod,
		ConfidenceScore: quality.Score,
		ConfidenceLevel: quality.Level,
		DataQuality:     quality.Quality,
		Insights:        quality.Insights,
	}, nil
}

func buildCycleStatistics(lengths []int) CycleStatistics {
	stats := CycleStatistics{Count: len(lengths)}
	if len(lengths) == 0 {
		return stats
	}

	stats.Min, stats.Max = lengths[0], lengths[0]
	for _, length := range lengths[1:] {
		if length < stats.Min {
			stats.Min = length
		}
		if length > stats.Max {
			stats.Max = length
		}
	}
	stats.Mean = roundToTenth(averageInts(lengths))
	stats.Median = medianInt(lengths)
	stats.StdDev = roundToTenth(stdDevInts(lengths))
	return stats
}
