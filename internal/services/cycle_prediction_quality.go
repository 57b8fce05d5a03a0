package services

import "math"

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

type DataQuality string

const (
	DataQualityLimited   DataQuality = "limited"
	DataQualityGood      DataQuality = "good"
	DataQualityExcellent DataQuality = "excellent"
)

const (
	goodHistoryCycles      = 6
	excellentHistoryCycles = 12

	// The score splits into a history share (how many cycles were logged) and
	// a consistency share that shrinks by consistencyPenaltyPerDay for every
	// day of spread in the recent window.
	historyScoreShare        = 40.0
	consistencyScoreShare    = 60.0
	consistencyPenaltyPerDay = 10.0

	highConfidenceMinScore   = 75.0
	mediumConfidenceMinScore = 50.0

	irregularRangeDays    = 7
	shortCycleMeanDays    = 21.0
	longCycleMeanDays     = 35.0
	irregularInsight      = "Your cycle length has varied by more than 7 days recently. Irregular cycles are worth mentioning to a doctor."
	regularInsight        = "Your recent cycles have been regular, which makes this prediction more dependable."
	shortCycleInsight     = "Your cycles average under 21 days. Frequent periods can be linked to hormonal changes or thyroid issues."
	longCycleInsight      = "Your cycles average over 35 days. Long cycles can be linked to PCOS or thyroid conditions."
	limitedHistoryInsight = "Logging at least 6 cycles will make predictions more reliable."
)

type predictionQuality struct {
	Score    float64
	Level    ConfidenceLevel
	Quality  DataQuality
	Insights []string
}

// assessPrediction grades a prediction built from recent, the window the
// prediction used, out of the full history.
func assessPrediction(history []int, recent []int) predictionQuality {
	logged := math.Min(float64(len(history)), excellentHistoryCycles)
	consistency := math.Max(0, consistencyScoreShare-consistencyPenaltyPerDay*stdDevInts(recent))
	score := roundToTenth(historyScoreShare*logged/excellentHistoryCycles + consistency)

	assessment := predictionQuality{
		Score:    score,
		Level:    confidenceLevelForScore(score),
		Quality:  dataQualityForCount(len(history)),
		Insights: make([]string, 0, 3),
	}

	lowest, highest := recent[0], recent[0]
	for _, length := range recent[1:] {
		lowest = min(lowest, length)
		highest = max(highest, length)
	}
	if highest-lowest > irregularRangeDays {
		assessment.Insights = append(assessment.Insights, irregularInsight)
	} else {
		assessment.Insights = append(assessment.Insights, regularInsight)
	}

	mean := averageInts(history)
	switch {
	case mean < shortCycleMeanDays:
		assessment.Insights = append(assessment.Insights, shortCycleInsight)
	case mean > longCycleMeanDays:
		assessment.Insights = append(assessment.Insights, longCycleInsight)
	}

	if len(history) < goodHistoryCycles {
		assessment.Insights = append(assessment.Insights, limitedHistoryInsight)
	}
	return assessment
}

func confidenceLevelForScore(score float64) ConfidenceLevel {
	switch {
	case score >= highConfidenceMinScore:
		return ConfidenceHigh
	case score >= mediumConfidenceMinScore:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func dataQualityForCount(cycles int) DataQuality {
	switch {
	case cycles >= excellentHistoryCycles:
		return DataQualityExcellent
	case cycles >= goodHistoryCycles:
		return DataQualityGood
	default:
		return DataQualityLimited
	}
}
