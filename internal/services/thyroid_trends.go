package services

import "github.com/terraincognita07/cyclesense/internal/models"

type TrendStatus string

const (
	TrendNoData TrendStatus = "no_data"
	TrendNormal TrendStatus = "normal"
	TrendAlert  TrendStatus = "alert"
)

const (
	highFatigueMinIntensity  = 4
	lowEnergyAverageCeiling  = 4.0
	lowTemperatureCeilingC   = 36.1
	lowEnergyPatternInsight  = "You've reported consistently low energy and high fatigue. This is a common sign of Hypothyroidism."
	lowTemperatureInsight    = "Your average body temperature is lower than normal, which can be linked to low thyroid function."
	neckSwellingAlertInsight = "You reported neck swelling. Please see a doctor immediately as this could be a goiter."
)

type TrendSummary struct {
	AverageEnergy      *float64 `json:"average_energy"`
	EnergyReadings     int      `json:"energy_readings"`
	AverageTemperature *float64 `json:"average_temperature"`
	TemperatureReads   int      `json:"temperature_readings"`
	HighFatigueDays    int      `json:"high_fatigue_days"`
	NeckSwellingDays   int      `json:"neck_swelling_days"`
}

type TrendAnalysis struct {
	Status       TrendStatus  `json:"status"`
	Insights     []string     `json:"insights"`
	AnalyzedDays int          `json:"analyzed_days"`
	Summary      TrendSummary `json:"summary"`
}

// AnalyzeThyroidLogs aggregates daily logs in any order. Averages only cover
// the logs that reported the reading, so a missing value never looks low.
func AnalyzeThyroidLogs(logs []models.ThyroidLog) TrendAnalysis {
	if len(logs) == 0 {
		return TrendAnalysis{Status: TrendNoData, Insights: []string{}}
	}

	energyTotal, energyCount := 0, 0
	temperatureTotal, temperatureCount := 0.0, 0
	highFatigueDays, neckSwellingDays := 0, 0
	for _, entry := range logs {
		if entry.EnergyLevel != nil {
			energyTotal += *entry.EnergyLevel
			energyCount++
		}
		if entry.BodyTemperature != nil {
			temperatureTotal += *entry.BodyTemperature
			temperatureCount++
		}
		if entry.FatigueIntensity != nil && *entry.FatigueIntensity >= highFatigueMinIntensity {
			highFatigueDays++
		}
		if entry.NeckSwelling != nil && *entry.NeckSwelling {
			neckSwellingDays++
		}
	}

	summary := TrendSummary{
		EnergyReadings:   energyCount,
		TemperatureReads: temperatureCount,
		HighFatigueDays:  highFatigueDays,
		NeckSwellingDays: neckSwellingDays,
	}
	var averageEnergy, averageTemperature float64
	if energyCount > 0 {
		averageEnergy = float64(energyTotal) / float64(energyCount)
		rounded := roundToTenth(averageEnergy)
		summary.AverageEnergy = &rounded
	}
	if temperatureCount > 0 {
		averageTemperature = temperatureTotal / float64(temperatureCount)
		rounded := roundToTenth(averageTemperature)
		summary.AverageTemperature = &rounded
	}

	insights := make([]string, 0, 3)
	alert := false
	if energyCount > 0 && averageEnergy < lowEnergyAverageCeiling && float64(highFatigueDays) > float64(len(logs))/2 {
		insights = append(insights, lowEnergyPatternInsight)
		alert = true
	}
	if temperatureCount > 0 && averageTemperature < lowTemperatureCeilingC {
		insights = append(insights, lowTemperatureInsight)
	}
	if neckSwellingDays > 0 {
		insights = append(insights, neckSwellingAlertInsight)
		alert = true
	}

	status := TrendNormal
	if alert {
		status = TrendAlert
	}
	return TrendAnalysis{
		Status:       status,
		Insights:     insights,
		AnalyzedDays: len(logs),
		Summary:      summary,
	}
}
