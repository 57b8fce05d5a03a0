package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/cyclesense/internal/models"
)

func thyroidLogOn(day int) models.ThyroidLog {
	return models.ThyroidLog{Date: time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)}
}

func TestAnalyzeThyroidLogsEmpty(t *testing.T) {
	result := AnalyzeThyroidLogs(nil)
	if result.Status != TrendNoData || result.AnalyzedDays != 0 {
		t.Fatalf("expected no_data with 0 days, got %#v", result)
	}
	if result.Insights == nil || len(result.Insights) != 0 {
		t.Fatalf("expected empty non-nil insights, got %#v", result.Insights)
	}
}

func TestAnalyzeThyroidLogsHypoPattern(t *testing.T) {
	logs := []models.ThyroidLog{thyroidLogOn(1), thyroidLogOn(2), thyroidLogOn(3), thyroidLogOn(4)}
	energies := []int{3, 2, 3, 4}
	fatigue := []int{4, 5, 4, 3}
	temperatures := []float64{36.0, 35.9, 36.1, 36.0}
	for index := range logs {
		logs[index].EnergyLevel = intPtr(energies[index])
		logs[index].FatigueIntensity = intPtr(fatigue[index])
		logs[index].BodyTemperature = floatPtr(temperatures[index])
		logs[index].NeckSwelling = boolPtr(false)
	}

	result := AnalyzeThyroidLogs(logs)
	if result.Status != TrendAlert {
		t.Fatalf("expected alert status, got %q", result.Status)
	}
	if len(result.Insights) != 2 || result.Insights[0] != lowEnergyPatternInsight || result.Insights[1] != lowTemperatureInsight {
		t.Fatalf("expected low energy then low temperature insights, got %#v", result.Insights)
	}
	if result.AnalyzedDays != 4 {
		t.Fatalf("expected 4 analyzed days, got %d", result.AnalyzedDays)
	}
	if result.Summary.AverageEnergy == nil || *result.Summary.AverageEnergy != 3.0 {
		t.Fatalf("expected average energy 3.0, got %v", result.Summary.AverageEnergy)
	}
	if result.Summary.HighFatigueDays != 3 {
		t.Fatalf("expected 3 high fatigue days, got %d", result.Summary.HighFatigueDays)
	}
}

func TestAnalyzeThyroidLogsNeckSwellingAlone(t *testing.T) {
	swollen := thyroidLogOn(2)
	swollen.NeckSwelling = boolPtr(true)

	result := AnalyzeThyroidLogs([]models.ThyroidLog{thyroidLogOn(1), swollen})
	if result.Status != TrendAlert {
		t.Fatalf("expected alert status, got %q", result.Status)
	}
	if len(result.Insights) != 1 || result.Insights[0] != neckSwellingAlertInsight {
		t.Fatalf("expected only neck swelling insight, got %#v", result.Insights)
	}
}

func TestAnalyzeThyroidLogsMissingEnergyIsNotLowEnergy(t *testing.T) {
	logs := []models.ThyroidLog{thyroidLogOn(1), thyroidLogOn(2), thyroidLogOn(3)}
	for index := range logs {
		logs[index].FatigueIntensity = intPtr(5)
	}

	result := AnalyzeThyroidLogs(logs)
	if result.Status != TrendNormal || len(result.Insights) != 0 {
		t.Fatalf("expected normal status without energy readings, got %#v", result)
	}
	if result.Summary.AverageEnergy != nil {
		t.Fatalf("expected unknown average energy, got %v", *result.Summary.AverageEnergy)
	}
}

func TestAnalyzeThyroidLogsAveragesOnlyReportingDays(t *testing.T) {
	logs := []models.ThyroidLog{thyroidLogOn(1), thyroidLogOn(2), thyroidLogOn(3), thyroidLogOn(4)}
	logs[0].EnergyLevel = intPtr(6)
	logs[1].FatigueIntensity = intPtr(5)
	logs[2].FatigueIntensity = intPtr(5)
	logs[3].FatigueIntensity = intPtr(5)

	result := AnalyzeThyroidLogs(logs)
	if result.Summary.AverageEnergy == nil || *result.Summary.AverageEnergy != 6.0 {
		t.Fatalf("expected average energy over reporting days only, got %v", result.Summary.AverageEnergy)
	}
	if result.Status != TrendNormal {
		t.Fatalf("expected normal status for reported energy 6, got %q", result.Status)
	}
}

func TestAnalyzeThyroidLogsRequiresMajorityOfFatigueDays(t *testing.T) {
	logs := []models.ThyroidLog{thyroidLogOn(1), thyroidLogOn(2), thyroidLogOn(3), thyroidLogOn(4)}
	for index := range logs {
		logs[index].EnergyLevel = intPtr(2)
	}
	logs[0].FatigueIntensity = intPtr(4)
	logs[1].FatigueIntensity = intPtr(4)

	result := AnalyzeThyroidLogs(logs)
	if result.Status != TrendNormal {
		t.Fatalf("expected exactly half fatigue days not to trigger, got %#v", result)
	}

	logs[2].FatigueIntensity = intPtr(5)
	result = AnalyzeThyroidLogs(logs)
	if result.Status != TrendAlert {
		t.Fatalf("expected majority fatigue days to trigger, got %#v", result)
	}
}

func TestAnalyzeThyroidLogsLowTemperatureDoesNotAlert(t *testing.T) {
	cold := thyroidLogOn(1)
	cold.BodyTemperature = floatPtr(35.8)

	result := AnalyzeThyroidLogs([]models.ThyroidLog{cold, thyroidLogOn(2)})
	if result.Status != TrendNormal {
		t.Fatalf("expected low temperature alone to stay normal, got %q", result.Status)
	}
	if len(result.Insights) != 1 || result.Insights[0] != lowTemperatureInsight {
		t.Fatalf("expected low temperature insight, got %#v", result.Insights)
	}
}

func TestAnalyzeThyroidLogsIgnoresInputOrder(t *testing.T) {
	logs := []models.ThyroidLog{thyroidLogOn(1), thyroidLogOn(2), thyroidLogOn(3)}
	logs[0].EnergyLevel = intPtr(2)
	logs[0].FatigueIntensity = intPtr(5)
	logs[1].EnergyLevel = intPtr(3)
	logs[1].FatigueIntensity = intPtr(4)
	logs[2].BodyTemperature = floatPtr(36.0)
	logs[2].NeckSwelling = boolPtr(true)

	reversed := []models.ThyroidLog{logs[2], logs[1], logs[0]}

	forward := AnalyzeThyroidLogs(logs)
	backward := AnalyzeThyroidLogs(reversed)
	if forward.Status != backward.Status || len(forward.Insights) != len(backward.Insights) {
		t.Fatalf("expected order-independent analysis, got %#v and %#v", forward, backward)
	}
	for index := range forward.Insights {
		if forward.Insights[index] != backward.Insights[index] {
			t.Fatalf("insight %d differs: %q vs %q", index, forward.Insights[index], backward.Insights[index])
		}
	}
}
