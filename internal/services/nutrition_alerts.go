package services

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type AlertType string

const (
	AlertLowEnergy  AlertType = "low_energy"
	AlertBloating   AlertType = "bloating"
	AlertMoodStress AlertType = "mood_stress"
	AlertCramps     AlertType = "cramps"
)

const (
	lowEnergyMaxLevel   = 2
	bloatingMinLevel    = 3
	moodChangesMinLevel = 3
	stressMinLevel      = 4
	crampsMinLevel      = 3
)

// SymptomSnapshot holds 0-5 intensities. A nil field was not reported.
type SymptomSnapshot struct {
	Cramps      *int `json:"cramps,omitempty"`
	MoodChanges *int `json:"mood_changes,omitempty"`
	EnergyLevel *int `json:"energy_level,omitempty"`
	Bloating    *int `json:"bloating,omitempty"`
	Headaches   *int `json:"headaches,omitempty"`
}

type LifestyleSnapshot struct {
	StressLevel       *int `json:"stress_level,omitempty"`
	ExerciseIntensity *int `json:"exercise_intensity,omitempty"`
	SleepQuality      *int `json:"sleep_quality,omitempty"`
	WeightChange      *int `json:"weight_change,omitempty"`
}

type NutritionAlert struct {
	Type           AlertType     `json:"type"`
	Title          string        `json:"title"`
	Severity       AlertSeverity `json:"severity"`
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation"`
}

type alertRule struct {
	alert NutritionAlert
	fires func(symptoms SymptomSnapshot, lifestyle LifestyleSnapshot) bool
}

var nutritionAlertRules = []alertRule{
	{
		alert: NutritionAlert{
			Type:           AlertLowEnergy,
			Title:          "Low Energy / Potential Iron Deficiency",
			Severity:       SeverityMedium,
			Message:        "You've reported low energy levels recently.",
			Recommendation: "Boost your Iron intake with dates, spinach, or beetroot juice. Ensure you're sleeping enough.",
		},
		fires: func(symptoms SymptomSnapshot, _ LifestyleSnapshot) bool {
			return atMost(symptoms.EnergyLevel, lowEnergyMaxLevel)
		},
	},
	{
		alert: NutritionAlert{
			Type:           AlertBloating,
			Title:          "Bloating Relief",
			Severity:       SeverityMedium,
			Message:        "High bloating reported.",
			Recommendation: "Avoid salt and caffeine. Try drinking ginger tea, peppermint tea, or eating a banana for potassium.",
		},
		fires: func(symptoms SymptomSnapshot, _ LifestyleSnapshot) bool {
			return atLeast(symptoms.Bloating, bloatingMinLevel)
		},
	},
	{
		alert: NutritionAlert{
			Type:           AlertMoodStress,
			Title:          "Mood & Stress Support",
			Severity:       SeverityHigh,
			Message:        "High stress or mood swings detected.",
			Recommendation: "Focus on Omega-3s (Walnuts/Chia seeds) and Magnesium (Dark Chocolate). Avoid sugar spikes.",
		},
		fires: func(symptoms SymptomSnapshot, lifestyle LifestyleSnapshot) bool {
			return atLeast(symptoms.MoodChanges, moodChangesMinLevel) || atLeast(lifestyle.StressLevel, stressMinLevel)
		},
	},
	{
		alert: NutritionAlert{
			Type:           AlertCramps,
			Title:          "Cramp Relief",
			Severity:       SeverityHigh,
			Message:        "Significant cramps reported.",
			Recommendation: "Increase Magnesium intake. Warm chamomile tea and calcium-rich foods can also help relax muscles.",
		},
		fires: func(symptoms SymptomSnapshot, _ LifestyleSnapshot) bool {
			return atLeast(symptoms.Cramps, crampsMinLevel)
		},
	},
}

// GenerateNutritionAlerts evaluates every rule in priority order. Unreported
// readings never satisfy a rule.
func GenerateNutritionAlerts(symptoms SymptomSnapshot, lifestyle LifestyleSnapshot) []NutritionAlert {
	alerts := make([]NutritionAlert, 0, len(nutritionAlertRules))
	for _, rule := range nutritionAlertRules {
		if rule.fires(symptoms, lifestyle) {
			alerts = append(alerts, rule.alert)
		}
	}
	return alerts
}

func atLeast(value *int, threshold int) bool {
	return value != nil && *value >= threshold
}

func atMost(value *int, threshold int) bool {
	return value != nil && *value <= threshold
}
