package services

import (
	"fmt"
	"math"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type NutritionGoal string

const (
	GoalLoss     NutritionGoal = "loss"
	GoalMaintain NutritionGoal = "maintain"
	GoalGain     NutritionGoal = "gain"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

const (
	MinimumDailyCalories = 1200
	goalCalorieDelta     = 500
	proteinCalorieShare  = 0.30
	carbsCalorieShare    = 0.35
	fatCalorieShare      = 0.35
	caloriesPerGramProt  = 4
	caloriesPerGramCarb  = 4
	caloriesPerGramFat   = 9
	waterLitresPerKg     = 0.035
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[NutritionGoal]float64{
	GoalLoss:     -goalCalorieDelta,
	GoalMaintain: 0,
	GoalGain:     goalCalorieDelta,
}

type BodyProfile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	ActivityLevel ActivityLevel
	Goal          NutritionGoal
}

type NutritionPlan struct {
	Calories      int         `json:"calories"`
	ProteinG      int         `json:"protein_g"`
	CarbsG        int         `json:"carbs_g"`
	FatsG         int         `json:"fats_g"`
	WaterLiters   float64     `json:"water_liters"`
	BMI           float64     `json:"bmi"`
	BMICategory   BMICategory `json:"bmi_category"`
}

func IsKnownActivityLevel(level ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

func IsKnownNutritionGoal(goal NutritionGoal) bool {
	_, ok := goalAdjustments[goal]
	return ok
}

// ComputeNutritionPlan applies the Mifflin-St Jeor estimate for women.
// Enumerated inputs are expected to be validated by the caller; unknown values
// surface as ErrComputationFailed rather than silently picking a default.
func ComputeNutritionPlan(profile BodyProfile) (NutritionPlan, error) {
	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		return NutritionPlan{}, fmt.Errorf("%w: unknown activity level %q", ErrComputationFailed, profile.ActivityLevel)
	}
	adjustment, ok := goalAdjustments[profile.Goal]
	if !ok {
		return NutritionPlan{}, fmt.Errorf("%w: unknown goal %q", ErrComputationFailed, profile.Goal)
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age) - 161
	target := bmr*multiplier + adjustment
	if !isFinite(target) {
		return NutritionPlan{}, fmt.Errorf("%w: calorie target is not finite", ErrComputationFailed)
	}

	calories := int(target)
	if calories < MinimumDailyCalories {
		calories = MinimumDailyCalories
	}

	bmi := bodyMassIndex(profile.WeightKg, profile.HeightCm)
	water := roundToTenth(profile.WeightKg * waterLitresPerKg)
	if !isFinite(bmi) || !isFinite(water) {
		return NutritionPlan{}, fmt.Errorf("%w: body metrics are not finite", ErrComputationFailed)
	}

	return NutritionPlan{
		Calories:      calories,
		ProteinG:      int(float64(calories) * proteinCalorieShare / caloriesPerGramProt),
		CarbsG:        int(float64(calories) * carbsCalorieShare / caloriesPerGramCarb),
		FatsG:         int(float64(calories) * fatCalorieShare / caloriesPerGramFat),
		WaterLiters:   water,
		BMI:           bmi,
		BMICategory:   CategorizeBMI(bmi),
	}, nil
}

func bodyMassIndex(weightKg float64, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return roundToTenth(weightKg / (heightM * heightM))
}

func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
