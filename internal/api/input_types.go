package api

import (
	"time"

	"github.com/terraincognita07/cyclesense/internal/models"
	"github.com/terraincognita07/cyclesense/internal/services"
)

type registerRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"max=320"`
}

type loginRequest struct {
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type nutritionPlanRequest struct {
	WeightKg      float64 `json:"weight" validate:"gt=0,lte=500"`
	HeightCm      float64 `json:"height" validate:"gt=0,lte=300"`
	Age           int     `json:"age" validate:"min=10,max=100"`
	ActivityLevel string  `json:"activity_level" validate:"required,activity_level"`
	Goal          string  `json:"goal" validate:"omitempty,nutrition_goal"`
}

func (request nutritionPlanRequest) profile() services.BodyProfile {
	goal := services.NutritionGoal(request.Goal)
	if goal == "" {
		goal = services.GoalMaintain
	}
	return services.BodyProfile{
		WeightKg:      request.WeightKg,
		HeightCm:      request.HeightCm,
		Age:           request.Age,
		ActivityLevel: services.ActivityLevel(request.ActivityLevel),
		Goal:          goal,
	}
}

type phaseTipQuery struct {
	CycleLength int `query:"cycle_length" validate:"omitempty,min=20,max=45"`
}

type symptomInput struct {
	Cramps      *int `json:"cramps" validate:"omitempty,min=0,max=5"`
	MoodChanges *int `json:"mood_changes" validate:"omitempty,min=0,max=5"`
	EnergyLevel *int `json:"energy_level" validate:"omitempty,min=0,max=5"`
	Bloating    *int `json:"bloating" validate:"omitempty,min=0,max=5"`
	Headaches   *int `json:"headaches" validate:"omitempty,min=0,max=5"`
}

type lifestyleInput struct {
	StressLevel       *int `json:"stress_level" validate:"omitempty,min=0,max=5"`
	ExerciseIntensity *int `json:"exercise_intensity" validate:"omitempty,min=0,max=5"`
	SleepQuality      *int `json:"sleep_quality" validate:"omitempty,min=0,max=5"`
	WeightChange      *int `json:"weight_change" validate:"omitempty,min=-2,max=2"`
}

type nutritionAlertsRequest struct {
	Symptoms  symptomInput   `json:"symptoms"`
	Lifestyle lifestyleInput `json:"lifestyle"`
}

func (request nutritionAlertsRequest) snapshots() (services.SymptomSnapshot, services.LifestyleSnapshot) {
	symptoms := services.SymptomSnapshot{
		Cramps:      request.Symptoms.Cramps,
		MoodChanges: request.Symptoms.MoodChanges,
		EnergyLevel: request.Symptoms.EnergyLevel,
		Bloating:    request.Symptoms.Bloating,
		Headaches:   request.Symptoms.Headaches,
	}
	lifestyle := services.LifestyleSnapshot{
		StressLevel:       request.Lifestyle.StressLevel,
		ExerciseIntensity: request.Lifestyle.ExerciseIntensity,
		SleepQuality:      request.Lifestyle.SleepQuality,
		WeightChange:      request.Lifestyle.WeightChange,
	}
	return symptoms, lifestyle
}

type thyroidLogInput struct {
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CycleDay *int   `json:"cycle_day" validate:"omitempty,min=1,max=90"`

	EnergyLevel      *int  `json:"energy_level" validate:"omitempty,min=1,max=10"`
	FatigueIntensity *int  `json:"fatigue_intensity" validate:"omitempty,min=0,max=5"`
	FeelingSluggish  *bool `json:"feeling_sluggish"`
	Hyperactivity    *bool `json:"hyperactivity"`

	WeightChange *string `json:"weight_change_observation" validate:"omitempty,weight_change"`
	Swelling     *bool   `json:"swelling"`
	NeckSwelling *bool   `json:"neck_swelling"`

	MoodSwings   *bool `json:"mood_swings"`
	Anxiety      *bool `json:"anxiety"`
	Depression   *bool `json:"depression"`
	Irritability *bool `json:"irritability"`
	BrainFog     *bool `json:"brain_fog"`

	BodyTemperature *float64 `json:"body_temperature" validate:"omitempty,gte=30,lte=45"`
	ColdSensitivity *bool    `json:"cold_sensitivity"`
	HeatSensitivity *bool    `json:"heat_sensitivity"`

	RestingHeartRate *int    `json:"resting_heart_rate" validate:"omitempty,min=20,max=250"`
	Palpitations     *bool   `json:"palpitations"`
	SleepIssues      *string `json:"sleep_issues" validate:"omitempty,sleep_issue"`

	HairLoss     *bool `json:"hair_loss"`
	DrySkin      *bool `json:"dry_skin"`
	BrittleNails *bool `json:"brittle_nails"`

	StressLevel *int `json:"stress_level" validate:"omitempty,min=1,max=10"`
}

// toModel expects Date to have passed the datetime check already.
func (input thyroidLogInput) toModel(location *time.Location) (models.ThyroidLog, error) {
	entry := models.ThyroidLog{
		CycleDay:         input.CycleDay,
		EnergyLevel:      input.EnergyLevel,
		FatigueIntensity: input.FatigueIntensity,
		FeelingSluggish:  input.FeelingSluggish,
		Hyperactivity:    input.Hyperactivity,
		WeightChange:     input.WeightChange,
		Swelling:         input.Swelling,
		NeckSwelling:     input.NeckSwelling,
		MoodSwings:       input.MoodSwings,
		Anxiety:          input.Anxiety,
		Depression:       input.Depression,
		Irritability:     input.Irritability,
		BrainFog:         input.BrainFog,
		BodyTemperature:  input.BodyTemperature,
		ColdSensitivity:  input.ColdSensitivity,
		HeatSensitivity:  input.HeatSensitivity,
		RestingHeartRate: input.RestingHeartRate,
		Palpitations:     input.Palpitations,
		SleepIssues:      input.SleepIssues,
		HairLoss:         input.HairLoss,
		DrySkin:          input.DrySkin,
		BrittleNails:     input.BrittleNails,
		StressLevel:      input.StressLevel,
	}
	if input.Date == "" {
		return entry, nil
	}

	day, err := services.ParseDay(input.Date, location)
	if err != nil {
		return models.ThyroidLog{}, err
	}
	entry.Date = day
	return entry, nil
}

type thyroidAnalyzeRequest struct {
	Logs []thyroidLogInput `json:"logs" validate:"max=366,dive"`
}

type thyroidRangeQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type pcosRiskRequest struct {
	IrregularPeriods bool `json:"irregular_periods"`
	WeightGain       bool `json:"weight_gain"`
	ExcessHairGrowth bool `json:"excess_hair_growth"`
	Acne             bool `json:"acne"`
	FamilyHistory    bool `json:"family_history"`
	DarkSkinPatches  bool `json:"dark_skin_patches"`
	CycleLengthAvg   *int `json:"cycle_length_avg" validate:"omitempty,min=1,max=365"`
}

func (request pcosRiskRequest) indicators() services.PCOSIndicators {
	return services.PCOSIndicators{
		IrregularPeriods: request.IrregularPeriods,
		WeightGain:       request.WeightGain,
		ExcessHairGrowth: request.ExcessHairGrowth,
		Acne:             request.Acne,
		FamilyHistory:    request.FamilyHistory,
		DarkSkinPatches:  request.DarkSkinPatches,
		CycleLengthAvg:   request.CycleLengthAvg,
	}
}

type cyclePredictionRequest struct {
	PastCycles     []int  `json:"past_cycles" validate:"required,min=4,max=120,dive,min=20,max=45"`
	LastPeriodDate string `json:"last_period_date" validate:"required,datetime=2006-01-02"`
}
