package models

import "time"

const (
	WeightChangeGain   = "gain"
	WeightChangeLoss   = "loss"
	WeightChangeStable = "stable"
)

const (
	SleepIssueInsomnia     = "insomnia"
	SleepIssueOversleeping = "oversleeping"
	SleepIssueDisturbed    = "disturbed"
	SleepIssueNone         = "none"
)

// ThyroidLog is one day of self-reported thyroid-related readings. Every
// reading is optional: a nil pointer means "not reported", never zero or false.
type ThyroidLog struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID uint      `gorm:"not null;uniqueIndex:uidx_thyroid_user_date" json:"-"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_thyroid_user_date" json:"date"`

	CycleDay *int `json:"cycle_day,omitempty"`

	EnergyLevel      *int  `json:"energy_level,omitempty"`
	FatigueIntensity *int  `json:"fatigue_intensity,omitempty"`
	FeelingSluggish  *bool `json:"feeling_sluggish,omitempty"`
	Hyperactivity    *bool `json:"hyperactivity,omitempty"`

	WeightChange *string `json:"weight_change_observation,omitempty"`
	Swelling     *bool   `json:"swelling,omitempty"`
	NeckSwelling *bool   `json:"neck_swelling,omitempty"`

	MoodSwings   *bool `json:"mood_swings,omitempty"`
	Anxiety      *bool `json:"anxiety,omitempty"`
	Depression   *bool `json:"depression,omitempty"`
	Irritability *bool `json:"irritability,omitempty"`
	BrainFog     *bool `json:"brain_fog,omitempty"`

	BodyTemperature *float64 `json:"body_temperature,omitempty"`
	ColdSensitivity *bool    `json:"cold_sensitivity,omitempty"`
	HeatSensitivity *bool    `json:"heat_sensitivity,omitempty"`

	RestingHeartRate *int    `json:"resting_heart_rate,omitempty"`
	Palpitations     *bool   `json:"palpitations,omitempty"`
	SleepIssues      *string `json:"sleep_issues,omitempty"`

	HairLoss     *bool `json:"hair_loss,omitempty"`
	DrySkin      *bool `json:"dry_skin,omitempty"`
	BrittleNails *bool `json:"brittle_nails,omitempty"`

	StressLevel *int `json:"stress_level,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
