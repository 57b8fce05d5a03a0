package services

// ThyroidIndicators is the questionnaire answered for a one-off risk check.
type ThyroidIndicators struct {
	UnexplainedWeightGain bool `json:"unexplained_weight_gain"`
	UnexplainedWeightLoss bool `json:"unexplained_weight_loss"`
	ConstantFatigue       bool `json:"constant_fatigue"`
	ColdIntolerance       bool `json:"cold_intolerance"`
	HeatIntolerance       bool `json:"heat_intolerance"`
	HairLoss              bool `json:"hair_loss"`
	DrySkin               bool `json:"dry_skin"`
	NeckSwelling          bool `json:"neck_swelling"`
	Palpitations          bool `json:"palpitations"`
	Tremors               bool `json:"tremors"`
	MoodChanges           bool `json:"mood_changes"`
	IrregularPeriods      bool `json:"irregular_periods"`
	FamilyHistory         bool `json:"family_history"`
}

func (indicators ThyroidIndicators) Flags() map[string]bool {
	return map[string]bool{
		"unexplained_weight_gain": indicators.UnexplainedWeightGain,
		"unexplained_weight_loss": indicators.UnexplainedWeightLoss,
		"constant_fatigue":        indicators.ConstantFatigue,
		"cold_intolerance":        indicators.ColdIntolerance,
		"heat_intolerance":        indicators.HeatIntolerance,
		"hair_loss":               indicators.HairLoss,
		"dry_skin":                indicators.DrySkin,
		"neck_swelling":           indicators.NeckSwelling,
		"palpitations":            indicators.Palpitations,
		"tremors":                 indicators.Tremors,
		"mood_changes":            indicators.MoodChanges,
		"irregular_periods":       indicators.IrregularPeriods,
		"family_history":          indicators.FamilyHistory,
	}
}

type ThyroidRiskResult struct {
	Score          int       `json:"risk_score"`
	Level          RiskLevel `json:"risk_level"`
	Leaning        Leaning   `json:"leaning"`
	LeaningLabel   string    `json:"condition_leaning"`
	HypoScore      int       `json:"hypo_score"`
	HyperScore     int       `json:"hyper_score"`
	Recommendation string    `json:"recommendation"`
	Matched        []string  `json:"matched_symptoms"`
}

// AssessRisk is a screening heuristic, not a diagnosis.
func (service *ThyroidService) AssessRisk(indicators ThyroidIndicators) ThyroidRiskResult {
	score := service.indicators.Score(indicators.Flags())
	return ThyroidRiskResult{
		Score:          score.Score,
		Level:          score.Level,
		Leaning:        score.Leaning,
		LeaningLabel:   service.indicators.LeaningLabel(score.Leaning),
		HypoScore:      score.HypoScore,
		HyperScore:     score.HyperScore,
		Recommendation: service.indicators.Recommendation(score.Level, score.Leaning),
		Matched:        score.Matched,
	}
}
