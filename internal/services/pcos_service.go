package services

const pcosLongCycleMinDays = 35

type PCOSIndicators struct {
	IrregularPeriods bool `json:"irregular_periods"`
	WeightGain       bool `json:"weight_gain"`
	ExcessHairGrowth bool `json:"excess_hair_growth"`
	Acne             bool `json:"acne"`
	FamilyHistory    bool `json:"family_history"`
	DarkSkinPatches  bool `json:"dark_skin_patches"`
	CycleLengthAvg   *int `json:"cycle_length_avg,omitempty"`
}

// Flags derives long_cycles only when an average cycle length was reported.
func (indicators PCOSIndicators) Flags() map[string]bool {
	return map[string]bool{
		"irregular_periods":  indicators.IrregularPeriods,
		"weight_gain":        indicators.WeightGain,
		"excess_hair_growth": indicators.ExcessHairGrowth,
		"acne":               indicators.Acne,
		"family_history":     indicators.FamilyHistory,
		"dark_skin_patches":  indicators.DarkSkinPatches,
		"long_cycles":        indicators.CycleLengthAvg != nil && *indicators.CycleLengthAvg > pcosLongCycleMinDays,
	}
}

type PCOSRiskResult struct {
	Score          int       `json:"risk_score"`
	Level          RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	Matched        []string  `json:"matched_symptoms"`
}

type PCOSService struct {
	indicators IndicatorTable
}

func NewPCOSService(book *RuleBook) *PCOSService {
	return &PCOSService{indicators: book.PCOSIndicators()}
}

func (service *PCOSService) AssessRisk(indicators PCOSIndicators) PCOSRiskResult {
	score := service.indicators.Score(indicators.Flags())
	return PCOSRiskResult{
		Score:          score.Score,
		Level:          score.Level,
		Recommendation: service.indicators.Recommendation(score.Level, score.Leaning),
		Matched:        score.Matched,
	}
}
