package services

type NutritionService struct {
	phases    PhaseGuidanceTable
	nutrients []NutrientInfo
}

func NewNutritionService(book *RuleBook) *NutritionService {
	return &NutritionService{
		phases:    book.PhaseGuidance(),
		nutrients: book.EssentialNutrients(),
	}
}

type PhaseTip struct {
	CycleDay int `json:"cycle_day"`
	PhaseGuidance
}

// PhaseTip classifies the day and attaches the matching guidance.
func (service *NutritionService) PhaseTip(cycleDay int, cycleLength int) (PhaseTip, error) {
	phase := CyclePhaseForDay(cycleDay, cycleLength)
	guidance, ok := service.phases.Guidance(phase)
	if !ok {
		return PhaseTip{}, ErrComputationFailed
	}
	return PhaseTip{CycleDay: cycleDay, PhaseGuidance: guidance}, nil
}

func (service *NutritionService) Plan(profile BodyProfile) (NutritionPlan, error) {
	return ComputeNutritionPlan(profile)
}

func (service *NutritionService) Alerts(symptoms SymptomSnapshot, lifestyle LifestyleSnapshot) []NutritionAlert {
	return GenerateNutritionAlerts(symptoms, lifestyle)
}

func (service *NutritionService) EssentialNutrients() []NutrientInfo {
	result := make([]NutrientInfo, 0, len(service.nutrients))
	for _, nutrient := range service.nutrients {
		result = append(result, nutrient.clone())
	}
	return result
}
