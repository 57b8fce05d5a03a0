package services

import (
	"fmt"
	"strings"
)

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
)

const (
	DefaultCycleLength      = 28
	menstrualPhaseLastDay   = 5
	follicularPhaseLastDay  = 13
	canonicalOvulationDay   = 14
	ovulationWindowHalfSpan = 1.0
)

var cyclePhases = []CyclePhase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal}

type PhaseGuidance struct {
	Phase        CyclePhase `json:"phase" yaml:"phase"`
	Focus        string     `json:"focus" yaml:"focus"`
	FoodsToEat   []string   `json:"foods_to_eat" yaml:"foods_to_eat"`
	FoodsToAvoid []string   `json:"foods_to_avoid" yaml:"foods_to_avoid"`
	Tip          string     `json:"tip" yaml:"tip"`
}

func (guidance PhaseGuidance) clone() PhaseGuidance {
	guidance.FoodsToEat = append([]string(nil), guidance.FoodsToEat...)
	guidance.FoodsToAvoid = append([]string(nil), guidance.FoodsToAvoid...)
	return guidance
}

type PhaseGuidanceTable struct {
	byPhase map[CyclePhase]PhaseGuidance
}

type phaseGuidanceDocument struct {
	Version int             `yaml:"version"`
	Phases  []PhaseGuidance `yaml:"phases"`
}

func ParsePhaseGuidanceTable(raw []byte) (PhaseGuidanceTable, error) {
	document := phaseGuidanceDocument{}
	if err := decodeStrictYAML(raw, &document); err != nil {
		return PhaseGuidanceTable{}, fmt.Errorf("%w: parse phase guidance: %v", ErrComputationFailed, err)
	}

	byPhase := make(map[CyclePhase]PhaseGuidance, len(cyclePhases))
	for _, entry := range document.Phases {
		if !isKnownCyclePhase(entry.Phase) {
			return PhaseGuidanceTable{}, fmt.Errorf("%w: unknown phase %q in guidance table", ErrComputationFailed, entry.Phase)
		}
		if _, duplicate := byPhase[entry.Phase]; duplicate {
			return PhaseGuidanceTable{}, fmt.Errorf("%w: phase %q declared twice in guidance table", ErrComputationFailed, entry.Phase)
		}
		if strings.TrimSpace(entry.Focus) == "" || strings.TrimSpace(entry.Tip) == "" {
			return PhaseGuidanceTable{}, fmt.Errorf("%w: phase %q guidance is incomplete", ErrComputationFailed, entry.Phase)
		}
		byPhase[entry.Phase] = entry.clone()
	}
	for _, phase := range cyclePhases {
		if _, ok := byPhase[phase]; !ok {
			return PhaseGuidanceTable{}, fmt.Errorf("%w: guidance table is missing phase %q", ErrComputationFailed, phase)
		}
	}

	return PhaseGuidanceTable{byPhase: byPhase}, nil
}

func (table PhaseGuidanceTable) Guidance(phase CyclePhase) (PhaseGuidance, bool) {
	guidance, ok := table.byPhase[phase]
	if !ok {
		return PhaseGuidance{}, false
	}
	return guidance.clone(), true
}

// CyclePhaseForDay maps any integer cycle day onto a phase. Days outside
// 1..cycleLength wrap around with a floored modulo, so day 0 is the last day
// of the previous cycle and day cycleLength+1 is day 1 again.
func CyclePhaseForDay(cycleDay int, cycleLength int) CyclePhase {
	if cycleLength <= 0 {
		cycleLength = DefaultCycleLength
	}
	current := NormalizeCycleDay(cycleDay, cycleLength)

	if current <= menstrualPhaseLastDay {
		return PhaseMenstrual
	}
	if current <= follicularPhaseLastDay {
		return PhaseFollicular
	}

	midpoint := float64(cycleLength) / 2
	day := float64(current)
	if current == canonicalOvulationDay || (day >= midpoint-ovulationWindowHalfSpan && day <= midpoint+ovulationWindowHalfSpan) {
		return PhaseOvulation
	}
	return PhaseLuteal
}

func NormalizeCycleDay(cycleDay int, cycleLength int) int {
	if cycleLength <= 0 {
		cycleLength = DefaultCycleLength
	}
	remainder := (cycleDay - 1) % cycleLength
	if remainder < 0 {
		remainder += cycleLength
	}
	return remainder + 1
}

func isKnownCyclePhase(phase CyclePhase) bool {
	for _, known := range cyclePhases {
		if phase == known {
			return true
		}
	}
	return false
}
