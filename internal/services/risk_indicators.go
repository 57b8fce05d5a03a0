package services

import (
	"fmt"
	"strings"
)

type Affinity string

const (
	AffinityHypo    Affinity = "hypo"
	AffinityHyper   Affinity = "hyper"
	AffinityOverlap Affinity = "overlap"
	AffinityGeneral Affinity = "general"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

type Leaning string

const (
	LeaningHypo    Leaning = "hypo"
	LeaningHyper   Leaning = "hyper"
	LeaningUnclear Leaning = "unclear"
)

const (
	lowRiskMaxScore      = 20
	moderateRiskMaxScore = 50
	leaningPlaceholder   = "{leaning}"
)

type RiskIndicator struct {
	Key         string   `yaml:"key"`
	Label       string   `yaml:"label"`
	Affinity    Affinity `yaml:"affinity"`
	Weight      int      `yaml:"weight"`
	HypoWeight  int      `yaml:"hypo_weight"`
	HyperWeight int      `yaml:"hyper_weight"`
}

// IndicatorTable is an ordered, validated weight table. The order of rows
// drives both the scoring fold and the order of matched labels.
type IndicatorTable struct {
	version         int
	condition       string
	indicators      []RiskIndicator
	leaningLabels   map[Leaning]string
	recommendations map[RiskLevel]string
}

type indicatorTableDocument struct {
	Version         int               `yaml:"version"`
	Condition       string            `yaml:"condition"`
	LeaningLabels   map[string]string `yaml:"leaning_labels"`
	Recommendations map[string]string `yaml:"recommendations"`
	Indicators      []RiskIndicator   `yaml:"indicators"`
}

// RiskScore is the raw outcome of folding a flag set over an indicator table.
type RiskScore struct {
	Score      int       `json:"score"`
	HypoScore  int       `json:"hypo_score"`
	HyperScore int       `json:"hyper_score"`
	Level      RiskLevel `json:"level"`
	Leaning    Leaning   `json:"leaning"`
	Matched    []string  `json:"matched"`
}

func ParseIndicatorTable(raw []byte) (IndicatorTable, error) {
	document := indicatorTableDocument{}
	if err := decodeStrictYAML(raw, &document); err != nil {
		return IndicatorTable{}, fmt.Errorf("%w: parse indicator table: %v", ErrComputationFailed, err)
	}
	return NewIndicatorTable(document.Version, document.Condition, document.Indicators, document.LeaningLabels, document.Recommendations)
}

func NewIndicatorTable(version int, condition string, indicators []RiskIndicator, leaningLabels map[string]string, recommendations map[string]string) (IndicatorTable, error) {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return IndicatorTable{}, fmt.Errorf("%w: indicator table has no condition", ErrComputationFailed)
	}
	if len(indicators) == 0 {
		return IndicatorTable{}, fmt.Errorf("%w: indicator table %s has no indicators", ErrComputationFailed, condition)
	}

	seen := make(map[string]struct{}, len(indicators))
	rows := make([]RiskIndicator, 0, len(indicators))
	for index, indicator := range indicators {
		indicator.Key = strings.TrimSpace(indicator.Key)
		indicator.Label = strings.TrimSpace(indicator.Label)
		if err := validateRiskIndicator(indicator); err != nil {
			return IndicatorTable{}, fmt.Errorf("%w: %s indicator #%d: %v", ErrComputationFailed, condition, index+1, err)
		}
		if _, duplicate := seen[indicator.Key]; duplicate {
			return IndicatorTable{}, fmt.Errorf("%w: %s indicator %q declared twice", ErrComputationFailed, condition, indicator.Key)
		}
		seen[indicator.Key] = struct{}{}
		rows = append(rows, indicator)
	}

	labels := map[Leaning]string{
		LeaningHypo:    "Hypo",
		LeaningHyper:   "Hyper",
		LeaningUnclear: "Unclear",
	}
	for key, label := range leaningLabels {
		leaning := Leaning(strings.TrimSpace(key))
		if _, known := labels[leaning]; !known {
			return IndicatorTable{}, fmt.Errorf("%w: %s has unknown leaning label %q", ErrComputationFailed, condition, key)
		}
		labels[leaning] = strings.TrimSpace(label)
	}

	templates := make(map[RiskLevel]string, 3)
	for key, text := range recommendations {
		level := RiskLevel(strings.TrimSpace(key))
		switch level {
		case RiskLevelLow, RiskLevelModerate, RiskLevelHigh:
			templates[level] = strings.TrimSpace(text)
		default:
			return IndicatorTable{}, fmt.Errorf("%w: %s has unknown recommendation level %q", ErrComputationFailed, condition, key)
		}
	}
	for _, level := range []RiskLevel{RiskLevelLow, RiskLevelModerate, RiskLevelHigh} {
		if templates[level] == "" {
			return IndicatorTable{}, fmt.Errorf("%w: %s is missing the %s recommendation", ErrComputationFailed, condition, level)
		}
	}

	return IndicatorTable{
		version:         version,
		condition:       condition,
		indicators:      rows,
		leaningLabels:   labels,
		recommendations: templates,
	}, nil
}

func validateRiskIndicator(indicator RiskIndicator) error {
	if indicator.Key == "" {
		return fmt.Errorf("missing key")
	}
	if indicator.Label == "" {
		return fmt.Errorf("%s: missing label", indicator.Key)
	}
	if indicator.Weight <= 0 || indicator.HypoWeight < 0 || indicator.HyperWeight < 0 {
		return fmt.Errorf("%s: weights must be positive", indicator.Key)
	}
	if indicator.HypoWeight > indicator.Weight || indicator.HyperWeight > indicator.Weight {
		return fmt.Errorf("%s: sub-weight exceeds total weight", indicator.Key)
	}

	hasHypo := indicator.HypoWeight > 0
	hasHyper := indicator.HyperWeight > 0
	switch indicator.Affinity {
	case AffinityHypo:
		if !hasHypo || hasHyper {
			return fmt.Errorf("%s: hypo indicator must only carry a hypo weight", indicator.Key)
		}
	case AffinityHyper:
		if hasHypo || !hasHyper {
			return fmt.Errorf("%s: hyper indicator must only carry a hyper weight", indicator.Key)
		}
	case AffinityOverlap:
		if !hasHypo || !hasHyper {
			return fmt.Errorf("%s: overlap indicator must carry both sub-weights", indicator.Key)
		}
	case AffinityGeneral:
		if hasHypo || hasHyper {
			return fmt.Errorf("%s: general indicator cannot carry sub-weights", indicator.Key)
		}
	default:
		return fmt.Errorf("%s: unknown affinity %q", indicator.Key, indicator.Affinity)
	}
	return nil
}

func (table IndicatorTable) Version() int {
	return table.version
}

func (table IndicatorTable) Condition() string {
	return table.condition
}

func (table IndicatorTable) Indicators() []RiskIndicator {
	result := make([]RiskIndicator, len(table.indicators))
	copy(result, table.indicators)
	return result
}

func (table IndicatorTable) Keys() []string {
	keys := make([]string, 0, len(table.indicators))
	for _, indicator := range table.indicators {
		keys = append(keys, indicator.Key)
	}
	return keys
}

func (table IndicatorTable) MaxScore() int {
	total := 0
	for _, indicator := range table.indicators {
		total += indicator.Weight
	}
	return total
}

// Score folds the flag set over the table in declared order. Flags that are
// missing or false contribute nothing; keys unknown to the table are ignored.
func (table IndicatorTable) Score(flags map[string]bool) RiskScore {
	result := RiskScore{Matched: []string{}}
	for _, indicator := range table.indicators {
		if !flags[indicator.Key] {
			continue
		}
		result.Score += indicator.Weight
		result.HypoScore += indicator.HypoWeight
		result.HyperScore += indicator.HyperWeight
		result.Matched = append(result.Matched, indicator.Label)
	}

	result.Level = RiskLevelForScore(result.Score)
	result.Leaning = ResolveLeaning(result.HypoScore, result.HyperScore)
	return result
}

func (table IndicatorTable) LeaningLabel(leaning Leaning) string {
	if label, ok := table.leaningLabels[leaning]; ok {
		return label
	}
	return table.leaningLabels[LeaningUnclear]
}

func (table IndicatorTable) Recommendation(level RiskLevel, leaning Leaning) string {
	template := table.recommendations[level]
	if level == RiskLevelLow {
		return template
	}
	return strings.ReplaceAll(template, leaningPlaceholder, table.LeaningLabel(leaning))
}

func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= lowRiskMaxScore:
		return RiskLevelLow
	case score <= moderateRiskMaxScore:
		return RiskLevelModerate
	default:
		return RiskLevelHigh
	}
}

func ResolveLeaning(hypoScore int, hyperScore int) Leaning {
	switch {
	case hypoScore > hyperScore:
		return LeaningHypo
	case hyperScore > hypoScore:
		return LeaningHyper
	default:
		return LeaningUnclear
	}
}
