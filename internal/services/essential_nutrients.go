package services

import (
	"fmt"
	"strings"
)

type NutrientInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Importance  string   `json:"importance" yaml:"importance"`
	FoodSources []string `json:"food_sources" yaml:"food_sources"`
}

func (nutrient NutrientInfo) clone() NutrientInfo {
	nutrient.FoodSources = append([]string(nil), nutrient.FoodSources...)
	return nutrient
}

type essentialNutrientsDocument struct {
	Version   int            `yaml:"version"`
	Nutrients []NutrientInfo `yaml:"nutrients"`
}

func ParseEssentialNutrients(raw []byte) ([]NutrientInfo, error) {
	document := essentialNutrientsDocument{}
	if err := decodeStrictYAML(raw, &document); err != nil {
		return nil, fmt.Errorf("%w: parse essential nutrients: %v", ErrComputationFailed, err)
	}
	if len(document.Nutrients) == 0 {
		return nil, fmt.Errorf("%w: essential nutrients list is empty", ErrComputationFailed)
	}

	seen := make(map[string]struct{}, len(document.Nutrients))
	nutrients := make([]NutrientInfo, 0, len(document.Nutrients))
	for _, nutrient := range document.Nutrients {
		name := strings.TrimSpace(nutrient.Name)
		if name == "" || len(nutrient.FoodSources) == 0 {
			return nil, fmt.Errorf("%w: essential nutrient entry is incomplete", ErrComputationFailed)
		}
		key := strings.ToLower(name)
		if _, duplicate := seen[key]; duplicate {
			return nil, fmt.Errorf("%w: nutrient %q declared twice", ErrComputationFailed, name)
		}
		seen[key] = struct{}{}
		nutrient.Name = name
		nutrients = append(nutrients, nutrient.clone())
	}
	return nutrients, nil
}
