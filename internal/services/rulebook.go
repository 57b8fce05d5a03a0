package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/terraincognita07/cyclesense/rules"
	"gopkg.in/yaml.v3"
)

const (
	thyroidIndicatorsFile  = "thyroid_indicators.yaml"
	pcosIndicatorsFile     = "pcos_indicators.yaml"
	phaseGuidanceFile      = "phase_guidance.yaml"
	essentialNutrientsFile = "essential_nutrients.yaml"
)

// RuleBook bundles every declarative table the engine reads. It is built once
// and only exposes copies of its contents.
type RuleBook struct {
	thyroid   IndicatorTable
	pcos      IndicatorTable
	phases    PhaseGuidanceTable
	nutrients []NutrientInfo
}

var defaultRuleBook = sync.OnceValues(func() (*RuleBook, error) {
	return LoadRuleBook(rules.Files)
})

// DefaultRuleBook returns the tables embedded into the binary.
func DefaultRuleBook() (*RuleBook, error) {
	return defaultRuleBook()
}

// RuleBookFromDir loads tables from dir, or the embedded ones when dir is empty.
func RuleBookFromDir(dir string) (*RuleBook, error) {
	if strings.TrimSpace(dir) == "" {
		return DefaultRuleBook()
	}
	return LoadRuleBook(os.DirFS(dir))
}

func LoadRuleBook(fsys fs.FS) (*RuleBook, error) {
	thyroid, err := loadIndicatorTableFile(fsys, thyroidIndicatorsFile)
	if err != nil {
		return nil, err
	}
	pcos, err := loadIndicatorTableFile(fsys, pcosIndicatorsFile)
	if err != nil {
		return nil, err
	}

	rawPhases, err := fs.ReadFile(fsys, phaseGuidanceFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrComputationFailed, phaseGuidanceFile, err)
	}
	phases, err := ParsePhaseGuidanceTable(rawPhases)
	if err != nil {
		return nil, err
	}

	rawNutrients, err := fs.ReadFile(fsys, essentialNutrientsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrComputationFailed, essentialNutrientsFile, err)
	}
	nutrients, err := ParseEssentialNutrients(rawNutrients)
	if err != nil {
		return nil, err
	}

	return &RuleBook{
		thyroid:   thyroid,
		pcos:      pcos,
		phases:    phases,
		nutrients: nutrients,
	}, nil
}

func (book *RuleBook) ThyroidIndicators() IndicatorTable {
	return book.thyroid
}

func (book *RuleBook) PCOSIndicators() IndicatorTable {
	return book.pcos
}

func (book *RuleBook) PhaseGuidance() PhaseGuidanceTable {
	return book.phases
}

func (book *RuleBook) EssentialNutrients() []NutrientInfo {
	result := make([]NutrientInfo, 0, len(book.nutrients))
	for _, nutrient := range book.nutrients {
		result = append(result, nutrient.clone())
	}
	return result
}

func loadIndicatorTableFile(fsys fs.FS, name string) (IndicatorTable, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return IndicatorTable{}, fmt.Errorf("%w: read %s: %v", ErrComputationFailed, name, err)
	}
	table, err := ParseIndicatorTable(raw)
	if err != nil {
		return IndicatorTable{}, fmt.Errorf("%s: %w", name, err)
	}
	return table, nil
}

func decodeStrictYAML(raw []byte, target any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("document is empty")
		}
		return err
	}
	return nil
}
