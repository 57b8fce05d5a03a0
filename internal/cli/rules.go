package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/terraincognita07/cyclesense/internal/services"
)

// RunRulesCheckCommand loads every rule table and prints a short inventory.
// Any structural problem in the tables is returned as an error.
func RunRulesCheckCommand(rulesDir string, out io.Writer) error {
	book, err := services.RuleBookFromDir(rulesDir)
	if err != nil {
		return fmt.Errorf("rule tables invalid: %w", err)
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	source := "embedded"
	if rulesDir != "" {
		source = rulesDir
	}
	fmt.Fprintf(out, "%s (%s)\n", cyan("Rule tables"), source)

	for _, table := range []services.IndicatorTable{book.ThyroidIndicators(), book.PCOSIndicators()} {
		fmt.Fprintf(out, "  %-10s v%d  %2d indicators  max score %d\n",
			table.Condition(), table.Version(), len(table.Keys()), table.MaxScore())
	}

	phases := book.PhaseGuidance()
	phaseCount := 0
	for _, phase := range []services.CyclePhase{services.PhaseMenstrual, services.PhaseFollicular, services.PhaseOvulation, services.PhaseLuteal} {
		if _, ok := phases.Guidance(phase); ok {
			phaseCount++
		}
	}
	fmt.Fprintf(out, "  %-10s %d phases\n", "guidance", phaseCount)
	fmt.Fprintf(out, "  %-10s %d entries\n", "nutrients", len(book.EssentialNutrients()))

	fmt.Fprintln(out, green("OK"))
	return nil
}
