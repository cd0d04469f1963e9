package orchestration

import (
	"github.com/agbru/utilkit/internal/config"
	"github.com/agbru/utilkit/internal/fibonacci"
)

// Selection is a calculator together with the registry key it was resolved
// from. Key labels metrics and spans; Name is for display.
type Selection struct {
	Key string
	fibonacci.Calculator
}

// GetCalculatorsToRun resolves an algorithm selection against the factory.
// "all" returns every registered calculator in sorted key order; an unknown
// key returns nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []Selection {
	if algo == config.AlgoAll {
		keys := factory.List()
		selections := make([]Selection, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				selections = append(selections, Selection{Key: k, Calculator: calc})
			}
		}
		return selections
	}
	if calc, err := factory.Get(algo); err == nil {
		return []Selection{{Key: algo, Calculator: calc}}
	}
	return nil
}
