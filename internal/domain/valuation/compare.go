package valuation

import (
	"fmt"
	"sort"
)

// NamedMix is a user-labelled product and mixer sequence
type NamedMix struct {
	Name    string
	Product string
	Mixers  []string
}

// MixComparison pairs a mix name with its evaluation
type MixComparison struct {
	Name   string
	Recipe *Recipe
}

// CompareMixes evaluates every mix and ranks them by descending profit margin.
// Mixes with equal margin keep their input order. The first unknown product aborts
// the comparison.
func (e *Engine) CompareMixes(mixes []NamedMix) ([]MixComparison, error) {
	results := make([]MixComparison, 0, len(mixes))
	for _, mix := range mixes {
		recipe, err := e.Evaluate(mix.Product, mix.Mixers)
		if err != nil {
			return nil, fmt.Errorf("mix %q: %w", mix.Name, err)
		}
		results = append(results, MixComparison{Name: mix.Name, Recipe: recipe})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Recipe.ProfitMargin() > results[j].Recipe.ProfitMargin()
	})
	return results, nil
}
