package valuation

import (
	"fmt"
	"sort"
)

// PredefinedEvaluation is one (named recipe, base product) pair priced against the catalog
type PredefinedEvaluation struct {
	Name            string
	Recipe          *Recipe
	ListedEffects   []string
	ListedProfit    float64
	MultiplierTotal float64
	// EffectsMatch is true when the resolved effects equal the listed ones as a set
	EffectsMatch bool
}

// EvaluatePredefined prices every predefined recipe on each of its base products
func (e *Engine) EvaluatePredefined() ([]PredefinedEvaluation, error) {
	var out []PredefinedEvaluation
	for _, def := range e.catalog.PredefinedRecipes() {
		for _, product := range def.Products {
			recipe, err := e.Evaluate(product, def.Mixers)
			if err != nil {
				return nil, fmt.Errorf("predefined recipe %q: %w", def.Name, err)
			}
			out = append(out, PredefinedEvaluation{
				Name:            def.Name,
				Recipe:          recipe,
				ListedEffects:   def.Effects,
				ListedProfit:    def.Profit,
				MultiplierTotal: e.MultiplierTotal(recipe.effects),
				EffectsMatch:    sameSet(recipe.effects, def.Effects),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Recipe.ProfitMargin() > out[j].Recipe.ProfitMargin()
	})
	return out, nil
}

func sameSet(a, b []string) bool {
	return len(a) == len(b) && EffectSignature(a) == EffectSignature(b)
}
