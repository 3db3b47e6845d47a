package helpers

import (
	"time"

	"github.com/kibahcorps/schedule1-go/internal/application/recipes/services"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// NewDefaultEngine returns a valuation engine over the stock game catalog
func NewDefaultEngine() *valuation.Engine {
	return valuation.NewEngine(catalog.Default(), nil)
}

// NewDefaultFinder returns a RecipeFinder over the stock catalog with the given cache
func NewDefaultFinder(cache services.RecipeCache) *services.RecipeFinder {
	searcher := search.NewSearcher(NewDefaultEngine(), search.Options{})
	return services.NewRecipeFinder(searcher, cache, nil)
}

// TinyCatalogData is a two-product, three-mixer catalog small enough to
// enumerate by hand
func TinyCatalogData() catalog.Data {
	return catalog.Data{
		Products: []catalog.FlatProduct{{Name: "Widget", BaseValue: 10}},
		Strains: []catalog.Strain{
			{Name: "Sprout", Effect: "Calm", SeedCost: 20, BudValue: 30, YieldMin: 4, YieldMax: 6},
		},
		Mixers: []catalog.Mixer{
			{Name: "Salt", Effect: "Salty", Cost: 1},
			{Name: "Sugar", Effect: "Sweet", Cost: 2},
			{Name: "Coffee", Effect: "Buzzed", Cost: 4},
		},
		Effects: []catalog.Effect{
			{Name: "Calm", Multiplier: 0.1, Addictiveness: 0},
			{Name: "Salty", Multiplier: 0.2, Addictiveness: 0.1},
			{Name: "Sweet", Multiplier: 0.3, Addictiveness: 0.2},
			{Name: "Buzzed", Multiplier: 0.5, Addictiveness: 0.3},
			{Name: "Jittery", Multiplier: 0.05, Addictiveness: 0.4},
		},
		Replacements: []catalog.ReplacementRule{
			{Existing: "Sweet", Mixer: "Coffee", Result: "Jittery"},
		},
	}
}

// NewTinyCatalog builds TinyCatalogData
func NewTinyCatalog() *catalog.Catalog {
	return catalog.MustNew(TinyCatalogData())
}

// FixedTime is the reference instant used by clock-dependent tests
func FixedTime() time.Time {
	return time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
}
