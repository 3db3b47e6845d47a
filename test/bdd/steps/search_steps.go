package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

type searchContext struct {
	searcher *search.Searcher
	results  []*valuation.Recipe
	err      error
}

func (sc *searchContext) reset() {
	sc.searcher = search.NewSearcher(valuation.NewEngine(catalog.Default(), nil), search.Options{Workers: 2})
	sc.results = nil
	sc.err = nil
}

// When steps

func (sc *searchContext) iSearchTheTopRecipesForWithUpToMixers(topN int, product string, maxMixers int) error {
	sc.results, sc.err = sc.searcher.TopRecipes(context.Background(), product, topN, maxMixers)
	return nil
}

// Then steps

func (sc *searchContext) iShouldGetRecipes(count int) error {
	if sc.err != nil {
		return fmt.Errorf("search failed: %w", sc.err)
	}
	if len(sc.results) != count {
		return fmt.Errorf("expected %d recipes, got %d", count, len(sc.results))
	}
	return nil
}

func (sc *searchContext) recipe(n int) (*valuation.Recipe, error) {
	if n < 1 || n > len(sc.results) {
		return nil, fmt.Errorf("recipe %d out of range (have %d)", n, len(sc.results))
	}
	return sc.results[n-1], nil
}

func (sc *searchContext) recipeShouldUseMixers(n int, mixers string) error {
	r, err := sc.recipe(n)
	if err != nil {
		return err
	}
	want := strings.Join(splitList(mixers), ", ")
	if got := strings.Join(r.Mixers(), ", "); got != want {
		return fmt.Errorf("expected recipe %d to use [%s], got [%s]", n, want, got)
	}
	return nil
}

func (sc *searchContext) recipeShouldHaveMarketValueAndCost(n, value, cost int) error {
	r, err := sc.recipe(n)
	if err != nil {
		return err
	}
	if r.MarketValue() != value || r.TotalCost() != cost {
		return fmt.Errorf("expected recipe %d value %d cost %d, got value %d cost %d",
			n, value, cost, r.MarketValue(), r.TotalCost())
	}
	return nil
}

func (sc *searchContext) noTwoRecipesShouldShareAnEffectSet() error {
	seen := make(map[string]string)
	for _, r := range sc.results {
		sig := r.Signature()
		if other, ok := seen[sig]; ok {
			return fmt.Errorf("recipes [%s] and [%s] share effects %q",
				other, strings.Join(r.Mixers(), ", "), sig)
		}
		seen[sig] = strings.Join(r.Mixers(), ", ")
	}
	return nil
}

func (sc *searchContext) theRecipesShouldBeOrderedByDescendingMargin() error {
	for i := 1; i < len(sc.results); i++ {
		if sc.results[i].ProfitMargin() > sc.results[i-1].ProfitMargin() {
			return fmt.Errorf("recipe %d margin %.2f exceeds recipe %d margin %.2f",
				i+1, sc.results[i].ProfitMargin(), i, sc.results[i-1].ProfitMargin())
		}
	}
	return nil
}

func (sc *searchContext) noRecipeShouldUseMoreThanMixers(max int) error {
	for _, r := range sc.results {
		if r.MixerCount() > max {
			return fmt.Errorf("recipe [%s] uses %d mixers", strings.Join(r.Mixers(), ", "), r.MixerCount())
		}
	}
	return nil
}

func (sc *searchContext) theSearchShouldFailForUnknownProduct(product string) error {
	var unknown *catalog.UnknownProductError
	if !errors.As(sc.err, &unknown) {
		return fmt.Errorf("expected unknown product error, got %v", sc.err)
	}
	if unknown.Product != product {
		return fmt.Errorf("expected unknown product %q, got %q", product, unknown.Product)
	}
	return nil
}

func InitializeSearchScenario(ctx *godog.ScenarioContext) {
	sc := &searchContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// When steps
	ctx.Step(`^I search the top (\d+) recipes for "([^"]*)" with up to (\d+) mixers?$`, sc.iSearchTheTopRecipesForWithUpToMixers)

	// Then steps
	ctx.Step(`^I should get (\d+) recipes?$`, sc.iShouldGetRecipes)
	ctx.Step(`^recipe (\d+) should use mixers "([^"]*)"$`, sc.recipeShouldUseMixers)
	ctx.Step(`^recipe (\d+) should have market value (\d+) and cost (\d+)$`, sc.recipeShouldHaveMarketValueAndCost)
	ctx.Step(`^no two recipes should share an effect set$`, sc.noTwoRecipesShouldShareAnEffectSet)
	ctx.Step(`^the recipes should be ordered by descending margin$`, sc.theRecipesShouldBeOrderedByDescendingMargin)
	ctx.Step(`^no recipe should use more than (\d+) mixers$`, sc.noRecipeShouldUseMoreThanMixers)
	ctx.Step(`^the search should fail for unknown product "([^"]*)"$`, sc.theSearchShouldFailForUnknownProduct)
}
