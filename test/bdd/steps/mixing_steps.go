package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/mixing"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

type mixingContext struct {
	catalog  *catalog.Catalog
	resolver mixing.EffectResolver
	effects  []string
	recipe   *valuation.Recipe
	err      error
	failures []string
}

func (mc *mixingContext) reset() {
	mc.catalog = nil
	mc.resolver = nil
	mc.effects = nil
	mc.recipe = nil
	mc.err = nil
	mc.failures = nil
}

func (mc *mixingContext) engine() *valuation.Engine {
	return valuation.NewEngine(mc.catalog, mc.resolver)
}

// Given steps

func (mc *mixingContext) theDefaultGameCatalog() error {
	mc.catalog = catalog.Default()
	mc.resolver = mixing.NewResolver(mc.catalog)
	return nil
}

func (mc *mixingContext) theInteractionResolver() error {
	if mc.catalog == nil {
		return fmt.Errorf("no catalog loaded")
	}
	mc.resolver = mixing.NewEffectResolver(mixing.ResolverInteractions, mc.catalog)
	return nil
}

// When steps

func (mc *mixingContext) iMixWith(product, mixers string) error {
	mc.effects = mc.resolver.ResolveEffects(product, splitList(mixers))
	return nil
}

func (mc *mixingContext) iEvaluateWith(product, mixers string) error {
	mc.recipe, mc.err = mc.engine().Evaluate(product, splitList(mixers))
	if mc.recipe != nil {
		mc.effects = mc.recipe.Effects()
	}
	return nil
}

func (mc *mixingContext) iEvaluateTheFollowingMixes(table *godog.Table) error {
	engine := mc.engine()
	for _, row := range table.Rows[1:] {
		product := cellValue(table, row, "product")
		mixers := cellValue(table, row, "mixers")

		recipe, err := engine.Evaluate(product, splitList(mixers))
		if err != nil {
			mc.failures = append(mc.failures, fmt.Sprintf("%s + [%s]: %v", product, mixers, err))
			continue
		}

		expect := map[string]int{}
		for _, col := range []string{"market_value", "total_cost", "profit"} {
			v, err := strconv.Atoi(cellValue(table, row, col))
			if err != nil {
				return fmt.Errorf("bad %s in row for %s: %w", col, product, err)
			}
			expect[col] = v
		}
		got := map[string]int{
			"market_value": recipe.MarketValue(),
			"total_cost":   recipe.TotalCost(),
			"profit":       recipe.Profit(),
		}
		for col, want := range expect {
			if got[col] != want {
				mc.failures = append(mc.failures,
					fmt.Sprintf("%s + [%s]: expected %s %d, got %d", product, mixers, col, want, got[col]))
			}
		}
	}
	return nil
}

// Then steps

func (mc *mixingContext) theEffectsShouldBe(expected string) error {
	want := splitList(expected)
	if strings.Join(mc.effects, ", ") != strings.Join(want, ", ") {
		return fmt.Errorf("expected effects [%s], got [%s]", strings.Join(want, ", "), strings.Join(mc.effects, ", "))
	}
	return nil
}

func (mc *mixingContext) thereShouldBeEffects(count int) error {
	if len(mc.effects) != count {
		return fmt.Errorf("expected %d effects, got %d", count, len(mc.effects))
	}
	return nil
}

func (mc *mixingContext) everyEvaluationShouldMatchItsRow() error {
	if len(mc.failures) > 0 {
		return fmt.Errorf("%d mismatches:\n  %s", len(mc.failures), strings.Join(mc.failures, "\n  "))
	}
	return nil
}

func (mc *mixingContext) theAddictivenessShouldBe(expected float64) error {
	if mc.recipe == nil {
		return fmt.Errorf("no recipe evaluated: %v", mc.err)
	}
	if math.Abs(mc.recipe.Addictiveness()-expected) > 0.005 {
		return fmt.Errorf("expected addictiveness %.2f, got %.2f", expected, mc.recipe.Addictiveness())
	}
	return nil
}

func (mc *mixingContext) theEvaluationShouldFailForUnknownProduct(product string) error {
	var unknown *catalog.UnknownProductError
	if !errors.As(mc.err, &unknown) {
		return fmt.Errorf("expected unknown product error, got %v", mc.err)
	}
	if unknown.Product != product {
		return fmt.Errorf("expected unknown product %q, got %q", product, unknown.Product)
	}
	return nil
}

func (mc *mixingContext) shouldBeSuggested(suggestion string) error {
	var unknown *catalog.UnknownProductError
	if !errors.As(mc.err, &unknown) {
		return fmt.Errorf("expected unknown product error, got %v", mc.err)
	}
	for _, s := range unknown.Suggestions {
		if s == suggestion {
			return nil
		}
	}
	return fmt.Errorf("expected suggestion %q in %v", suggestion, unknown.Suggestions)
}

func (mc *mixingContext) aMarketValueShouldRoundTo(value float64, expected int) error {
	if got := valuation.RoundMarketValue(value); got != expected {
		return fmt.Errorf("expected market value %v to round to %d, got %d", value, expected, got)
	}
	return nil
}

func (mc *mixingContext) aCostShouldRoundTo(value float64, expected int) error {
	if got := valuation.RoundCost(value); got != expected {
		return fmt.Errorf("expected cost %v to round to %d, got %d", value, expected, got)
	}
	return nil
}

func InitializeMixingScenario(ctx *godog.ScenarioContext) {
	mc := &mixingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default game catalog$`, mc.theDefaultGameCatalog)
	ctx.Step(`^the interaction resolver$`, mc.theInteractionResolver)

	// When steps
	ctx.Step(`^I mix "([^"]*)" with "([^"]*)"$`, mc.iMixWith)
	ctx.Step(`^I evaluate "([^"]*)" with "([^"]*)"$`, mc.iEvaluateWith)
	ctx.Step(`^I evaluate the following mixes:$`, mc.iEvaluateTheFollowingMixes)

	// Then steps
	ctx.Step(`^the effects should be "([^"]*)"$`, mc.theEffectsShouldBe)
	ctx.Step(`^there should be (\d+) effects$`, mc.thereShouldBeEffects)
	ctx.Step(`^every evaluation should match its row$`, mc.everyEvaluationShouldMatchItsRow)
	ctx.Step(`^the addictiveness should be ([0-9.]+)$`, mc.theAddictivenessShouldBe)
	ctx.Step(`^the evaluation should fail for unknown product "([^"]*)"$`, mc.theEvaluationShouldFailForUnknownProduct)
	ctx.Step(`^"([^"]*)" should be suggested$`, mc.shouldBeSuggested)
	ctx.Step(`^a market value of ([0-9.]+) should round to (\d+)$`, mc.aMarketValueShouldRoundTo)
	ctx.Step(`^a cost of ([0-9.]+) should round to (\d+)$`, mc.aCostShouldRoundTo)
}
