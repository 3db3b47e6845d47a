package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

type dealerContext struct {
	dealers  []dealer.Dealer
	matches  []dealer.Match
	estimate dealer.ProfitEstimate
	err      error
}

func (dc *dealerContext) reset() {
	dc.dealers = nil
	dc.matches = nil
	dc.estimate = dealer.ProfitEstimate{}
	dc.err = nil
}

// Given steps

func (dc *dealerContext) theFollowingDealers(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		taken, err := strconv.ParseFloat(cellValue(table, row, "percentage_taken"), 64)
		if err != nil {
			return fmt.Errorf("bad percentage_taken: %w", err)
		}
		maxQty, err := strconv.Atoi(cellValue(table, row, "max_quantity"))
		if err != nil {
			return fmt.Errorf("bad max_quantity: %w", err)
		}
		dc.dealers = append(dc.dealers, dealer.Dealer{
			Name:             cellValue(table, row, "name"),
			PercentageTaken:  taken,
			PreferredEffects: splitList(cellValue(table, row, "preferred_effects")),
			MaxQuantity:      maxQty,
		})
	}
	return nil
}

// When steps

func (dc *dealerContext) iRankTheDealersForEffects(effects string) error {
	dc.matches = dealer.RankDealers(dc.dealers, splitList(effects))
	return nil
}

func (dc *dealerContext) sellsUnitsValuedAt(name string, quantity int, value float64) error {
	d, err := dealer.FindByName(dc.dealers, name)
	if err != nil {
		return err
	}
	dc.estimate = dealer.EstimateProfit(d, "OG Kush", quantity, value)
	return nil
}

func (dc *dealerContext) iLookUpDealer(name string) error {
	_, dc.err = dealer.FindByName(dc.dealers, name)
	return nil
}

// Then steps

func (dc *dealerContext) theDealersShouldBeRanked(expected string) error {
	names := make([]string, len(dc.matches))
	for i, m := range dc.matches {
		names[i] = m.DealerName
	}
	if got := strings.Join(names, ", "); got != strings.Join(splitList(expected), ", ") {
		return fmt.Errorf("expected ranking %q, got %q", expected, got)
	}
	return nil
}

func (dc *dealerContext) match(name string) (dealer.Match, error) {
	for _, m := range dc.matches {
		if m.DealerName == name {
			return m, nil
		}
	}
	return dealer.Match{}, fmt.Errorf("dealer %q was not ranked", name)
}

func (dc *dealerContext) shouldMatchEffects(name string, count int) error {
	m, err := dc.match(name)
	if err != nil {
		return err
	}
	if m.MatchingEffects != count {
		return fmt.Errorf("expected %s to match %d effects, got %d", name, count, m.MatchingEffects)
	}
	return nil
}

func (dc *dealerContext) shouldScore(name string, score float64) error {
	m, err := dc.match(name)
	if err != nil {
		return err
	}
	if math.Abs(m.Score-score) > 0.005 {
		return fmt.Errorf("expected %s to score %.2f, got %.2f", name, score, m.Score)
	}
	return nil
}

func (dc *dealerContext) theDealerPriceShouldBe(expected float64) error {
	if math.Abs(dc.estimate.DealerPrice-expected) > 0.005 {
		return fmt.Errorf("expected dealer price %.2f, got %.2f", expected, dc.estimate.DealerPrice)
	}
	return nil
}

func (dc *dealerContext) theDealerProfitShouldBe(expected float64) error {
	if math.Abs(dc.estimate.DealerProfit-expected) > 0.005 {
		return fmt.Errorf("expected dealer profit %.2f, got %.2f", expected, dc.estimate.DealerProfit)
	}
	return nil
}

func (dc *dealerContext) theDealerShouldNotBeFound() error {
	var notFound *dealer.ErrDealerNotFound
	if !errors.As(dc.err, &notFound) {
		return fmt.Errorf("expected dealer not found error, got %v", dc.err)
	}
	return nil
}

func InitializeDealerScenario(ctx *godog.ScenarioContext) {
	dc := &dealerContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the following dealers:$`, dc.theFollowingDealers)

	// When steps
	ctx.Step(`^I rank the dealers for effects "([^"]*)"$`, dc.iRankTheDealersForEffects)
	ctx.Step(`^"([^"]*)" sells (\d+) units valued at ([0-9.]+)$`, dc.sellsUnitsValuedAt)
	ctx.Step(`^I look up dealer "([^"]*)"$`, dc.iLookUpDealer)

	// Then steps
	ctx.Step(`^the dealers should be ranked "([^"]*)"$`, dc.theDealersShouldBeRanked)
	ctx.Step(`^"([^"]*)" should match (\d+) effects$`, dc.shouldMatchEffects)
	ctx.Step(`^"([^"]*)" should score ([0-9.]+)$`, dc.shouldScore)
	ctx.Step(`^the dealer price should be ([0-9.]+)$`, dc.theDealerPriceShouldBe)
	ctx.Step(`^the dealer profit should be ([0-9.]+)$`, dc.theDealerProfitShouldBe)
	ctx.Step(`^the dealer should not be found$`, dc.theDealerShouldNotBeFound)
}
