package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	recipeCommands "github.com/kibahcorps/schedule1-go/internal/application/recipes/commands"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/application/setup"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

type cookbookContext struct {
	mediator common.Mediator
	saved    *types.SavedRecipeDTO
	listed   []*types.SavedRecipeDTO
	err      error
}

func (cc *cookbookContext) reset() {
	cc.mediator = nil
	cc.saved = nil
	cc.listed = nil
	cc.err = nil
}

// Given steps

func (cc *cookbookContext) anEmptyRecipeBook() error {
	registry := setup.NewHandlerRegistry(
		helpers.NewDefaultFinder(nil),
		recipeQueries.DefaultSearchDefaults(),
		helpers.NewMockSavedRecipeRepository(),
		nil, nil,
		shared.NewMockClock(helpers.FixedTime()),
	)
	med := common.NewMediator()
	if err := registry.RegisterAll(med); err != nil {
		return err
	}
	cc.mediator = med
	return nil
}

// When steps

func (cc *cookbookContext) iSaveAsWith(name, product, mixers string) error {
	resp, err := cc.mediator.Send(context.Background(), &recipeCommands.SaveRecipeCommand{
		Name:    name,
		Product: product,
		Mixers:  splitList(mixers),
	})
	cc.err = err
	if err == nil {
		cc.saved = resp.(*recipeCommands.SaveRecipeResponse).Recipe
	}
	return nil
}

func (cc *cookbookContext) iDeleteTheLastSavedRecipe() error {
	if cc.saved == nil {
		return fmt.Errorf("no recipe saved: %v", cc.err)
	}
	_, err := cc.mediator.Send(context.Background(), &recipeCommands.DeleteSavedRecipeCommand{ID: cc.saved.ID})
	return err
}

func (cc *cookbookContext) list() error {
	resp, err := cc.mediator.Send(context.Background(), &recipeQueries.ListSavedRecipesQuery{})
	if err != nil {
		return err
	}
	cc.listed = resp.(*recipeQueries.ListSavedRecipesResponse).Recipes
	return nil
}

// Then steps

func (cc *cookbookContext) theSavedRecipeShouldHaveProfit(profit int) error {
	if cc.saved == nil || cc.saved.Recipe == nil {
		return fmt.Errorf("no evaluated recipe saved: %v", cc.err)
	}
	if cc.saved.Recipe.Profit != profit {
		return fmt.Errorf("expected profit %d, got %d", profit, cc.saved.Recipe.Profit)
	}
	return nil
}

func (cc *cookbookContext) theRecipeBookShouldList(name string) error {
	if err := cc.list(); err != nil {
		return err
	}
	for _, r := range cc.listed {
		if r.Name == name {
			return nil
		}
	}
	return fmt.Errorf("recipe %q not listed (%d recipes)", name, len(cc.listed))
}

func (cc *cookbookContext) theRecipeBookShouldBeEmpty() error {
	if err := cc.list(); err != nil {
		return err
	}
	if len(cc.listed) != 0 {
		return fmt.Errorf("expected empty recipe book, got %d recipes", len(cc.listed))
	}
	return nil
}

func (cc *cookbookContext) savingShouldFail() error {
	if cc.err == nil {
		return fmt.Errorf("expected save to fail, but it succeeded")
	}
	return nil
}

func InitializeCookbookScenario(ctx *godog.ScenarioContext) {
	cc := &cookbookContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty recipe book$`, cc.anEmptyRecipeBook)

	// When steps
	ctx.Step(`^I save "([^"]*)" as "([^"]*)" with "([^"]*)"$`, cc.iSaveAsWith)
	ctx.Step(`^I delete the last saved recipe$`, cc.iDeleteTheLastSavedRecipe)

	// Then steps
	ctx.Step(`^the saved recipe should have profit (\d+)$`, cc.theSavedRecipeShouldHaveProfit)
	ctx.Step(`^the recipe book should list "([^"]*)"$`, cc.theRecipeBookShouldList)
	ctx.Step(`^the recipe book should be empty$`, cc.theRecipeBookShouldBeEmpty)
	ctx.Step(`^saving should fail$`, cc.savingShouldFail)
}
