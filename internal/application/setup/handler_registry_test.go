package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dealerCommands "github.com/kibahcorps/schedule1-go/internal/application/dealers/commands"
	dealerQueries "github.com/kibahcorps/schedule1-go/internal/application/dealers/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
	recipeCommands "github.com/kibahcorps/schedule1-go/internal/application/recipes/commands"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/setup"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

func TestHandlerRegistry_RegisterAll(t *testing.T) {
	// Arrange
	registry := setup.NewHandlerRegistry(
		helpers.NewDefaultFinder(helpers.NewMockRecipeCache()),
		recipeQueries.DefaultSearchDefaults(),
		helpers.NewMockSavedRecipeRepository(),
		&helpers.StaticDealerDirectory{Dealers: helpers.SampleDealers()},
		helpers.NewMockTransactionRepository(),
		nil,
	)
	m := mediator.NewMediator()

	// Act
	require.NoError(t, registry.RegisterAll(m))

	// Assert
	requests := []mediator.Request{
		&recipeQueries.ResolveEffectsQuery{Product: "OG Kush"},
		&recipeQueries.EvaluateRecipeQuery{Product: "OG Kush"},
		&recipeQueries.CompareMixesQuery{},
		&recipeQueries.TopRecipesQuery{Product: "OG Kush", TopN: 1, MaxMixers: 1},
		&recipeQueries.ListProductsQuery{},
		&recipeQueries.ListMixersQuery{},
		&recipeQueries.ListEffectsQuery{},
		&recipeQueries.EvaluatePredefinedQuery{},
		&recipeQueries.BatchProfitQuery{Product: "OG Kush"},
		&recipeQueries.ListSavedRecipesQuery{},
		&recipeCommands.SaveRecipeCommand{Name: "kush", Product: "OG Kush"},
		&dealerQueries.RankDealersQuery{Product: "OG Kush"},
		&dealerQueries.EstimateDealerProfitQuery{Dealer: "Benji Coleman", Product: "OG Kush"},
		&dealerCommands.RecordDealerTransactionCommand{Dealer: "Benji Coleman", Product: "OG Kush", Quantity: 1, Price: 10},
		&dealerQueries.ListDealerTransactionsQuery{Dealer: "Benji Coleman"},
	}
	for _, req := range requests {
		_, err := m.Send(context.Background(), req)
		assert.NoError(t, err, "%T", req)
	}
}

func TestHandlerRegistry_OptionalDependencies(t *testing.T) {
	registry := setup.NewHandlerRegistry(
		helpers.NewDefaultFinder(nil),
		recipeQueries.DefaultSearchDefaults(),
		nil, nil, nil, nil,
	)
	m := mediator.NewMediator()

	require.NoError(t, registry.RegisterAll(m))

	_, err := m.Send(context.Background(), &recipeQueries.EvaluateRecipeQuery{Product: "OG Kush"})
	assert.NoError(t, err)
	_, err = m.Send(context.Background(), &recipeQueries.ListSavedRecipesQuery{})
	assert.Error(t, err)
	_, err = m.Send(context.Background(), &dealerQueries.RankDealersQuery{})
	assert.Error(t, err)
}
