package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

func TestEvaluateRecipeHandler(t *testing.T) {
	// Arrange
	handler := queries.NewEvaluateRecipeHandler(helpers.NewDefaultEngine())

	// Act
	resp, err := handler.Handle(context.Background(), &queries.EvaluateRecipeQuery{
		Product: "OG Kush",
		Mixers:  []string{"Cuke", "Bateryy"},
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.EvaluateRecipeResponse)
	assert.Equal(t, []string{"Calming", "Energizing"}, result.Recipe.Effects)
	assert.Equal(t, 50, result.Recipe.MarketValue)
	assert.Equal(t, 4, result.Recipe.TotalCost)
	require.Len(t, result.IgnoredMixers, 1)
	assert.Equal(t, "Bateryy", result.IgnoredMixers[0].Name)
	assert.Contains(t, result.IgnoredMixers[0].Suggestions, "Battery")
}

func TestEvaluateRecipeHandler_UnknownProduct(t *testing.T) {
	handler := queries.NewEvaluateRecipeHandler(helpers.NewDefaultEngine())

	_, err := handler.Handle(context.Background(), &queries.EvaluateRecipeQuery{Product: "Green Krack"})

	var unknown *catalog.UnknownProductError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Green Krack", unknown.Product)
}

func TestHandlers_RejectWrongRequestType(t *testing.T) {
	engine := helpers.NewDefaultEngine()
	handlers := []common.RequestHandler{
		queries.NewEvaluateRecipeHandler(engine),
		queries.NewResolveEffectsHandler(engine),
		queries.NewCompareMixesHandler(engine),
		queries.NewListCatalogHandler(engine.Catalog()),
		queries.NewBatchProfitHandler(engine),
		queries.NewEvaluatePredefinedHandler(engine),
	}

	for _, h := range handlers {
		_, err := h.Handle(context.Background(), struct{}{})
		assert.Error(t, err)
	}
}

func TestResolveEffectsHandler_ToleratesUnknownProduct(t *testing.T) {
	handler := queries.NewResolveEffectsHandler(helpers.NewDefaultEngine())

	resp, err := handler.Handle(context.Background(), &queries.ResolveEffectsQuery{
		Product: "Green Krack",
		Mixers:  []string{"Cuke"},
	})

	require.NoError(t, err)
	result := resp.(*queries.ResolveEffectsResponse)
	assert.False(t, result.KnownProduct)
	assert.Equal(t, []string{"Energizing"}, result.Effects)
}

func TestTopRecipesHandler_AppliesDefaults(t *testing.T) {
	// Arrange
	finder := helpers.NewDefaultFinder(helpers.NewMockRecipeCache())
	handler := queries.NewTopRecipesHandler(finder, queries.SearchDefaults{TopN: 1, MaxMixers: 1})

	// Act
	resp, err := handler.Handle(context.Background(), &queries.TopRecipesQuery{Product: "OG Kush"})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.TopRecipesResponse)
	assert.Equal(t, 1, result.TopN)
	assert.Equal(t, 1, result.MaxMixers)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, []string{"Battery"}, result.Recipes[0].Mixers)
	assert.Equal(t, 65, result.Recipes[0].MarketValue)
	assert.InDelta(t, 550.0, result.Recipes[0].ProfitMargin, 1e-9)
}

func TestTopRecipesHandler_NegativeTopNIsEmpty(t *testing.T) {
	finder := helpers.NewDefaultFinder(nil)
	handler := queries.NewTopRecipesHandler(finder, queries.DefaultSearchDefaults())

	resp, err := handler.Handle(context.Background(), &queries.TopRecipesQuery{Product: "OG Kush", TopN: -1})

	require.NoError(t, err)
	assert.Empty(t, resp.(*queries.TopRecipesResponse).Recipes)
}

func TestTopRecipesAllProductsHandler_KeepsCatalogOrder(t *testing.T) {
	finder := helpers.NewDefaultFinder(nil)
	handler := queries.NewTopRecipesAllProductsHandler(finder, queries.DefaultSearchDefaults())
	calls := 0

	resp, err := handler.Handle(context.Background(), &queries.TopRecipesAllProductsQuery{
		TopN:      1,
		MaxMixers: 1,
		Progress: func(p search.Progress) error {
			calls++
			return nil
		},
	})

	require.NoError(t, err)
	result := resp.(*queries.TopRecipesAllProductsResponse)
	products := catalog.Default().Products()
	require.Len(t, result.Products, len(products))
	for i, p := range result.Products {
		assert.Equal(t, products[i], p.Product)
		assert.Len(t, p.Recipes, 1)
	}
	assert.Equal(t, len(products), calls)
}

func TestCompareMixesHandler_RanksAndNames(t *testing.T) {
	handler := queries.NewCompareMixesHandler(helpers.NewDefaultEngine())

	resp, err := handler.Handle(context.Background(), &queries.CompareMixesQuery{Mixes: []queries.MixInput{
		{Product: "OG Kush", Mixers: []string{"Cuke"}},
		{Name: "battery", Product: "OG Kush", Mixers: []string{"Battery"}},
	}})

	require.NoError(t, err)
	result := resp.(*queries.CompareMixesResponse)
	require.Len(t, result.Comparisons, 2)
	// Cuke: 50 on cost 4 (1150%); Battery: 65 on cost 10 (550%)
	assert.Equal(t, "Mix 1", result.Comparisons[0].Name)
	assert.Equal(t, 1, result.Comparisons[0].Rank)
	assert.Equal(t, "battery", result.Comparisons[1].Name)
	assert.Equal(t, 2, result.Comparisons[1].Rank)
}

func TestListCatalogHandler(t *testing.T) {
	c := catalog.Default()
	handler := queries.NewListCatalogHandler(c)

	products, err := handler.Handle(context.Background(), &queries.ListProductsQuery{})
	require.NoError(t, err)
	mixers, err := handler.Handle(context.Background(), &queries.ListMixersQuery{})
	require.NoError(t, err)
	effects, err := handler.Handle(context.Background(), &queries.ListEffectsQuery{})
	require.NoError(t, err)

	productList := products.(*queries.ListProductsResponse).Products
	assert.Len(t, productList, len(c.Products()))
	assert.Equal(t, queries.ProductKindFlat, productList[0].Kind)
	assert.Equal(t, queries.ProductKindStrain, productList[len(productList)-1].Kind)
	assert.Len(t, mixers.(*queries.ListMixersResponse).Mixers, len(c.Mixers()))
	assert.Len(t, effects.(*queries.ListEffectsResponse).Effects, len(c.Effects()))
}

func TestBatchProfitHandler(t *testing.T) {
	handler := queries.NewBatchProfitHandler(helpers.NewDefaultEngine())

	t.Run("strain uses seed cost and rounded average yield", func(t *testing.T) {
		resp, err := handler.Handle(context.Background(), &queries.BatchProfitQuery{Product: "OG Kush", Batches: 2})

		require.NoError(t, err)
		batch := resp.(*queries.BatchProfitResponse).Batch
		strain, _ := catalog.Default().Strain("OG Kush")
		assert.Equal(t, "OG Kush", batch.RecipeName)
		assert.Equal(t, 2, batch.Batches)
		assert.Equal(t, strain.SeedCost*2, batch.TotalSeedCost)
		assert.Equal(t, 42.0, batch.ValuePerUnit)
	})

	t.Run("production info product uses ingredients cost and yield", func(t *testing.T) {
		resp, err := handler.Handle(context.Background(), &queries.BatchProfitQuery{Product: "Methamphetamine", Batches: 3})

		require.NoError(t, err)
		batch := resp.(*queries.BatchProfitResponse).Batch
		assert.Equal(t, 420.0, batch.TotalSeedCost)
		assert.Equal(t, 30, batch.TotalYield)
	})

	t.Run("zero batches counts as one", func(t *testing.T) {
		resp, err := handler.Handle(context.Background(), &queries.BatchProfitQuery{Product: "OG Kush", Mixers: []string{"Cuke"}})

		require.NoError(t, err)
		batch := resp.(*queries.BatchProfitResponse).Batch
		assert.Equal(t, 1, batch.Batches)
		assert.Equal(t, "OG Kush + Cuke", batch.RecipeName)
	})

	t.Run("flat product without production data is rejected", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), &queries.BatchProfitQuery{Product: "Marijuana"})

		var validation *shared.ValidationError
		assert.True(t, errors.As(err, &validation))
	})
}

func TestEvaluatePredefinedHandler(t *testing.T) {
	handler := queries.NewEvaluatePredefinedHandler(helpers.NewDefaultEngine())

	resp, err := handler.Handle(context.Background(), &queries.EvaluatePredefinedQuery{})

	require.NoError(t, err)
	recipes := resp.(*queries.EvaluatePredefinedResponse).Recipes
	require.NotEmpty(t, recipes)
	for i := 1; i < len(recipes); i++ {
		assert.GreaterOrEqual(t, recipes[i-1].Recipe.ProfitMargin, recipes[i].Recipe.ProfitMargin)
	}
}

func TestSavedRecipesHandler(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSavedRecipeRepository()
	clock := shared.NewMockClock(helpers.FixedTime())
	saved, err := cookbook.NewSavedRecipe("Battery kush", "OG Kush", []string{"Battery"}, "", clock)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), saved))
	handler := queries.NewSavedRecipesHandler(repo, helpers.NewDefaultEngine())

	// Act
	listResp, listErr := handler.Handle(context.Background(), &queries.ListSavedRecipesQuery{})
	getResp, getErr := handler.Handle(context.Background(), &queries.GetSavedRecipeQuery{ID: saved.ID()})
	_, missingErr := handler.Handle(context.Background(), &queries.GetSavedRecipeQuery{ID: "missing"})

	// Assert
	require.NoError(t, listErr)
	require.NoError(t, getErr)
	list := listResp.(*queries.ListSavedRecipesResponse).Recipes
	require.Len(t, list, 1)
	assert.Equal(t, 65, list[0].Recipe.MarketValue)
	assert.Equal(t, "Battery kush", getResp.(*queries.GetSavedRecipeResponse).Recipe.Name)

	var notFound *cookbook.ErrRecipeNotFound
	assert.True(t, errors.As(missingErr, &notFound))
}
