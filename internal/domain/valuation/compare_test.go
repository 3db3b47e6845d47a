package valuation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

func TestEngine_CompareMixes(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()
	mixes := []valuation.NamedMix{
		{Name: "plain weed", Product: "Marijuana"},
		{Name: "kush cuke", Product: "OG Kush", Mixers: []string{"Cuke"}},
		{Name: "plain kush", Product: "OG Kush"},
	}

	// Act
	ranked, err := engine.CompareMixes(mixes)

	// Assert
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "plain kush", ranked[0].Name)
	assert.Equal(t, "kush cuke", ranked[1].Name)
	assert.Equal(t, "plain weed", ranked[2].Name)
}

func TestEngine_CompareMixesUnknownProduct(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()

	// Act
	_, err := engine.CompareMixes([]valuation.NamedMix{{Name: "bad", Product: "Heroin"}})

	// Assert
	require.Error(t, err)
	assert.True(t, catalog.IsUnknownProduct(err))
	assert.Contains(t, err.Error(), `mix "bad"`)
}

func TestCalculateBatchProfit(t *testing.T) {
	// Act
	batch := valuation.CalculateBatchProfit("Kush Cuke", 30, 12, 42, 2)

	// Assert
	assert.Equal(t, 2, batch.Batches)
	assert.Equal(t, 60.0, batch.TotalSeedCost)
	assert.Equal(t, 24, batch.TotalYield)
	assert.Equal(t, 1008.0, batch.TotalRevenue)
	assert.Equal(t, 948.0, batch.TotalProfit)
	assert.InDelta(t, 1580.0, batch.ROIPercentage, 1e-9)
}

func TestCalculateBatchProfit_Edges(t *testing.T) {
	free := valuation.CalculateBatchProfit("Free", 0, 10, 5, 0)

	assert.Equal(t, 1, free.Batches, "quantity below one counts as one batch")
	assert.Equal(t, 50.0, free.TotalProfit)
	assert.Equal(t, 0.0, free.ROIPercentage)
}

func TestEngine_EvaluatePredefined(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()

	// Act
	evaluations, err := engine.EvaluatePredefined()

	// Assert
	require.NoError(t, err)
	require.Len(t, evaluations, 4, "one entry per recipe and base product")

	for i := 1; i < len(evaluations); i++ {
		assert.GreaterOrEqual(t, evaluations[i-1].Recipe.ProfitMargin(), evaluations[i].Recipe.ProfitMargin())
	}
	for _, ev := range evaluations {
		assert.LessOrEqual(t, len(ev.Recipe.Effects()), 8)
		assert.NotEmpty(t, ev.ListedEffects)
	}
}
