package valuation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

func newDefaultEngine() *valuation.Engine {
	return valuation.NewEngine(catalog.Default(), nil)
}

func TestEngine_Evaluate(t *testing.T) {
	engine := newDefaultEngine()

	tests := []struct {
		name          string
		product       string
		mixers        []string
		effects       []string
		marketValue   int
		totalCost     int
		profit        int
		margin        float64
		addictiveness float64
	}{
		{
			name:          "strain without mixers",
			product:       "OG Kush",
			effects:       []string{"Calming"},
			marketValue:   42,
			totalCost:     2,
			profit:        40,
			margin:        2000,
			addictiveness: 0,
		},
		{
			name:          "strain with cuke",
			product:       "OG Kush",
			mixers:        []string{"Cuke"},
			effects:       []string{"Calming", "Energizing"},
			marketValue:   50,
			totalCost:     4,
			profit:        46,
			margin:        1150,
			addictiveness: 0.34,
		},
		{
			name:          "strain with replacement",
			product:       "OG Kush",
			mixers:        []string{"Mouth wash"},
			effects:       []string{"Anti-gravity"},
			marketValue:   59,
			totalCost:     6,
			profit:        53,
			margin:        53.0 / 6.0 * 100,
			addictiveness: 0.86,
		},
		{
			name:          "produced good uses ingredient cost",
			product:       "Methamphetamine",
			effects:       []string{},
			marketValue:   70,
			totalCost:     14,
			profit:        56,
			margin:        400,
			addictiveness: 0.6,
		},
		{
			name:          "flat product falls back to base value as cost",
			product:       "Marijuana",
			effects:       []string{},
			marketValue:   38,
			totalCost:     38,
			profit:        0,
			margin:        0,
			addictiveness: 0,
		},
		{
			name:          "addictiveness is capped",
			product:       "Methamphetamine",
			mixers:        []string{"Banana", "Battery", "Horse semen"},
			effects:       []string{"Gingeritis", "Bright-Eyed", "Long Faced"},
			marketValue:   176,
			totalCost:     33,
			profit:        143,
			margin:        143.0 / 33.0 * 100,
			addictiveness: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			recipe, err := engine.Evaluate(tt.product, tt.mixers)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.product, recipe.Product())
			assert.Equal(t, tt.effects, recipe.Effects())
			assert.Equal(t, tt.marketValue, recipe.MarketValue())
			assert.Equal(t, tt.totalCost, recipe.TotalCost())
			assert.Equal(t, tt.profit, recipe.Profit())
			assert.InDelta(t, tt.margin, recipe.ProfitMargin(), 1e-9)
			assert.InDelta(t, tt.addictiveness, recipe.Addictiveness(), 1e-9)
		})
	}
}

func TestEngine_UnknownProduct(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()

	// Act
	recipe, err := engine.Evaluate("Green Krack", []string{"Cuke"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, recipe)

	var unknown *catalog.UnknownProductError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Green Krack", unknown.Product)
	assert.Equal(t, []string{"Green Crack"}, unknown.Suggestions)
}

func TestEngine_UnknownProductCostDegrades(t *testing.T) {
	engine := newDefaultEngine()

	assert.Equal(t, 2, engine.ProductionCost("Moonshine", []string{"Cuke"}))
}

func TestEngine_ZeroCostMarginIsZero(t *testing.T) {
	// Arrange
	c := catalog.MustNew(catalog.Data{
		Strains: []catalog.Strain{{Name: "Freebie", Effect: "Calming", SeedCost: 0, BudValue: 20, YieldMin: 1, YieldMax: 1}},
		Effects: []catalog.Effect{{Name: "Calming", Multiplier: 0.1}},
	})
	engine := valuation.NewEngine(c, nil)

	// Act
	recipe, err := engine.Evaluate("Freebie", nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, recipe.TotalCost())
	assert.Equal(t, 22, recipe.Profit())
	assert.Equal(t, 0.0, recipe.ProfitMargin())
}

func TestEngine_MarketValueHalfRoundsDown(t *testing.T) {
	// Arrange
	c := catalog.MustNew(catalog.Data{
		Products: []catalog.FlatProduct{{Name: "Widget", BaseValue: 10}},
		Effects:  []catalog.Effect{{Name: "Half", Multiplier: 0.25}},
		Mixers:   []catalog.Mixer{{Name: "Dust", Effect: "Half", Cost: 1}},
	})
	engine := valuation.NewEngine(c, nil)

	// Act
	recipe, err := engine.Evaluate("Widget", []string{"Dust"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12, recipe.MarketValue(), "12.5 must truncate to 12")
	assert.Equal(t, 11, recipe.TotalCost())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 12, valuation.RoundMarketValue(12.5))
	assert.Equal(t, 13, valuation.RoundMarketValue(13.5))
	assert.Equal(t, 13, valuation.RoundMarketValue(12.51))
	assert.Equal(t, 12, valuation.RoundMarketValue(12.49))
	assert.Equal(t, 50, valuation.RoundMarketValue(50.16))

	assert.Equal(t, 2, valuation.RoundCost(2.5))
	assert.Equal(t, 4, valuation.RoundCost(3.5))
	assert.Equal(t, 3, valuation.RoundCost(2.6))
}

func TestEngine_MixerCostIgnoresUnknown(t *testing.T) {
	engine := newDefaultEngine()

	assert.Equal(t, 11, engine.MixerCost([]string{"Cuke", "Glitter", "Addy"}))
	assert.Equal(t, 0, engine.MixerCost(nil))
}

func TestEngine_Extend(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()
	base, err := engine.Evaluate("OG Kush", []string{"Cuke"})
	require.NoError(t, err)

	// Act
	extended, err := engine.Extend(base, "Banana")
	require.NoError(t, err)
	same, err := engine.Extend(base, "Cuke")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, []string{"Cuke", "Banana"}, extended.Mixers())
	assert.Equal(t, []string{"Cuke"}, base.Mixers(), "original recipe untouched")
	assert.Same(t, base, same)
}

func TestRecipe_AccessorsReturnCopies(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()
	recipe, err := engine.Evaluate("OG Kush", []string{"Cuke"})
	require.NoError(t, err)

	// Act
	mixers := recipe.Mixers()
	mixers[0] = "Banana"
	effects := recipe.Effects()
	effects[0] = "Toxic"

	// Assert
	assert.Equal(t, []string{"Cuke"}, recipe.Mixers())
	assert.Equal(t, []string{"Calming", "Energizing"}, recipe.Effects())
}

func TestRecipe_MarshalJSON(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()
	recipe, err := engine.Evaluate("OG Kush", []string{"Cuke"})
	require.NoError(t, err)

	// Act
	data, err := recipe.MarshalJSON()

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"product": "OG Kush",
		"mixers": ["Cuke"],
		"effects": ["Calming", "Energizing"],
		"market_value": 50,
		"total_cost": 4,
		"profit": 46,
		"profit_margin": 1150,
		"addictiveness": 0.34
	}`, string(data))
}

func TestRecipe_MarshalJSON_EmptyListsAreArrays(t *testing.T) {
	// Arrange
	engine := newDefaultEngine()
	recipe, err := engine.Evaluate("Cocaine", nil)
	require.NoError(t, err)

	// Act
	data, err := recipe.MarshalJSON()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mixers":[]`)
	assert.Contains(t, string(data), `"effects":[]`)
	assert.NotNil(t, recipe.Record().Mixers)
}

func TestEffectSignature_OrderIndependent(t *testing.T) {
	assert.Equal(t,
		valuation.EffectSignature([]string{"Calming", "Energizing"}),
		valuation.EffectSignature([]string{"Energizing", "Calming"}),
	)
	assert.NotEqual(t,
		valuation.EffectSignature([]string{"Calming"}),
		valuation.EffectSignature([]string{"Calming", "Energizing"}),
	)
}
