package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

func newSearcher(opts search.Options) *search.Searcher {
	return search.NewSearcher(valuation.NewEngine(catalog.Default(), nil), opts)
}

func mixersOf(recipes []*valuation.Recipe) [][]string {
	out := make([][]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Mixers()
	}
	return out
}

func TestTopRecipes_KnownResults(t *testing.T) {
	tests := []struct {
		name      string
		product   string
		topN      int
		maxMixers int
		expected  [][]string
		margins   []float64
	}{
		{
			name:      "single mixer prefers the highest value bucket",
			product:   "OG Kush",
			topN:      1,
			maxMixers: 1,
			expected:  [][]string{{"Battery"}},
			margins:   []float64{550},
		},
		{
			name:      "two mixers",
			product:   "OG Kush",
			topN:      3,
			maxMixers: 2,
			expected: [][]string{
				{"Viagra", "Battery"},
				{"Mouth wash", "Battery"},
				{"Battery", "Horse semen"},
			},
			margins: []float64{69.0 / 14.0 * 100, 68.0 / 14.0 * 100, 325},
		},
		{
			name:      "produced good with three mixers",
			product:   "Methamphetamine",
			topN:      3,
			maxMixers: 3,
			expected: [][]string{
				{"Banana", "Viagra", "Battery"},
				{"Paracetamol", "Viagra", "Battery"},
				{"Banana", "Battery", "Horse semen"},
			},
			margins: []float64{144.0 / 28.0 * 100, 500, 143.0 / 33.0 * 100},
		},
		{
			name:      "cocaine with four mixers",
			product:   "Cocaine",
			topN:      2,
			maxMixers: 4,
			expected: [][]string{
				{"Banana", "Viagra", "Battery", "Iodine"},
				{"Banana", "Viagra", "Battery", "Horse semen"},
			},
			margins: []float64{392.0 / 46.0 * 100, 399.0 / 48.0 * 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			searcher := newSearcher(search.Options{})

			// Act
			recipes, err := searcher.TopRecipes(context.Background(), tt.product, tt.topN, tt.maxMixers)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mixersOf(recipes))
			for i, r := range recipes {
				assert.InDelta(t, tt.margins[i], r.ProfitMargin(), 1e-6)
			}
		})
	}
}

func TestTopRecipes_FullDepthMarijuana(t *testing.T) {
	// Arrange
	searcher := newSearcher(search.Options{})

	// Act
	recipes, err := searcher.TopRecipes(context.Background(), "Marijuana", 5, 8)

	// Assert
	require.NoError(t, err)
	require.Len(t, recipes, 5)
	assert.Equal(t, []string{"Viagra", "Banana", "Paracetamol", "Battery", "Donut", "Energy drink", "Horse semen", "Motor oil"}, recipes[0].Mixers())
	assert.Equal(t, 169, recipes[0].MarketValue())
	assert.Equal(t, 79, recipes[0].TotalCost())
	assert.Equal(t, []int{169, 171, 173, 174, 170}, []int{
		recipes[0].MarketValue(), recipes[1].MarketValue(), recipes[2].MarketValue(),
		recipes[3].MarketValue(), recipes[4].MarketValue(),
	})
}

func TestTopRecipes_Invariants(t *testing.T) {
	searcher := newSearcher(search.Options{})
	c := catalog.Default()

	for _, product := range c.Products() {
		for _, topN := range []int{1, 3, 5} {
			recipes, err := searcher.TopRecipes(context.Background(), product, topN, 8)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(recipes), topN)

			signatures := make(map[string]bool)
			for i, r := range recipes {
				if i > 0 {
					assert.GreaterOrEqual(t, recipes[i-1].ProfitMargin(), r.ProfitMargin(), "sorted by margin")
				}
				assert.LessOrEqual(t, r.MixerCount(), search.MaxMixers)
				assert.LessOrEqual(t, len(r.Effects()), 8)
				assert.False(t, signatures[r.Signature()], "duplicate effect set in %s results", product)
				signatures[r.Signature()] = true

				used := make(map[string]bool)
				for _, m := range r.Mixers() {
					assert.False(t, used[m], "mixer %s repeated", m)
					used[m] = true
				}
			}
		}
	}
}

func TestTopRecipes_DistinctMarketValues(t *testing.T) {
	// Arrange
	searcher := newSearcher(search.Options{})

	// Act
	recipes, err := searcher.TopRecipes(context.Background(), "OG Kush", 5, 8)

	// Assert
	require.NoError(t, err)
	values := make(map[int]bool)
	for _, r := range recipes {
		assert.False(t, values[r.MarketValue()], "value bucket %d used twice", r.MarketValue())
		values[r.MarketValue()] = true
	}
}

func TestTopRecipes_DeterministicAcrossWorkers(t *testing.T) {
	// Arrange
	sequential := newSearcher(search.Options{})
	parallel := newSearcher(search.Options{Workers: 4})

	for _, product := range []string{"OG Kush", "Cocaine", "Sour Diesel"} {
		// Act
		first, err := sequential.TopRecipes(context.Background(), product, 5, 8)
		require.NoError(t, err)
		second, err := sequential.TopRecipes(context.Background(), product, 5, 8)
		require.NoError(t, err)
		third, err := parallel.TopRecipes(context.Background(), product, 5, 8)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, mixersOf(first), mixersOf(second))
		assert.Equal(t, mixersOf(first), mixersOf(third))
	}
}

func TestTopRecipes_ClampsMixerBudget(t *testing.T) {
	searcher := newSearcher(search.Options{})

	atZero, err := searcher.TopRecipes(context.Background(), "OG Kush", 5, 0)
	require.NoError(t, err)
	atOne, err := searcher.TopRecipes(context.Background(), "OG Kush", 5, 1)
	require.NoError(t, err)
	for _, r := range atZero {
		assert.LessOrEqual(t, r.MixerCount(), 1)
	}
	assert.Equal(t, mixersOf(atOne), mixersOf(atZero))

	huge, err := searcher.TopRecipes(context.Background(), "OG Kush", 5, 40)
	require.NoError(t, err)
	capped, err := searcher.TopRecipes(context.Background(), "OG Kush", 5, 8)
	require.NoError(t, err)
	assert.Equal(t, mixersOf(capped), mixersOf(huge))
}

func TestTopRecipes_EmptyForNonPositiveTopN(t *testing.T) {
	searcher := newSearcher(search.Options{})

	recipes, err := searcher.TopRecipes(context.Background(), "OG Kush", 0, 8)

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestTopRecipes_UnknownProduct(t *testing.T) {
	// Arrange
	searcher := newSearcher(search.Options{})

	// Act
	recipes, err := searcher.TopRecipes(context.Background(), "Sour Deisel", 5, 8)

	// Assert
	assert.Nil(t, recipes)
	var unknown *catalog.UnknownProductError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"Sour Diesel"}, unknown.Suggestions)
}

func TestTopRecipes_Cancelled(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{0, 4} {
		searcher := newSearcher(search.Options{Workers: workers})

		// Act
		_, err := searcher.TopRecipes(ctx, "OG Kush", 5, 8)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestTopRecipes_NeverBeatsBruteForce(t *testing.T) {
	// Arrange
	subset := catalog.Default().WithMixers("Cuke", "Banana", "Paracetamol", "Mouth wash", "Donut", "Battery")
	engine := valuation.NewEngine(subset, nil)
	searcher := search.NewSearcher(engine, search.Options{})

	for _, product := range subset.Products() {
		best := bruteForceBestMargin(t, engine, product, subset.MixerNames(), 3)

		// Act
		recipes, err := searcher.TopRecipes(context.Background(), product, 5, 3)

		// Assert
		require.NoError(t, err)
		for _, r := range recipes {
			assert.LessOrEqual(t, r.ProfitMargin(), best+1e-9, "%s %v", product, r.Mixers())
		}
	}
}

func bruteForceBestMargin(t *testing.T, engine *valuation.Engine, product string, mixers []string, depth int) float64 {
	t.Helper()

	best := -1e18
	var walk func(prefix []string)
	walk = func(prefix []string) {
		r, err := engine.Evaluate(product, prefix)
		require.NoError(t, err)
		if r.ProfitMargin() > best {
			best = r.ProfitMargin()
		}
		if len(prefix) == depth {
			return
		}
		for _, m := range mixers {
			if contains(prefix, m) {
				continue
			}
			walk(append(append([]string(nil), prefix...), m))
		}
	}
	walk(nil)
	return best
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestTopRecipes_ReportsStats(t *testing.T) {
	// Arrange
	var got []search.Stats
	searcher := newSearcher(search.Options{
		Observer: search.ObserverFunc(func(s search.Stats) { got = append(got, s) }),
	})

	// Act
	_, err := searcher.TopRecipes(context.Background(), "OG Kush", 3, 2)

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "OG Kush", got[0].Product)
	assert.Equal(t, 2, got[0].Depth)
	assert.Equal(t, 3, got[0].Returned)
	assert.Greater(t, got[0].Evaluated, 17)
	assert.LessOrEqual(t, got[0].Unique, got[0].Evaluated)
}

func TestTopMarginStrategy(t *testing.T) {
	// Arrange
	buckets := newSearcher(search.Options{})
	plain := newSearcher(search.Options{Diversity: search.TopMargin{}})

	// Act
	diverse, err := buckets.TopRecipes(context.Background(), "OG Kush", 1, 1)
	require.NoError(t, err)
	greedy, err := plain.TopRecipes(context.Background(), "OG Kush", 1, 1)
	require.NoError(t, err)

	// Assert
	require.Len(t, greedy, 1)
	assert.Empty(t, greedy[0].Mixers(), "bare product has the best margin")
	assert.InDelta(t, 2000.0, greedy[0].ProfitMargin(), 1e-9)
	assert.Greater(t, greedy[0].ProfitMargin(), diverse[0].ProfitMargin())
}
