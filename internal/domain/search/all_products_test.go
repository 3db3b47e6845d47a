package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/search"
)

func TestTopRecipesAllProducts(t *testing.T) {
	// Arrange
	searcher := newSearcher(search.Options{})
	var progress []search.Progress

	// Act
	results, err := searcher.TopRecipesAllProducts(context.Background(), 3, 3, func(p search.Progress) error {
		progress = append(progress, p)
		return nil
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, results, 7)
	require.Len(t, progress, 7)
	for i, p := range progress {
		assert.Equal(t, i+1, p.Completed)
		assert.Equal(t, 7, p.Total)
	}
	assert.Equal(t, "Marijuana", progress[0].Product)
	assert.Equal(t, "Granddaddy Purple", progress[6].Product)

	single, err := searcher.TopRecipes(context.Background(), "Green Crack", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, mixersOf(single), mixersOf(results["Green Crack"]))
}

func TestTopRecipesAllProducts_HookAborts(t *testing.T) {
	for _, workers := range []int{0, 3} {
		// Arrange
		searcher := newSearcher(search.Options{ProductWorkers: workers})
		stop := errors.New("stop requested")
		calls := 0

		// Act
		results, err := searcher.TopRecipesAllProducts(context.Background(), 2, 2, func(p search.Progress) error {
			calls++
			if calls == 2 {
				return stop
			}
			return nil
		})

		// Assert
		assert.Nil(t, results)
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 2, calls, "no progress reported after abort")
	}
}

func TestTopRecipesAllProducts_ParallelMatchesSequential(t *testing.T) {
	// Arrange
	sequential := newSearcher(search.Options{})
	parallel := newSearcher(search.Options{ProductWorkers: 4, Workers: 2})

	// Act
	expected, err := sequential.TopRecipesAllProducts(context.Background(), 3, 4, nil)
	require.NoError(t, err)
	actual, err := parallel.TopRecipesAllProducts(context.Background(), 3, 4, nil)
	require.NoError(t, err)

	// Assert
	require.Len(t, actual, len(expected))
	for product, recipes := range expected {
		assert.Equal(t, mixersOf(recipes), mixersOf(actual[product]), product)
	}
}

func TestTopRecipesAllProducts_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSearcher(search.Options{}).TopRecipesAllProducts(ctx, 3, 3, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
