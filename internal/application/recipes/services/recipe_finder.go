package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// RecipeCache memoizes ranked search results by key
type RecipeCache interface {
	Get(key string) ([]*valuation.Recipe, bool)
	Set(key string, recipes []*valuation.Recipe)
}

// CacheRecorder observes cache lookups
type CacheRecorder interface {
	RecordCacheLookup(hit bool)
}

// RecipeFinder runs recipe searches through an optional result cache.
// Recipes are immutable, so cached slices are shared between callers as-is.
type RecipeFinder struct {
	searcher *search.Searcher
	cache    RecipeCache
	recorder CacheRecorder
}

// NewRecipeFinder creates a finder. cache and recorder may be nil.
func NewRecipeFinder(searcher *search.Searcher, cache RecipeCache, recorder CacheRecorder) *RecipeFinder {
	return &RecipeFinder{
		searcher: searcher,
		cache:    cache,
		recorder: recorder,
	}
}

// Engine exposes the valuation engine the searcher prices with
func (f *RecipeFinder) Engine() *valuation.Engine {
	return f.searcher.Engine()
}

// TopRecipes returns the ranked recipes for one product and whether they came from the cache
func (f *RecipeFinder) TopRecipes(ctx context.Context, product string, topN, maxMixers int) ([]*valuation.Recipe, bool, error) {
	logger := common.LoggerFromContext(ctx)
	key := cacheKey(product, topN, maxMixers)

	if cached, ok := f.lookup(key); ok {
		logger.Log("DEBUG", "recipe search served from cache", map[string]interface{}{
			"product": product,
			"top_n":   topN,
		})
		return cached, true, nil
	}

	started := time.Now()
	recipes, err := f.searcher.TopRecipes(ctx, product, topN, maxMixers)
	if err != nil {
		return nil, false, err
	}

	if f.cache != nil {
		f.cache.Set(key, recipes)
	}

	logger.Log("INFO", "recipe search completed", map[string]interface{}{
		"product":     product,
		"top_n":       topN,
		"max_mixers":  maxMixers,
		"returned":    len(recipes),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return recipes, false, nil
}

// TopRecipesAllProducts searches every catalog product. Per-product results are
// written to the cache so later single-product queries reuse them.
func (f *RecipeFinder) TopRecipesAllProducts(ctx context.Context, topN, maxMixers int, hook search.ProgressFunc) (map[string][]*valuation.Recipe, error) {
	logger := common.LoggerFromContext(ctx)

	wrapped := func(p search.Progress) error {
		if f.cache != nil {
			f.cache.Set(cacheKey(p.Product, topN, maxMixers), p.Recipes)
		}
		logger.Log("INFO", "product search finished", map[string]interface{}{
			"product":   p.Product,
			"completed": p.Completed,
			"total":     p.Total,
		})
		if hook != nil {
			return hook(p)
		}
		return nil
	}

	results, err := f.searcher.TopRecipesAllProducts(ctx, topN, maxMixers, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to search all products: %w", err)
	}
	return results, nil
}

func (f *RecipeFinder) lookup(key string) ([]*valuation.Recipe, bool) {
	if f.cache == nil {
		return nil, false
	}
	recipes, ok := f.cache.Get(key)
	if f.recorder != nil {
		f.recorder.RecordCacheLookup(ok)
	}
	return recipes, ok
}

func cacheKey(product string, topN, maxMixers int) string {
	return fmt.Sprintf("%s|%d|%d", product, topN, maxMixers)
}
