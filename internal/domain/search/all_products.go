package search

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// Progress is reported after each product's search completes
type Progress struct {
	Product   string
	Completed int
	Total     int
	Recipes   []*valuation.Recipe
}

// ProgressFunc observes whole-catalog progress. Returning an error aborts the
// remaining searches.
type ProgressFunc func(p Progress) error

// TopRecipesAllProducts runs TopRecipes for every catalog product (flat products
// first, then strains) and returns the results keyed by product name.
//
// The hook, when set, is called once per finished product and never concurrently.
// With ProductWorkers above 1 products are searched in parallel and the hook sees
// them in completion order.
func (s *Searcher) TopRecipesAllProducts(ctx context.Context, topN, maxMixers int, hook ProgressFunc) (map[string][]*valuation.Recipe, error) {
	products := s.engine.Catalog().Products()
	results := make(map[string][]*valuation.Recipe, len(products))

	if s.opts.ProductWorkers <= 1 {
		for i, product := range products {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			recipes, err := s.TopRecipes(ctx, product, topN, maxMixers)
			if err != nil {
				return nil, fmt.Errorf("search %s: %w", product, err)
			}
			results[product] = recipes
			if hook != nil {
				if err := hook(Progress{Product: product, Completed: i + 1, Total: len(products), Recipes: recipes}); err != nil {
					return nil, fmt.Errorf("search aborted after %s: %w", product, err)
				}
			}
		}
		return results, nil
	}

	var mu sync.Mutex
	completed := 0
	var aborted error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ProductWorkers)
	for _, product := range products {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recipes, err := s.TopRecipes(gctx, product, topN, maxMixers)
			if err != nil {
				return fmt.Errorf("search %s: %w", product, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if aborted != nil {
				return aborted
			}
			results[product] = recipes
			completed++
			if hook != nil {
				if err := hook(Progress{Product: product, Completed: completed, Total: len(products), Recipes: recipes}); err != nil {
					aborted = fmt.Errorf("search aborted after %s: %w", product, err)
					return aborted
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
