package search

import (
	"context"
	"sort"
	"time"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
	"github.com/kibahcorps/schedule1-go/pkg/utils"
)

// Searcher finds high-margin mixer sequences for a product.
//
// The search is a bounded beam search rather than an enumeration: every depth
// extends only the best BeamFactor*topN candidates found so far, and candidates
// whose effect combination was already produced by an earlier sequence are
// discarded. The final answer is diversified by a DiversityStrategy so the caller
// does not receive several recipes with the same market value.
//
// Results depend only on the catalog (including its mixer order) and the
// arguments; parallel evaluation never changes them.
type Searcher struct {
	engine *valuation.Engine
	opts   Options
}

// NewSearcher creates a searcher over the engine's catalog
func NewSearcher(engine *valuation.Engine, opts Options) *Searcher {
	return &Searcher{engine: engine, opts: opts}
}

// Engine returns the valuation engine used as the cost function
func (s *Searcher) Engine() *valuation.Engine {
	return s.engine
}

// TopRecipes returns up to topN recipes for product ordered by descending margin.
//
// maxMixers is clamped to [1, MaxMixers]. topN below 1 yields an empty result.
// Unknown products fail with *catalog.UnknownProductError. The context is checked
// between depths.
func (s *Searcher) TopRecipes(ctx context.Context, product string, topN, maxMixers int) ([]*valuation.Recipe, error) {
	started := time.Now()
	c := s.engine.Catalog()
	if !c.HasProduct(product) {
		return nil, c.NewUnknownProductError(product)
	}
	if topN < 1 {
		return []*valuation.Recipe{}, nil
	}
	maxMixers = utils.Clamp(maxMixers, 1, MaxMixers)
	beamWidth := topN * s.opts.beamFactor()
	mixers := c.MixerNames()

	// Depth 0 and 1: the bare product and every single mixer
	seeds := make([][]string, 0, len(mixers)+1)
	seeds = append(seeds, []string{})
	for _, m := range mixers {
		seeds = append(seeds, []string{m})
	}

	evaluated, err := s.evaluateAll(ctx, product, seeds)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	pool := admit(nil, evaluated, seen)
	sortByMargin(pool)
	beam := head(pool, beamWidth)
	total := len(evaluated)
	depth := 1

	for d := 2; d <= maxMixers; d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var sequences [][]string
		for _, candidate := range beam {
			if candidate.MixerCount() >= maxMixers {
				continue
			}
			current := candidate.Mixers()
			for _, m := range mixers {
				if candidate.HasMixer(m) {
					continue
				}
				next := make([]string, len(current), len(current)+1)
				copy(next, current)
				sequences = append(sequences, append(next, m))
			}
		}
		if len(sequences) == 0 {
			break
		}

		evaluated, err := s.evaluateAll(ctx, product, sequences)
		if err != nil {
			return nil, err
		}
		total += len(evaluated)
		depth = d

		pool = admit(pool, evaluated, seen)
		sortByMargin(pool)
		beam = head(pool, beamWidth)
	}

	results := s.diversify(pool, topN)

	if s.opts.Observer != nil {
		s.opts.Observer.SearchCompleted(Stats{
			Product:   product,
			Evaluated: total,
			Unique:    len(pool),
			Depth:     depth,
			Returned:  len(results),
			Duration:  time.Since(started),
		})
	}
	return results, nil
}

// diversify applies the strategy, backfills from the pool up to topN with
// sequences not chosen yet, then orders by margin.
func (s *Searcher) diversify(pool []*valuation.Recipe, topN int) []*valuation.Recipe {
	selected := s.opts.diversity().Select(pool, topN)

	for _, r := range pool {
		if len(selected) >= topN {
			break
		}
		if !containsSequence(selected, r) {
			selected = append(selected, r)
		}
	}

	sortByMargin(selected)
	return head(selected, topN)
}

// admit appends the recipes whose effect signature has not been seen, in order
func admit(pool, recipes []*valuation.Recipe, seen map[string]bool) []*valuation.Recipe {
	for _, r := range recipes {
		sig := r.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		pool = append(pool, r)
	}
	return pool
}

// sortByMargin orders by descending margin; equal margins keep their current order
func sortByMargin(recipes []*valuation.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].ProfitMargin() > recipes[j].ProfitMargin()
	})
}

func head(recipes []*valuation.Recipe, n int) []*valuation.Recipe {
	if len(recipes) > n {
		recipes = recipes[:n]
	}
	return append([]*valuation.Recipe(nil), recipes...)
}

func containsSequence(recipes []*valuation.Recipe, r *valuation.Recipe) bool {
	for _, existing := range recipes {
		if existing.SameSequence(r) {
			return true
		}
	}
	return false
}
