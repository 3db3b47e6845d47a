package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// evaluateAll prices every sequence and returns the recipes in input order,
// regardless of how many workers shared the work.
func (s *Searcher) evaluateAll(ctx context.Context, product string, sequences [][]string) ([]*valuation.Recipe, error) {
	results := make([]*valuation.Recipe, len(sequences))

	workers := s.opts.Workers
	if workers <= 1 || len(sequences) < 2*workers {
		for i, seq := range sequences {
			r, err := s.engine.Evaluate(product, seq)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(sequences) + workers - 1) / workers
	for start := 0; start < len(sequences); start += chunk {
		end := start + chunk
		if end > len(sequences) {
			end = len(sequences)
		}
		lo, hi := start, end
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := s.engine.Evaluate(product, sequences[i])
				if err != nil {
					return err
				}
				results[i] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
