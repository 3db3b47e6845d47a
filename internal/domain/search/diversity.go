package search

import (
	"sort"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// DiversityStrategy chooses up to n representatives from the margin-sorted pool
type DiversityStrategy interface {
	Select(pool []*valuation.Recipe, n int) []*valuation.Recipe
}

// MarketValueBuckets groups the pool by market value and takes the best-margin
// recipe of each group, highest market value first.
type MarketValueBuckets struct{}

// Select expects pool sorted by descending margin, so the first member of each
// bucket is its best.
func (MarketValueBuckets) Select(pool []*valuation.Recipe, n int) []*valuation.Recipe {
	best := make(map[int]*valuation.Recipe)
	values := make([]int, 0)
	for _, r := range pool {
		if _, ok := best[r.MarketValue()]; ok {
			continue
		}
		best[r.MarketValue()] = r
		values = append(values, r.MarketValue())
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	selected := make([]*valuation.Recipe, 0, n)
	for _, v := range values {
		if len(selected) >= n {
			break
		}
		selected = append(selected, best[v])
	}
	return selected
}

// TopMargin skips diversification and keeps the n best margins
type TopMargin struct{}

func (TopMargin) Select(pool []*valuation.Recipe, n int) []*valuation.Recipe {
	if len(pool) > n {
		pool = pool[:n]
	}
	return append([]*valuation.Recipe(nil), pool...)
}
