package queries

import "github.com/kibahcorps/schedule1-go/internal/domain/search"

// SearchDefaults fill in search parameters a request leaves at zero
type SearchDefaults struct {
	TopN      int
	MaxMixers int
}

// DefaultSearchDefaults returns the stock defaults: five recipes of up to eight mixers
func DefaultSearchDefaults() SearchDefaults {
	return SearchDefaults{TopN: 5, MaxMixers: search.MaxMixers}
}

// apply resolves zero values. Negative values pass through so the searcher can
// apply its own rules (an empty result for topN < 1, clamping for max mixers).
func (d SearchDefaults) apply(topN, maxMixers int) (int, int) {
	if topN == 0 {
		topN = d.TopN
	}
	if maxMixers == 0 {
		maxMixers = d.MaxMixers
	}
	return topN, maxMixers
}
