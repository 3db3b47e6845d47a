package search

import "time"

const (
	// MaxMixers is the longest mixer sequence the search will build
	MaxMixers = 8

	// DefaultBeamFactor sets the beam width as a multiple of the requested result count
	DefaultBeamFactor = 5
)

// Options tunes a Searcher. The zero value searches sequentially with the default
// beam and market value diversity.
type Options struct {
	// Workers evaluates candidates of one depth in parallel when above 1
	Workers int

	// ProductWorkers searches several products at once in TopRecipesAllProducts when above 1
	ProductWorkers int

	// BeamFactor overrides DefaultBeamFactor when positive
	BeamFactor int

	// Diversity picks the final representatives; nil means MarketValueBuckets
	Diversity DiversityStrategy

	// Observer receives statistics after each completed product search
	Observer Observer
}

// Stats describes one completed TopRecipes call
type Stats struct {
	Product   string
	Evaluated int
	Unique    int
	Depth     int
	Returned  int
	Duration  time.Duration
}

// Observer is notified of completed searches
type Observer interface {
	SearchCompleted(stats Stats)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(stats Stats)

func (f ObserverFunc) SearchCompleted(stats Stats) { f(stats) }

func (o Options) beamFactor() int {
	if o.BeamFactor > 0 {
		return o.BeamFactor
	}
	return DefaultBeamFactor
}

func (o Options) diversity() DiversityStrategy {
	if o.Diversity != nil {
		return o.Diversity
	}
	return MarketValueBuckets{}
}
