package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kibahcorps/schedule1-go/internal/domain/search"
)

// SearchMetricsCollector records recipe search and result cache metrics.
// It satisfies search.Observer and the recipe finder's cache recorder.
type SearchMetricsCollector struct {
	searchesTotal    *prometheus.CounterVec
	searchDuration   *prometheus.HistogramVec
	candidatesTotal  *prometheus.CounterVec
	recipesReturned  *prometheus.HistogramVec
	cacheLookupTotal *prometheus.CounterVec
}

// NewSearchMetricsCollector creates a new search metrics collector
func NewSearchMetricsCollector() *SearchMetricsCollector {
	return &SearchMetricsCollector{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "searches_total",
				Help:      "Completed recipe searches by product",
			},
			[]string{"product"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "search_duration_seconds",
				Help:      "Recipe search duration distribution",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"product"},
		),
		candidatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "search_candidates_evaluated_total",
				Help:      "Mixer sequences priced by the search",
			},
			[]string{"product"},
		),
		recipesReturned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "search_recipes_returned",
				Help:      "Recipes returned per search",
				Buckets:   prometheus.LinearBuckets(0, 5, 6),
			},
			[]string{"product"},
		),
		cacheLookupTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "search_cache_lookups_total",
				Help:      "Search result cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all search metrics with the Prometheus registry
func (c *SearchMetricsCollector) Register() error {
	return register(c.searchesTotal, c.searchDuration, c.candidatesTotal, c.recipesReturned, c.cacheLookupTotal)
}

// SearchCompleted implements search.Observer
func (c *SearchMetricsCollector) SearchCompleted(stats search.Stats) {
	c.searchesTotal.WithLabelValues(stats.Product).Inc()
	c.searchDuration.WithLabelValues(stats.Product).Observe(stats.Duration.Seconds())
	c.candidatesTotal.WithLabelValues(stats.Product).Add(float64(stats.Evaluated))
	c.recipesReturned.WithLabelValues(stats.Product).Observe(float64(stats.Returned))
}

// RecordCacheLookup counts a cache hit or miss
func (c *SearchMetricsCollector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookupTotal.WithLabelValues(result).Inc()
}
