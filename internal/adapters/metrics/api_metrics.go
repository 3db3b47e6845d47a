package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetricsCollector handles HTTP API request metrics
type APIMetricsCollector struct {
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiRateLimited     *prometheus.CounterVec
}

// NewAPIMetricsCollector creates a new API metrics collector
func NewAPIMetricsCollector() *APIMetricsCollector {
	return &APIMetricsCollector{
		// Total API requests by method, route pattern, and status code
		apiRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route, and status code",
			},
			[]string{"method", "route", "status_code"},
		),

		apiRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration distribution",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
			},
			[]string{"method", "route"},
		),

		apiRateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "http_rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"method", "route"},
		),
	}
}

// Register registers all API metrics with the Prometheus registry
func (c *APIMetricsCollector) Register() error {
	return register(c.apiRequestsTotal, c.apiRequestDuration, c.apiRateLimited)
}

// RecordAPIRequest records an API request completion
func (c *APIMetricsCollector) RecordAPIRequest(
	method string,
	route string,
	statusCode int,
	duration float64,
) {
	c.apiRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.apiRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordRateLimited records a request rejected by the rate limiter
func (c *APIMetricsCollector) RecordRateLimited(method, route string) {
	c.apiRateLimited.WithLabelValues(method, route).Inc()
}
