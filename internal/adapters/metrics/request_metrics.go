package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kibahcorps/schedule1-go/internal/application/mediator"
)

// RequestMetricsCollector tracks mediator queries and commands by request type
type RequestMetricsCollector struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
	inFlight *prometheus.GaugeVec
}

// NewRequestMetricsCollector builds the request collectors; call Register to expose them
func NewRequestMetricsCollector() *RequestMetricsCollector {
	labels := []string{"request", "status"}
	return &RequestMetricsCollector{
		// Top-N searches over deep mixer chains are the slow tail
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a mediator request",
			Buckets:   []float64{0.0005, 0.005, 0.025, 0.1, 0.5, 2, 10, 60},
		}, labels),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Mediator requests handled, by request type and status",
		}, labels),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_in_flight",
			Help:      "Mediator requests currently being handled",
		}, []string{"request"}),
	}
}

// Register exposes the collectors on the global registry
func (c *RequestMetricsCollector) Register() error {
	return register(c.duration, c.total, c.inFlight)
}

// Observe records one finished request
func (c *RequestMetricsCollector) Observe(request string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.duration.WithLabelValues(request, status).Observe(elapsed.Seconds())
	c.total.WithLabelValues(request, status).Inc()
}

// Middleware records every request dispatched through the mediator.
// A nil collector passes requests straight through.
func (c *RequestMetricsCollector) Middleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if c == nil {
			return next(ctx, request)
		}

		name := RequestName(request)
		gauge := c.inFlight.WithLabelValues(name)
		gauge.Inc()
		defer gauge.Dec()

		started := time.Now()
		response, err := next(ctx, request)
		c.Observe(name, time.Since(started), err)
		return response, err
	}
}

// RequestName is the request's type name without pointer or package:
// "*queries.TopRecipesQuery" becomes "TopRecipesQuery"
func RequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	name := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
