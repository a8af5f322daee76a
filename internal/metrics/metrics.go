package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stocktrend",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stocktrend",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stocktrend",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	seriesLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stocktrend",
			Subsystem: "series",
			Name:      "lookups_total",
			Help:      "Price series lookups by source (cache, store) and outcome.",
		},
		[]string{"source", "outcome"},
	)

	seriesRows = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stocktrend",
			Subsystem: "series",
			Name:      "rows",
			Help:      "Number of rows returned per request, by timeframe.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 to 16384
		},
		[]string{"timeframe"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		seriesLookups,
		seriesRows,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks one request as in flight; the returned func records
// its completion.
func RequestStarted() func(method, path, status string, seconds float64) {
	httpInFlight.Inc()
	return func(method, path, status string, seconds float64) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, path, status).Inc()
		httpDuration.WithLabelValues(method, path).Observe(seconds)
	}
}

// RecordLookup counts a series lookup. source is "cache" or "store";
// outcome is "hit", "miss" or "error".
func RecordLookup(source, outcome string) {
	seriesLookups.WithLabelValues(source, outcome).Inc()
}

// RecordSeriesRows observes the size of an annotated series.
func RecordSeriesRows(timeframe string, n int) {
	seriesRows.WithLabelValues(timeframe).Observe(float64(n))
}
