// Package metrics provides Prometheus metrics collection for the translation proxy.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// UpstreamRequestDuration tracks round-trip duration per upstream operation.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// UpstreamRequestTotal tracks upstream calls per operation and status code.
	// A status of 0 means the request never completed (transport error).
	UpstreamRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of upstream API requests",
		},
		[]string{"operation", "status_code"},
	)

	// AggregationsTotal tracks translation aggregations by outcome.
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_aggregations_total",
			Help: "Total number of translation aggregation runs",
		},
		[]string{"outcome"},
	)

	// AggregationKeys tracks how many keys each aggregation run processed.
	AggregationKeys = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_aggregation_keys",
			Help:    "Number of translation keys processed per aggregation",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 2500, 5000},
		},
	)

	// AuditEntriesDropped counts audit entries dropped because the buffer was full.
	AuditEntriesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_entries_dropped_total",
			Help: "Total number of audit entries dropped",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordUpstreamRequest records one upstream API round trip.
func RecordUpstreamRequest(operation string, statusCode int, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	UpstreamRequestTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
}

// RecordAggregation records one translation aggregation run.
func RecordAggregation(outcome string, keys int) {
	AggregationsTotal.WithLabelValues(outcome).Inc()
	AggregationKeys.Observe(float64(keys))
}
