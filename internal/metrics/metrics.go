// Package metrics provides Prometheus metrics collection for the order
// engine.
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

	// PlanComputationsTotal tracks procurement plan computations.
	PlanComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_computations_total",
			Help: "Total number of procurement plan computations",
		},
		[]string{"status"},
	)

	// PlanComputationDuration tracks plan computation duration.
	PlanComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plan_computation_duration_seconds",
			Help:    "Procurement plan computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ReconciliationsTotal tracks booking amendment reconciliations.
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_reconciliations_total",
			Help: "Total number of booking change reconciliations",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks plan cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current plan cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
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

// RecordPlanComputation records a plan computation outcome.
func RecordPlanComputation(duration time.Duration, status string) {
	PlanComputationDuration.Observe(duration.Seconds())
	PlanComputationsTotal.WithLabelValues(status).Inc()
}

// RecordReconciliation records a booking reconciliation outcome.
func RecordReconciliation(status string) {
	ReconciliationsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}
