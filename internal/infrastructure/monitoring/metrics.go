// Package monitoring provides Prometheus metrics for the service
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics handles Prometheus metrics collection
type Metrics struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	recipesGeneratedTotal prometheus.Counter
	aiRequestsTotal       *prometheus.CounterVec
	aiRequestDuration     *prometheus.HistogramVec

	// Session metrics
	sessionsActive prometheus.Gauge
}

// NewMetrics creates a new metrics collector
func NewMetrics(logger *zap.Logger) *Metrics {
	return &Metrics{
		logger: logger.Named("metrics"),

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		recipesGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_generated_total",
				Help: "Total number of successfully generated recipes",
			},
		),
		aiRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_requests_total",
				Help: "Total number of text-generation service calls",
			},
			[]string{"status"},
		),
		aiRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_seconds",
				Help:    "Text-generation service call duration in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
			},
			[]string{"status"},
		),
		sessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "sessions_active",
				Help: "Number of live sessions",
			},
		),
	}
}

// RecordHTTPRequest records one served HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAIRequest records one collaborator call
func (m *Metrics) RecordAIRequest(status string, duration time.Duration) {
	m.aiRequestsTotal.WithLabelValues(status).Inc()
	m.aiRequestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordRecipeGenerated records one successful generation
func (m *Metrics) RecordRecipeGenerated() {
	m.recipesGeneratedTotal.Inc()
}

// SetActiveSessions updates the live session gauge
func (m *Metrics) SetActiveSessions(count int) {
	m.sessionsActive.Set(float64(count))
}

// Handler returns the Prometheus scrape handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
