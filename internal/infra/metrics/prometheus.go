package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics gerencia métricas relacionadas à API
type APIMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  *prometheus.GaugeVec
	errorsTotal     *prometheus.CounterVec
	rateLimited     *prometheus.CounterVec
	cacheHitRatio   *prometheus.GaugeVec
}

// NewAPIMetrics cria e registra métricas do prometheus
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		requestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helpdesk_requests_total",
				Help: "Total number of HTTP requests by path, method, and status code",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "helpdesk_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		activeRequests: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "helpdesk_active_requests",
				Help: "Number of in-flight requests being processed",
			},
			[]string{"path", "method"},
		),

		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helpdesk_errors_total",
				Help: "Total number of errors by type",
			},
			[]string{"path", "method", "error_type"},
		),

		rateLimited: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helpdesk_rate_limited_requests_total",
				Help: "Total number of rate limited requests",
			},
			[]string{"path", "method"},
		),

		cacheHitRatio: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "helpdesk_cache_hit_ratio",
				Help: "Cache hit ratio (0.0 to 1.0)",
			},
			[]string{"cache_type"},
		),
	}
}

// RequestStarted registra o início de uma requisição
func (m *APIMetrics) RequestStarted(path, method string) {
	m.activeRequests.WithLabelValues(path, method).Inc()
}

// RequestCompleted registra a conclusão de uma requisição
func (m *APIMetrics) RequestCompleted(path, method, status string, duration time.Duration) {
	m.requestCounter.WithLabelValues(path, method, status).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
	m.activeRequests.WithLabelValues(path, method).Dec()
}

// RequestError registra um erro de requisição
func (m *APIMetrics) RequestError(path, method, errorType string) {
	m.errorsTotal.WithLabelValues(path, method, errorType).Inc()
}

// RateLimitExceeded registra quando um limite de taxa é excedido
func (m *APIMetrics) RateLimitExceeded(path, method string) {
	m.rateLimited.WithLabelValues(path, method).Inc()
}

// UpdateCacheHitRatio atualiza a taxa de acertos do cache
func (m *APIMetrics) UpdateCacheHitRatio(cacheType string, hitRatio float64) {
	m.cacheHitRatio.WithLabelValues(cacheType).Set(hitRatio)
}
