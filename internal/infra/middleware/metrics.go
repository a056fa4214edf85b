package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/turmab/helpdesk/internal/infra/metrics"
	"go.uber.org/zap"
)

// MetricsMiddleware fornece middleware para coletar métricas
type MetricsMiddleware struct {
	metrics *metrics.APIMetrics
	logger  *zap.Logger
}

// NewMetricsMiddleware cria um novo middleware de métricas
func NewMetricsMiddleware(metrics *metrics.APIMetrics, logger *zap.Logger) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: metrics,
		logger:  logger,
	}
}

// Middleware registra contagem, duração e erros de cada requisição
func (m *MetricsMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		start := time.Now()

		m.metrics.RequestStarted(path, method)

		c.Next()

		status := c.Writer.Status()
		m.metrics.RequestCompleted(path, method, strconv.Itoa(status), time.Since(start))

		if status >= 500 {
			m.metrics.RequestError(path, method, "server_error")
		} else if status >= 400 {
			m.metrics.RequestError(path, method, "client_error")
		}
	}
}

// MetricsHandler gerencia o endpoint de métricas
type MetricsHandler struct {
	Metrics *metrics.APIMetrics
	Logger  *zap.Logger
}

// RegisterEndpoint registra o endpoint para expor métricas do Prometheus
func (h *MetricsHandler) RegisterEndpoint(router *gin.Engine, path string) {
	if path == "" {
		path = "/metrics"
	}
	router.GET(path, gin.WrapH(promhttp.Handler()))
	h.Logger.Info("endpoint de métricas Prometheus registrado", zap.String("path", path))
}
