package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/infra/metrics"
	"github.com/turmab/helpdesk/pkg/errors"
	"github.com/turmab/helpdesk/pkg/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware aplica limitação de taxa por IP de origem
type RateLimitMiddleware struct {
	limiter *ratelimit.RedisLimiter
	metrics *metrics.APIMetrics
	limit   int
	window  time.Duration
	logger  *zap.Logger
}

// NewRateLimitMiddleware cria um novo middleware de rate limit
func NewRateLimitMiddleware(limiter *ratelimit.RedisLimiter, apiMetrics *metrics.APIMetrics, requestsPerMinute int, logger *zap.Logger) *RateLimitMiddleware {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	return &RateLimitMiddleware{
		limiter: limiter,
		metrics: apiMetrics,
		limit:   requestsPerMinute,
		window:  time.Minute,
		logger:  logger,
	}
}

// Middleware rejeita com 429 as requisições acima do limite
func (m *RateLimitMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := m.limiter.Allow(c.Request.Context(), c.ClientIP(), m.limit, m.window)
		if err != nil {
			// Limitador indisponível: seguir sem bloquear
			c.Next()
			return
		}

		if !allowed {
			if m.metrics != nil {
				m.metrics.RateLimitExceeded(c.Request.URL.Path, c.Request.Method)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errors.StandardError{
				Timestamp: time.Now().UnixMilli(),
				Status:    http.StatusTooManyRequests,
				Error:     "Limite de requisições excedido",
				Message:   "Aguarde antes de tentar novamente",
				Path:      c.Request.URL.Path,
			})
			return
		}

		c.Next()
	}
}
