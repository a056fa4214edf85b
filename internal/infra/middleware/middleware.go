package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Middleware agrega os middlewares da aplicação, construídos explicitamente
// na inicialização.
type Middleware struct {
	logger              *zap.Logger
	authMiddleware      *AuthMiddleware
	recoveryMiddleware  *RecoveryMiddleware
	securityMiddleware  *SecurityMiddleware
	metricsMiddleware   *MetricsMiddleware
	tracingMiddleware   *TracingMiddleware
	rateLimitMiddleware *RateLimitMiddleware
}

// NewMiddleware cria o conjunto de middlewares. tracing e rateLimit são
// opcionais (nil desabilita).
func NewMiddleware(
	logger *zap.Logger,
	authMiddleware *AuthMiddleware,
	metricsMiddleware *MetricsMiddleware,
	tracingMiddleware *TracingMiddleware,
	rateLimitMiddleware *RateLimitMiddleware,
) *Middleware {
	return &Middleware{
		logger:              logger,
		authMiddleware:      authMiddleware,
		recoveryMiddleware:  NewRecoveryMiddleware(logger),
		securityMiddleware:  NewSecurityMiddleware(logger),
		metricsMiddleware:   metricsMiddleware,
		tracingMiddleware:   tracingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// Authenticate middleware para autenticação
func (m *Middleware) Authenticate(c *gin.Context) {
	m.authMiddleware.Authenticate(c)
}

// AuthenticateAdmin middleware para rotas administrativas
func (m *Middleware) AuthenticateAdmin(c *gin.Context) {
	m.authMiddleware.AuthenticateAdmin(c)
}

// Recovery middleware para recuperação de pânicos
func (m *Middleware) Recovery() gin.HandlerFunc {
	return m.recoveryMiddleware.Recovery()
}

// SecurityHeaders middleware para cabeçalhos de segurança
func (m *Middleware) SecurityHeaders() gin.HandlerFunc {
	return m.securityMiddleware.Headers()
}

// CORS middleware para configurar CORS
func (m *Middleware) CORS() gin.HandlerFunc {
	return m.securityMiddleware.CORS()
}

// Metrics retorna o middleware de métricas
func (m *Middleware) Metrics() gin.HandlerFunc {
	if m.metricsMiddleware != nil {
		return m.metricsMiddleware.Middleware()
	}
	return func(c *gin.Context) { c.Next() }
}

// Tracing retorna o middleware de tracing
func (m *Middleware) Tracing() gin.HandlerFunc {
	if m.tracingMiddleware != nil {
		return m.tracingMiddleware.Middleware()
	}
	return func(c *gin.Context) { c.Next() }
}

// RateLimit retorna o middleware de limitação de taxa
func (m *Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitMiddleware != nil {
		return m.rateLimitMiddleware.Middleware()
	}
	return func(c *gin.Context) { c.Next() }
}

// Logger middleware para logging de requisições
func (m *Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		m.logger.Info("request completed",
			zap.String("path", path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
