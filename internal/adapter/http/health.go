package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/pkg/cache"
	"go.uber.org/zap"
)

// Pinger expõe a verificação de conectividade de uma dependência.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expõe os endpoints de saúde da aplicação. O banco de dados é
// crítico para readiness; o cache não é.
type HealthHandler struct {
	db     Pinger
	cache  cache.Cache
	logger *zap.Logger
}

// NewHealthHandler cria o handler de saúde.
func NewHealthHandler(db Pinger, cacheStore cache.Cache, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheStore, logger: logger}
}

// Liveness trata GET /health. Responde 200 enquanto o processo atende.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness trata GET /health/ready. Falha de banco derruba a prontidão;
// falha de cache apenas degrada.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("banco de dados indisponível", zap.Error(err))
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.Warn("cache indisponível", zap.Error(err))
			checks["cache"] = "down"
		} else {
			checks["cache"] = "up"
		}
	}

	resultado := "ok"
	if status != http.StatusOK {
		resultado = "degraded"
	}
	c.JSON(status, gin.H{"status": resultado, "checks": checks})
}
