package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/pkg/errors"
	"go.uber.org/zap"
)

// RecoveryMiddleware implementa recuperação de pânicos
type RecoveryMiddleware struct {
	logger *zap.Logger
}

// NewRecoveryMiddleware cria um novo middleware de recuperação
func NewRecoveryMiddleware(logger *zap.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logger: logger,
	}
}

// Recovery recupera de pânicos com logs detalhados e devolve o payload
// uniforme de erro.
func (m *RecoveryMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				m.logger.Error("recuperado de pânico",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.ByteString("stack", stack),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, errors.StandardError{
					Timestamp: time.Now().UnixMilli(),
					Status:    http.StatusInternalServerError,
					Error:     "Erro interno",
					Message:   "Erro interno do servidor",
					Path:      c.Request.URL.Path,
				})
			}
		}()

		c.Next()
	}
}
