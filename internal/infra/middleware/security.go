package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SecurityMiddleware implementa proteções de segurança
type SecurityMiddleware struct {
	logger *zap.Logger
}

// NewSecurityMiddleware cria uma nova instância do middleware de segurança
func NewSecurityMiddleware(logger *zap.Logger) *SecurityMiddleware {
	return &SecurityMiddleware{
		logger: logger,
	}
}

// Headers adiciona cabeçalhos de segurança
func (m *SecurityMiddleware) Headers() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Proteção contra clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Proteção contra MIME-sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Política de segurança de conteúdo
		c.Header("Content-Security-Policy", "default-src 'self'")

		// Não expõe informações de versão do servidor
		c.Header("Server", "Helpdesk")

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// CORS configura Cross-Origin Resource Sharing. O cabeçalho Authorization é
// exposto para que o front-end consiga ler o token devolvido pelo login.
func (m *SecurityMiddleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
