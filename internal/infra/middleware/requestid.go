package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o cabeçalho usado para propagar o identificador da
// requisição.
const RequestIDHeader = "X-Request-Id"

// RequestID garante que toda requisição carregue um identificador único,
// gerando um quando o cliente não envia.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
