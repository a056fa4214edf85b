package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracingMiddleware cria um span por requisição
type TracingMiddleware struct {
	tracer trace.Tracer
	logger *zap.Logger
}

// NewTracingMiddleware cria um novo middleware de tracing
func NewTracingMiddleware(logger *zap.Logger, serviceName string) *TracingMiddleware {
	return &TracingMiddleware{
		tracer: otel.GetTracerProvider().Tracer(serviceName),
		logger: logger,
	}
}

// Middleware inicia um span para a requisição e registra método, rota e
// status de resposta.
func (m *TracingMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		spanName := c.Request.Method + " " + c.FullPath()
		ctx, span := m.tracer.Start(c.Request.Context(), spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.String("http.target", c.Request.URL.Path),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}
