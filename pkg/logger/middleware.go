package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// RequestIDHeader carries the correlation id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// GinMiddleware returns a gin middleware that assigns a request id, puts a
// request scoped logger into the request context and logs the outcome.
func GinMiddleware(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := WithRequestID(c.Request.Context(), requestID)
		reqLogger := logger.WithContext(ctx)
		c.Request = c.Request.WithContext(WithContext(ctx, reqLogger))

		c.Next()

		fields := []interfaces.Field{
			interfaces.String("method", c.Request.Method),
			interfaces.String("path", c.FullPath()),
			interfaces.Int("status", c.Writer.Status()),
			interfaces.Duration("duration", time.Since(start)),
		}

		switch {
		case len(c.Errors) > 0:
			fields = append(fields, interfaces.String("errors", c.Errors.String()))
			reqLogger.Error("HTTP request failed", fields...)
		case c.Writer.Status() >= 500:
			reqLogger.Error("HTTP request failed", fields...)
		default:
			reqLogger.Info("HTTP request completed", fields...)
		}
	}
}
