package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headerRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
)

// RequestID reuses an incoming X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, rid)
		c.Header(headerRequestID, rid)
		c.Next()
	}
}

// Logging writes one access log line per request.
func Logging(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if rid := c.GetString(ctxKeyRequestID); rid != "" {
			fields = append(fields, "request_id", rid)
		}
		if tenantID := c.GetString(ctxKeyTenantID); tenantID != "" {
			fields = append(fields, "tenant_id", tenantID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("[http] request failed", fields...)
		case status >= 400:
			log.Warnw("[http] request rejected", fields...)
		default:
			log.Infow("[http] request", fields...)
		}
	}
}
