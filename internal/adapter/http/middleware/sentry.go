package middleware

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// Sentry captures panics and errors when a DSN is configured; otherwise it is
// a pass-through.
func Sentry(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// SentryTenantTag tags the Sentry scope with the authenticated tenant. Mount
// it after RequireAuth.
func SentryTenantTag(c *gin.Context) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		if tenantID := c.GetString(ctxKeyTenantID); tenantID != "" {
			hub.Scope().SetTag("tenant_id", tenantID)
		}
	}
	c.Next()
}
