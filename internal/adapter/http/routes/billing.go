package routes

import (
	"cleanlyquote/internal/adapter/http/handlers"
	"cleanlyquote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathSubscription = "/subscription"
	PathWebhook      = "/webhook"
	PathAdmin        = "/admin"
)

func addSubscriptionRoutes(rg *gin.RouterGroup, subscriptions *handlers.SubscriptionHandler) {
	s := rg.Group(PathSubscription)
	{
		s.GET("/status", subscriptions.GetStatus)
		s.POST("/create-checkout", subscriptions.CreateCheckout)
		s.POST("/billing-portal", subscriptions.BillingPortal)
	}
}

// The signature covers the unparsed bytes, so the raw body is captured before
// anything else reads it.
func addWebhookRoutes(rg *gin.RouterGroup, webhook *handlers.WebhookHandler) {
	rg.POST(PathWebhook, middleware.CaptureRawBody(middleware.DefaultRawBodyLimit), webhook.HandleBillingEvent)
}

func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler) {
	rg.PATCH("/tenants/:id/subscription", admin.SetSubscriptionStatus)
}
