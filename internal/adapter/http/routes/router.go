package routes

import (
	"cleanlyquote/internal/adapter/http/handlers"
	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the handlers and policies the router mounts.
type Dependencies struct {
	Auth usecase.IAuthUseCase

	Quotes        *handlers.QuoteHandler
	Schedule      *handlers.ScheduleHandler
	Share         *handlers.ShareLinkHandler
	Checklists    *handlers.ChecklistHandler
	Templates     *handlers.ChecklistTemplateHandler
	Clients       *handlers.ClientHandler
	Team          *handlers.TeamHandler
	Accounts      *handlers.AuthHandler
	Subscriptions *handlers.SubscriptionHandler
	Webhook       *handlers.WebhookHandler
	Admin         *handlers.AdminHandler

	PublicLimiter *middleware.IPRateLimiter
	Sentry        bool
	Log           *zap.SugaredLogger
}

func NewRouter(d Dependencies) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(d.Log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		d.Log.Errorw("[http][router] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		appErr := pkg.NewDomainErrorSimple(pkg.KindInternal, "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(middleware.Sentry(d.Sentry))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addHealthRoutes(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Unauthenticated routes
	addAuthRoutes(v1, d.Accounts)
	addPublicQuoteRoutes(v1, d.Share, d.PublicLimiter)
	addWebhookRoutes(v1, d.Webhook)

	authed := v1.Group("", middleware.RequireAuth(d.Auth), middleware.SentryTenantTag)
	addAccountRoutes(authed, d.Accounts)
	addQuoteRoutes(authed, d.Quotes, d.Share, d.Checklists)
	addScheduleRoutes(authed, d.Schedule)
	addClientRoutes(authed, d.Clients)
	addTeamRoutes(authed, d.Team)
	addChecklistTemplateRoutes(authed, d.Templates)
	addSubscriptionRoutes(authed, d.Subscriptions)
	addAdminRoutes(authed.Group(PathAdmin, middleware.RequireRole(entities.TenantRoleAdmin)), d.Admin)

	return router
}
