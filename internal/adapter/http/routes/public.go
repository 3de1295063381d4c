package routes

import (
	"cleanlyquote/internal/adapter/http/handlers"
	"cleanlyquote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathPublicQuotes = "/public/quotes"
)

func addAuthRoutes(rg *gin.RouterGroup, accounts *handlers.AuthHandler) {
	a := rg.Group(PathAuth)
	{
		a.POST("/signup", accounts.Signup)
		a.POST("/login", accounts.Login)
	}
}

func addAccountRoutes(rg *gin.RouterGroup, accounts *handlers.AuthHandler) {
	rg.GET(PathAuth+"/me", accounts.Me)
}

// Share tokens are the only credential here, so every route is rate limited per client IP.
func addPublicQuoteRoutes(rg *gin.RouterGroup, share *handlers.ShareLinkHandler, limiter *middleware.IPRateLimiter) {
	p := rg.Group(PathPublicQuotes)
	if limiter != nil {
		p.Use(limiter.Middleware())
	}
	{
		p.GET("/:token", share.ViewPublicQuote)
		p.POST("/:token/approve", share.ApproveQuote)
		p.POST("/:token/request-changes", share.RequestChanges)
	}
}
