package main

import (
	_ "cleanlyquote/docs"
	"cleanlyquote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CleanlyQuote API
// @version         1.0
// @description     Multi-tenant quoting and scheduling for cleaning businesses: quotes, share links, schedule and subscriptions.
// @termsOfService  https://getcleanlyquote.com/terms

// @contact.name   CleanlyQuote Support
// @contact.url    https://getcleanlyquote.com
// @contact.email  support@getcleanlyquote.com

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
