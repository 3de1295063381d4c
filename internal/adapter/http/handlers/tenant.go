package handlers

import (
	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// requireTenant aborts with 401 when the route was mounted without RequireAuth.
func requireTenant(c *gin.Context) (entities.Tenant, bool) {
	t, ok := middleware.CurrentTenant(c)
	if !ok {
		abortWithError(c, errUnauthorized)
	}
	return t, ok
}
