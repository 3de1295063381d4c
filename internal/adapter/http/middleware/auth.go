package middleware

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/pkg"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const (
	ctxKeyTenant   = "tenant"
	ctxKeyTenantID = "tenant_id"
)

var (
	errMissingCredential = pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Authentication required", http.StatusUnauthorized)
	errBadCredential     = pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
	errRoleRequired      = pkg.NewDomainErrorSimple(pkg.KindForbidden, "Admin access required", http.StatusForbidden)
	errAuthUnavailable   = pkg.NewDomainErrorSimple(pkg.KindInternal, "Failed to authenticate request", http.StatusInternalServerError)
)

// RequireAuth resolves the bearer token to a tenant and stores it in the
// gin context. The tenant is reloaded on every request so entitlement changes
// take effect immediately.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingCredential.HTTPStatus, errMissingCredential.ToHTTPError())
			return
		}

		tenant, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			c.AbortWithStatusJSON(errBadCredential.HTTPStatus, errBadCredential.ToHTTPError())
			return
		case err != nil:
			// The token may be fine; the tenant store is not.
			_ = c.Error(err)
			c.AbortWithStatusJSON(errAuthUnavailable.HTTPStatus, errAuthUnavailable.ToHTTPError())
			return
		}

		SetTenant(c, tenant)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role entities.TenantRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := CurrentTenant(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingCredential.HTTPStatus, errMissingCredential.ToHTTPError())
			return
		}
		if tenant.Role != role {
			c.AbortWithStatusJSON(errRoleRequired.HTTPStatus, errRoleRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetTenant(c *gin.Context, t entities.Tenant) {
	c.Set(ctxKeyTenant, t)
	c.Set(ctxKeyTenantID, t.ID)
}

// CurrentTenant returns the tenant stored by RequireAuth.
func CurrentTenant(c *gin.Context) (entities.Tenant, bool) {
	v, ok := c.Get(ctxKeyTenant)
	if !ok {
		return entities.Tenant{}, false
	}
	t, ok := v.(entities.Tenant)
	return t, ok && t.ID != ""
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
