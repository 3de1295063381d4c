package middleware

import (
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireFeature refuses tenants whose plan does not include feature with
// 403 UPGRADE_REQUIRED. It must run after RequireAuth.
func RequireFeature(feature entitlement.Feature) gin.HandlerFunc {
	locked := pkg.NewDomainErrorSimple(pkg.KindUpgradeRequired, feature.Name()+" is a Pro feature", http.StatusForbidden).
		WithDetails(map[string]any{"feature": string(feature)})
	return func(c *gin.Context) {
		tenant, ok := CurrentTenant(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingCredential.HTTPStatus, errMissingCredential.ToHTTPError())
			return
		}
		if !entitlement.Allows(tenant.SubscriptionStatus, feature) {
			c.AbortWithStatusJSON(locked.HTTPStatus, locked.ToHTTPError())
			return
		}
		c.Next()
	}
}
