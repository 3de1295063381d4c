package middleware

import (
	"net/http"
	"testing"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireFeature(t *testing.T) {
	cases := []struct {
		name   string
		status string
		want   int
	}{
		{"free tenant", entities.SubscriptionStatusFree, http.StatusForbidden},
		{"past due tenant", entities.SubscriptionStatusPastDue, http.StatusForbidden},
		{"active tenant", entities.SubscriptionStatusActive, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockIAuthUseCase(ctrl)
			auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Tenant{ID: "t-1", SubscriptionStatus: tc.status}, nil)

			w := get(protectedRouter(auth, RequireFeature(entitlement.FeatureTeam)), "Bearer tok")
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.JSONEq(t, `{"code":"UPGRADE_REQUIRED","error":"Team management is a Pro feature","details":{"feature":"team"}}`, w.Body.String())
			}
		})
	}

	t.Run("no tenant in context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/protected", RequireFeature(entitlement.FeatureTeam), func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})
}
