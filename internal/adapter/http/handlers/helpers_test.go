package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var freeTenant = entities.Tenant{ID: "t-1", Email: "owner@sparkle.test", Role: entities.TenantRoleOwner, SubscriptionStatus: entities.SubscriptionStatusFree}

// authedRouter simulates RequireAuth having resolved the tenant.
func authedRouter(t entities.Tenant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetTenant(c, t)
		c.Next()
	})
	return r
}

func publicRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}
