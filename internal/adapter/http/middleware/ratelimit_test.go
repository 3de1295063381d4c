package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own bucket")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refilled")
}

func TestIPRateLimiter_ForgetsIdleClients(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Minute)
	l.Allow("10.0.0.2")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewIPRateLimiter(0.001, 1)

	r := gin.New()
	r.GET("/public", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}
