package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Fixed key so the test does not depend on ClientIP and does not share
	// counters with other tests.
	cfg := RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test:fixed-window:",
		KeyFunc:   func(*gin.Context) string { return "k" },
	}

	r := gin.New()
	r.GET("/ping", RateLimitMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, hit().Code)

	second := hit()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := hit()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestRateLimitWindowReset(t *testing.T) {
	cfg := RateLimitConfig{
		Limit:     1,
		Window:    10 * time.Millisecond,
		KeyPrefix: "rl:test:reset:",
		KeyFunc:   func(*gin.Context) string { return "k" },
	}

	now := time.Now()
	count, _ := incrementCounter("rl:test:reset:k", cfg, now)
	assert.Equal(t, 1, count)
	count, _ = incrementCounter("rl:test:reset:k", cfg, now)
	assert.Equal(t, 2, count)

	// A request after the window starts a fresh count.
	count, _ = incrementCounter("rl:test:reset:k", cfg, now.Add(20*time.Millisecond))
	assert.Equal(t, 1, count)
}
