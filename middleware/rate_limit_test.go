package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 3, 100)
	now := time.Now()

	assert.True(t, limiter.Allow("k", now))
	assert.True(t, limiter.Allow("k", now.Add(time.Second)))
	assert.True(t, limiter.Allow("k", now.Add(2*time.Second)))
	assert.False(t, limiter.Allow("k", now.Add(3*time.Second)))

	// another key has its own budget
	assert.True(t, limiter.Allow("other", now.Add(3*time.Second)))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 2, 100)
	now := time.Now()

	assert.True(t, limiter.Allow("k", now))
	assert.True(t, limiter.Allow("k", now.Add(time.Second)))
	assert.False(t, limiter.Allow("k", now.Add(2*time.Second)))

	// first request falls out of the window, freeing one slot
	assert.True(t, limiter.Allow("k", now.Add(61*time.Second)))
	assert.False(t, limiter.Allow("k", now.Add(62*time.Second)))
}

func TestRateLimiterCleanupDropsIdleKeys(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 5, 100)
	now := time.Now()

	limiter.Allow("idle", now)
	limiter.Allow("busy", now)
	assert.Equal(t, 2, limiter.Keys())

	// past the window and the cleanup interval, idle keys vanish
	limiter.Allow("busy", now.Add(2*time.Minute))
	assert.Equal(t, 1, limiter.Keys())
}

func TestRateLimiterKeyCap(t *testing.T) {
	limiter := NewRateLimiter(10*time.Minute, 5, 3)
	now := time.Now()

	for i := 0; i < 6; i++ {
		limiter.Allow(fmt.Sprintf("key-%d", i), now.Add(time.Duration(i)*time.Second))
	}

	// trigger a cleanup pass with a fresh key; the stalest keys go first
	limiter.Allow("fresh", now.Add(cleanupInterval+time.Second))
	assert.LessOrEqual(t, limiter.Keys(), 4)
	assert.True(t, limiter.Allow("key-5", now.Add(cleanupInterval+2*time.Second)))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(time.Minute, 2, 100)
	router := gin.New()
	router.Use(RateLimitMiddleware(limiter))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	do := func(cookie string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("session-a"))
	assert.Equal(t, http.StatusOK, do("session-a"))
	assert.Equal(t, http.StatusTooManyRequests, do("session-a"))

	// a different session token is a different bucket
	assert.Equal(t, http.StatusOK, do("session-b"))
}
