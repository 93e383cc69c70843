package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a process-local sliding-window limiter keyed by a derived
// session token. It tracks request timestamps per key, prunes them on a
// periodic cleanup pass, and caps the number of tracked keys by evicting
// the stalest ones. Counts are per server process, not shared across
// horizontally scaled instances.
type RateLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	maxKeys     int

	entries     map[string][]time.Time
	lastCleanup time.Time
}

const cleanupInterval = time.Minute

// NewRateLimiter creates a limiter allowing maxRequests per window for
// each key, tracking at most maxKeys keys.
func NewRateLimiter(window time.Duration, maxRequests, maxKeys int) *RateLimiter {
	return &RateLimiter{
		window:      window,
		maxRequests: maxRequests,
		maxKeys:     maxKeys,
		entries:     make(map[string][]time.Time),
		lastCleanup: time.Now(),
	}
}

// Allow records a request for key at instant now and reports whether it is
// within the limit.
func (l *RateLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) >= cleanupInterval {
		l.cleanup(now)
	}

	cutoff := now.Add(-l.window)
	timestamps := l.entries[key]
	kept := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.maxRequests {
		l.entries[key] = kept
		return false
	}

	l.entries[key] = append(kept, now)
	return true
}

// cleanup drops expired timestamps, empty keys, and, above the key cap,
// the keys with the oldest recent activity. Caller holds the lock.
func (l *RateLimiter) cleanup(now time.Time) {
	l.lastCleanup = now
	cutoff := now.Add(-l.window)

	for key, timestamps := range l.entries {
		kept := timestamps[:0]
		for _, t := range timestamps {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(l.entries, key)
		} else {
			l.entries[key] = kept
		}
	}

	if len(l.entries) <= l.maxKeys {
		return
	}

	type keyAge struct {
		key    string
		newest time.Time
	}
	ages := make([]keyAge, 0, len(l.entries))
	for key, timestamps := range l.entries {
		ages = append(ages, keyAge{key, timestamps[len(timestamps)-1]})
	}
	sort.Slice(ages, func(i, j int) bool {
		return ages[i].newest.Before(ages[j].newest)
	})
	for _, a := range ages[:len(ages)-l.maxKeys] {
		delete(l.entries, a.key)
	}
}

// Keys returns the number of tracked keys.
func (l *RateLimiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimitMiddleware limits each session to maxRequests per window. The
// key is a digest of the session token when present, the client IP
// otherwise.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if !limiter.Allow(key, time.Now()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "Too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionKey(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		sum := sha256.Sum256([]byte(cookie))
		return hex.EncodeToString(sum[:8])
	}
	return c.ClientIP()
}
