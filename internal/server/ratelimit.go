package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per caller key. Keys come from
// clientKey: authenticated callers are tracked by bearer token, so
// members behind a shared club NAT do not drain each other's budget;
// anonymous catalog readers fall back to client IP.
type RateLimiter struct {
	callers map[string]*callerBucket
	mu      sync.Mutex
	rate    rate.Limit
	burst   int
	ttl     time.Duration
}

type callerBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*callerBucket),
		rate:    rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go rl.evictIdle()

	return rl
}

// evictIdle drops buckets whose caller has been quiet longer than ttl,
// bounding the map against churning tokens and addresses.
func (rl *RateLimiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for key, b := range rl.callers {
			if time.Since(b.lastSeen) > rl.ttl {
				delete(rl.callers, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) bucket(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.callers[key]
	if !ok {
		b = &callerBucket{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.callers[key] = b
	}
	b.lastSeen = time.Now()
	return b.limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.bucket(key).Allow()
}

// clientKey identifies the caller for rate limiting. The raw bearer
// token is used unvalidated: a forged token only ever throttles its
// forger, and auth rejects it further down the chain.
func clientKey(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(token) != "" {
		return "token:" + strings.TrimSpace(token)
	}
	return "ip:" + c.ClientIP()
}

func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := NewRateLimiter(rps, burst, 3*time.Minute)

	return func(c *gin.Context) {
		if !limiter.Allow(clientKey(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
