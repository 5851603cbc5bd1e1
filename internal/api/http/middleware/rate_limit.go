package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter applies a token-bucket limit per client IP. It guards the
// credential endpoints (register/login) against brute forcing.
type RateLimiter struct {
	limiters sync.Map // ip -> *rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	limiter, ok := rl.limiters.Load(key)
	if !ok {
		limiter, _ = rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	}
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
