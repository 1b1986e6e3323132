package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"chatbot-nlp-service/pkg/response"
)

// RateLimit throttles requests per client IP with a token bucket refilled at
// the configured per-minute rate. A non-positive rate disables the limiter.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.cfg.RateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limit := rate.Limit(float64(m.cfg.RateLimitPerMin) / 60.0)
	burst := m.cfg.RateLimitPerMin

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(limit, burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
