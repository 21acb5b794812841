package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit bounds per-client request rates on the chat routes. The
// limiter key is the client IP; one rate.Limiter per key, cached with
// TTL so idle clients age out.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	perSecond := rate.Limit(float64(m.cfg.RequestPerMin) / 60.0)
	burst := m.cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
