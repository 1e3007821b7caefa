package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"interview-scheduler/pkg/response"
)

// RateLimit throttles requests per client IP using a token bucket. Limiters
// live in a bounded LRU cache, so long-idle clients are evicted and start
// over with a full bucket.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	rps := rate.Limit(float64(mw.cfg.RequestsPerMinute) / 60.0)

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := mw.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rps, mw.cfg.Burst)
			mw.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s from %s", c.Request.Method, c.Request.URL.Path, key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
