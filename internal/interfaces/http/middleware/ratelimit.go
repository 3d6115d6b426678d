package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/infrastructure/ratelimit"
	"revu/internal/shared/utils"
)

// RateLimit enforces per-IP request limits. When the limiter backend is
// unavailable the request is allowed through rather than failing closed.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
