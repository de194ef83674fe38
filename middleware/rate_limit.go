package middleware

import (
	"fmt"
	"time"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter creates a per-user rate limiting middleware backed by Redis.
// It uses a sliding window built from INCR and EXPIRE; unauthenticated
// requests fall back to the client IP as the limiting key.
func RateLimiter(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := GetUserID(c)
		if subject == "" {
			subject = c.ClientIP()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), subject)

		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)

		_, err := pipe.Exec(c.Request.Context())
		if err != nil {
			// Stay available when Redis is down rather than blocking traffic.
			logger.GetLogger().Warnw("Rate limit check failed, allowing request",
				"error", err, "key", key)
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			_ = c.Error(apperrors.RateLimitExceeded(
				"Too many requests", int(window.Seconds())))
			c.Abort()
			return
		}

		c.Next()
	}
}
