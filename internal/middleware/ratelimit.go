package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitMiddleware enforces a fixed window per client IP and path via a
// redis counter. Redis trouble fails open: an unavailable limiter must not
// take the API down with it.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("rl:%s:%s", c.Path(), c.IP())

		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			log.Debug("rate limiter unavailable, failing open", zap.Error(err))
			return c.Next()
		}

		if count == 1 {
			rdb.Expire(c.Context(), key, window)
		}

		if count > int64(limit) {
			log.Warn("rate limit exceeded",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			c.Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}

		return c.Next()
	}
}
