package middleware

import (
	"strings"
	"time"

	"github.com/fadilmartias/assessment-board/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const defaultWindow = time.Minute

// RateLimiter caps each client IP at cfg.Max requests per sliding cfg.Window.
// Requests whose path ends with one of skip are never limited.
func RateLimiter(cfg config.RateLimitConfig, skip ...string) fiber.Handler {
	max := cfg.Max
	if max <= 0 {
		max = 50
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultWindow
	}
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			for _, suffix := range skip {
				if strings.HasSuffix(c.Path(), suffix) {
					return true
				}
			}
			return false
		},
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
