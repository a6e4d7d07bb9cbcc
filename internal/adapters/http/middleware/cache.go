package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets public cache headers on successful GET responses.
// Used on the public landing page where property data changes slowly.
func CacheControl(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			c.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}

		return err
	}
}

// NoCacheHeaders sets no-cache headers
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}

// PrivateCacheHeaders sets private cache headers (for user-specific data)
func PrivateCacheHeaders(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			c.Set("Cache-Control", "private, max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}

		return err
	}
}
