// Package auth protects the API with a shared key check.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header is the HTTP header carrying the API key.
const Header = "X-API-Key"

// Config holds the middleware configuration.
type Config struct {
	// ApiKey is the expected key. An empty key leaves the API open, which
	// is the intended mode for local development.
	ApiKey string
}

// New returns a middleware enforcing the configured API key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		provided := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}

		return c.Next()
	}
}
