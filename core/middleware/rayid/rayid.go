// Package rayid assigns a unique request identifier to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the HTTP header carrying the ray id.
const Header = "X-Ray-ID"

// New returns a middleware that stores a ray id in the request locals and
// echoes it in the response headers. An id supplied by the client is reused
// so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
