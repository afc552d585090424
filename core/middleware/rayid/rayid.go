package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on every response.
const Header = "X-Ray-ID"

// New returns a middleware that assigns a unique ray id to each request.
// An id supplied by the caller in the request header is kept so traces can
// span services.
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
