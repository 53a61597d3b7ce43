package middleware

import "github.com/gofiber/fiber/v2"

// VersionHeader carries the running build's version on every response so the
// deployment pipeline can verify which build actually went live.
const VersionHeader = "X-App-Version"

// Version stamps every response with the given build version.
func Version(v string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(VersionHeader, v)
		return c.Next()
	}
}
