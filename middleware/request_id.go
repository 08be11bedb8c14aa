// middleware/request_id.go
package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID (keeping an inbound
// one if present) and logs method, path, status and latency.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)

		start := time.Now()
		err := c.Next()
		log.Printf("[HTTP] %s %s %d %s rid=%s",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), id)
		return err
	}
}
