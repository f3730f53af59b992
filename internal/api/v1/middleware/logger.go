package middleware

import (
	"time"

	"github.com/google/uuid"

	log "github.com/skyforge/skyforge/internal/logger"

	fiber "github.com/gofiber/fiber/v2"
)

// requestIDKey is the locals key under which the request ID is stored
const requestIDKey = "request_id"

// Logger returns a middleware that tags each request with a UUID and logs it
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := uuid.New().String()
		c.Locals(requestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		// Continue chain
		err := c.Next()

		// After request
		stop := time.Now()
		latency := stop.Sub(start)

		log.InfoWithFields("Request", map[string]interface{}{
			"request_id": requestID,
			"timestamp":  stop.Format("2006/01/02 - 15:04:05"),
			"status":     c.Response().StatusCode(),
			"latency":    latency,
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"handler":    c.Route().Name,
		})

		return err
	}
}
