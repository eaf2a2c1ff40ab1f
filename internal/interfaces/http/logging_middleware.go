package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kraya/platform-api/pkg/logger"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger asigna un request id (o respeta el del header X-Request-ID)
// y registra cada petición con método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
