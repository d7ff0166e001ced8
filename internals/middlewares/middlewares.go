// file: internals/middlewares/middlewares.go
package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

// SetupMiddlewares monta el stack base: recover + request-id/timing + CORS.
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New())
	app.Use(RequestLogger())
	app.Use(CorsMiddleware())
}

// RequestLogger asigna X-Request-ID y loguea método, ruta, status y duración.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	}
}
