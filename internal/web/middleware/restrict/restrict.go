// Package restrict guards a production deployment whose access code was never
// configured: instead of running an admin surface nobody can ever unlock, the
// whole service answers unavailable until the code is seeded.
package restrict

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/store"
)

// New creates the access restriction middleware.
// Outside production it is a no-op.
func New(cfg *config.Config, st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.IsProduction() && st.AccessCode() == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"detail": "service unavailable: access not configured",
			})
		}

		return c.Next()
	}
}
