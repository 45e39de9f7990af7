// Package health implements the service health endpoint.
package health

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the health endpoint.
	Path = "/api/health"

	// Version reported on the health endpoint.
	Version = "2.0.0"
)

// Service is the health handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  store.Store
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, _ *auth.Gate) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st

	app.Get(Path, s.Get)

	return nil
}

// Get reports service status, storage mode and version.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
		"mode":      s.st.Mode(),
		"env":       s.cfg.Environment,
	})
}
