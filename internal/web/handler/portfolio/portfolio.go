// Package portfolio implements the portfolio content endpoint.
//
// Content lives in a static text file using the bracketed section format and
// is re-parsed on every read, so edits show up without a restart.
package portfolio

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/textcfg"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the portfolio content endpoint.
	Path = "/api/portfolio/content"
)

// Service is the portfolio content handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  store.Store
}

// Handler is the portfolio content handler.
var Handler = Service{}

// Init initializes the portfolio content handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, _ *auth.Gate) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st

	app.Get(Path, s.Get)

	return nil
}

// Get parses and returns the portfolio content sections.
// A visit is recorded best-effort before responding, a failed record never
// fails the content response.
func (s *Service) Get(c *fiber.Ctx) error {
	// a missing content file degrades to empty content
	raw, err := os.ReadFile(s.cfg.Storage.ContentFile)
	if err != nil {
		raw = nil
	}

	sections := textcfg.ParseSections(string(raw))

	handler.RecordEvent(s.st, c, models.EventContentView, "")

	return c.JSON(fiber.Map{
		"content": sections,
	})
}
