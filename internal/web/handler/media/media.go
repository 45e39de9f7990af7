// Package media implements the media slot settings endpoints.
package media

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the media route group.
	Path = "/api/media"
)

// Service is the media settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	st        store.Store
	gate      *auth.Gate
	validator *validator.Validate
}

// Handler is the media settings handler.
var Handler = Service{}

type slotRequest struct {
	Slot    int    `json:"slot" validate:"min=1,max=5"`
	Enabled bool   `json:"enabled"`
	Title   string `json:"title" validate:"max=100"`
	Caption string `json:"caption" validate:"max=500"`
}

// Init initializes the media settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, gate *auth.Gate) error {
	if app == nil || cfg == nil || st == nil || gate == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st
	s.gate = gate
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get("/settings", s.Get)
		router.Put("/slot", s.gate.Require, s.PutSlot)
	})

	return nil
}

// Get returns all media slot states keyed by slot index, readable by anyone.
func (s *Service) Get(c *fiber.Ctx) error {
	out := fiber.Map{}
	for _, slot := range s.st.MediaSlots() {
		out[strconv.Itoa(slot.Slot)] = fiber.Map{
			"enabled": slot.Enabled,
			"title":   slot.Title,
			"caption": slot.Caption,
		}
	}

	return c.JSON(out)
}

// PutSlot updates a single media slot without disturbing the others.
func (s *Service) PutSlot(c *fiber.Ctx) error {
	req := new(slotRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.BadRequest(c, handler.ValidationDetail(err))
	}

	err := s.st.SetMediaSlot(models.MediaSlot{
		Slot:    req.Slot,
		Enabled: req.Enabled,
		Title:   req.Title,
		Caption: req.Caption,
	})
	if err != nil {
		return handler.SaveFailed(c, err, "media settings")
	}

	return c.JSON(fiber.Map{"status": handler.StatusSuccess})
}
