// Package theme implements the site theme settings endpoints.
package theme

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the theme settings endpoints.
	Path = "/api/settings/theme"
)

// Service is the theme settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	st        store.Store
	gate      *auth.Gate
	validator *validator.Validate
}

// Handler is the theme settings handler.
var Handler = Service{}

// Numeric fields are pointers so an omitted field can fall back to its
// default while an explicit zero is kept.
type updateRequest struct {
	Theme               string   `json:"theme" validate:"required,max=50"`
	Font                string   `json:"font" validate:"max=50"`
	GlassmorphicOpacity *float64 `json:"glassmorphic_opacity" validate:"omitempty,gte=0,lte=1"`
	BlurIntensity       *int     `json:"blur_intensity" validate:"omitempty,gte=0,lte=100"`
}

// Init initializes the theme settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, gate *auth.Gate) error {
	if app == nil || cfg == nil || st == nil || gate == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st
	s.gate = gate
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Put(handler.RootPath, s.gate.Require, s.Put)
	})

	return nil
}

// Get returns the current theme settings, readable by anyone.
func (s *Service) Get(c *fiber.Ctx) error {
	theme := s.st.Theme()

	return c.JSON(fiber.Map{
		"current_theme":        theme.CurrentTheme,
		"current_font":         theme.Font,
		"glassmorphic_opacity": theme.GlassmorphicOpacity,
		"blur_intensity":       theme.BlurIntensity,
	})
}

// Put replaces the theme settings wholesale.
func (s *Service) Put(c *fiber.Ctx) error {
	req := new(updateRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.BadRequest(c, handler.ValidationDetail(err))
	}

	if req.Font == "" {
		req.Font = models.DefaultFont
	}

	opacity := models.DefaultGlassmorphicOpacity
	if req.GlassmorphicOpacity != nil {
		opacity = *req.GlassmorphicOpacity
	}

	blur := models.DefaultBlurIntensity
	if req.BlurIntensity != nil {
		blur = *req.BlurIntensity
	}

	err := s.st.SetTheme(models.ThemeSetting{
		CurrentTheme:        req.Theme,
		Font:                req.Font,
		GlassmorphicOpacity: opacity,
		BlurIntensity:       blur,
	})
	if err != nil {
		return handler.SaveFailed(c, err, "theme settings")
	}

	handler.RecordEvent(s.st, c, models.EventThemeChange, req.Theme)

	return c.JSON(fiber.Map{"status": handler.StatusSuccess})
}
