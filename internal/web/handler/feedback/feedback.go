// Package feedback implements the visitor feedback endpoints.
package feedback

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the feedback route group.
	Path = "/api/feedback"
)

// Service is the feedback handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	st        store.Store
	gate      *auth.Gate
	validator *validator.Validate
}

// Handler is the feedback handler.
var Handler = Service{}

type submitRequest struct {
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Message      string `json:"message" validate:"required,max=1000"`
	VisitorName  string `json:"visitor_name" validate:"max=100"`
	VisitorEmail string `json:"visitor_email" validate:"max=100"`
}

// Init initializes the feedback handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, gate *auth.Gate) error {
	if app == nil || cfg == nil || st == nil || gate == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st
	s.gate = gate
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RootPath, s.Post)
		router.Get("/list", s.gate.Require, s.List)
	})

	return nil
}

// Post accepts an anonymous feedback submission.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(submitRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.BadRequest(c, handler.ValidationDetail(err))
	}

	entry := &models.FeedbackEntry{
		UUID:         uuid.NewString(),
		Rating:       req.Rating,
		Message:      req.Message,
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
		CreatedAt:    time.Now().UTC(),
		ClientIP:     c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
		Status:       models.FeedbackStatusNew,
	}

	if err := s.st.AppendFeedback(entry); err != nil {
		return handler.SaveFailed(c, err, "feedback")
	}

	handler.RecordEvent(s.st, c, models.EventFeedbackSubmitted, entry.UUID)

	return c.JSON(fiber.Map{"status": handler.StatusSuccess})
}

// List returns stored feedback entries, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	entries := s.st.ListFeedback()
	if entries == nil {
		entries = []models.FeedbackEntry{}
	}

	return c.JSON(fiber.Map{
		"feedback": entries,
		"total":    len(entries),
	})
}
