// Package login implements the access code login, token verify and token
// refresh endpoints.
//
// Login is a single factor check: the submitted access code is compared
// byte-exact against the stored one, and any client supplied username is
// accepted once the code matches. There is exactly one logical account.
package login

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the auth route group.
	Path = "/api/auth"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	st        store.Store
	gate      *auth.Gate
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

type loginRequest struct {
	Username   string `json:"username" validate:"required,max=50"`
	AccessCode string `json:"access_code" validate:"required,max=100"`
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, gate *auth.Gate) error {
	if app == nil || cfg == nil || st == nil || gate == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st
	s.gate = gate
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Post("/login", s.Login)
		router.Get("/verify", s.gate.Require, s.Verify)
		router.Post("/refresh", s.gate.Require, s.Refresh)
	})

	return nil
}

// Login checks the submitted access code and issues a credential on success.
func (s *Service) Login(c *fiber.Ctx) error {
	req := new(loginRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.BadRequest(c, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.BadRequest(c, handler.ValidationDetail(err))
	}

	stored := s.st.AccessCode()

	// an unset code matches nothing; the generic message never reveals
	// which check failed
	if stored == "" || subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(stored)) != 1 {
		handler.RecordEvent(s.st, c, models.EventLoginFailed, req.Username)

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "invalid access code",
		})
	}

	token, expiresAt, err := s.gate.Issue(req.Username)
	if err != nil {
		return err
	}

	handler.RecordEvent(s.st, c, models.EventLoginSuccess, req.Username)

	return c.JSON(s.tokenResponse(token, expiresAt, req.Username))
}

// Verify reports the validity of the presented credential.
func (s *Service) Verify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated": true,
		"username":      auth.Username(c),
		"expires":       auth.ExpiresAt(c).Unix(),
	})
}

// Refresh issues a fresh credential for the authenticated subject.
func (s *Service) Refresh(c *fiber.Ctx) error {
	username := auth.Username(c)

	token, expiresAt, err := s.gate.Issue(username)
	if err != nil {
		return err
	}

	handler.RecordEvent(s.st, c, models.EventTokenRefresh, username)

	return c.JSON(s.tokenResponse(token, expiresAt, username))
}

func (s *Service) tokenResponse(token string, expiresAt time.Time, username string) fiber.Map {
	return fiber.Map{
		"access_token": token,
		"token_type":   auth.TokenType,
		"expires_in":   int64(s.gate.Lifetime().Seconds()),
		"expires_at":   expiresAt.UTC().Format(time.RFC3339),
		"user": fiber.Map{
			"username": username,
			"is_admin": true,
		},
	}
}
