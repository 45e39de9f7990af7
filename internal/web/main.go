// Package web wires the fiber application serving the portfolio API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	fiberlogger "github.com/cometfolio/cometfolio/internal/logger/adapter/fiber"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler/analytics"
	"github.com/cometfolio/cometfolio/internal/web/handler/feedback"
	"github.com/cometfolio/cometfolio/internal/web/handler/health"
	"github.com/cometfolio/cometfolio/internal/web/handler/login"
	"github.com/cometfolio/cometfolio/internal/web/handler/media"
	"github.com/cometfolio/cometfolio/internal/web/handler/portfolio"
	"github.com/cometfolio/cometfolio/internal/web/handler/theme"
	"github.com/cometfolio/cometfolio/internal/web/middleware/restrict"
)

// Service represents the web service.
type Service struct {
	App *fiber.App
	cfg *config.Config
	st  store.Store
}

// Start starts the web service on the given address and blocks until the
// server stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and gracefully stops the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// drain window for reverse proxies to remove this instance
	log.Info().Msgf("graceful shutdown: waiting %d seconds before stopping", s.cfg.Webserver.ShutDownTime)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration, settings store
// and token gate.
func New(cfg *config.Config, st store.Store, gate *auth.Gate) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	if gate == nil {
		panic("gate cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:    cfg.Log,
		HealthURI: health.Path,
	}))

	// block everything in production until an access code is configured
	app.Use(restrict.New(cfg, st))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		st:  st,
	}

	// init handlers (they register their own routes)
	health.Handler.Init(app, cfg, st, gate)
	login.Handler.Init(app, cfg, st, gate)
	portfolio.Handler.Init(app, cfg, st, gate)
	theme.Handler.Init(app, cfg, st, gate)
	media.Handler.Init(app, cfg, st, gate)
	feedback.Handler.Init(app, cfg, st, gate)
	analytics.Handler.Init(app, cfg, st, gate)

	// structured 404 instead of the framework default page
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "endpoint not found",
		})
	})

	return service
}

// errorHandler maps unhandled errors to a generic response without leaking
// internal error text for unexpected faults.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"detail": fiberErr.Message,
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "internal server error",
	})
}
