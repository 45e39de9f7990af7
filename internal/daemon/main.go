// Package daemon assembles the storage backend, the token gate and the web
// service from the configuration and runs them.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/dsn"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
// The storage backend is selected once here: a configured database connection
// switches to the relational store, otherwise flat files serve.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	st, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, st); err != nil {
		return nil, err
	}

	log.Info().Str("mode", st.Mode()).Msg("storage backend initialized")

	gate := auth.New(cfg.Auth.Secret, cfg.Auth.TokenLifetime)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, st, gate),
	}, nil
}

func newStore(cfg *config.Config) (store.Store, error) {
	connString := dsn.Create(cfg)
	if connString == "" {
		return store.NewFileStore(cfg.Storage.DataDir), nil
	}

	db, err := gorm.Open(gormpostgres.Open(connString), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.AccessSetting{},
		&models.ThemeSetting{},
		&models.MediaSlot{},
		&models.FeedbackEntry{},
		&models.AnalyticsEvent{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return store.NewDBStore(db), nil
}
