package config

import (
	"time"

	"github.com/cometfolio/cometfolio/internal/logger"
)

// Auth holds the token gate settings.
type Auth struct {
	// Secret is the HMAC signing key for issued tokens.
	Secret string
	// TokenLifetime is how long an issued token stays valid.
	TokenLifetime time.Duration
	// DefaultAccessCode seeds the stored access code at first startup.
	// When empty a random code is generated and logged once.
	DefaultAccessCode string
}

// Storage holds the persistence settings.
type Storage struct {
	// DatabaseURL selects the relational backend when set (postgres URL).
	DatabaseURL string
	// DB holds discrete connection settings, used when DatabaseURL is empty.
	DB DB
	// DataDir is the directory for the flat file backend.
	DataDir string
	// ContentFile is the portfolio content text file.
	ContentFile string
	// UploadDir is reserved for media uploads (scaffolding only).
	UploadDir string
}

// Config overall data structure.
type Config struct {
	DevMode     bool   // enable dev mode for development
	Environment string // development or production
	Title       string
	Auth        Auth
	Storage     Storage
	Log         logger.Log
	Webserver   Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
