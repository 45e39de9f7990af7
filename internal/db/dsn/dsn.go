// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/cometfolio/cometfolio/internal/config"
)

// Create builds the postgres Data Source Name from the configuration.
// A full Storage.DatabaseURL wins over the discrete DB fields; when neither
// is configured the result is empty and the file backend is used instead.
func Create(cfg *config.Config) string {
	if cfg.Storage.DatabaseURL != "" {
		return cfg.Storage.DatabaseURL
	}

	db := cfg.Storage.DB
	if db.Host == "" {
		return ""
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host,
		db.Port,
		db.User,
		db.Password,
		db.Name,
		sslMode,
	)
}
