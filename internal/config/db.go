package config

// DB holds discrete database connection settings.
// Storage.DatabaseURL takes precedence when both are set.
type DB struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}
