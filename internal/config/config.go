// Package config handles input from etc/*.toml files and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"

	"github.com/cometfolio/cometfolio/internal/logger"
)

// EnvConfigJSON is the environment variable holding a JSON config override blob.
const EnvConfigJSON = "COMETFOLIO_CONFIG_JSON"

// ReadConfig reads the configuration from an optional TOML file, merges a JSON
// override blob from the environment and applies individual environment
// variables on top.
func ReadConfig(path string) (Config, error) {
	var (
		c   = defaults()
		err error
	)

	if path == "" {
		path = "./etc/"
	}

	// the config file is optional, real deployments configure via environment
	if _, statErr := os.Stat(path + "main.toml"); statErr == nil {
		if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	// override it from env
	if jsonEnv := os.Getenv(EnvConfigJSON); jsonEnv != "" {
		c, err = decodeAndMergeConfig(c, jsonEnv)
		if err != nil {
			return c, err
		}
	}

	applyEnv(&c)

	return c, validate(&c)
}

func defaults() Config {
	return Config{
		Title:       "Portfolio by Comet API",
		Environment: "development",
		Auth: Auth{
			TokenLifetime: 30 * time.Minute, //nolint: mnd
		},
		Storage: Storage{
			DataDir:     "./data-storage",
			ContentFile: "./content.txt",
			UploadDir:   "./upload",
		},
		Webserver: Webserver{
			Port: 8000, //nolint: mnd
			URL:  "http://localhost:8000",
		},
		Log: logDefaults(),
	}
}

func logDefaults() logger.Log {
	return logger.Log{
		LogLevel:         "info",
		AppName:          "cometfolio",
		ServiceName:      "cometfolio",
		DisableHealthLog: true,
		Console: logger.Console{
			Enabled:          true,
			UseConsoleWriter: true,
		},
	}
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config override")
	}

	return c, nil
}

// applyEnv overrides single config fields from the environment.
// The variable names match the original deployment of the service.
func applyEnv(c *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Auth.Secret = v
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			c.Auth.TokenLifetime = time.Duration(minutes) * time.Minute
		}
	}

	if v := os.Getenv("ACCESS_CODE"); v != "" {
		c.Auth.DefaultAccessCode = v
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Storage.DatabaseURL = v
	}

	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}

	if v := os.Getenv("CONTENT_FILE"); v != "" {
		c.Storage.ContentFile = v
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Webserver.Port = port
		}
	}
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// IsProduction reports whether the service runs with the production environment flag.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// validate minimal config settings for cometfolio.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Auth.TokenLifetime == 0 {
		c.Auth.TokenLifetime = 30 * time.Minute //nolint: mnd
	}

	if c.Auth.Secret == "" {
		if c.IsProduction() {
			return errors.Wrap(ErrSecretRequiredInProduction, invalidErrMessage)
		}

		c.Auth.Secret = "change-me-in-prod"
	}

	return nil
}
