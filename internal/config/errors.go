package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrSecretRequiredInProduction error if no signing secret is configured outside dev.
	ErrSecretRequiredInProduction = errors.New("config auth.secret can not be empty in production")
)
