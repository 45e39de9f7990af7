package auth

import "errors"

var (
	// ErrMalformed is returned when a credential cannot be parsed or its
	// signature does not verify.
	ErrMalformed = errors.New("malformed credential")

	// ErrExpired is returned when the embedded expiry lies in the past.
	ErrExpired = errors.New("credential has expired")

	// ErrMissingSubject is returned when no username is embedded in the credential.
	ErrMissingSubject = errors.New("credential has no subject")

	// ErrSigningFailed is returned when a credential could not be signed.
	ErrSigningFailed = errors.New("failed to sign credential")
)
