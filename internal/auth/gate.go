// Package auth implements the token gate guarding the admin surface.
//
// The gate is stateless per call: Issue signs a time limited credential for a
// client supplied username, Validate verifies signature and expiry. The
// access code comparison itself happens in the login handler, the gate only
// deals in signed credentials.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// TokenType is the credential transport scheme reported to clients.
	TokenType = "bearer"

	issuer = "cometfolio"
)

// Claims are the payload embedded in an issued credential.
type Claims struct {
	jwt.RegisteredClaims
}

// Gate issues and validates signed, time limited credentials.
type Gate struct {
	secret   []byte
	lifetime time.Duration
}

// New creates a gate from the signing secret and the credential lifetime.
func New(secret string, lifetime time.Duration) *Gate {
	if lifetime == 0 {
		lifetime = 30 * time.Minute //nolint: mnd
	}

	return &Gate{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Lifetime returns the configured credential lifetime.
func (g *Gate) Lifetime() time.Duration {
	return g.lifetime
}

// Issue signs a credential binding the username, the issue time and an expiry
// one lifetime after issuance.
func (g *Gate) Issue(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(g.lifetime)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, ErrSigningFailed
	}

	return token, expiresAt, nil
}

// Validate verifies a credential and returns its claims.
// It fails with ErrExpired past the embedded expiry, ErrMissingSubject when no
// username is embedded and ErrMalformed for everything else that does not parse
// or verify.
func (g *Gate) Validate(credential string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}

		return nil, ErrMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
