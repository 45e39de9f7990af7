package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// localsClaimsKey is the fiber locals key holding the validated claims.
const localsClaimsKey = "authClaims"

// Require is a fiber middleware enforcing a valid bearer credential.
// Every failure maps to the same generic unauthorized response so a caller
// can not probe which check rejected it.
func (g *Gate) Require(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)

	scheme, credential, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return unauthorized(c)
	}

	claims, err := g.Validate(strings.TrimSpace(credential))
	if err != nil {
		return unauthorized(c)
	}

	c.Locals(localsClaimsKey, claims)

	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"detail": "invalid or expired token",
	})
}

// Username returns the subject of the validated credential, empty outside a
// protected route.
func Username(c *fiber.Ctx) string {
	claims, ok := c.Locals(localsClaimsKey).(*Claims)
	if !ok {
		return ""
	}

	return claims.Subject
}

// ExpiresAt returns the expiry of the validated credential, the zero time
// outside a protected route.
func ExpiresAt(c *fiber.Ctx) time.Time {
	claims, ok := c.Locals(localsClaimsKey).(*Claims)
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
