// Package handler holds the shared contract and helpers of the web handlers.
package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
)

// BadRequest returns a 400 naming the violated constraint.
// Explicit validation failures surface a specific message, unlike unexpected
// faults which stay generic.
func BadRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"detail": detail,
	})
}

// SaveFailed returns the generic 5xx response for a failed explicit update.
func SaveFailed(c *fiber.Ctx, err error, what string) error {
	log.Error().Err(err).Msg("failed to save " + what)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "failed to save " + what,
	})
}

// ValidationDetail renders the first violated field constraint of a
// validator error, or a generic message when the error has another shape.
func ValidationDetail(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return "invalid field " + fe.Field() + ": failed on " + fe.Tag()
	}

	return "invalid request body"
}

// RecordEvent appends a best-effort analytics event. Storage failures are
// swallowed here and only logged, they must never fail the request.
func RecordEvent(st store.Store, c *fiber.Ctx, eventType, detail string) {
	event := &models.AnalyticsEvent{
		UUID:      uuid.NewString(),
		EventType: eventType,
		CreatedAt: time.Now().UTC(),
		ClientIP:  c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Detail:    detail,
	}

	if err := st.AppendAnalytics(event); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("failed to record analytics event")
	}
}
