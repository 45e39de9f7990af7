// Package analytics implements the visit analytics endpoint.
package analytics

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
	"github.com/cometfolio/cometfolio/internal/web/handler"
)

const (
	// Path is the path to the analytics endpoint.
	Path = "/api/analytics"
)

// Service is the analytics handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	st   store.Store
	gate *auth.Gate
}

// Handler is the analytics handler.
var Handler = Service{}

// Init initializes the analytics handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, gate *auth.Gate) error {
	if app == nil || cfg == nil || st == nil || gate == nil {
		return errors.New(handler.ErrNilDepsLogMsg)
	}

	s.cfg = cfg
	s.st = st
	s.gate = gate

	app.Get(Path, s.gate.Require, s.Get)

	return nil
}

// Get summarizes recorded events and lists the detailed content views,
// newest first.
func (s *Service) Get(c *fiber.Ctx) error {
	events := s.st.ListAnalytics()

	byType := map[string]int{}
	visitors := map[string]struct{}{}
	visits := []models.AnalyticsEvent{}

	for _, event := range events {
		byType[event.EventType]++

		if event.EventType == models.EventContentView {
			visits = append(visits, event)

			if event.ClientIP != "" {
				visitors[event.ClientIP] = struct{}{}
			}
		}
	}

	return c.JSON(fiber.Map{
		"summary": fiber.Map{
			"total_events":    len(events),
			"by_event_type":   byType,
			"unique_visitors": len(visitors),
		},
		"detailed_visits": visits,
	})
}
