// Package store implements the settings persistence layer behind a single
// interface. Two interchangeable backends exist: a relational one backed by
// gorm and a flat file one. Handlers depend on the interface only and never
// learn which backend serves them.
//
// Failure policy: reads degrade to an empty or default value and never
// surface "not found" to a caller. Writes return an error so that explicit
// update operations can report a persistence failure.
package store

import (
	"github.com/cometfolio/cometfolio/internal/db/models"
)

// Storage mode reported by Mode, surfaced on the health endpoint.
const (
	ModeDatabase = "database"
	ModeFiles    = "files"
)

// Store is the uniform read/update contract over the settings backends.
type Store interface {
	// Mode reports which backend serves this store.
	Mode() string

	// AccessCode returns the stored access code, empty when unset.
	AccessCode() string
	// SetAccessCode replaces the stored access code wholesale.
	SetAccessCode(code string) error

	// Theme returns the current theme settings, defaults when unset.
	Theme() models.ThemeSetting
	// SetTheme replaces the theme settings wholesale.
	SetTheme(theme models.ThemeSetting) error

	// MediaSlots returns all slots ordered by index, disabled defaults when unset.
	MediaSlots() []models.MediaSlot
	// SetMediaSlot updates a single slot without disturbing the others.
	SetMediaSlot(slot models.MediaSlot) error

	// AppendFeedback stores a feedback entry and evicts beyond retention, oldest first.
	AppendFeedback(entry *models.FeedbackEntry) error
	// ListFeedback returns stored feedback, newest first.
	ListFeedback() []models.FeedbackEntry

	// AppendAnalytics stores an analytics event and evicts beyond retention, oldest first.
	AppendAnalytics(event *models.AnalyticsEvent) error
	// ListAnalytics returns stored events, newest first.
	ListAnalytics() []models.AnalyticsEvent
}
