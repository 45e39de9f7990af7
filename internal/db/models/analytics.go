package models

import "time"

// AnalyticsRetention caps the number of stored analytics events.
// On overflow the oldest events are dropped first.
const AnalyticsRetention = 1000

// Analytics event types recorded by the request handlers.
const (
	EventContentView       = "content_view"
	EventLoginSuccess      = "login_success"
	EventLoginFailed       = "login_failed"
	EventThemeChange       = "theme_change"
	EventTokenRefresh      = "token_refresh"
	EventFeedbackSubmitted = "feedback_submitted"
)

// AnalyticsEvent is one recorded visit or admin action. Events are
// append-only and best-effort: recording failures never fail a request.
type AnalyticsEvent struct {
	ID        uint64    `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	EventType string    `gorm:"size:40;index;not null" json:"event_type"`
	CreatedAt time.Time `json:"timestamp"`
	ClientIP  string    `gorm:"size:64" json:"client_ip,omitempty"`
	UserAgent string    `gorm:"size:255" json:"user_agent,omitempty"`
	Detail    string    `gorm:"size:255" json:"detail,omitempty"`
}
