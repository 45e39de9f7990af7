package models

import "time"

// FeedbackRetention caps the number of stored feedback entries.
// On overflow the oldest entries are dropped first.
const FeedbackRetention = 500

// FeedbackStatusNew is the initial status of a submitted entry.
// No endpoint transitions the status yet, it is reserved for moderation.
const FeedbackStatusNew = "new"

// FeedbackEntry is a visitor feedback submission. Entries are append-only
// and never mutated after creation except for the Status field.
type FeedbackEntry struct {
	ID           uint64    `gorm:"primaryKey" json:"-"`
	UUID         string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Message      string    `gorm:"size:1000;not null" json:"message"`
	VisitorName  string    `gorm:"size:100" json:"visitor_name,omitempty"`
	VisitorEmail string    `gorm:"size:100" json:"visitor_email,omitempty"`
	CreatedAt    time.Time `json:"timestamp"`
	ClientIP     string    `gorm:"size:64" json:"client_ip,omitempty"`
	UserAgent    string    `gorm:"size:255" json:"user_agent,omitempty"`
	Status       string    `gorm:"size:20" json:"status"`
}
