// Package models contains the persisted model definitions shared by the
// relational and the flat file storage backends.
package models

// AccessSetting holds the shared access code gating the admin surface.
// Exactly one logical row exists at any time.
type AccessSetting struct {
	ID         uint64 `gorm:"primaryKey" json:"-"`
	AccessCode string `gorm:"size:100;not null" json:"access_code"`
}
