package models

// MediaSlotCount is the fixed number of media slots on the site.
const MediaSlotCount = 5

// MediaSlot holds the state of one of the fixed media slots.
// Slots are indexed 1..MediaSlotCount and updated independently.
type MediaSlot struct {
	ID      uint64 `gorm:"primaryKey" json:"-"`
	Slot    int    `gorm:"uniqueIndex;not null" json:"slot"`
	Enabled bool   `gorm:"not null" json:"enabled"`
	Title   string `gorm:"size:100" json:"title"`
	Caption string `gorm:"size:500" json:"caption"`
}

// DefaultMediaSlots returns all slots in their initial disabled state.
func DefaultMediaSlots() []MediaSlot {
	slots := make([]MediaSlot, 0, MediaSlotCount)
	for i := 1; i <= MediaSlotCount; i++ {
		slots = append(slots, MediaSlot{Slot: i})
	}

	return slots
}
