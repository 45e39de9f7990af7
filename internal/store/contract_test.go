package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometfolio/cometfolio/internal/db/models"
)

// runStoreContract verifies the behavior every backend must share.
func runStoreContract(t *testing.T, st Store) {
	t.Helper()

	t.Run("access code defaults to empty", func(t *testing.T) {
		assert.Empty(t, st.AccessCode())
	})

	t.Run("access code round trip", func(t *testing.T) {
		require.NoError(t, st.SetAccessCode("Venky@access345"))
		assert.Equal(t, "Venky@access345", st.AccessCode())

		// overwritten wholesale, no history
		require.NoError(t, st.SetAccessCode("new-code"))
		assert.Equal(t, "new-code", st.AccessCode())
	})

	t.Run("theme defaults when unset", func(t *testing.T) {
		assert.Equal(t, models.DefaultThemeSetting(), zeroID(st.Theme()))
	})

	t.Run("theme round trip", func(t *testing.T) {
		want := models.ThemeSetting{
			CurrentTheme:        "aurora-green",
			Font:                "mono",
			GlassmorphicOpacity: 0.75,
			BlurIntensity:       42,
		}

		require.NoError(t, st.SetTheme(want))
		assert.Equal(t, want, zeroID(st.Theme()))
	})

	t.Run("theme stays single valued after repeated writes", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, st.SetTheme(models.ThemeSetting{
				CurrentTheme:        fmt.Sprintf("theme-%d", i),
				Font:                models.DefaultFont,
				GlassmorphicOpacity: 0.5,
				BlurIntensity:       10,
			}))
		}

		assert.Equal(t, "theme-4", st.Theme().CurrentTheme)
	})

	t.Run("media slots default disabled", func(t *testing.T) {
		slots := st.MediaSlots()
		require.Len(t, slots, models.MediaSlotCount)

		for i, slot := range slots {
			assert.Equal(t, i+1, slot.Slot)
			assert.False(t, slot.Enabled)
			assert.Empty(t, slot.Title)
			assert.Empty(t, slot.Caption)
		}
	})

	t.Run("media slot update leaves others untouched", func(t *testing.T) {
		require.NoError(t, st.SetMediaSlot(models.MediaSlot{
			Slot: 2, Enabled: true, Title: "Demo reel", Caption: "A short demo",
		}))
		require.NoError(t, st.SetMediaSlot(models.MediaSlot{
			Slot: 4, Enabled: true, Title: "Talk", Caption: "Conference talk",
		}))
		require.NoError(t, st.SetMediaSlot(models.MediaSlot{
			Slot: 2, Enabled: false, Title: "Demo reel v2", Caption: "Updated demo",
		}))

		slots := st.MediaSlots()
		require.Len(t, slots, models.MediaSlotCount)

		assert.Equal(t, "Demo reel v2", slots[1].Title)
		assert.False(t, slots[1].Enabled)
		assert.Equal(t, "Talk", slots[3].Title)
		assert.True(t, slots[3].Enabled)
		assert.Empty(t, slots[0].Title)
	})

	t.Run("feedback newest first and bounded", func(t *testing.T) {
		for i := 0; i < models.FeedbackRetention+5; i++ {
			require.NoError(t, st.AppendFeedback(&models.FeedbackEntry{
				UUID:      uuid.NewString(),
				Rating:    (i % 5) + 1,
				Message:   fmt.Sprintf("message %d", i),
				CreatedAt: time.Now().UTC(),
				Status:    models.FeedbackStatusNew,
			}))
		}

		entries := st.ListFeedback()
		require.Len(t, entries, models.FeedbackRetention)

		// newest first, the first five submissions were evicted
		assert.Equal(t, fmt.Sprintf("message %d", models.FeedbackRetention+4), entries[0].Message)
		assert.Equal(t, "message 5", entries[len(entries)-1].Message)
	})

	t.Run("analytics newest first and bounded", func(t *testing.T) {
		for i := 0; i < models.AnalyticsRetention+3; i++ {
			require.NoError(t, st.AppendAnalytics(&models.AnalyticsEvent{
				UUID:      uuid.NewString(),
				EventType: models.EventContentView,
				CreatedAt: time.Now().UTC(),
				Detail:    fmt.Sprintf("visit %d", i),
			}))
		}

		events := st.ListAnalytics()
		require.Len(t, events, models.AnalyticsRetention)

		assert.Equal(t, fmt.Sprintf("visit %d", models.AnalyticsRetention+2), events[0].Detail)
		assert.Equal(t, "visit 3", events[len(events)-1].Detail)
	})
}

// zeroID strips the backend assigned row id for value comparisons.
func zeroID(theme models.ThemeSetting) models.ThemeSetting {
	theme.ID = 0
	return theme
}
