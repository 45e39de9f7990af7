package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cometfolio/cometfolio/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.AccessSetting{},
		&models.ThemeSetting{},
		&models.MediaSlot{},
		&models.FeedbackEntry{},
		&models.AnalyticsEvent{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestDBStoreContract(t *testing.T) {
	st := NewDBStore(setupTestDB(t))

	assert.Equal(t, ModeDatabase, st.Mode())

	runStoreContract(t, st)
}

func TestDBStorePrunesDuplicateSingletonRows(t *testing.T) {
	db := setupTestDB(t)
	st := NewDBStore(db)

	// duplicate rows inserted behind the store's back
	require.NoError(t, db.Create(&models.ThemeSetting{CurrentTheme: "first"}).Error)
	require.NoError(t, db.Create(&models.ThemeSetting{CurrentTheme: "second"}).Error)
	require.NoError(t, db.Create(&models.ThemeSetting{CurrentTheme: "third"}).Error)

	require.NoError(t, st.SetTheme(models.ThemeSetting{
		CurrentTheme:        "pruned",
		Font:                models.DefaultFont,
		GlassmorphicOpacity: 0.2,
		BlurIntensity:       20,
	}))

	var count int64
	require.NoError(t, db.Model(&models.ThemeSetting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// the surviving row is the lowest id one, updated in place
	var row models.ThemeSetting
	require.NoError(t, db.First(&row).Error)
	assert.EqualValues(t, 1, row.ID)
	assert.Equal(t, "pruned", row.CurrentTheme)
}

func TestDBStoreAccessCodePrunesDuplicates(t *testing.T) {
	db := setupTestDB(t)
	st := NewDBStore(db)

	require.NoError(t, db.Create(&models.AccessSetting{AccessCode: "one"}).Error)
	require.NoError(t, db.Create(&models.AccessSetting{AccessCode: "two"}).Error)

	require.NoError(t, st.SetAccessCode("final"))

	var count int64
	require.NoError(t, db.Model(&models.AccessSetting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, "final", st.AccessCode())
}
