package store

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cometfolio/cometfolio/internal/db/models"
)

// DBStore persists settings in a relational database through gorm.
// Singleton categories live in single-row tables, append-only categories in
// tables ordered by their auto-increment id.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a relational store on top of an open gorm handle.
func NewDBStore(db *gorm.DB) *DBStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &DBStore{db: db}
}

// Mode reports the backend kind.
func (s *DBStore) Mode() string {
	return ModeDatabase
}

// AccessCode returns the stored access code, empty when no row exists.
func (s *DBStore) AccessCode() string {
	var row models.AccessSetting

	err := s.db.Order("id asc").First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("failed to read access setting, degrading to empty")
		}

		return ""
	}

	return row.AccessCode
}

// SetAccessCode replaces the stored access code and enforces the single-row invariant.
func (s *DBStore) SetAccessCode(code string) error {
	var row models.AccessSetting

	err := s.db.Order("id asc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(s.db.Create(&models.AccessSetting{AccessCode: code}).Error,
			"failed to create access setting")
	}

	if err != nil {
		return errors.Wrap(err, "failed to load access setting")
	}

	if err = s.pruneDuplicates(&models.AccessSetting{}, row.ID); err != nil {
		return err
	}

	row.AccessCode = code

	return errors.Wrap(s.db.Save(&row).Error, "failed to update access setting")
}

// Theme returns the stored theme settings, defaults when no row exists.
func (s *DBStore) Theme() models.ThemeSetting {
	var row models.ThemeSetting

	err := s.db.Order("id asc").First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("failed to read theme setting, degrading to defaults")
		}

		return models.DefaultThemeSetting()
	}

	return row
}

// SetTheme replaces the stored theme settings and enforces the single-row invariant.
func (s *DBStore) SetTheme(theme models.ThemeSetting) error {
	var row models.ThemeSetting

	err := s.db.Order("id asc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		theme.ID = 0
		return errors.Wrap(s.db.Create(&theme).Error, "failed to create theme setting")
	}

	if err != nil {
		return errors.Wrap(err, "failed to load theme setting")
	}

	if err = s.pruneDuplicates(&models.ThemeSetting{}, row.ID); err != nil {
		return err
	}

	row.CurrentTheme = theme.CurrentTheme
	row.Font = theme.Font
	row.GlassmorphicOpacity = theme.GlassmorphicOpacity
	row.BlurIntensity = theme.BlurIntensity

	return errors.Wrap(s.db.Save(&row).Error, "failed to update theme setting")
}

// pruneDuplicates deletes all rows of a singleton table except keepID.
// Duplicate rows can only appear through outside writes, the prune keeps the
// single-row invariant self healing.
func (s *DBStore) pruneDuplicates(model interface{}, keepID uint64) error {
	return errors.Wrap(s.db.Where("id <> ?", keepID).Delete(model).Error,
		"failed to prune duplicate singleton rows")
}

// MediaSlots returns all slots ordered by index, filling missing ones with defaults.
func (s *DBStore) MediaSlots() []models.MediaSlot {
	slots := models.DefaultMediaSlots()

	var rows []models.MediaSlot
	if err := s.db.Order("slot asc").Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("failed to read media slots, degrading to defaults")
		return slots
	}

	for _, row := range rows {
		if row.Slot >= 1 && row.Slot <= models.MediaSlotCount {
			slots[row.Slot-1] = row
		}
	}

	return slots
}

// SetMediaSlot upserts a single slot row keyed by its index.
func (s *DBStore) SetMediaSlot(slot models.MediaSlot) error {
	var row models.MediaSlot

	err := s.db.Where("slot = ?", slot.Slot).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slot.ID = 0
		return errors.Wrap(s.db.Create(&slot).Error, "failed to create media slot")
	}

	if err != nil {
		return errors.Wrap(err, "failed to load media slot")
	}

	row.Enabled = slot.Enabled
	row.Title = slot.Title
	row.Caption = slot.Caption

	return errors.Wrap(s.db.Save(&row).Error, "failed to update media slot")
}

// AppendFeedback stores one entry and prunes the table to its retention bound.
func (s *DBStore) AppendFeedback(entry *models.FeedbackEntry) error {
	if err := s.db.Create(entry).Error; err != nil {
		return errors.Wrap(err, "failed to store feedback entry")
	}

	return s.pruneLog(&models.FeedbackEntry{}, models.FeedbackRetention)
}

// ListFeedback returns stored feedback entries, newest first.
func (s *DBStore) ListFeedback() []models.FeedbackEntry {
	var rows []models.FeedbackEntry

	if err := s.db.Order("id desc").Limit(models.FeedbackRetention).Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("failed to list feedback, degrading to empty")
		return nil
	}

	return rows
}

// AppendAnalytics stores one event and prunes the table to its retention bound.
func (s *DBStore) AppendAnalytics(event *models.AnalyticsEvent) error {
	if err := s.db.Create(event).Error; err != nil {
		return errors.Wrap(err, "failed to store analytics event")
	}

	return s.pruneLog(&models.AnalyticsEvent{}, models.AnalyticsRetention)
}

// ListAnalytics returns stored events, newest first.
func (s *DBStore) ListAnalytics() []models.AnalyticsEvent {
	var rows []models.AnalyticsEvent

	if err := s.db.Order("id desc").Limit(models.AnalyticsRetention).Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("failed to list analytics, degrading to empty")
		return nil
	}

	return rows
}

// pruneLog drops the oldest rows of an append-only table beyond the retention bound.
func (s *DBStore) pruneLog(model interface{}, retention int64) error {
	var count int64
	if err := s.db.Model(model).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count log entries")
	}

	excess := count - retention
	if excess <= 0 {
		return nil
	}

	oldest := s.db.Model(model).Select("id").Order("id asc").Limit(int(excess))

	return errors.Wrap(s.db.Where("id IN (?)", oldest).Delete(model).Error,
		"failed to prune log entries")
}
