package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/textcfg"
)

// Settings file names under the data directory, one per category.
const (
	accessFile    = "access_settings.txt"
	themeFile     = "theme_settings.txt"
	mediaFile     = "media_settings.json"
	feedbackFile  = "feedback/feedback.json"
	analyticsFile = "analytics/events.json"
)

// FileStore persists settings in flat files under a single data directory.
// Singleton categories are key=value files, media and the append-only logs
// are JSON. Every mutation rewrites the whole file, so writers of the same
// category are serialized behind a per-category mutex.
type FileStore struct {
	root string

	accessMu    sync.Mutex
	themeMu     sync.Mutex
	mediaMu     sync.Mutex
	feedbackMu  sync.Mutex
	analyticsMu sync.Mutex
}

// NewFileStore creates a flat file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Mode reports the backend kind.
func (s *FileStore) Mode() string {
	return ModeFiles
}

// AccessCode returns the stored access code, empty when the file is missing.
func (s *FileStore) AccessCode() string {
	kv := textcfg.ParseKV(s.readFile(accessFile))
	return kv["access_code"]
}

// SetAccessCode overwrites the access code file wholesale.
func (s *FileStore) SetAccessCode(code string) error {
	s.accessMu.Lock()
	defer s.accessMu.Unlock()

	return s.writeFile(accessFile, []byte(textcfg.RenderKV(map[string]string{
		"access_code": code,
	})))
}

// Theme returns the stored theme settings. Missing or malformed fields
// degrade to their defaults.
func (s *FileStore) Theme() models.ThemeSetting {
	theme := models.DefaultThemeSetting()
	kv := textcfg.ParseKV(s.readFile(themeFile))

	if v, ok := kv["current_theme"]; ok && v != "" {
		theme.CurrentTheme = v
	}

	if v, ok := kv["font"]; ok && v != "" {
		theme.Font = v
	}

	if v, ok := kv["glassmorphic_opacity"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			theme.GlassmorphicOpacity = f
		}
	}

	if v, ok := kv["blur_intensity"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			theme.BlurIntensity = n
		}
	}

	return theme
}

// SetTheme overwrites the theme file wholesale.
func (s *FileStore) SetTheme(theme models.ThemeSetting) error {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	return s.writeFile(themeFile, []byte(textcfg.RenderKV(map[string]string{
		"current_theme":        theme.CurrentTheme,
		"font":                 theme.Font,
		"glassmorphic_opacity": strconv.FormatFloat(theme.GlassmorphicOpacity, 'g', -1, 64),
		"blur_intensity":       strconv.Itoa(theme.BlurIntensity),
	})))
}

// MediaSlots returns all slots ordered by index, filling missing ones with defaults.
func (s *FileStore) MediaSlots() []models.MediaSlot {
	slots := models.DefaultMediaSlots()

	stored := map[string]models.MediaSlot{}
	if raw := s.readFile(mediaFile); raw != "" {
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			log.Error().Err(err).Msg("malformed media settings file, degrading to defaults")
			return slots
		}
	}

	for key, slot := range stored {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 1 || idx > models.MediaSlotCount {
			continue
		}

		slot.Slot = idx
		slots[idx-1] = slot
	}

	return slots
}

// SetMediaSlot rewrites the media file with one slot replaced.
// The read-modify-write runs under the media lock so one slot's update never
// disturbs another's stored value.
func (s *FileStore) SetMediaSlot(slot models.MediaSlot) error {
	s.mediaMu.Lock()
	defer s.mediaMu.Unlock()

	stored := map[string]models.MediaSlot{}
	if raw := s.readFile(mediaFile); raw != "" {
		// a malformed file is dropped, the write below restores it
		_ = json.Unmarshal([]byte(raw), &stored)
	}

	stored[strconv.Itoa(slot.Slot)] = slot

	out, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode media settings")
	}

	return s.writeFile(mediaFile, out)
}

// AppendFeedback appends one entry to the feedback log file and trims it to
// the retention bound, oldest first.
func (s *FileStore) AppendFeedback(entry *models.FeedbackEntry) error {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()

	var entries []models.FeedbackEntry
	s.readLog(feedbackFile, &entries)

	entries = append(entries, *entry)
	if len(entries) > models.FeedbackRetention {
		entries = entries[len(entries)-models.FeedbackRetention:]
	}

	return s.writeLog(feedbackFile, entries)
}

// ListFeedback returns stored feedback entries, newest first.
func (s *FileStore) ListFeedback() []models.FeedbackEntry {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()

	var entries []models.FeedbackEntry
	s.readLog(feedbackFile, &entries)

	reverse(entries)

	return entries
}

// AppendAnalytics appends one event to the analytics log file and trims it to
// the retention bound, oldest first.
func (s *FileStore) AppendAnalytics(event *models.AnalyticsEvent) error {
	s.analyticsMu.Lock()
	defer s.analyticsMu.Unlock()

	var events []models.AnalyticsEvent
	s.readLog(analyticsFile, &events)

	events = append(events, *event)
	if len(events) > models.AnalyticsRetention {
		events = events[len(events)-models.AnalyticsRetention:]
	}

	return s.writeLog(analyticsFile, events)
}

// ListAnalytics returns stored events, newest first.
func (s *FileStore) ListAnalytics() []models.AnalyticsEvent {
	s.analyticsMu.Lock()
	defer s.analyticsMu.Unlock()

	var events []models.AnalyticsEvent
	s.readLog(analyticsFile, &events)

	reverse(events)

	return events
}

// readLog decodes a JSON array log file into out. Missing or malformed files
// degrade to an empty log.
func (s *FileStore) readLog(name string, out interface{}) {
	raw := s.readFile(name)
	if raw == "" {
		return
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Error().Err(err).Str("file", name).Msg("malformed log file, degrading to empty")
	}
}

// writeLog rewrites a JSON array log file wholesale.
func (s *FileStore) writeLog(name string, entries interface{}) error {
	out, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "failed to encode log file")
	}

	return s.writeFile(name, out)
}

// readFile returns the file content, empty on any read failure.
func (s *FileStore) readFile(name string) string {
	raw, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		return ""
	}

	return string(raw)
}

// writeFile overwrites a file wholesale, creating parent directories on demand.
func (s *FileStore) writeFile(name string, data []byte) error {
	path := filepath.Join(s.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint: mnd
		return errors.Wrap(err, "failed to create data directory")
	}

	return errors.Wrap(os.WriteFile(path, data, 0o640), "failed to write settings file") //nolint: mnd
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
