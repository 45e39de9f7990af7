package models

// Theme defaults, matching the site's initial look.
const (
	DefaultTheme               = "cosmic-purple"
	DefaultFont                = "inter"
	DefaultGlassmorphicOpacity = 0.2
	DefaultBlurIntensity       = 20
)

// ThemeSetting holds the site wide visual settings.
// Exactly one logical row exists at any time.
type ThemeSetting struct {
	ID                  uint64  `gorm:"primaryKey" json:"-"`
	CurrentTheme        string  `gorm:"size:50;not null" json:"current_theme"`
	Font                string  `gorm:"size:50;not null" json:"font"`
	GlassmorphicOpacity float64 `gorm:"not null" json:"glassmorphic_opacity"`
	BlurIntensity       int     `gorm:"not null" json:"blur_intensity"`
}

// DefaultThemeSetting returns the seeded theme values.
func DefaultThemeSetting() ThemeSetting {
	return ThemeSetting{
		CurrentTheme:        DefaultTheme,
		Font:                DefaultFont,
		GlassmorphicOpacity: DefaultGlassmorphicOpacity,
		BlurIntensity:       DefaultBlurIntensity,
	}
}
