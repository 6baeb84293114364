package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeyColumnWidth = "table_column_width"
	KeyTextSize    = "text_size"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultColumnWidth = 120
	DefaultTextSize    = 15
)

// Bounds for numeric settings
const (
	MinColumnWidth = 60
	MaxColumnWidth = 300
	MinTextSize    = 10
	MaxTextSize    = 24
)

// Settings manages UI preferences. Books are never stored here.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetColumnWidth returns the width of each book table column
func (s *Settings) GetColumnWidth() int {
	value := s.app.Preferences().Int(KeyColumnWidth)
	if value <= 0 {
		s.SetColumnWidth(DefaultColumnWidth)
		return DefaultColumnWidth
	}
	return value
}

// SetColumnWidth sets the book table column width
func (s *Settings) SetColumnWidth(width int) {
	s.app.Preferences().SetInt(KeyColumnWidth, clamp(width, MinColumnWidth, MaxColumnWidth))
}

// GetTextSize returns the base text size used by the theme
func (s *Settings) GetTextSize() int {
	return s.app.Preferences().IntWithFallback(KeyTextSize, DefaultTextSize)
}

// SetTextSize sets the base text size
func (s *Settings) SetTextSize(size int) {
	s.app.Preferences().SetInt(KeyTextSize, clamp(size, MinTextSize, MaxTextSize))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
