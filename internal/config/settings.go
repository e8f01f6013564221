package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 390
	DefaultWindowHeight = 844
)

// Window size bounds
const (
	MinWindowSize = 320
	MaxWindowSize = 4096
)

// Settings manages application configuration. The screen's view state is
// intentionally absent: it resets on every launch.
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
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
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

// GetWindowSize returns the configured window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().Int(KeyWindowWidth)
	height := s.app.Preferences().Int(KeyWindowHeight)
	if width <= 0 || height <= 0 {
		s.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
		return fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	}
	return fyne.NewSize(float32(width), float32(height))
}

// SetWindowSize stores the window size, clamped to sane bounds
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampWindowSize(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampWindowSize(height))
}

func clampWindowSize(v int) int {
	if v < MinWindowSize {
		return MinWindowSize
	}
	if v > MaxWindowSize {
		return MaxWindowSize
	}
	return v
}
