package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyTickInterval = "tick_interval_ms"
	KeyProgressStep = "progress_step"
	KeyLogLevel     = "log_level"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultTickIntervalMS = 500
	DefaultProgressStep   = 10
	DefaultLogLevel       = "info"
)

// Bounds
const (
	MinTickIntervalMS = 50
	MaxTickIntervalMS = 5000
	MinProgressStep   = 1
	MaxProgressStep   = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTickIntervalMS returns the progress timer interval in milliseconds
func (s *Settings) GetTickIntervalMS() int {
	value := s.app.Preferences().Int(KeyTickInterval)
	if value <= 0 {
		s.SetTickIntervalMS(DefaultTickIntervalMS)
		return DefaultTickIntervalMS
	}
	return value
}

// SetTickIntervalMS sets the progress timer interval, clamped to the allowed range
func (s *Settings) SetTickIntervalMS(ms int) {
	if ms < MinTickIntervalMS {
		ms = MinTickIntervalMS
	}
	if ms > MaxTickIntervalMS {
		ms = MaxTickIntervalMS
	}
	s.app.Preferences().SetInt(KeyTickInterval, ms)
}

// GetTickInterval returns the progress timer interval as a duration
func (s *Settings) GetTickInterval() time.Duration {
	return time.Duration(s.GetTickIntervalMS()) * time.Millisecond
}

// GetProgressStep returns how many percent each tick adds
func (s *Settings) GetProgressStep() int {
	value := s.app.Preferences().Int(KeyProgressStep)
	if value <= 0 {
		s.SetProgressStep(DefaultProgressStep)
		return DefaultProgressStep
	}
	return value
}

// SetProgressStep sets the per-tick progress step
func (s *Settings) SetProgressStep(step int) {
	if step < MinProgressStep {
		step = MinProgressStep
	}
	if step > MaxProgressStep {
		step = MaxProgressStep
	}
	s.app.Preferences().SetInt(KeyProgressStep, step)
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

// GetLogLevel returns the diagnostic log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the diagnostic log level name
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
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
