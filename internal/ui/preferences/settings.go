package preferences

import (
	"time"

	"stopwatch/internal/core/model"
)

const (
	MinCountdownSeconds = 0
	MaxCountdownSeconds = 59
	MinCardOpacity      = 0.5
	MaxCardOpacity      = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	CountdownSeconds int
	SoundEnabled     bool

	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration

	CardOpacity float64
	Fullscreen  bool
}

// DefaultSettings returns default settings for the stopwatch.
func DefaultSettings() Settings {
	defaults := model.DefaultStopwatchConfig()
	return Settings{
		CountdownSeconds: defaults.Countdown.Seconds,
		SoundEnabled:     defaults.SoundEnabled,
		IdlePauseEnabled: defaults.IdlePauseEnabled,
		IdlePauseAfter:   defaults.IdlePauseAfter,
		CardOpacity:      0.9,
		Fullscreen:       false,
	}
}

// StopwatchConfig converts settings to the engines' runtime config.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	config := model.DefaultStopwatchConfig()
	config.Countdown.Seconds = settings.CountdownSeconds
	config.SoundEnabled = settings.SoundEnabled
	config.IdlePauseEnabled = settings.IdlePauseEnabled
	if settings.IdlePauseAfter > 0 {
		config.IdlePauseAfter = settings.IdlePauseAfter
	}
	return config
}

// ValidCountdown reports whether seconds is an accepted countdown length.
func ValidCountdown(seconds int) bool {
	return seconds >= MinCountdownSeconds && seconds <= MaxCountdownSeconds
}

// ValidOpacity reports whether opacity is an accepted card opacity.
func ValidOpacity(opacity float64) bool {
	return opacity >= MinCardOpacity && opacity <= MaxCardOpacity
}
