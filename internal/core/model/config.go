package model

import "time"

// CountdownConfig defines the lead-in countdown.
type CountdownConfig struct {
	Seconds      int
	TickInterval time.Duration
}

// ChronometerConfig defines the elapsed-time display refresh.
type ChronometerConfig struct {
	TickInterval time.Duration
}

// StopwatchConfig contains runtime settings for the stopwatch engines.
type StopwatchConfig struct {
	Countdown   CountdownConfig
	Chronometer ChronometerConfig

	SoundEnabled bool

	IdlePauseEnabled  bool
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration
}

// DefaultStopwatchConfig returns the stock three-second lead-in, a ~25 Hz
// countdown and a ~24 Hz chronometer.
func DefaultStopwatchConfig() StopwatchConfig {
	return StopwatchConfig{
		Countdown: CountdownConfig{
			Seconds:      3,
			TickInterval: 40 * time.Millisecond,
		},
		Chronometer: ChronometerConfig{
			TickInterval: 41 * time.Millisecond,
		},
		SoundEnabled:      true,
		IdlePauseEnabled:  false,
		IdlePauseAfter:    2 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}
