package countdown

import (
	"strconv"
	"time"
)

const millisPerSecond = int64(time.Second / time.Millisecond)

// AnimationConfig contains the per-second animation values.
type AnimationConfig struct {
	// Duration is the point within each second when the digit is fully
	// risen.
	Duration time.Duration
	// MaxOffset is the vertical offset of the digit at the start of a second.
	MaxOffset float64
	// AlphaDelimiter is the opacity reached at Duration.
	AlphaDelimiter float64
}

// DefaultAnimation returns the stock rise-and-fade animation.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{
		Duration:       850 * time.Millisecond,
		MaxOffset:      30,
		AlphaDelimiter: 0.95,
	}
}

// Frame is the visual state of the countdown digit.
type Frame struct {
	Text    string
	Second  int64
	OffsetY float64
	Alpha   float64
}

// FrameAt maps the remaining time to the digit's text, offset and opacity.
//
// During the first Duration of every second the digit rises from MaxOffset
// to 0 while fading in to AlphaDelimiter; for the rest of the second it stays
// in place and keeps fading towards 1.
func (config AnimationConfig) FrameAt(millisLeft int64) Frame {
	if millisLeft < 0 {
		millisLeft = 0
	}
	second := millisLeft/millisPerSecond + 1
	elapsed := float64(millisPerSecond - millisLeft%millisPerSecond)
	duration := float64(config.Duration.Milliseconds())
	if duration <= 0 {
		duration = 1
	}

	frame := Frame{
		Text:   strconv.FormatInt(second, 10),
		Second: second,
	}
	if elapsed <= duration {
		factor := elapsed / duration
		frame.OffsetY = config.MaxOffset * (1 - factor)
		frame.Alpha = factor * config.AlphaDelimiter
		return frame
	}
	factor := (elapsed - duration) / duration
	frame.Alpha = config.AlphaDelimiter + factor*(1-config.AlphaDelimiter)
	return frame
}
