package render

import (
	"errors"

	"stopwatch/internal/core/chronometer"
	"stopwatch/internal/core/countdown"
)

// ErrSurfaceUnavailable indicates the surface cannot be locked right now.
var ErrSurfaceUnavailable = errors.New("surface unavailable")

// Scene is everything a single draw renders.
type Scene struct {
	Engine      ActiveEngine
	Width       int
	Height      int
	Countdown   countdown.Frame
	Chronometer chronometer.Display
}

// Canvas is a locked drawing target. It must not be used after it has been
// handed back to UnlockAndPost.
type Canvas interface {
	Draw(scene Scene)
}

// Surface grants exclusive, short-lived write access to a drawable area.
// Lock may fail transiently; a nil canvas with a nil error also means
// nothing can be drawn.
type Surface interface {
	Lock() (Canvas, error)
	UnlockAndPost(canvas Canvas)
}
