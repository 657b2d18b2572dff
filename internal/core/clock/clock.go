package clock

import "time"

// TimePoint is a monotonic timestamp in milliseconds. Only differences
// between two points are meaningful.
type TimePoint int64

// Sub returns the number of milliseconds between two points.
func (point TimePoint) Sub(other TimePoint) int64 {
	return int64(point - other)
}

// Add returns the point shifted by millis.
func (point TimePoint) Add(millis int64) TimePoint {
	return point + TimePoint(millis)
}

// Clock supplies monotonic time to the engines.
type Clock interface {
	Now() TimePoint
}

// System reads the runtime's monotonic clock. It is immune to wall-clock
// adjustments because time.Since uses the monotonic reading.
type System struct {
	origin time.Time
}

// NewSystem returns a clock anchored at the current instant.
func NewSystem() *System {
	return &System{origin: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (system *System) Now() TimePoint {
	return TimePoint(time.Since(system.origin) / time.Millisecond)
}
