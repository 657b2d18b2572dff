package clock

import "sync"

// Fake is a manually driven clock for tests.
type Fake struct {
	mu  sync.Mutex
	now TimePoint
}

// NewFake returns a fake clock starting at start.
func NewFake(start TimePoint) *Fake {
	return &Fake{now: start}
}

func (fake *Fake) Now() TimePoint {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// Advance moves the clock forward by millis.
func (fake *Fake) Advance(millis int64) {
	fake.mu.Lock()
	fake.now = fake.now.Add(millis)
	fake.mu.Unlock()
}

// Set jumps the clock to point.
func (fake *Fake) Set(point TimePoint) {
	fake.mu.Lock()
	fake.now = point
	fake.mu.Unlock()
}
