package schedule

import (
	"time"

	"stopwatch/internal/core/clock"
)

type manualEntry struct {
	token *Token
	fn    func()
	due   clock.TimePoint
	seq   uint64
}

// Manual is a deterministic scheduler driven by a fake clock. Callbacks
// only run when the test asks for them.
type Manual struct {
	clock   *clock.Fake
	pending []*manualEntry
	seq     uint64

	// Scheduled and Cancelled count Schedule and effective Cancel calls.
	Scheduled int
	Cancelled int
	// Delays records the delay of every Schedule call in order.
	Delays []time.Duration
}

// NewManual returns a scheduler bound to the fake clock.
func NewManual(fake *clock.Fake) *Manual {
	return &Manual{clock: fake}
}

func (manual *Manual) Schedule(fn func(), delay time.Duration) *Token {
	if delay < 0 {
		delay = 0
	}
	token := &Token{}
	manual.seq++
	manual.pending = append(manual.pending, &manualEntry{
		token: token,
		fn:    fn,
		due:   manual.clock.Now().Add(delay.Milliseconds()),
		seq:   manual.seq,
	})
	manual.Scheduled++
	manual.Delays = append(manual.Delays, delay)
	return token
}

func (manual *Manual) Cancel(token *Token) {
	if token == nil || token.Cancelled() {
		return
	}
	token.cancel()
	manual.Cancelled++
	for index, entry := range manual.pending {
		if entry.token == token {
			manual.pending = append(manual.pending[:index], manual.pending[index+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to run.
func (manual *Manual) Pending() int {
	return len(manual.pending)
}

// RunNext runs the earliest pending callback, moving the clock forward to
// its deadline if needed. It reports whether a callback ran.
func (manual *Manual) RunNext() bool {
	index := manual.earliest()
	if index < 0 {
		return false
	}
	entry := manual.pending[index]
	manual.pending = append(manual.pending[:index], manual.pending[index+1:]...)
	if entry.due > manual.clock.Now() {
		manual.clock.Set(entry.due)
	}
	if !entry.token.Cancelled() {
		entry.fn()
	}
	return true
}

// Advance moves the clock forward by millis, running every callback that
// comes due on the way at its own deadline.
func (manual *Manual) Advance(millis int64) {
	target := manual.clock.Now().Add(millis)
	for {
		index := manual.earliest()
		if index < 0 || manual.pending[index].due > target {
			break
		}
		manual.RunNext()
	}
	manual.clock.Set(target)
}

func (manual *Manual) earliest() int {
	best := -1
	for index, entry := range manual.pending {
		if best < 0 || entry.due < manual.pending[best].due ||
			(entry.due == manual.pending[best].due && entry.seq < manual.pending[best].seq) {
			best = index
		}
	}
	return best
}
