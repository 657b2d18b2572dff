package schedule

import (
	"context"
	"sync"
	"time"
)

type loopEntry struct {
	token *Token
	fn    func()
	due   time.Time
	seq   uint64
}

// Loop is a cooperative run loop. Every callback runs on the goroutine
// that called Run, in deadline order and FIFO for equal deadlines.
type Loop struct {
	mu    sync.Mutex
	queue []*loopEntry
	seq   uint64
	wake  chan struct{}
	now   func() time.Time
}

// NewLoop creates an idle loop. Callbacks only run once Run is called.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		now:  time.Now,
	}
}

// Schedule queues fn to run after delay.
func (loop *Loop) Schedule(fn func(), delay time.Duration) *Token {
	if delay < 0 {
		delay = 0
	}
	token := &Token{}

	loop.mu.Lock()
	loop.seq++
	loop.insertLocked(&loopEntry{
		token: token,
		fn:    fn,
		due:   loop.now().Add(delay),
		seq:   loop.seq,
	})
	loop.mu.Unlock()

	loop.signal()
	return token
}

// Post queues fn to run as soon as possible. Hosts use it to hand signals
// from other goroutines to the loop goroutine.
func (loop *Loop) Post(fn func()) {
	loop.Schedule(fn, 0)
}

// Cancel drops the callback identified by token.
func (loop *Loop) Cancel(token *Token) {
	if token == nil {
		return
	}
	token.cancel()

	loop.mu.Lock()
	for index, entry := range loop.queue {
		if entry.token == token {
			loop.queue = append(loop.queue[:index], loop.queue[index+1:]...)
			break
		}
	}
	loop.mu.Unlock()
}

// Pending returns the number of queued callbacks.
func (loop *Loop) Pending() int {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return len(loop.queue)
}

// Run executes callbacks until ctx is done.
func (loop *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		loop.mu.Lock()
		if len(loop.queue) > 0 && !loop.queue[0].due.After(loop.now()) {
			entry := loop.queue[0]
			loop.queue = loop.queue[1:]
			loop.mu.Unlock()

			if !entry.token.Cancelled() {
				entry.fn()
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		wait := time.Hour
		if len(loop.queue) > 0 {
			wait = loop.queue[0].due.Sub(loop.now())
		}
		loop.mu.Unlock()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-loop.wake:
		case <-timer.C:
		}
	}
}

func (loop *Loop) insertLocked(entry *loopEntry) {
	index := len(loop.queue)
	for position, queued := range loop.queue {
		if entry.due.Before(queued.due) {
			index = position
			break
		}
	}
	loop.queue = append(loop.queue, nil)
	copy(loop.queue[index+1:], loop.queue[index:])
	loop.queue[index] = entry
}

func (loop *Loop) signal() {
	select {
	case loop.wake <- struct{}{}:
	default:
	}
}
