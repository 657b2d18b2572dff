package schedule

import (
	"sync/atomic"
	"time"
)

// Scheduler runs callbacks after a delay on a single logical thread.
type Scheduler interface {
	Schedule(fn func(), delay time.Duration) *Token
	Cancel(token *Token)
}

// Token identifies one scheduled callback. Once cancelled it never fires.
type Token struct {
	cancelled atomic.Bool
	stop      func() bool
}

// Cancelled reports whether Cancel was called for the token.
func (token *Token) Cancelled() bool {
	return token != nil && token.cancelled.Load()
}

func (token *Token) cancel() {
	if token == nil {
		return
	}
	token.cancelled.Store(true)
	if token.stop != nil {
		token.stop()
	}
}
