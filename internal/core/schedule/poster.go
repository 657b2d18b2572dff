package schedule

import "time"

// Poster arms runtime timers and hands expired callbacks to post, which
// must run them on the host's UI thread (fyne.Do, tea.Program.Send).
// The token is checked on that thread, so a Cancel issued there always
// wins over a timer that already fired.
type Poster struct {
	post func(func())
}

// NewPoster returns a scheduler delivering callbacks through post.
func NewPoster(post func(func())) *Poster {
	return &Poster{post: post}
}

func (poster *Poster) Schedule(fn func(), delay time.Duration) *Token {
	if delay < 0 {
		delay = 0
	}
	token := &Token{}
	timer := time.AfterFunc(delay, func() {
		poster.post(func() {
			if token.Cancelled() {
				return
			}
			fn()
		})
	})
	token.stop = timer.Stop
	return token
}

func (poster *Poster) Cancel(token *Token) {
	token.cancel()
}
