package platform

import (
	"errors"
	"log"
	"time"

	"stopwatch/internal/core/schedule"
)

// IdleWatcher polls the idle provider and reports transitions between
// active and idle. The provider runs off the scheduler's thread since it
// may exec a helper; only its result is posted back, so the scheduler must
// accept Schedule calls from other goroutines.
type IdleWatcher struct {
	provider  IdleProvider
	scheduler schedule.Scheduler
	interval  time.Duration
	threshold time.Duration
	onChange  func(idle bool)

	idle    bool
	running bool
	token   *schedule.Token
	// generation drops results of probes started before the last Stop.
	generation uint64
	spawn      func(func())
}

// NewIdleWatcher creates a stopped watcher. onChange runs on the scheduler's
// thread.
func NewIdleWatcher(provider IdleProvider, scheduler schedule.Scheduler, interval, threshold time.Duration, onChange func(idle bool)) *IdleWatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &IdleWatcher{
		provider:  provider,
		scheduler: scheduler,
		interval:  interval,
		threshold: threshold,
		onChange:  onChange,
		spawn:     func(fn func()) { go fn() },
	}
}

// SetRunner replaces how provider probes are started; the default runs
// each probe on a new goroutine. A nil run restores the default.
func (watcher *IdleWatcher) SetRunner(run func(probe func())) {
	if run == nil {
		run = func(probe func()) { go probe() }
	}
	watcher.spawn = run
}

// Idle reports the last observed state.
func (watcher *IdleWatcher) Idle() bool {
	return watcher.idle
}

// Running reports whether polling is scheduled.
func (watcher *IdleWatcher) Running() bool {
	return watcher.running
}

// Start begins polling if not already running.
func (watcher *IdleWatcher) Start() {
	if watcher.running {
		return
	}
	watcher.running = true
	watcher.token = watcher.scheduler.Schedule(watcher.check, watcher.interval)
}

// Stop cancels polling. A watcher stopped while idle reports active again.
func (watcher *IdleWatcher) Stop() {
	if !watcher.running {
		return
	}
	watcher.scheduler.Cancel(watcher.token)
	watcher.token = nil
	watcher.running = false
	watcher.generation++
	watcher.set(false)
}

func (watcher *IdleWatcher) check() {
	watcher.token = nil
	if !watcher.running {
		return
	}

	generation := watcher.generation
	watcher.spawn(func() {
		idleFor, err := watcher.provider.IdleDuration()
		watcher.scheduler.Schedule(func() {
			watcher.apply(generation, idleFor, err)
		}, 0)
	})
}

func (watcher *IdleWatcher) apply(generation uint64, idleFor time.Duration, err error) {
	if generation != watcher.generation || !watcher.running {
		return
	}

	switch {
	case errors.Is(err, ErrIdleUnsupported):
		log.Printf("idle watcher disabled: %v", err)
		watcher.running = false
		watcher.set(false)
		return
	case err != nil:
		log.Printf("idle check: %v", err)
	default:
		watcher.set(idleFor >= watcher.threshold)
	}

	watcher.token = watcher.scheduler.Schedule(watcher.check, watcher.interval)
}

func (watcher *IdleWatcher) set(idle bool) {
	if watcher.idle == idle {
		return
	}
	watcher.idle = idle
	if watcher.onChange != nil {
		watcher.onChange(idle)
	}
}
