package countdown

import (
	"errors"
	"fmt"
	"time"

	"stopwatch/internal/audio"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/model"
	"stopwatch/internal/core/schedule"
)

// ErrInvalidDuration indicates a negative countdown duration.
var ErrInvalidDuration = errors.New("invalid countdown duration")

const defaultTickInterval = 40 * time.Millisecond

// Engine counts down from a configured number of seconds to zero, playing a
// cue on every whole second and on finish.
type Engine struct {
	clock     clock.Clock
	scheduler schedule.Scheduler
	player    audio.Player
	animation AnimationConfig
	interval  time.Duration

	seconds    int64
	deadline   clock.TimePoint
	running    bool
	lastSecond int64
	token      *schedule.Token
	frame      Frame
	listener   func(Event)
}

// New creates a countdown engine. A negative configured duration is treated
// as zero.
func New(config model.CountdownConfig, clk clock.Clock, scheduler schedule.Scheduler, player audio.Player) *Engine {
	if config.TickInterval <= 0 {
		config.TickInterval = defaultTickInterval
	}
	if config.Seconds < 0 {
		config.Seconds = 0
	}
	if player == nil {
		player = audio.Nop{}
	}
	return &Engine{
		clock:     clk,
		scheduler: scheduler,
		player:    player,
		animation: DefaultAnimation(),
		interval:  config.TickInterval,
		seconds:   int64(config.Seconds),
	}
}

// SetListener registers the consumer of tick and finish events.
func (engine *Engine) SetListener(listener func(Event)) {
	engine.listener = listener
}

// SetAnimation replaces the per-second animation values.
func (engine *Engine) SetAnimation(config AnimationConfig) {
	engine.animation = config
}

// Configure sets the countdown duration. It has no effect while running.
func (engine *Engine) Configure(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("configure countdown to %ds: %w", seconds, ErrInvalidDuration)
	}
	if engine.running {
		return nil
	}
	engine.seconds = int64(seconds)
	return nil
}

// Duration returns the configured duration in seconds.
func (engine *Engine) Duration() int {
	return int(engine.seconds)
}

// Running reports whether the countdown is in progress.
func (engine *Engine) Running() bool {
	return engine.running
}

// Frame returns the last computed visual state.
func (engine *Engine) Frame() Frame {
	return engine.frame
}

// Start begins the countdown if it is not already running.
func (engine *Engine) Start() {
	if engine.running {
		return
	}
	engine.lastSecond = 0
	engine.deadline = engine.clock.Now().Add(engine.seconds * millisPerSecond)
	engine.running = true
	engine.token = engine.scheduler.Schedule(engine.tick, 0)
}

func (engine *Engine) tick() {
	engine.token = nil
	if !engine.running {
		return
	}
	if !engine.update() && engine.running && engine.token == nil {
		engine.token = engine.scheduler.Schedule(engine.tick, engine.interval)
	}
}

// update advances the countdown to the current time and reports whether it
// finished.
func (engine *Engine) update() bool {
	millisLeft := engine.deadline.Sub(engine.clock.Now())
	if millisLeft <= 0 {
		engine.running = false
		engine.emit(Event{Type: EventFinish})
		engine.player.Play(audio.CueFinish)
		return true
	}

	engine.frame = engine.animation.FrameAt(millisLeft)
	engine.emit(Event{
		Type:       EventTick,
		MillisLeft: millisLeft,
		Frame:      engine.frame,
	})
	currentSecond := millisLeft / millisPerSecond
	if currentSecond != engine.lastSecond {
		engine.player.Play(audio.CueCountdown)
		engine.lastSecond = currentSecond
	}
	return false
}

func (engine *Engine) emit(event Event) {
	if engine.listener != nil {
		engine.listener(event)
	}
}
