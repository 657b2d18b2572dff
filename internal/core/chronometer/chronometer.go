package chronometer

import (
	"time"

	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/model"
	"stopwatch/internal/core/schedule"
)

const defaultTickInterval = 41 * time.Millisecond

// Engine shows the time elapsed since a base point.
type Engine struct {
	clock     clock.Clock
	scheduler schedule.Scheduler
	interval  time.Duration

	base     clock.TimePoint
	running  bool
	token    *schedule.Token
	display  Display
	listener func(Event)
}

// New creates a stopped chronometer based at the current time.
func New(config model.ChronometerConfig, clk clock.Clock, scheduler schedule.Scheduler) *Engine {
	if config.TickInterval <= 0 {
		config.TickInterval = defaultTickInterval
	}
	engine := &Engine{
		clock:     clk,
		scheduler: scheduler,
		interval:  config.TickInterval,
	}
	engine.SetBase(clk.Now())
	return engine
}

// SetListener registers the consumer of change events.
func (engine *Engine) SetListener(listener func(Event)) {
	engine.listener = listener
}

// SetBase sets the reference point and refreshes the display immediately.
func (engine *Engine) SetBase(base clock.TimePoint) {
	engine.base = base
	engine.update()
}

// Base returns the reference point.
func (engine *Engine) Base() clock.TimePoint {
	return engine.base
}

// Display returns the last computed display.
func (engine *Engine) Display() Display {
	return engine.display
}

// Running reports whether periodic updates are scheduled.
func (engine *Engine) Running() bool {
	return engine.running
}

// Start schedules periodic updates if not already running.
func (engine *Engine) Start() {
	if engine.running {
		return
	}
	engine.running = true
	engine.token = engine.scheduler.Schedule(engine.tick, engine.interval)
}

// Stop cancels periodic updates if running.
func (engine *Engine) Stop() {
	if !engine.running {
		return
	}
	engine.scheduler.Cancel(engine.token)
	engine.token = nil
	engine.running = false
}

func (engine *Engine) tick() {
	engine.token = nil
	if !engine.running {
		return
	}
	engine.update()
	if engine.running && engine.token == nil {
		engine.token = engine.scheduler.Schedule(engine.tick, engine.interval)
	}
}

func (engine *Engine) update() {
	engine.display = Format(engine.clock.Now().Sub(engine.base))
	if engine.listener != nil {
		engine.listener(Event{Type: EventChange, Display: engine.display})
	}
}
