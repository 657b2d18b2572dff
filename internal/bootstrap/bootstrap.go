package bootstrap

import (
	"fmt"

	"stopwatch/internal/audio"
	"stopwatch/internal/core/chronometer"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/countdown"
	"stopwatch/internal/core/model"
	"stopwatch/internal/core/render"
	"stopwatch/internal/core/schedule"
	"stopwatch/internal/platform"
)

// Core is the stopwatch wired for one host: both engines, the arbiter
// and the pause gate, all driven by the host's scheduler.
type Core struct {
	Countdown   *countdown.Engine
	Chronometer *chronometer.Engine
	Arbiter     *render.Arbiter
	Gate        *render.PauseGate
	Lifecycle   *render.Lifecycle
	Sound       *audio.Switch

	scheduler schedule.Scheduler
	idle      platform.IdleProvider
	idleRun   func(func())
	watcher   *platform.IdleWatcher
}

// New wires a core. player may be nil for silence.
func New(config model.StopwatchConfig, clk clock.Clock, scheduler schedule.Scheduler, player audio.Player) *Core {
	sound := audio.NewSwitch(player, config.SoundEnabled)
	countdownEngine := countdown.New(config.Countdown, clk, scheduler, sound)
	chronometerEngine := chronometer.New(config.Chronometer, clk, scheduler)
	arbiter := render.New(clk, countdownEngine, chronometerEngine)
	gate := render.NewPauseGate(arbiter)

	return &Core{
		Countdown:   countdownEngine,
		Chronometer: chronometerEngine,
		Arbiter:     arbiter,
		Gate:        gate,
		Lifecycle:   render.NewLifecycle(arbiter, gate),
		Sound:       sound,
		scheduler:   scheduler,
	}
}

// SetIdleProvider enables idle pausing through provider on the next Apply.
func (core *Core) SetIdleProvider(provider platform.IdleProvider) {
	core.idle = provider
}

// SetIdleRunner controls where idle probes run; nil means a new goroutine
// per probe.
func (core *Core) SetIdleRunner(run func(probe func())) {
	core.idleRun = run
}

// Apply pushes updated settings into the running core. A countdown
// length change while the countdown runs takes effect on its next start.
func (core *Core) Apply(config model.StopwatchConfig) error {
	if err := core.Countdown.Configure(config.Countdown.Seconds); err != nil {
		return fmt.Errorf("apply countdown: %w", err)
	}

	core.Sound.SetEnabled(config.SoundEnabled)

	if core.watcher != nil {
		core.watcher.Stop()
		core.watcher = nil
	}
	if config.IdlePauseEnabled && core.idle != nil {
		core.watcher = platform.NewIdleWatcher(core.idle, core.scheduler, config.IdleCheckInterval, config.IdlePauseAfter, func(idle bool) {
			core.Lifecycle.Pause(render.ReasonIdle, idle)
		})
		core.watcher.SetRunner(core.idleRun)
		core.watcher.Start()
	}
	return nil
}

// IdleWatching reports whether idle pausing is active.
func (core *Core) IdleWatching() bool {
	return core.watcher != nil && core.watcher.Running()
}

// Shutdown stops background work before the host exits.
func (core *Core) Shutdown() {
	if core.watcher != nil {
		core.watcher.Stop()
		core.watcher = nil
	}
	core.Lifecycle.SurfaceDestroyed()
}

// Status describes what the core is doing, for tray and log lines.
func (core *Core) Status() string {
	state := core.Arbiter.State()
	switch {
	case !state.SurfaceAvailable:
		return "card hidden"
	case state.RenderingPaused:
		return "paused"
	case state.CountdownDone:
		display := core.Chronometer.Display()
		return "running " + display.Minutes + ":" + display.Seconds
	default:
		second := core.Countdown.Frame().Second
		if second == 0 {
			second = int64(core.Countdown.Duration())
		}
		return fmt.Sprintf("starting in %ds", second)
	}
}
