package render

import (
	"log"

	"stopwatch/internal/core/chronometer"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/countdown"
)

// CountdownEngine is the part of the countdown the arbiter drives.
type CountdownEngine interface {
	Start()
	SetListener(listener func(countdown.Event))
}

// ChronometerEngine is the part of the chronometer the arbiter drives.
type ChronometerEngine interface {
	Start()
	Stop()
	SetBase(base clock.TimePoint)
	SetListener(listener func(chronometer.Event))
}

// Arbiter decides which engine runs and draws it on the surface.
//
// Rendering requires a surface and rendering not being paused. The
// countdown runs first; once it finishes, the chronometer takes over from
// the finish instant. All methods must be called from the scheduler's
// thread.
type Arbiter struct {
	clock       clock.Clock
	countdown   CountdownEngine
	chronometer ChronometerEngine

	surface Surface
	state   State
	width   int
	height  int
}

// New wires the arbiter as the listener of both engines.
func New(clk clock.Clock, countdownEngine CountdownEngine, chronometerEngine ChronometerEngine) *Arbiter {
	arbiter := &Arbiter{
		clock:       clk,
		countdown:   countdownEngine,
		chronometer: chronometerEngine,
	}
	countdownEngine.SetListener(arbiter.HandleCountdown)
	chronometerEngine.SetListener(arbiter.HandleChronometer)
	return arbiter
}

// State returns a snapshot of the decision flags.
func (arbiter *Arbiter) State() State {
	return arbiter.state
}

// ActiveEngine returns the engine currently selected for rendering.
func (arbiter *Arbiter) ActiveEngine() ActiveEngine {
	return arbiter.state.ActiveEngine()
}

// SurfaceCreated keeps the surface and resumes rendering; a new surface
// implicitly clears a previous pause.
func (arbiter *Arbiter) SurfaceCreated(surface Surface) {
	arbiter.state.RenderingPaused = false
	arbiter.surface = surface
	arbiter.state.SurfaceAvailable = surface != nil
	arbiter.updateRenderingState()
}

// SurfaceChanged records the surface dimensions used for layout.
func (arbiter *Arbiter) SurfaceChanged(width, height int) {
	arbiter.width = width
	arbiter.height = height
}

// SurfaceDestroyed drops the surface and stops rendering.
func (arbiter *Arbiter) SurfaceDestroyed() {
	arbiter.surface = nil
	arbiter.state.SurfaceAvailable = false
	arbiter.updateRenderingState()
}

// RenderingPaused updates the pause flag.
func (arbiter *Arbiter) RenderingPaused(paused bool) {
	arbiter.state.RenderingPaused = paused
	arbiter.updateRenderingState()
}

// HandleCountdown consumes countdown events.
func (arbiter *Arbiter) HandleCountdown(event countdown.Event) {
	switch event.Type {
	case countdown.EventTick:
		if arbiter.surface != nil {
			arbiter.draw(Scene{Engine: EngineCountdown, Countdown: event.Frame})
		}
	case countdown.EventFinish:
		arbiter.state.CountdownDone = true
		arbiter.chronometer.SetBase(arbiter.clock.Now())
		arbiter.updateRenderingState()
	}
}

// HandleChronometer consumes chronometer events.
func (arbiter *Arbiter) HandleChronometer(event chronometer.Event) {
	if event.Type != chronometer.EventChange {
		return
	}
	if arbiter.surface != nil {
		arbiter.draw(Scene{Engine: EngineChronometer, Chronometer: event.Display})
	}
}

// updateRenderingState starts the selected engine, or stops the
// chronometer when nothing should render. The countdown is never stopped
// here: it only runs from an explicit start and finishes on its own.
func (arbiter *Arbiter) updateRenderingState() {
	switch arbiter.state.ActiveEngine() {
	case EngineChronometer:
		arbiter.chronometer.Start()
	case EngineCountdown:
		arbiter.countdown.Start()
	default:
		arbiter.chronometer.Stop()
	}
}

func (arbiter *Arbiter) draw(scene Scene) {
	canvas, err := arbiter.surface.Lock()
	if err != nil {
		log.Printf("unable to lock surface: %v", err)
		return
	}
	if canvas == nil {
		return
	}
	defer arbiter.surface.UnlockAndPost(canvas)

	scene.Width = arbiter.width
	scene.Height = arbiter.height
	canvas.Draw(scene)
}
