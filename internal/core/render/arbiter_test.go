package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopwatch/internal/core/chronometer"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/countdown"
)

type fakeCountdown struct {
	starts   int
	listener func(countdown.Event)
}

func (fake *fakeCountdown) Start() { fake.starts++ }

func (fake *fakeCountdown) SetListener(listener func(countdown.Event)) {
	fake.listener = listener
}

type fakeChronometer struct {
	starts   int
	stops    int
	base     clock.TimePoint
	listener func(chronometer.Event)
}

func (fake *fakeChronometer) Start() { fake.starts++ }
func (fake *fakeChronometer) Stop()  { fake.stops++ }

func (fake *fakeChronometer) SetBase(base clock.TimePoint) {
	fake.base = base
}

func (fake *fakeChronometer) SetListener(listener func(chronometer.Event)) {
	fake.listener = listener
}

func (fake *fakeChronometer) reset() {
	fake.starts = 0
	fake.stops = 0
}

type fakeCanvas struct {
	scenes []Scene
	panics bool
}

func (canvas *fakeCanvas) Draw(scene Scene) {
	canvas.scenes = append(canvas.scenes, scene)
	if canvas.panics {
		panic("draw failed")
	}
}

type fakeSurface struct {
	canvas   *fakeCanvas
	lockErr  error
	nilLock  bool
	locks    int
	unlocks  int
	unlocked []Canvas
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{canvas: &fakeCanvas{}}
}

func (surface *fakeSurface) Lock() (Canvas, error) {
	surface.locks++
	if surface.lockErr != nil {
		return nil, surface.lockErr
	}
	if surface.nilLock {
		return nil, nil
	}
	return surface.canvas, nil
}

func (surface *fakeSurface) UnlockAndPost(canvas Canvas) {
	surface.unlocks++
	surface.unlocked = append(surface.unlocked, canvas)
}

type fixture struct {
	clock       *clock.Fake
	countdown   *fakeCountdown
	chronometer *fakeChronometer
	surface     *fakeSurface
	arbiter     *Arbiter
}

func newFixture() *fixture {
	fx := &fixture{
		clock:       clock.NewFake(1000),
		countdown:   &fakeCountdown{},
		chronometer: &fakeChronometer{},
		surface:     newFakeSurface(),
	}
	fx.arbiter = New(fx.clock, fx.countdown, fx.chronometer)
	return fx
}

func TestNewSetsListeners(t *testing.T) {
	fx := newFixture()
	assert.NotNil(t, fx.countdown.listener)
	assert.NotNil(t, fx.chronometer.listener)
	assert.Equal(t, State{}, fx.arbiter.State())
	assert.Equal(t, EngineNone, fx.arbiter.ActiveEngine())
}

func TestSurfaceChangedSizesScene(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	fx.arbiter.SurfaceChanged(640, 360)

	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})

	require.Len(t, fx.surface.canvas.scenes, 1)
	assert.Equal(t, 640, fx.surface.canvas.scenes[0].Width)
	assert.Equal(t, 360, fx.surface.canvas.scenes[0].Height)
}

func TestSurfaceCreatedStartsCountdown(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)

	assert.Equal(t, 1, fx.countdown.starts)
	assert.Zero(t, fx.chronometer.starts)
	assert.Equal(t, EngineCountdown, fx.arbiter.ActiveEngine())
}

func TestSurfaceCreatedClearsPause(t *testing.T) {
	fx := newFixture()
	fx.arbiter.RenderingPaused(true)
	assert.Zero(t, fx.countdown.starts)
	assert.Zero(t, fx.chronometer.starts)
	assert.Equal(t, 1, fx.chronometer.stops)

	fx.chronometer.reset()
	fx.arbiter.SurfaceCreated(fx.surface)
	assert.Equal(t, 1, fx.countdown.starts)
	assert.Zero(t, fx.chronometer.starts)
	assert.Zero(t, fx.chronometer.stops)
	assert.False(t, fx.arbiter.State().RenderingPaused)
}

func TestSurfaceDestroyedStopsChronometer(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceDestroyed()
	assert.Equal(t, 1, fx.chronometer.stops)
}

func TestRenderingResumedWithoutSurfaceStopsChronometer(t *testing.T) {
	fx := newFixture()
	fx.arbiter.RenderingPaused(false)
	assert.Equal(t, 1, fx.chronometer.stops)
	assert.Zero(t, fx.countdown.starts)
}

func TestRenderingResumedWithSurfaceStartsCountdown(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	fx.arbiter.RenderingPaused(false)
	assert.Equal(t, 2, fx.countdown.starts)
}

func TestRenderingPausedStopsChronometer(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	fx.arbiter.RenderingPaused(true)
	assert.Equal(t, 1, fx.chronometer.stops)
}

func TestRenderingPausedLeavesCountdownAlone(t *testing.T) {
	// Pausing only stops the chronometer. A running countdown keeps its own
	// schedule until it finishes.
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	fx.arbiter.RenderingPaused(true)

	assert.Equal(t, 1, fx.countdown.starts)
	assert.Equal(t, EngineNone, fx.arbiter.ActiveEngine())
}

func TestDrawLocksAndUnlocksSurface(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	frame := countdown.DefaultAnimation().FrameAt(3000)
	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000, Frame: frame})

	require.Len(t, fx.surface.canvas.scenes, 1)
	scene := fx.surface.canvas.scenes[0]
	assert.Equal(t, EngineCountdown, scene.Engine)
	assert.Equal(t, frame, scene.Countdown)
	assert.Equal(t, 1, fx.surface.locks)
	assert.Equal(t, 1, fx.surface.unlocks)
	assert.Same(t, fx.surface.canvas, fx.surface.unlocked[0])
}

func TestNoSurfaceDoesNotDraw(t *testing.T) {
	fx := newFixture()
	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})
	fx.chronometer.listener(chronometer.Event{Type: chronometer.EventChange})

	assert.Zero(t, fx.surface.locks)
	assert.Empty(t, fx.surface.canvas.scenes)
}

func TestListenersWithSurfaceDraw(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})
	display := chronometer.Format(61_230)
	fx.chronometer.listener(chronometer.Event{Type: chronometer.EventChange, Display: display})

	require.Len(t, fx.surface.canvas.scenes, 2)
	assert.Equal(t, EngineCountdown, fx.surface.canvas.scenes[0].Engine)
	assert.Equal(t, EngineChronometer, fx.surface.canvas.scenes[1].Engine)
	assert.Equal(t, display, fx.surface.canvas.scenes[1].Chronometer)
}

func TestLockFailureSkipsDraw(t *testing.T) {
	fx := newFixture()
	fx.surface.lockErr = fmt.Errorf("canvas busy: %w", ErrSurfaceUnavailable)
	fx.arbiter.SurfaceCreated(fx.surface)

	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})
	assert.Equal(t, 1, fx.surface.locks)
	assert.Zero(t, fx.surface.unlocks)
	assert.Empty(t, fx.surface.canvas.scenes)

	fx.surface.lockErr = nil
	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 2960})
	assert.Len(t, fx.surface.canvas.scenes, 1)
	assert.Equal(t, 1, fx.surface.unlocks)
}

func TestNilCanvasSkipsDraw(t *testing.T) {
	fx := newFixture()
	fx.surface.nilLock = true
	fx.arbiter.SurfaceCreated(fx.surface)

	fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})
	assert.Equal(t, 1, fx.surface.locks)
	assert.Zero(t, fx.surface.unlocks)
}

func TestPanickingDrawStillUnlocks(t *testing.T) {
	fx := newFixture()
	fx.surface.canvas.panics = true
	fx.arbiter.SurfaceCreated(fx.surface)

	assert.Panics(t, func() {
		fx.countdown.listener(countdown.Event{Type: countdown.EventTick, MillisLeft: 3000})
	})
	assert.Equal(t, 1, fx.surface.unlocks)
}

func TestFinishStartsChronometer(t *testing.T) {
	fx := newFixture()
	fx.arbiter.SurfaceCreated(fx.surface)
	require.Equal(t, 1, fx.countdown.starts)

	fx.clock.Set(4000)
	fx.countdown.listener(countdown.Event{Type: countdown.EventFinish})
	assert.Equal(t, 1, fx.chronometer.starts)
	assert.Equal(t, clock.TimePoint(4000), fx.chronometer.base)
	assert.True(t, fx.arbiter.State().CountdownDone)

	fx.chronometer.reset()
	fx.countdown.starts = 0
	fx.arbiter.RenderingPaused(true)
	assert.Equal(t, 1, fx.chronometer.stops)
	assert.Zero(t, fx.chronometer.starts)
	assert.Zero(t, fx.countdown.starts)

	fx.chronometer.reset()
	fx.arbiter.RenderingPaused(false)
	assert.Equal(t, 1, fx.chronometer.starts)
	assert.Zero(t, fx.chronometer.stops)
	assert.Zero(t, fx.countdown.starts)
}

func TestFinishWithoutSurfaceWaitsForSurface(t *testing.T) {
	fx := newFixture()
	fx.countdown.listener(countdown.Event{Type: countdown.EventFinish})
	assert.Zero(t, fx.chronometer.starts)
	assert.Equal(t, 1, fx.chronometer.stops)

	fx.arbiter.SurfaceCreated(fx.surface)
	assert.Equal(t, 1, fx.chronometer.starts)
	assert.Zero(t, fx.countdown.starts)
}

func TestArbitrationTable(t *testing.T) {
	for _, surface := range []bool{false, true} {
		for _, paused := range []bool{false, true} {
			for _, done := range []bool{false, true} {
				name := fmt.Sprintf("S=%t P=%t C=%t", surface, paused, done)
				t.Run(name, func(t *testing.T) {
					fx := newFixture()
					if done {
						fx.countdown.listener(countdown.Event{Type: countdown.EventFinish})
					}
					if surface {
						fx.arbiter.SurfaceCreated(fx.surface)
					}
					fx.countdown.starts = 0
					fx.chronometer.reset()

					fx.arbiter.RenderingPaused(paused)

					state := fx.arbiter.State()
					require.Equal(t, State{SurfaceAvailable: surface, RenderingPaused: paused, CountdownDone: done}, state)
					switch {
					case surface && !paused && !done:
						assert.Equal(t, EngineCountdown, state.ActiveEngine())
						assert.Equal(t, 1, fx.countdown.starts)
						assert.Zero(t, fx.chronometer.starts+fx.chronometer.stops)
					case surface && !paused && done:
						assert.Equal(t, EngineChronometer, state.ActiveEngine())
						assert.Equal(t, 1, fx.chronometer.starts)
						assert.Zero(t, fx.countdown.starts+fx.chronometer.stops)
					default:
						assert.Equal(t, EngineNone, state.ActiveEngine())
						assert.Equal(t, 1, fx.chronometer.stops)
						assert.Zero(t, fx.countdown.starts+fx.chronometer.starts)
					}
				})
			}
		}
	}
}
