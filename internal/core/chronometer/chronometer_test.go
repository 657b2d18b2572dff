package chronometer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/model"
	"stopwatch/internal/core/schedule"
)

type fixture struct {
	clock     *clock.Fake
	scheduler *schedule.Manual
	engine    *Engine
	changes   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{clock: clock.NewFake(0)}
	fx.scheduler = schedule.NewManual(fx.clock)
	fx.engine = New(model.ChronometerConfig{}, fx.clock, fx.scheduler)
	fx.engine.SetListener(func(event Event) {
		require.Equal(t, EventChange, event.Type)
		fx.changes++
	})
	return fx
}

func TestSetBaseUpdatesDisplay(t *testing.T) {
	fx := newFixture(t)
	fx.engine.SetBase(fx.clock.Now())

	assert.Equal(t, 1, fx.changes)
	assert.Equal(t, "00:00.00", fx.engine.Display().String())
	assert.False(t, fx.engine.Running())
	assert.Zero(t, fx.scheduler.Scheduled)
}

func TestStartSchedulesUpdate(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Start()

	assert.True(t, fx.engine.Running())
	assert.Equal(t, []time.Duration{41 * time.Millisecond}, fx.scheduler.Delays)
}

func TestStartWhenStartedIsNoOp(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Start()
	fx.engine.Start()

	assert.Equal(t, 1, fx.scheduler.Scheduled)
	assert.Equal(t, 1, fx.scheduler.Pending())
}

func TestStopCancelsUpdate(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Start()
	fx.engine.Stop()

	assert.False(t, fx.engine.Running())
	assert.Equal(t, 1, fx.scheduler.Cancelled)
	assert.Equal(t, 0, fx.scheduler.Pending())
}

func TestStopWhenStoppedIsNoOp(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Stop()
	assert.Zero(t, fx.scheduler.Cancelled)

	fx.engine.Start()
	fx.engine.Stop()
	fx.engine.Stop()
	assert.Equal(t, 1, fx.scheduler.Cancelled)
}

func TestUpdateShowsElapsedTime(t *testing.T) {
	fx := newFixture(t)
	fx.clock.Advance((3*60+45)*1000 + 890)
	fx.engine.update()

	display := fx.engine.Display()
	assert.Equal(t, "03", display.Minutes)
	assert.Equal(t, "45", display.Seconds)
	assert.Equal(t, "89", display.Centiseconds)
	assert.Equal(t, 1, fx.changes)
}

func TestTicksRescheduleWhileRunning(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Start()
	fx.scheduler.Advance(41 * 3)

	assert.Equal(t, 3, fx.changes)
	assert.Equal(t, 1, fx.scheduler.Pending())
	assert.Equal(t, "00:00.12", fx.engine.Display().String())

	fx.engine.Stop()
	fx.scheduler.Advance(1000)
	assert.Equal(t, 3, fx.changes)
}

func TestSetBaseWhileRunningKeepsSingleSchedule(t *testing.T) {
	fx := newFixture(t)
	fx.engine.Start()
	fx.clock.Advance(5000)
	fx.engine.SetBase(fx.clock.Now())

	assert.Equal(t, "00:00.00", fx.engine.Display().String())
	assert.Equal(t, 1, fx.scheduler.Pending())
	assert.Equal(t, clock.TimePoint(5000), fx.engine.Base())
}
