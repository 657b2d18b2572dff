package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pauseRecorder struct {
	signals []bool
}

func (rec *pauseRecorder) RenderingPaused(paused bool) {
	rec.signals = append(rec.signals, paused)
}

func TestPauseGateCombinesReasons(t *testing.T) {
	rec := &pauseRecorder{}
	gate := NewPauseGate(rec)

	gate.Set("user", true)
	gate.Set("idle", true)
	gate.Set("user", false)
	assert.True(t, gate.Paused())
	assert.Equal(t, []string{"idle"}, gate.Reasons())

	gate.Set("idle", false)
	assert.False(t, gate.Paused())
	assert.Equal(t, []bool{true, true, true, false}, rec.signals)
}

func TestPauseGateDrivesArbiter(t *testing.T) {
	fx := newFixture()
	gate := NewPauseGate(fx.arbiter)
	fx.arbiter.SurfaceCreated(fx.surface)

	gate.Set("background", true)
	assert.Equal(t, EngineNone, fx.arbiter.ActiveEngine())

	// A new surface clears the arbiter's flag; re-applying restores it.
	fx.arbiter.SurfaceCreated(fx.surface)
	assert.Equal(t, EngineCountdown, fx.arbiter.ActiveEngine())
	gate.Apply()
	assert.Equal(t, EngineNone, fx.arbiter.ActiveEngine())
}
