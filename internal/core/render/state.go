package render

// ActiveEngine names the engine that should be running.
type ActiveEngine string

const (
	EngineNone        ActiveEngine = "none"
	EngineCountdown   ActiveEngine = "countdown"
	EngineChronometer ActiveEngine = "chronometer"
)

// State holds the flags the arbiter decides from.
type State struct {
	SurfaceAvailable bool
	RenderingPaused  bool
	CountdownDone    bool
}

// Active reports whether anything should render.
func (state State) Active() bool {
	return state.SurfaceAvailable && !state.RenderingPaused
}

// ActiveEngine derives the engine to run from the flags.
func (state State) ActiveEngine() ActiveEngine {
	switch {
	case !state.Active():
		return EngineNone
	case state.CountdownDone:
		return EngineChronometer
	default:
		return EngineCountdown
	}
}
