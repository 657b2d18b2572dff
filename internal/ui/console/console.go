package console

import (
	"fmt"
	"io"
	"log"

	"stopwatch/internal/core/render"
)

// Surface prints one line per visible change at whole-second resolution:
// every countdown digit and every chronometer second.
type Surface struct {
	writer io.Writer
	locked bool
	last   string
}

// New creates a surface writing to writer.
func New(writer io.Writer) *Surface {
	return &Surface{writer: writer}
}

func (surface *Surface) Lock() (render.Canvas, error) {
	if surface.locked {
		return nil, fmt.Errorf("console already locked: %w", render.ErrSurfaceUnavailable)
	}
	surface.locked = true
	return &lineCanvas{surface: surface}, nil
}

func (surface *Surface) UnlockAndPost(drawn render.Canvas) {
	canvas, ok := drawn.(*lineCanvas)
	if !ok || canvas.surface != surface {
		return
	}
	surface.locked = false
	if canvas.line == "" || canvas.line == surface.last {
		return
	}
	surface.last = canvas.line
	if _, err := fmt.Fprintln(surface.writer, canvas.line); err != nil {
		log.Printf("console write: %v", err)
	}
}

// Line formats the whole-second view of scene.
func Line(scene render.Scene) string {
	switch scene.Engine {
	case render.EngineCountdown:
		return scene.Countdown.Text
	case render.EngineChronometer:
		return scene.Chronometer.Minutes + ":" + scene.Chronometer.Seconds
	default:
		return ""
	}
}

type lineCanvas struct {
	surface *Surface
	line    string
}

func (canvas *lineCanvas) Draw(scene render.Scene) {
	canvas.line = Line(scene)
}
