package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stopwatch/internal/core/countdown"
	"stopwatch/internal/core/render"
)

// Lifecycle receives the terminal card's surface and pause signals.
type Lifecycle interface {
	SurfaceCreated(surface render.Surface)
	SurfaceChanged(width, height int)
	SurfaceDestroyed()
	Pause(reason string, paused bool)
}

// startMsg creates the surface once the program is running.
type startMsg struct{}

// postMsg carries a scheduled callback onto the program's goroutine.
type postMsg struct{ fn func() }

// offsetRows converts the countdown's pixel offset into terminal rows.
const offsetRows = 10.0

// Model is the terminal card. Bubble Tea's Update goroutine is the single
// thread every engine callback and arbiter signal runs on.
type Model struct {
	lifecycle Lifecycle
	keys      keyMap
	help      help.Model
	showHelp  bool

	width   int
	height  int
	created bool
	paused  bool

	locked   bool
	pending  *render.Scene
	scene    render.Scene
	hasScene bool
}

// New creates an unbound terminal card.
func New() *Model {
	return &Model{
		keys: defaultKeys(),
		help: help.New(),
	}
}

// Bind attaches the receiver of surface signals. Call before running.
func (m *Model) Bind(lifecycle Lifecycle) {
	m.lifecycle = lifecycle
}

// Poster returns a post function delivering callbacks through program.
func Poster(program *tea.Program) func(func()) {
	return func(fn func()) {
		program.Send(postMsg{fn: fn})
	}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		m.createSurface()
	case postMsg:
		msg.fn()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.created && m.lifecycle != nil {
			m.lifecycle.SurfaceChanged(msg.Width, msg.Height)
		}
	case tea.FocusMsg:
		m.pause(render.ReasonBackground, false)
	case tea.BlurMsg:
		m.pause(render.ReasonBackground, true)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.destroySurface()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.pause(render.ReasonUser, m.paused)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	}
	return m, nil
}

func (m *Model) createSurface() {
	if m.created {
		return
	}
	m.created = true
	m.paused = false
	if m.lifecycle == nil {
		return
	}
	m.lifecycle.SurfaceCreated(m)
	if m.width > 0 || m.height > 0 {
		m.lifecycle.SurfaceChanged(m.width, m.height)
	}
}

func (m *Model) destroySurface() {
	if !m.created {
		return
	}
	m.created = false
	m.locked = false
	m.pending = nil
	if m.lifecycle != nil {
		m.lifecycle.SurfaceDestroyed()
	}
}

func (m *Model) pause(reason string, paused bool) {
	if m.lifecycle != nil {
		m.lifecycle.Pause(reason, paused)
	}
}

// Lock grants exclusive access to the card until UnlockAndPost.
func (m *Model) Lock() (render.Canvas, error) {
	if !m.created {
		return nil, fmt.Errorf("terminal card closed: %w", render.ErrSurfaceUnavailable)
	}
	if m.locked {
		return nil, fmt.Errorf("terminal card already locked: %w", render.ErrSurfaceUnavailable)
	}
	m.locked = true
	return &termCanvas{model: m}, nil
}

// UnlockAndPost releases the lock; the next View shows what was drawn.
func (m *Model) UnlockAndPost(drawn render.Canvas) {
	canvas, ok := drawn.(*termCanvas)
	if !ok || canvas.model != m || canvas.released {
		return
	}
	canvas.released = true
	m.locked = false
	if m.pending == nil {
		return
	}
	m.scene = *m.pending
	m.hasScene = true
	m.pending = nil
}

func (m *Model) View() string {
	var body string
	switch {
	case !m.hasScene:
		body = mutedStyle.Render("waiting for first frame")
	case m.scene.Engine == render.EngineCountdown:
		body = renderCountdown(m.scene)
	default:
		body = renderChronometer(m.scene)
	}

	card := cardStyle.Render(body)
	footer := m.help.View(m.keys)
	if m.paused {
		footer = pausedStyle.Render("paused") + "  " + footer
	}

	if m.width == 0 || m.height == 0 {
		return card + "\n" + footer
	}
	placed := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, card)
	return placed + "\n" + footer
}

func renderCountdown(scene render.Scene) string {
	frame := scene.Countdown
	style := digitSolid
	switch {
	case frame.Alpha < 0.5:
		style = digitFaint
	case frame.Alpha < 0.95:
		style = digitFading
	}
	rows := int(math.Round(frame.OffsetY / offsetRows))
	// Reserve the full drop height so the card does not resize while the
	// digit falls into place.
	maxRows := int(math.Round(countdown.DefaultAnimation().MaxOffset / offsetRows))
	rows = min(max(rows, 0), maxRows)
	return strings.Repeat("\n", rows) + style.Render(frame.Text) + strings.Repeat("\n", maxRows-rows)
}

func renderChronometer(scene render.Scene) string {
	display := scene.Chronometer
	return clockStyle.Render(display.Minutes+":"+display.Seconds) + centisStyle.Render("."+display.Centiseconds)
}

// termCanvas is valid between Lock and UnlockAndPost.
type termCanvas struct {
	model    *Model
	released bool
}

func (canvas *termCanvas) Draw(scene render.Scene) {
	if canvas.released {
		return
	}
	canvas.model.pending = &scene
}
