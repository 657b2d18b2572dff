package card

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"stopwatch/internal/core/render"
)

// Lifecycle receives the card's surface and pause signals.
type Lifecycle interface {
	SurfaceCreated(surface render.Surface)
	SurfaceChanged(width, height int)
	SurfaceDestroyed()
}

// Config defines card visuals.
type Config struct {
	Opacity    uint8
	Fullscreen bool
}

const (
	cardWidth  = float32(640)
	cardHeight = float32(360)

	digitTextSize  = float32(160)
	clockTextSize  = float32(96)
	centisTextSize = float32(48)
)

var (
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mutedColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

// Window is a desktop stand-in for the live card: a window whose content
// area is the drawing surface.
type Window struct {
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	digit      *canvas.Text
	clock      *canvas.Text
	centis     *canvas.Text
	content    *fyne.Container

	lifecycle Lifecycle
	visible   bool
	locked    bool
	pending   *render.Scene
	offsetY   float32
	size      fyne.Size
}

// New creates a hidden card window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Stopwatch")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})

	digit := canvas.NewText("", textColor)
	digit.Alignment = fyne.TextAlignCenter
	digit.TextStyle = fyne.TextStyle{Bold: true}
	digit.TextSize = digitTextSize

	clockText := canvas.NewText("00:00", textColor)
	clockText.Alignment = fyne.TextAlignTrailing
	clockText.TextStyle = fyne.TextStyle{Monospace: true}
	clockText.TextSize = clockTextSize
	clockText.Hide()

	centis := canvas.NewText("00", mutedColor)
	centis.Alignment = fyne.TextAlignLeading
	centis.TextStyle = fyne.TextStyle{Monospace: true}
	centis.TextSize = centisTextSize
	centis.Hide()

	card := &Window{
		window:     window,
		config:     config,
		background: background,
		digit:      digit,
		clock:      clockText,
		centis:     centis,
	}
	card.content = container.New(&cardLayout{card: card}, background, digit, clockText, centis)
	window.SetContent(card.content)
	window.Resize(fyne.NewSize(cardWidth, cardHeight))
	window.SetCloseIntercept(card.Hide)

	return card
}

// Bind attaches the receiver of surface signals.
func (card *Window) Bind(lifecycle Lifecycle) {
	card.lifecycle = lifecycle
}

// Show displays the card and hands its surface to the lifecycle.
func (card *Window) Show() {
	card.applyWindowMode()
	card.window.Show()
	card.window.RequestFocus()
	if card.visible {
		return
	}
	card.visible = true
	if card.lifecycle != nil {
		card.lifecycle.SurfaceCreated(card)
		size := card.content.Size()
		card.lifecycle.SurfaceChanged(int(size.Width), int(size.Height))
	}
}

// Hide closes the card and withdraws its surface.
func (card *Window) Hide() {
	if card.config.Fullscreen {
		card.window.SetFullScreen(false)
	}
	card.window.Hide()
	if !card.visible {
		return
	}
	card.visible = false
	card.locked = false
	card.pending = nil
	if card.lifecycle != nil {
		card.lifecycle.SurfaceDestroyed()
	}
}

// Visible reports whether the surface is available.
func (card *Window) Visible() bool {
	return card.visible
}

// UpdateConfig updates card visuals.
func (card *Window) UpdateConfig(config Config) {
	card.config = config
	card.background.FillColor = color.NRGBA{A: config.Opacity}
	canvas.Refresh(card.background)
	if card.visible {
		card.applyWindowMode()
	}
}

// Lock grants exclusive access to the card until UnlockAndPost.
func (card *Window) Lock() (render.Canvas, error) {
	if !card.visible {
		return nil, fmt.Errorf("card hidden: %w", render.ErrSurfaceUnavailable)
	}
	if card.locked {
		return nil, fmt.Errorf("card already locked: %w", render.ErrSurfaceUnavailable)
	}
	card.locked = true
	return &cardCanvas{card: card}, nil
}

// UnlockAndPost releases the lock and shows what was drawn.
func (card *Window) UnlockAndPost(drawn render.Canvas) {
	cardCanvas, ok := drawn.(*cardCanvas)
	if !ok || cardCanvas.card != card || cardCanvas.released {
		return
	}
	cardCanvas.released = true
	card.locked = false
	if card.pending == nil {
		return
	}
	card.applyScene(*card.pending)
	card.pending = nil
	card.content.Refresh()
}

func (card *Window) applyScene(scene render.Scene) {
	switch scene.Engine {
	case render.EngineCountdown:
		frame := scene.Countdown
		card.digit.Text = frame.Text
		card.digit.Color = withAlpha(textColor, frame.Alpha)
		card.offsetY = float32(frame.OffsetY)
		card.digit.Show()
		card.clock.Hide()
		card.centis.Hide()
	case render.EngineChronometer:
		display := scene.Chronometer
		card.clock.Text = display.Minutes + ":" + display.Seconds
		card.centis.Text = display.Centiseconds
		card.digit.Hide()
		card.clock.Show()
		card.centis.Show()
	}
}

func (card *Window) applyWindowMode() {
	if card.config.Fullscreen {
		card.window.SetFullScreen(true)
		return
	}
	card.window.SetFullScreen(false)
	card.applyNativeOpacity(card.config.Opacity)
}

// sizeChanged runs from layout whenever the content area is resized.
func (card *Window) sizeChanged(size fyne.Size) {
	if size == card.size {
		return
	}
	card.size = size
	if card.visible && card.lifecycle != nil {
		card.lifecycle.SurfaceChanged(int(size.Width), int(size.Height))
	}
}

func withAlpha(base color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	base.A = uint8(alpha * 255)
	return base
}

// cardCanvas is valid between Lock and UnlockAndPost.
type cardCanvas struct {
	card     *Window
	released bool
}

func (drawn *cardCanvas) Draw(scene render.Scene) {
	if drawn.released {
		return
	}
	drawn.card.pending = &scene
}

type cardLayout struct {
	card *Window
}

func (layout *cardLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	background, digit, clockText, centis := objects[0], objects[1], objects[2], objects[3]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	digitSize := digit.MinSize()
	digit.Resize(fyne.NewSize(size.Width, digitSize.Height))
	digit.Move(fyne.NewPos(0, (size.Height-digitSize.Height)/2+layout.card.offsetY))

	clockSize := clockText.MinSize()
	centisSize := centis.MinSize()
	total := clockSize.Width + centisSize.Width
	left := (size.Width - total) / 2
	if left < 0 {
		left = 0
	}
	top := (size.Height - clockSize.Height) / 2
	clockText.Resize(clockSize)
	clockText.Move(fyne.NewPos(left, top))
	centis.Resize(centisSize)
	// Align the centiseconds on the clock's baseline.
	centis.Move(fyne.NewPos(left+clockSize.Width, top+clockSize.Height-centisSize.Height))

	layout.card.sizeChanged(size)
}

func (layout *cardLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	digitSize := objects[1].MinSize()
	clockSize := objects[2].MinSize()
	centisSize := objects[3].MinSize()

	width := clockSize.Width + centisSize.Width
	if digitSize.Width > width {
		width = digitSize.Width
	}
	height := clockSize.Height
	if digitSize.Height > height {
		height = digitSize.Height
	}
	return fyne.NewSize(width, height)
}
