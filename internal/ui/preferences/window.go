package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	countdown  *widget.Entry
	sound      *widget.Check
	idleCheck  *widget.Check
	idleAfter  *widget.Entry
	opacity    *widget.Slider
	fullscreen *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Stopwatch Settings")

	countdown := widget.NewEntry()
	idleAfter := widget.NewEntry()
	sound := widget.NewCheck("Play countdown sounds", nil)
	idleCheck := widget.NewCheck("Pause rendering while idle", nil)
	opacity := widget.NewSlider(MinCardOpacity, MaxCardOpacity)
	opacity.Step = 0.05
	fullscreen := widget.NewCheck("Fullscreen card", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Count down from"), countdown, widget.NewLabel("sec")),
		sound,
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		idleCheck,
		container.NewHBox(widget.NewLabel("Idle after"), idleAfter, widget.NewLabel("sec")),
		widget.NewLabel("Card opacity"),
		opacity,
		fullscreen,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 360))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		countdown:  countdown,
		sound:      sound,
		idleCheck:  idleCheck,
		idleAfter:  idleAfter,
		opacity:    opacity,
		fullscreen: fullscreen,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.countdown.SetText(strconv.Itoa(settings.CountdownSeconds))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.idleCheck.SetChecked(settings.IdlePauseEnabled)
	prefs.idleAfter.SetText(fmt.Sprintf("%d", int(settings.IdlePauseAfter.Seconds())))
	prefs.opacity.Value = settings.CardOpacity
	prefs.opacity.Refresh()
	prefs.fullscreen.SetChecked(settings.Fullscreen)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form, keeping previous values for invalid input.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if seconds, err := strconv.Atoi(prefs.countdown.Text); err == nil && ValidCountdown(seconds) {
		settings.CountdownSeconds = seconds
	}
	if seconds, ok := parsePositiveInt(prefs.idleAfter.Text); ok {
		settings.IdlePauseAfter = time.Duration(seconds) * time.Second
	}
	settings.SoundEnabled = prefs.sound.Checked
	settings.IdlePauseEnabled = prefs.idleCheck.Checked
	if ValidOpacity(prefs.opacity.Value) {
		settings.CardOpacity = prefs.opacity.Value
	}
	settings.Fullscreen = prefs.fullscreen.Checked
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
