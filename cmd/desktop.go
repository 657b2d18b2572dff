package main

import (
	"errors"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"stopwatch/internal/audio"
	"stopwatch/internal/bootstrap"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/render"
	"stopwatch/internal/core/schedule"
	"stopwatch/internal/platform"
	"stopwatch/internal/storage"
	"stopwatch/internal/ui/card"
	"stopwatch/internal/ui/preferences"
	"stopwatch/internal/ui/tray"
)

const statusInterval = 250 * time.Millisecond

func runDesktop(settings preferences.Settings, settingsPath string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.stopwatch.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform; try the tui command")
	}

	scheduler := schedule.NewPoster(fyne.Do)
	core := bootstrap.New(settings.StopwatchConfig(), clock.NewSystem(), scheduler, audio.NewBell(os.Stderr))
	core.SetIdleProvider(platform.NewIdleProvider())

	cardWindow := card.New(fyneApp, cardConfig(settings))
	cardWindow.Bind(core.Lifecycle)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		if err := core.Apply(settings.StopwatchConfig()); err != nil {
			log.Printf("apply settings: %v", err)
		}
		cardWindow.UpdateConfig(cardConfig(settings))
	})

	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowCard: cardWindow.Show,
		OnTogglePause: func() {
			core.Lifecycle.Pause(render.ReasonUser, !core.Lifecycle.UserPaused())
			trayManager.SetPaused(core.Lifecycle.UserPaused())
		},
		OnPreferences: prefsWindow.Show,
		OnQuit:        fyneApp.Quit,
	})

	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnEnteredForeground(func() {
		core.Lifecycle.Pause(render.ReasonBackground, false)
	})
	lifecycle.SetOnExitedForeground(func() {
		core.Lifecycle.Pause(render.ReasonBackground, true)
	})
	lifecycle.SetOnStarted(func() {
		if err := core.Apply(settings.StopwatchConfig()); err != nil {
			log.Printf("apply settings: %v", err)
		}
		cardWindow.Show()
		startStatus(scheduler, core, trayManager)
	})
	lifecycle.SetOnStopped(core.Shutdown)

	fyneApp.Run()
	return nil
}

// startStatus keeps the tray status line in step with the core.
func startStatus(scheduler schedule.Scheduler, core *bootstrap.Core, trayManager *tray.Manager) {
	last := ""
	var refresh func()
	refresh = func() {
		if status := core.Status(); status != last {
			last = status
			trayManager.SetStatus(status)
			trayManager.SetPaused(core.Lifecycle.UserPaused())
		}
		scheduler.Schedule(refresh, statusInterval)
	}
	refresh()
}

func cardConfig(settings preferences.Settings) card.Config {
	return card.Config{
		Opacity:    opacityToAlpha(settings.CardOpacity),
		Fullscreen: settings.Fullscreen,
	}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
