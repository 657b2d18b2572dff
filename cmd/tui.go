package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stopwatch/internal/audio"
	"stopwatch/internal/bootstrap"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/schedule"
	"stopwatch/internal/platform"
	"stopwatch/internal/ui/preferences"
	"stopwatch/internal/ui/terminal"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the stopwatch card in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runTUI(settings)
		},
	}
}

func runTUI(settings preferences.Settings) error {
	model := terminal.New()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	core := bootstrap.New(settings.StopwatchConfig(), clock.NewSystem(), schedule.NewPoster(terminal.Poster(program)), audio.NewBell(os.Stderr))
	core.SetIdleProvider(platform.NewIdleProvider())
	if err := core.Apply(settings.StopwatchConfig()); err != nil {
		log.Printf("apply settings: %v", err)
	}
	model.Bind(core.Lifecycle)

	_, err := program.Run()
	return err
}
