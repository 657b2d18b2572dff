package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"stopwatch/internal/storage"
	"stopwatch/internal/ui/preferences"
)

const appName = "Stopwatch"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	countdown  int
	mute       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "stopwatch",
		Short:         "Countdown and chronometer card",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, path, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runDesktop(settings, path)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	root.PersistentFlags().IntVar(&opts.countdown, "countdown", preferences.DefaultSettings().CountdownSeconds, "countdown length in seconds")
	root.PersistentFlags().BoolVar(&opts.mute, "mute", false, "disable audio cues")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newConsoleCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// load reads the settings file and applies flag overrides. The returned
// path is where preference changes are saved.
func (opts *options) load(cmd *cobra.Command) (preferences.Settings, string, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := storage.SettingsPath(appName)
		if err != nil {
			return preferences.Settings{}, "", err
		}
		path = defaultPath
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	if cmd.Flags().Changed("countdown") {
		if !preferences.ValidCountdown(opts.countdown) {
			return preferences.Settings{}, "", fmt.Errorf("countdown must be between %d and %d seconds, got %d",
				preferences.MinCountdownSeconds, preferences.MaxCountdownSeconds, opts.countdown)
		}
		settings.CountdownSeconds = opts.countdown
	}
	if opts.mute {
		settings.SoundEnabled = false
	}
	return settings, path, nil
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			data, err := storage.MarshalSettings(settings)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
