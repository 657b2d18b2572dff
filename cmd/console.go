package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"stopwatch/internal/audio"
	"stopwatch/internal/bootstrap"
	"stopwatch/internal/core/clock"
	"stopwatch/internal/core/schedule"
	"stopwatch/internal/ui/console"
)

func newConsoleCmd(opts *options) *cobra.Command {
	var runFor time.Duration

	command := &cobra.Command{
		Use:   "console",
		Short: "Print the countdown and elapsed seconds as plain lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if runFor > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, runFor)
				defer cancel()
			}

			loop := schedule.NewLoop()
			core := bootstrap.New(settings.StopwatchConfig(), clock.NewSystem(), loop, audio.NewBell(cmd.ErrOrStderr()))
			surface := console.New(cmd.OutOrStdout())
			loop.Post(func() {
				core.Lifecycle.SurfaceCreated(surface)
			})

			err = loop.Run(ctx)
			core.Shutdown()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
	command.Flags().DurationVar(&runFor, "for", 0, "stop after this long (0 runs until interrupted)")
	return command
}
