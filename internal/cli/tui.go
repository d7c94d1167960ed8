package cli

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/tui"
)

// NewTUICommand creates the terminal front-end command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the simulation in the terminal",
		Long: `Run the simulation interactively in the terminal.

Keys: space pause, n/enter step, c clear, w wrap, g grid, +/- speed,
r randomize, q/esc quit. Left drag paints live cells, right drag erases.

The terminal belongs to the UI while it runs, so logs are dropped unless
--log-file is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.Config(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := tuiLogger(logFile, rootOpts.Verbose)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open log file", err)
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(ctxlog.WithLogger(cmd.Context(), logger), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sess, err := session.New(ctx, cfg)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to build grid", err)
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return WrapExitError(ExitFailure, "failed to open terminal", err)
			}
			if err := screen.Init(); err != nil {
				return WrapExitError(ExitFailure, "failed to initialise terminal", err)
			}
			defer screen.Fini()

			ctrl := app.NewController(sess, cfg.ShowGrid)
			if err := tui.Run(ctx, screen, ctrl, tui.Options{Style: render.DefaultTermStyle()}); err != nil {
				return WrapExitError(ExitFailure, "terminal loop failed", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the terminal UI runs")

	return cmd
}

// tuiLogger keeps log output off the terminal: it writes to path when set and
// discards everything otherwise.
func tuiLogger(path string, verbose bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return newLogger(io.Discard, verbose), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, verbose), f.Close, nil
}
