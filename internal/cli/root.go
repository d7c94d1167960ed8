// Package cli wires the cobra command tree for the lifegrid binary.
package cli

import (
	"flag"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
)

// Version is stamped at build time with -ldflags "-X lifegrid/internal/cli.Version=...".
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	cfg   config.Config
	flags *flag.FlagSet
}

// NewRootCommand creates the root command for the lifegrid CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{cfg: config.Default()}
	opts.flags = flag.NewFlagSet("lifegrid", flag.ContinueOnError)
	opts.cfg.Bind(opts.flags)

	cmd := &cobra.Command{
		Use:   "lifegrid",
		Short: "lifegrid - Conway's Game of Life",
		Long:  "Run Conway's Game of Life on a bounded or toroidal grid, headless or in a terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), opts.Verbose)))
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file; explicit flags override it")
	cmd.PersistentFlags().AddGoFlagSet(opts.flags)

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Config resolves the effective configuration for cmd: defaults, then the
// --config file, then the config flags changed on the command line.
func (o *RootOptions) Config(cmd *cobra.Command) (config.Config, error) {
	set := map[string]string{}
	o.flags.VisitAll(func(f *flag.Flag) {
		if cmd.Flags().Changed(f.Name) {
			set[f.Name] = f.Value.String()
		}
	})
	cfg, err := config.Resolve(o.ConfigPath, set)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
