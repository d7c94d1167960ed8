package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/pkg/life"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Steps int
	Every int
	Alive []string
}

// NewRunCommand creates the headless run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the grid headlessly and print text frames",
		Long: `Build a grid from the configuration, optionally set live cells, step it
and print frames as text ('#' alive, '.' dead).

Example:
  lifegrid run --width 5 --height 5 --wrap=false --alive 2,1 --alive 2,2 --alive 2,3 --steps 2 --every 1
  lifegrid run --config life.yaml --seed-mode noise --steps 100`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd)
			if err != nil {
				return err
			}
			return runHeadless(cmd, opts, cfg)
		},
	}

	cmd.Flags().IntVar(&opts.Steps, "steps", 10, "generations to step")
	cmd.Flags().IntVar(&opts.Every, "every", 0, "print a frame every K generations (0: final frame only)")
	cmd.Flags().StringArrayVar(&opts.Alive, "alive", nil, "live cell as x,y (repeatable)")

	return cmd
}

func runHeadless(cmd *cobra.Command, opts *RunOptions, cfg config.Config) error {
	if opts.Steps < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--steps must not be negative, got %d", opts.Steps))
	}
	if opts.Every < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--every must not be negative, got %d", opts.Every))
	}
	ctx := cmd.Context()
	log := ctxlog.FromContext(ctx)

	sess, err := session.New(ctx, cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build grid", err)
	}
	for _, cell := range opts.Alive {
		x, y, err := parseCell(cell)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad --alive value", err)
		}
		if !sess.Set(x, y, life.Alive) {
			return NewExitError(ExitCommandError, fmt.Sprintf("cell %d,%d is outside the %dx%d grid", x, y, cfg.Width, cfg.Height))
		}
	}
	log.Info("running", "width", cfg.Width, "height", cfg.Height, "wrap", cfg.Wrap, "steps", opts.Steps)

	out := cmd.OutOrStdout()
	frames := 0
	emit := func() error {
		if frames > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		frames++
		return writeFrame(out, sess)
	}

	for gen := 0; ; gen++ {
		last := gen == opts.Steps
		if last || (opts.Every > 0 && gen%opts.Every == 0) {
			if err := emit(); err != nil {
				return WrapExitError(ExitFailure, "failed to write frame", err)
			}
		}
		if last {
			break
		}
		sess.Step()
	}
	log.Debug("run finished", "generation", sess.Generation(), "population", sess.Population(), "frames", frames)
	return nil
}

func writeFrame(w io.Writer, sess *session.Session) error {
	if _, err := fmt.Fprintf(w, "generation %d population %d\n", sess.Generation(), sess.Population()); err != nil {
		return err
	}
	var err error
	sess.View(func(r life.Reader) {
		err = render.WriteText(w, r, '#', '.')
	})
	return err
}

// parseCell reads an "x,y" pair. Negative values are allowed; on a wrapping
// grid they resolve modulo the size.
func parseCell(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: y: %w", s, err)
	}
	return x, y, nil
}
