package app

import (
	"context"
	"fmt"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/session"
)

// Action is a front-end-neutral user command.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStepOnce
	ActionClear
	ActionToggleWrap
	ActionToggleGrid
	ActionFaster
	ActionSlower
	ActionRandomize
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionTogglePause: "pause",
	ActionStepOnce:    "step",
	ActionClear:       "clear",
	ActionToggleWrap:  "wrap",
	ActionToggleGrid:  "grid",
	ActionFaster:      "faster",
	ActionSlower:      "slower",
	ActionRandomize:   "randomize",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Binding pairs a key label with its action for help text.
type Binding struct {
	Key    string
	Action Action
}

// Bindings lists the shared keyboard shortcuts in display order.
var Bindings = []Binding{
	{"space", ActionTogglePause},
	{"n", ActionStepOnce},
	{"c", ActionClear},
	{"w", ActionToggleWrap},
	{"g", ActionToggleGrid},
	{"+", ActionFaster},
	{"-", ActionSlower},
	{"r", ActionRandomize},
	{"q", ActionQuit},
}

// HelpLines renders Bindings as "key  action" lines.
func HelpLines() []string {
	lines := make([]string, 0, len(Bindings))
	for _, b := range Bindings {
		lines = append(lines, fmt.Sprintf("%-6s %s", b.Key, b.Action))
	}
	return lines
}

// RuneAction maps a typed character to its action.
func RuneAction(r rune) Action {
	switch r {
	case ' ':
		return ActionTogglePause
	case 'n', 'N':
		return ActionStepOnce
	case 'c', 'C':
		return ActionClear
	case 'w', 'W':
		return ActionToggleWrap
	case 'g', 'G':
		return ActionToggleGrid
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	case 'r', 'R':
		return ActionRandomize
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Controller applies actions to a session and paces auto-stepping. It is
// owned by a single front-end loop.
type Controller struct {
	sess     *session.Session
	timer    *core.FixedStep
	showGrid bool
}

// NewController wraps sess. showGrid seeds the grid-line toggle.
func NewController(sess *session.Session, showGrid bool) *Controller {
	return &Controller{
		sess:     sess,
		timer:    core.NewFixedStep(sess.Interval()),
		showGrid: showGrid,
	}
}

// Session returns the driven session.
func (c *Controller) Session() *session.Session { return c.sess }

// ShowGrid reports whether grid lines should be drawn.
func (c *Controller) ShowGrid() bool { return c.showGrid }

// Apply runs a and reports whether the front end should quit.
func (c *Controller) Apply(ctx context.Context, a Action) bool {
	log := ctxlog.FromContext(ctx)
	switch a {
	case ActionNone:
		return false
	case ActionTogglePause:
		if c.sess.ToggleRunning() {
			c.timer.Reset()
		}
	case ActionStepOnce:
		c.sess.SetRunning(false)
		c.sess.Step()
	case ActionClear:
		c.sess.Clear()
	case ActionToggleWrap:
		c.sess.ToggleWrap()
	case ActionToggleGrid:
		c.showGrid = !c.showGrid
	case ActionFaster:
		c.timer.SetInterval(c.sess.Faster())
	case ActionSlower:
		c.timer.SetInterval(c.sess.Slower())
	case ActionRandomize:
		if _, err := c.sess.Reseed(); err != nil {
			log.Error("reseed failed", "error", err)
			return false
		}
	case ActionQuit:
		log.Debug("quit requested")
		return true
	}
	log.Debug("action applied", "action", a.String(), "generation", c.sess.Generation())
	return false
}

// Tick advances the session by however many intervals have elapsed at now
// and returns the number of generations stepped.
func (c *Controller) Tick(now time.Time) int {
	c.timer.SetInterval(c.sess.Interval())
	if !c.sess.Running() {
		c.timer.Reset()
		return 0
	}
	return c.sess.Advance(c.timer.Due(now))
}
