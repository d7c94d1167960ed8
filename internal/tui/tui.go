// Package tui runs the simulation in a terminal using tcell.
package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/app"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// DefaultTickEvery is how often the event loop checks whether a generation
// is due.
const DefaultTickEvery = 15 * time.Millisecond

// Options tunes the terminal front end.
type Options struct {
	Style     render.TermStyle
	TickEvery time.Duration
}

type tickEvent struct{}

var errQuit = errors.New("quit")

// Run drives ctrl on screen until the user quits or ctx is cancelled. The
// caller owns screen and must have initialised it; Run does not call Fini.
func Run(ctx context.Context, screen tcell.Screen, ctrl *app.Controller, opts Options) error {
	if opts.TickEvery <= 0 {
		opts.TickEvery = DefaultTickEvery
	}
	screen.EnableMouse()
	log := ctxlog.FromContext(ctx).With("component", "tui")

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	eg.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	eg.Go(func() error {
		t := time.NewTicker(opts.TickEvery)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				// A full queue means the loop is behind; skipping a tick is fine.
				_ = screen.PostEvent(tcell.NewEventInterrupt(tickEvent{}))
			}
		}
	})
	eg.Go(func() error {
		defer close(quit)
		l := &loop{ctx: ctx, screen: screen, ctrl: ctrl, style: opts.Style}
		l.draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return errQuit
				}
				if l.handle(ev) {
					log.Debug("terminal loop finished", "generation", ctrl.Session().Generation())
					return errQuit
				}
				if ctx.Err() != nil {
					return nil
				}
			}
		}
	})
	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

type loop struct {
	ctx    context.Context
	screen tcell.Screen
	ctrl   *app.Controller
	style  render.TermStyle
	origin image.Point
}

// handle processes one event and reports whether the loop should stop.
func (l *loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(tickEvent); ok && l.ctrl.Tick(ev.When()) == 0 {
			return false
		}
	case *tcell.EventKey:
		if l.ctrl.Apply(l.ctx, keyAction(ev)) {
			return true
		}
	case *tcell.EventMouse:
		l.mouse(ev)
	case *tcell.EventResize:
		l.screen.Sync()
	default:
		return false
	}
	l.draw()
	return false
}

func keyAction(ev *tcell.EventKey) app.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.ActionQuit
	case tcell.KeyEnter:
		return app.ActionStepOnce
	case tcell.KeyRune:
		return app.RuneAction(ev.Rune())
	}
	return app.ActionNone
}

func (l *loop) mouse(ev *tcell.EventMouse) {
	sess := l.ctrl.Session()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		if !sess.Painting() {
			sess.BeginStroke(life.Alive)
		}
	case buttons&tcell.Button2 != 0:
		if !sess.Painting() {
			sess.BeginStroke(life.Dead)
		}
	default:
		sess.EndStroke()
		return
	}
	col, row := ev.Position()
	size := sess.Size()
	if x, y, ok := render.TermCellAt(col, row, l.origin, l.style, size.W, size.H); ok {
		sess.Paint(x, y)
	}
}

// boardOrigin centres a w*h board on an sw*sh screen, keeping the last row
// for the status line.
func boardOrigin(sw, sh, w, h int, st render.TermStyle) image.Point {
	cols, rows := render.TermBoardSize(w, h, st)
	return image.Pt(max(0, (sw-cols)/2), max(0, (sh-1-rows)/2))
}

func (l *loop) draw() {
	sess := l.ctrl.Session()
	l.style.ShowGrid = l.ctrl.ShowGrid()
	l.screen.Clear()
	sw, sh := l.screen.Size()
	sess.View(func(r life.Reader) {
		w, h := r.Size()
		l.origin = boardOrigin(sw, sh, w, h, l.style)
		render.DrawTerminal(l.screen, r, l.origin, l.style)
	})
	drawString(l.screen, 0, sh-1, statusLine(sess.Generation(), sess.Population(), sess.Wrap(), sess.Interval(), sess.Running()), tcell.StyleDefault)
	l.screen.Show()
}

func statusLine(gen, pop int, wrap bool, interval time.Duration, running bool) string {
	state := "paused"
	if running {
		state = "running"
	}
	wrapState := "off"
	if wrap {
		wrapState = "on"
	}
	return fmt.Sprintf(" gen %d  pop %d  wrap %s  %s  %s  [space n c w g + - r q]", gen, pop, wrapState, interval, state)
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
