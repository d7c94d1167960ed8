package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/pkg/life"
)

const screenW, screenH = 40, 20

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)
	return s
}

func newController(t *testing.T) *app.Controller {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 8, 6
	cfg.Wrap = false
	sess, err := session.New(context.Background(), cfg)
	require.NoError(t, err)
	return app.NewController(sess, false)
}

// start runs the loop with a tick period long enough that injected events
// never compete with tick interrupts for queue space.
func start(t *testing.T, ctx context.Context, s tcell.Screen, ctrl *app.Controller) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, s, ctrl, Options{Style: render.DefaultTermStyle(), TickEvery: time.Hour})
	}()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop")
	}
}

func rowText(s tcell.SimulationScreen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestKeysDriveController(t *testing.T) {
	s := newScreen(t)
	ctrl := newController(t)
	sess := ctrl.Session()
	sess.Set(3, 2, life.Alive)
	sess.Set(3, 3, life.Alive)
	sess.Set(3, 4, life.Alive)

	done := start(t, context.Background(), s, ctrl)
	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	wait(t, done)

	assert.Equal(t, 2, sess.Generation())
	assert.True(t, sess.Wrap())
	v, _ := sess.Get(3, 2)
	assert.Equal(t, life.Alive, v, "blinker back to vertical")
	assert.Contains(t, rowText(s, screenH-1), "gen 2")
	assert.Contains(t, rowText(s, screenH-1), "wrap on")
}

func TestEscapeQuits(t *testing.T) {
	s := newScreen(t)
	done := start(t, context.Background(), s, newController(t))
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	wait(t, done)
}

func TestContextCancelStopsLoop(t *testing.T) {
	s := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, s, newController(t))
	cancel()
	wait(t, done)
}

func TestCancelStopsLoopWithFullQueue(t *testing.T) {
	s := newScreen(t)
	ctrl := newController(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, s, ctrl)

	// Hold the session lock so the loop stalls inside the clear action while
	// the event queue fills up behind it.
	ctrl.Session().View(func(life.Reader) {
		s.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
		time.Sleep(50 * time.Millisecond)
		for range 16 {
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		}
		cancel()
	})
	wait(t, done)
}

func TestMousePaintsCells(t *testing.T) {
	s := newScreen(t)
	ctrl := newController(t)
	sess := ctrl.Session()
	st := render.DefaultTermStyle()
	origin := boardOrigin(screenW, screenH, 8, 6, st)
	col := func(x int) int { return origin.X + 1 + x*st.CellWidth }
	row := func(y int) int { return origin.Y + 1 + y }

	done := start(t, context.Background(), s, ctrl)
	s.InjectMouse(col(1), row(2), tcell.Button1, tcell.ModNone)
	s.InjectMouse(col(4), row(2), tcell.Button1, tcell.ModNone)
	s.InjectMouse(col(4), row(2), tcell.ButtonNone, tcell.ModNone)
	s.InjectMouse(col(2), row(2), tcell.Button2, tcell.ModNone)
	s.InjectMouse(col(2), row(2), tcell.ButtonNone, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	wait(t, done)

	for x, want := range []life.CellState{life.Dead, life.Alive, life.Dead, life.Alive, life.Alive, life.Dead} {
		v, _ := sess.Get(x, 2)
		assert.Equal(t, want, v, "x=%d", x)
	}
	assert.False(t, sess.Painting())
	assert.Equal(t, 3, sess.Population())
}

func TestBoardOrigin(t *testing.T) {
	st := render.DefaultTermStyle()
	assert.Equal(t, 11, boardOrigin(40, 20, 8, 6, st).X)
	assert.Equal(t, 5, boardOrigin(40, 20, 8, 6, st).Y)
	o := boardOrigin(10, 5, 8, 6, st)
	assert.Zero(t, o.X)
	assert.Zero(t, o.Y)
}

func TestStatusLine(t *testing.T) {
	got := statusLine(12, 40, false, 100*time.Millisecond, true)
	assert.Contains(t, got, "gen 12")
	assert.Contains(t, got, "pop 40")
	assert.Contains(t, got, "wrap off")
	assert.Contains(t, got, "100ms")
	assert.Contains(t, got, "running")
}
