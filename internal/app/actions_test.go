package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/config"
	"lifegrid/internal/session"
	"lifegrid/pkg/life"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 10, 10
	sess, err := session.New(context.Background(), cfg)
	require.NoError(t, err)
	return NewController(sess, cfg.ShowGrid)
}

func TestRuneAction(t *testing.T) {
	for _, b := range Bindings {
		if b.Key == "space" {
			assert.Equal(t, b.Action, RuneAction(' '))
			continue
		}
		assert.Equal(t, b.Action, RuneAction(rune(b.Key[0])), b.Key)
	}
	assert.Equal(t, ActionNone, RuneAction('x'))
	assert.Equal(t, "unknown", Action(99).String())
}

func TestApplyActions(t *testing.T) {
	ctx := context.Background()
	c := newController(t)
	sess := c.Session()

	assert.False(t, c.Apply(ctx, ActionTogglePause))
	assert.True(t, sess.Running())

	sess.Set(1, 1, life.Alive)
	assert.False(t, c.Apply(ctx, ActionStepOnce))
	assert.False(t, sess.Running(), "single step pauses")
	assert.Equal(t, 1, sess.Generation())

	c.Apply(ctx, ActionToggleWrap)
	assert.False(t, sess.Wrap())

	assert.True(t, c.ShowGrid())
	c.Apply(ctx, ActionToggleGrid)
	assert.False(t, c.ShowGrid())

	c.Apply(ctx, ActionFaster)
	assert.Equal(t, 50*time.Millisecond, sess.Interval())
	c.Apply(ctx, ActionSlower)
	c.Apply(ctx, ActionSlower)
	assert.Equal(t, 200*time.Millisecond, sess.Interval())

	c.Apply(ctx, ActionRandomize)
	assert.NotZero(t, sess.Population())
	c.Apply(ctx, ActionClear)
	assert.Zero(t, sess.Population())

	assert.False(t, c.Apply(ctx, ActionNone))
	assert.True(t, c.Apply(ctx, ActionQuit))
}

func TestTickHonoursRunningAndInterval(t *testing.T) {
	c := newController(t)
	sess := c.Session()
	start := time.Unix(100, 0)

	assert.Zero(t, c.Tick(start))
	assert.Zero(t, c.Tick(start.Add(time.Second)), "paused session never steps")

	sess.SetRunning(true)
	assert.Zero(t, c.Tick(start.Add(2*time.Second)), "first running tick primes the timer")
	assert.Equal(t, 1, c.Tick(start.Add(2*time.Second+100*time.Millisecond)))
	assert.Equal(t, 1, sess.Generation())

	sess.SetInterval(50 * time.Millisecond)
	assert.Equal(t, 2, c.Tick(start.Add(2*time.Second+200*time.Millisecond)))
	assert.Equal(t, 3, sess.Generation())
}

func TestHelpLines(t *testing.T) {
	lines := HelpLines()
	assert.Len(t, lines, len(Bindings))
	assert.Equal(t, "space  pause", lines[0])
	assert.Equal(t, "q      quit", lines[len(lines)-1])
}
