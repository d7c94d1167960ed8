// Package session drives a single life grid on behalf of a front end: it owns
// the grid, rebuilds it when the dimensions change, paces auto-stepping and
// applies pointer strokes.
//
// The engine itself has no locking; every Session method takes the session
// mutex so a ticker goroutine and an input loop may share one Session.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	"lifegrid/pkg/life"
)

// Interval bounds accepted by SetInterval.
const (
	MinInterval = 10 * time.Millisecond
	MaxInterval = 5 * time.Second
)

// MaxDimension caps grid width and height set through the HUD.
const MaxDimension = 1024

// Session owns one grid plus the run state around it.
type Session struct {
	mu sync.Mutex

	grid       *life.Grid
	cfg        config.Config
	generation int
	running    bool
	stroke     *stroke

	log *slog.Logger
}

// New builds a session from cfg and applies its seed mode.
func New(ctx context.Context, cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := life.New(cfg.Width, cfg.Height, cfg.Wrap)
	if err != nil {
		return nil, err
	}
	cfg.Interval = clampInterval(cfg.Interval)
	s := &Session{
		grid:    g,
		cfg:     cfg,
		running: !cfg.Paused,
		log:     ctxlog.FromContext(ctx).With("component", "session"),
	}
	if err := s.seedLocked(cfg.SeedMode, cfg.Seed, cfg.Density); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.grid.Size()
	return core.Size{W: w, H: h}
}

// Config returns the current settings, including any changes made since New.
func (s *Session) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Step advances one generation regardless of the running flag.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Step()
	s.generation++
}

// Advance steps n generations when the session is running and reports how
// many were taken.
func (s *Session) Advance(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || n <= 0 {
		return 0
	}
	for range n {
		s.grid.Step()
	}
	s.generation += n
	return n
}

// Generation returns the number of steps since the last reset.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Population returns the number of live cells.
func (s *Session) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Population()
}

// Get reads a cell using the grid's current addressing.
func (s *Session) Get(x, y int) (life.CellState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Get(x, y)
}

// Set writes a cell and reports whether it existed.
func (s *Session) Set(x, y int, v life.CellState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Set(x, y, v)
}

// Toggle flips a cell and returns its new state.
func (s *Session) Toggle(x, y int) (life.CellState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.grid.Get(x, y)
	if !ok {
		return life.Dead, false
	}
	nv := life.Alive
	if cur == life.Alive {
		nv = life.Dead
	}
	s.grid.Set(x, y, nv)
	return nv, true
}

// Cells returns a row-major copy of the current generation.
func (s *Session) Cells() []life.CellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Cells()
}

// View calls fn with a read-only view of the grid while holding the session
// lock. fn must not retain the reader.
func (s *Session) View(fn func(r life.Reader)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// Wrap reports the current addressing mode.
func (s *Session) Wrap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Wrap()
}

// SetWrap switches the addressing mode.
func (s *Session) SetWrap(wrap bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setWrapLocked(wrap)
}

// ToggleWrap flips the addressing mode and returns the new value.
func (s *Session) ToggleWrap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setWrapLocked(!s.grid.Wrap())
	return s.cfg.Wrap
}

func (s *Session) setWrapLocked(wrap bool) {
	s.grid.SetWrap(wrap)
	s.cfg.Wrap = wrap
	s.log.Debug("wrap changed", "wrap", wrap)
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.generation = 0
	s.log.Debug("grid cleared")
}

// Resize replaces the grid with an empty one of the new dimensions. The wrap
// mode carries over; cell contents do not.
func (s *Session) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resizeLocked(width, height)
}

func (s *Session) resizeLocked(width, height int) error {
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", life.ErrInvalidSize, width, height, MaxDimension)
	}
	g, err := life.New(width, height, s.grid.Wrap())
	if err != nil {
		return err
	}
	s.grid = g
	s.cfg.Width, s.cfg.Height = width, height
	s.generation = 0
	s.stroke = nil
	s.log.Debug("grid rebuilt", "width", width, "height", height)
	return nil
}

// Running reports whether auto-step is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetRunning starts or stops auto-step.
func (s *Session) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

// ToggleRunning flips auto-step and returns the new state.
func (s *Session) ToggleRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
	return s.running
}

// Interval returns the auto-step period.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Interval
}

// SetInterval changes the auto-step period, clamped to [MinInterval,
// MaxInterval], and returns the value applied.
func (s *Session) SetInterval(d time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Interval = clampInterval(d)
	return s.cfg.Interval
}

// Faster halves the auto-step period.
func (s *Session) Faster() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Interval = clampInterval(s.cfg.Interval / 2)
	return s.cfg.Interval
}

// Slower doubles the auto-step period.
func (s *Session) Slower() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Interval = clampInterval(s.cfg.Interval * 2)
	return s.cfg.Interval
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
