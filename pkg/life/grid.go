// Package life implements Conway's Game of Life on a fixed-size grid with
// optional toroidal wrapping.
//
// A Grid has no internal locking. Callers sharing one across goroutines must
// serialize Set, Clear and Step themselves.
package life

import (
	"errors"
	"fmt"
)

// CellState is the per-cell status stored in a Grid.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

// String returns a lower-case name for the state.
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined states.
func (s CellState) Valid() bool { return s == Dead || s == Alive }

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("life: invalid grid size")

// Grid stores cells in row-major order, indexed by y*width + x.
type Grid struct {
	w, h int
	wrap bool
	cur  []CellState
	nxt  []CellState
}

// New returns a grid of the given dimensions with every cell Dead.
func New(width, height int, wrap bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	total := width * height
	return &Grid{
		w:    width,
		h:    height,
		wrap: wrap,
		cur:  make([]CellState, total),
		nxt:  make([]CellState, total),
	}, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(width, height int, wrap bool) *Grid {
	g, err := New(width, height, wrap)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns width and height.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Wrap reports whether coordinates wrap around the edges.
func (g *Grid) Wrap() bool { return g.wrap }

// SetWrap switches addressing between bounded and toroidal. Stored cells are
// untouched; only subsequent lookups change.
func (g *Grid) SetWrap(wrap bool) { g.wrap = wrap }

// Clear resets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// ResolveIndex maps (x, y) to an index into the cell slice. Without wrapping,
// coordinates outside the grid report false. With wrapping both axes are
// reduced with a floor modulo so negative coordinates land on the far edge.
func (g *Grid) ResolveIndex(x, y int) (int, bool) {
	if g.wrap {
		return floorMod(y, g.h)*g.w + floorMod(x, g.w), true
	}
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return -1, false
	}
	return y*g.w + x, true
}

func floorMod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// Get returns the state at (x, y). ok is false when no such cell exists.
func (g *Grid) Get(x, y int) (CellState, bool) {
	idx, ok := g.ResolveIndex(x, y)
	if !ok {
		return Dead, false
	}
	return g.cur[idx], true
}

// Set stores v at (x, y) and reports whether a cell was written. Unresolvable
// coordinates and undefined states leave the grid unchanged.
func (g *Grid) Set(x, y int, v CellState) bool {
	if !v.Valid() {
		return false
	}
	idx, ok := g.ResolveIndex(x, y)
	if !ok {
		return false
	}
	g.cur[idx] = v
	return true
}

// Neighbors returns the states of the up to eight cells surrounding (x, y),
// scanning rows top to bottom and columns left to right. Positions that do
// not resolve are omitted rather than reported as Dead.
func (g *Grid) Neighbors(x, y int) []CellState {
	return g.AppendNeighbors(make([]CellState, 0, 8), x, y)
}

// AppendNeighbors appends the neighbours of (x, y) to dst in the same order
// as Neighbors.
func (g *Grid) AppendNeighbors(dst []CellState, x, y int) []CellState {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if idx, ok := g.ResolveIndex(x+dx, y+dy); ok {
				dst = append(dst, g.cur[idx])
			}
		}
	}
	return dst
}

// LiveNeighbors counts the Alive cells among the neighbours of (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if idx, ok := g.ResolveIndex(x+dx, y+dy); ok && g.cur[idx] == Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation. Every cell is evaluated
// against the previous generation before the buffers swap.
func (g *Grid) Step() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx, ok := g.ResolveIndex(x, y)
			if !ok {
				continue
			}
			g.nxt[idx] = next(g.cur[idx], g.LiveNeighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func next(s CellState, live int) CellState {
	switch s {
	case Alive:
		if live < 2 || live > 3 {
			return Dead
		}
		return Alive
	default:
		if live == 3 {
			return Alive
		}
		return Dead
	}
}

// Cells returns a copy of the current generation in row-major order.
func (g *Grid) Cells() []CellState {
	out := make([]CellState, len(g.cur))
	copy(out, g.cur)
	return out
}

// Population counts the Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c == Alive {
			n++
		}
	}
	return n
}
