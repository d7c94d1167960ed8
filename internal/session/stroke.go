package session

import "lifegrid/pkg/life"

type stroke struct {
	state     life.CellState
	lastX     int
	lastY     int
	hasLast   bool
	writes    int
	coalesced int
}

// BeginStroke starts a pointer drag that paints state into every cell the
// pointer crosses.
func (s *Session) BeginStroke(state life.CellState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stroke = &stroke{state: state}
}

// Painting reports whether a stroke is in progress.
func (s *Session) Painting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stroke != nil
}

// Paint moves the active stroke to (x, y) and returns how many cells were
// written. Repeated calls for the cell the pointer already sits on write
// nothing; jumps between distant cells fill the cells in between so fast
// drags leave no gaps. Without an active stroke Paint does nothing.
func (s *Session) Paint(x, y int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stroke
	if st == nil {
		return 0
	}
	if st.hasLast && st.lastX == x && st.lastY == y {
		st.coalesced++
		return 0
	}
	n := 0
	if !st.hasLast {
		if s.grid.Set(x, y, st.state) {
			n++
		}
	} else {
		line(st.lastX, st.lastY, x, y, func(px, py int) {
			if px == st.lastX && py == st.lastY {
				return
			}
			if s.grid.Set(px, py, st.state) {
				n++
			}
		})
	}
	st.lastX, st.lastY, st.hasLast = x, y, true
	st.writes += n
	return n
}

// EndStroke finishes the active stroke and returns the number of cells it
// wrote.
func (s *Session) EndStroke() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stroke == nil {
		return 0
	}
	n := s.stroke.writes
	s.log.Debug("stroke finished", "state", s.stroke.state, "writes", n, "coalesced", s.stroke.coalesced)
	s.stroke = nil
	return n
}

// line visits every cell on the Bresenham line from (x0, y0) to (x1, y1),
// endpoints included.
func line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
