package render

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"lifegrid/pkg/life"
)

// TermStyle controls terminal drawing. Each cell spans CellWidth columns so
// cells look roughly square in most fonts.
type TermStyle struct {
	Alive     tcell.Style
	Dead      tcell.Style
	Border    tcell.Style
	CellWidth int
	ShowGrid  bool
	GridRune  rune
}

// DefaultTermStyle paints live cells as white blocks on the default
// background.
func DefaultTermStyle() TermStyle {
	return TermStyle{
		Alive:     tcell.StyleDefault.Background(tcell.ColorWhite),
		Dead:      tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray),
		Border:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		CellWidth: 2,
		GridRune:  '·',
	}
}

func (st TermStyle) cellWidth() int {
	if st.CellWidth <= 0 {
		return 1
	}
	return st.CellWidth
}

// TermBoardSize returns the columns and rows a w*h board occupies, border
// included.
func TermBoardSize(w, h int, st TermStyle) (int, int) {
	return w*st.cellWidth() + 2, h + 2
}

// DrawTerminal draws the board with its top-left border corner at origin.
func DrawTerminal(s tcell.Screen, r life.Reader, origin image.Point, st TermStyle) {
	w, h := r.Size()
	cw := st.cellWidth()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := st.Dead
			ch := ' '
			if v, ok := r.Get(x, y); ok && v == life.Alive {
				style = st.Alive
			} else if st.ShowGrid && st.GridRune != 0 {
				ch = st.GridRune
			}
			col := origin.X + 1 + x*cw
			for i := 0; i < cw; i++ {
				c := ' '
				if i == 0 {
					c = ch
				}
				s.SetContent(col+i, origin.Y+1+y, c, nil, style)
			}
		}
	}

	right := origin.X + 1 + w*cw
	bottom := origin.Y + 1 + h
	for x := origin.X + 1; x < right; x++ {
		s.SetContent(x, origin.Y, tcell.RuneHLine, nil, st.Border)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, st.Border)
	}
	for y := origin.Y + 1; y < bottom; y++ {
		s.SetContent(origin.X, y, tcell.RuneVLine, nil, st.Border)
		s.SetContent(right, y, tcell.RuneVLine, nil, st.Border)
	}
	s.SetContent(origin.X, origin.Y, tcell.RuneULCorner, nil, st.Border)
	s.SetContent(right, origin.Y, tcell.RuneURCorner, nil, st.Border)
	s.SetContent(origin.X, bottom, tcell.RuneLLCorner, nil, st.Border)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, st.Border)
}

// TermCellAt maps a terminal position back to the cell drawn there.
func TermCellAt(col, row int, origin image.Point, st TermStyle, w, h int) (x, y int, ok bool) {
	dx := col - origin.X - 1
	dy := row - origin.Y - 1
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	x, y = dx/st.cellWidth(), dy
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
