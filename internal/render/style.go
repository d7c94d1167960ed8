package render

import (
	"image/color"

	"lifegrid/pkg/life"
)

// Style controls how a grid is drawn. A state missing from CellColors, or
// mapped to nil, is left undrawn so the background shows through.
type Style struct {
	CellColors map[life.CellState]color.Color
	Background color.Color
	GridColor  color.Color
	ShowGrid   bool
}

// DefaultStyle draws live cells white on a near-black board with dim grid
// lines.
func DefaultStyle() Style {
	return Style{
		CellColors: map[life.CellState]color.Color{
			life.Alive: color.RGBA{R: 235, G: 235, B: 240, A: 255},
		},
		Background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		GridColor:  color.RGBA{R: 48, G: 48, B: 56, A: 255},
		ShowGrid:   true,
	}
}

// ColorFor looks up the fill for a cell state.
func (s Style) ColorFor(state life.CellState) (color.Color, bool) {
	c, ok := s.CellColors[state]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
