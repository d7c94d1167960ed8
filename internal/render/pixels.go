package render

import (
	"image"
	"image/color"
	"image/draw"

	"lifegrid/pkg/life"
)

// BoardBounds returns the pixel rectangle covered by a w*h board drawn at
// origin, border included.
func BoardBounds(w, h int, origin image.Point, cellSize int) image.Rectangle {
	return image.Rect(origin.X, origin.Y, origin.X+w*cellSize+1, origin.Y+h*cellSize+1)
}

// CellAt maps a pixel position back to the cell drawn under it. ok is false
// when p falls outside the w*h board.
func CellAt(p image.Point, origin image.Point, cellSize, w, h int) (x, y int, ok bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}
	dx, dy := p.X-origin.X, p.Y-origin.Y
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	x, y = dx/cellSize, dy/cellSize
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// Rasterize draws the board into dst. Cells are visited in row-major order and
// filled as cellSize squares offset from origin by (x*cellSize, y*cellSize).
// Grid lines are drawn at interior cell boundaries when enabled; the border
// always is. Everything is clipped to dst's bounds.
func Rasterize(dst *image.RGBA, r life.Reader, origin image.Point, cellSize int, st Style) {
	if cellSize <= 0 {
		return
	}
	w, h := r.Size()
	if st.Background != nil {
		fillRect(dst, BoardBounds(w, h, origin, cellSize), st.Background)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			state, ok := r.Get(x, y)
			if !ok {
				continue
			}
			c, ok := st.ColorFor(state)
			if !ok {
				continue
			}
			tl := origin.Add(image.Pt(x*cellSize, y*cellSize))
			fillRect(dst, image.Rectangle{Min: tl, Max: tl.Add(image.Pt(cellSize, cellSize))}, c)
		}
	}
	if st.GridColor == nil {
		return
	}
	right := origin.X + w*cellSize
	bottom := origin.Y + h*cellSize
	if st.ShowGrid {
		for y := 1; y < h; y++ {
			cy := origin.Y + y*cellSize
			fillRect(dst, image.Rect(origin.X, cy, right, cy+1), st.GridColor)
		}
		for x := 1; x < w; x++ {
			cx := origin.X + x*cellSize
			fillRect(dst, image.Rect(cx, origin.Y, cx+1, bottom), st.GridColor)
		}
	}
	fillRect(dst, image.Rect(origin.X, origin.Y, right+1, origin.Y+1), st.GridColor)
	fillRect(dst, image.Rect(origin.X, bottom, right+1, bottom+1), st.GridColor)
	fillRect(dst, image.Rect(origin.X, origin.Y, origin.X+1, bottom+1), st.GridColor)
	fillRect(dst, image.Rect(right, origin.Y, right+1, bottom+1), st.GridColor)
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
