package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"lifegrid/pkg/life"
)

var (
	testAlive = color.RGBA{R: 255, A: 255}
	testDead  = color.RGBA{B: 255, A: 255}
	testGrid  = color.RGBA{G: 255, A: 255}
	testBG    = color.RGBA{R: 1, G: 2, B: 3, A: 255}
)

func testStyle(showGrid bool) Style {
	return Style{
		CellColors: map[life.CellState]color.Color{life.Alive: testAlive},
		Background: testBG,
		GridColor:  testGrid,
		ShowGrid:   showGrid,
	}
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRasterizeCellsGridAndBorder(t *testing.T) {
	g := life.MustNew(2, 2, false)
	g.Set(1, 0, life.Alive)
	origin := image.Pt(1, 1)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	Rasterize(img, g, origin, 3, testStyle(true))

	assert.Equal(t, testAlive, rgbaAt(img, 5, 2), "inside live cell (1,0)")
	assert.Equal(t, testAlive, rgbaAt(img, 6, 3))
	assert.Equal(t, testBG, rgbaAt(img, 2, 2), "dead cell shows background")
	assert.Equal(t, testGrid, rgbaAt(img, 4, 5), "interior vertical line")
	assert.Equal(t, testGrid, rgbaAt(img, 2, 4), "interior horizontal line")
	assert.Equal(t, testGrid, rgbaAt(img, 1, 1), "top-left border")
	assert.Equal(t, testGrid, rgbaAt(img, 7, 7), "bottom-right border")
	assert.Equal(t, color.RGBA{}, rgbaAt(img, 8, 8), "outside the board is untouched")
	assert.Equal(t, color.RGBA{}, rgbaAt(img, 0, 0))
}

func TestRasterizeWithoutGridLines(t *testing.T) {
	g := life.MustNew(2, 2, false)
	g.Set(1, 1, life.Alive)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	Rasterize(img, g, image.Pt(1, 1), 3, testStyle(false))

	assert.Equal(t, testAlive, rgbaAt(img, 4, 5), "no interior line over the live cell")
	assert.Equal(t, testBG, rgbaAt(img, 2, 4))
	assert.Equal(t, testGrid, rgbaAt(img, 1, 4), "border still drawn")
}

func TestRasterizeDrawsMappedDeadColor(t *testing.T) {
	g := life.MustNew(1, 1, false)
	st := testStyle(false)
	st.CellColors[life.Dead] = testDead
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	Rasterize(img, g, image.Point{}, 4, st)
	assert.Equal(t, testDead, rgbaAt(img, 2, 2))
}

func TestRasterizeClipsToDestination(t *testing.T) {
	g := life.MustNew(4, 4, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, life.Alive)
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	assert.NotPanics(t, func() { Rasterize(img, g, image.Pt(-3, -3), 4, testStyle(true)) })
	assert.NotPanics(t, func() { Rasterize(img, g, image.Point{}, 0, testStyle(true)) })
}

func TestBoardBoundsAndCellAt(t *testing.T) {
	origin := image.Pt(10, 20)
	assert.Equal(t, image.Rect(10, 20, 41, 41), BoardBounds(3, 2, origin, 10))

	x, y, ok := CellAt(image.Pt(25, 39), origin, 10, 3, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	_, _, ok = CellAt(image.Pt(9, 25), origin, 10, 3, 2)
	assert.False(t, ok)
	_, _, ok = CellAt(image.Pt(40, 25), origin, 10, 3, 2)
	assert.False(t, ok)
	_, _, ok = CellAt(image.Pt(15, 25), origin, 0, 3, 2)
	assert.False(t, ok)
}

func TestStyleColorFor(t *testing.T) {
	st := DefaultStyle()
	_, ok := st.ColorFor(life.Alive)
	assert.True(t, ok)
	_, ok = st.ColorFor(life.Dead)
	assert.False(t, ok)

	st.CellColors[life.Dead] = nil
	_, ok = st.ColorFor(life.Dead)
	assert.False(t, ok)
}
