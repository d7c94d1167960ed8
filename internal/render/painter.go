//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/pkg/life"
)

// GridPainter keeps an ebiten image of the board in sync with a grid.
type GridPainter struct {
	w, h     int
	cellSize int
	raster   *image.RGBA
	img      *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h board at cellSize pixels per
// cell.
func NewGridPainter(w, h, cellSize int) *GridPainter {
	bounds := BoardBounds(w, h, image.Point{}, cellSize)
	gp := &GridPainter{w: w, h: h, cellSize: cellSize, raster: image.NewRGBA(bounds)}
	gp.img = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	return gp
}

// Fits reports whether the painter was built for these dimensions.
func (gp *GridPainter) Fits(w, h, cellSize int) bool {
	return gp.w == w && gp.h == h && gp.cellSize == cellSize
}

// Blit rasterizes r and draws it onto dst with its top-left corner at origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, r life.Reader, origin image.Point, st Style) {
	if w, h := r.Size(); !gp.Fits(w, h, gp.cellSize) {
		return
	}
	clear(gp.raster.Pix)
	Rasterize(gp.raster, r, image.Point{}, gp.cellSize, st)
	gp.img.WritePixels(gp.raster.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	dst.DrawImage(gp.img, op)
}
