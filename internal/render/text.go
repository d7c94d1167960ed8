package render

import (
	"bufio"
	"io"

	"lifegrid/pkg/life"
)

// WriteText prints the grid as one line per row, using alive for live cells
// and dead for everything else.
func WriteText(w io.Writer, r life.Reader, alive, dead rune) error {
	bw := bufio.NewWriter(w)
	width, height := r.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := dead
			if v, ok := r.Get(x, y); ok && v == life.Alive {
				ch = alive
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
