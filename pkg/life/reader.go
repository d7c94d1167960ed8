package life

// Reader is the read-only view of a grid handed to renderers.
type Reader interface {
	Size() (int, int)
	Wrap() bool
	Get(x, y int) (CellState, bool)
}

var _ Reader = (*Grid)(nil)
