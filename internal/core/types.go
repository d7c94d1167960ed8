package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract front ends use to display and advance a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
}
