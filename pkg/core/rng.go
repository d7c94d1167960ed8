package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with a PCG source so a seed always reproduces the
// same soup.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. p <= 0 never fires, p >= 1 always
// does.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillChance sets each element of buf to on with probability p and to off
// otherwise.
func FillChance[T any](r *RNG, buf []T, p float64, on, off T) {
	for i := range buf {
		if r.Chance(p) {
			buf[i] = on
			continue
		}
		buf[i] = off
	}
}
