package session

import (
	"fmt"
	"slices"

	"github.com/aquilax/go-perlin"

	"lifegrid/internal/config"
	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Perlin parameters for the noise fill. noiseScale sets the blob size in
// cells.
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOct   = 3
	noiseScale = 0.12
)

// Seed clears the grid and fills it according to mode. uniform makes each
// cell alive with probability density; noise thresholds a Perlin field so
// about density of the cells come out alive in connected clumps.
func (s *Session) Seed(mode string, seed int64, density float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedLocked(mode, seed, density)
}

// Reseed fills the grid with the next seed in sequence, using the configured
// mode or uniform when the session started empty. On error the grid and seed
// are left unchanged.
func (s *Session) Reseed() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.cfg.SeedMode
	if mode == config.SeedEmpty {
		mode = config.SeedUniform
	}
	next := s.cfg.Seed + 1
	if err := s.seedLocked(mode, next, s.cfg.Density); err != nil {
		return s.cfg.Seed, err
	}
	return next, nil
}

func (s *Session) seedLocked(mode string, seed int64, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: density %g outside [0,1]", config.ErrInvalidConfig, density)
	}
	w, h := s.grid.Size()
	cells := make([]life.CellState, w*h)
	switch mode {
	case config.SeedEmpty:
	case config.SeedUniform:
		core.FillChance(core.NewRNG(seed), cells, density, life.Alive, life.Dead)
	case config.SeedNoise:
		fillNoise(cells, w, h, seed, density)
	default:
		return fmt.Errorf("%w: unknown seed mode %q", config.ErrInvalidConfig, mode)
	}

	s.grid.Clear()
	for i, c := range cells {
		if c == life.Alive {
			s.grid.Set(i%w, i/w, life.Alive)
		}
	}
	s.cfg.SeedMode = mode
	s.cfg.Seed = seed
	s.cfg.Density = density
	s.generation = 0
	s.log.Debug("grid seeded", "mode", mode, "seed", seed, "density", density, "population", s.grid.Population())
	return nil
}

func fillNoise(cells []life.CellState, w, h int, seed int64, density float64) {
	if density <= 0 {
		return
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, seed)
	values := make([]float64, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			values[y*w+x] = p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
		}
	}
	live := int(density*float64(len(cells)) + 0.5)
	if live <= 0 {
		return
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	threshold := sorted[len(sorted)-min(live, len(sorted))]
	for i, v := range values {
		if v >= threshold {
			cells[i] = life.Alive
		}
	}
}
