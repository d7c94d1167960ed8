package session

import (
	"time"

	"lifegrid/internal/core"
)

// Parameters returns the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("width", "Width", w),
				core.IntParam("height", "Height", h),
				core.BoolParam("wrap", "Wrap", s.grid.Wrap()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", s.running),
				core.DurationParam("interval", "Interval ms", s.cfg.Interval),
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("population", "Population", s.grid.Population()),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
	}}
}

// ParameterControls lists the parameters the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 4, Min: 1, Max: MaxDimension, HasMin: true, HasMax: true},
		{Key: "height", Label: "Height", Type: core.ParamTypeInt, Step: 4, Min: 1, Max: MaxDimension, HasMin: true, HasMax: true},
		{Key: "wrap", Label: "Wrap", Type: core.ParamTypeBool},
		{Key: "running", Label: "Running", Type: core.ParamTypeBool},
		{
			Key: "interval", Label: "Interval ms", Type: core.ParamTypeDuration, Step: 10,
			Min: int(MinInterval.Milliseconds()), Max: int(MaxInterval.Milliseconds()), HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter applies a HUD adjustment. Changing width or height rebuilds
// the grid.
func (s *Session) SetIntParameter(key string, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.grid.Size()
	switch key {
	case "width":
		if value == w {
			return false
		}
		return s.resizeLocked(value, h) == nil
	case "height":
		if value == h {
			return false
		}
		return s.resizeLocked(w, value) == nil
	case "interval":
		s.cfg.Interval = clampInterval(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

// SetBoolParameter applies a HUD toggle.
func (s *Session) SetBoolParameter(key string, value bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "wrap":
		s.setWrapLocked(value)
		return true
	case "running":
		s.running = value
		return true
	}
	return false
}

var (
	_ core.Sim                       = (*Session)(nil)
	_ core.ParameterProvider         = (*Session)(nil)
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.BoolParameterSetter       = (*Session)(nil)
)
