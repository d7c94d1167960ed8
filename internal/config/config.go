// Package config holds the settings shared by the GUI, terminal and headless
// front ends: grid dimensions, wrap mode, auto-step interval and seeding.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Seed modes understood by the session.
const (
	SeedEmpty   = "empty"
	SeedUniform = "uniform"
	SeedNoise   = "noise"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the user-adjustable settings of a run.
type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Wrap     bool          `yaml:"wrap"`
	Interval time.Duration `yaml:"interval"`
	Paused   bool          `yaml:"paused"`

	Seed     int64   `yaml:"seed"`
	SeedMode string  `yaml:"seed_mode"`
	Density  float64 `yaml:"density"`

	CellSize int  `yaml:"cell_size"`
	ShowGrid bool `yaml:"show_grid"`
	HUDWidth int  `yaml:"hud_width"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Width:    64,
		Height:   48,
		Wrap:     true,
		Interval: 100 * time.Millisecond,
		Paused:   true,
		Seed:     42,
		SeedMode: SeedEmpty,
		Density:  0.25,
		CellSize: 10,
		ShowGrid: true,
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap coordinates around the grid edges")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "auto-step interval")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with auto-step paused")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial fill: empty, uniform or noise")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a random fill")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines between cells")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
}

// Validate reports the first setting the engine or front ends cannot use.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, c.Interval)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.HUDWidth < 0:
		return fmt.Errorf("%w: hud width must not be negative, got %d", ErrInvalidConfig, c.HUDWidth)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be within [0,1], got %g", ErrInvalidConfig, c.Density)
	}
	switch c.SeedMode {
	case SeedEmpty, SeedUniform, SeedNoise:
	default:
		return fmt.Errorf("%w: unknown seed mode %q", ErrInvalidConfig, c.SeedMode)
	}
	return nil
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Resolve builds the effective configuration: defaults, then the file at path
// when path is non-empty, then every flag the user set explicitly. set maps
// flag names (as registered by Bind) to their string values.
func Resolve(path string, set map[string]string) (Config, error) {
	c := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	fs := flag.NewFlagSet("overrides", flag.ContinueOnError)
	c.Bind(fs)
	for name, value := range set {
		if fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return c, fmt.Errorf("%w: flag -%s: %v", ErrInvalidConfig, name, err)
		}
	}
	return c, c.Validate()
}

// Visited collects the flags explicitly set on fs, in the shape Resolve
// expects.
func Visited(fs *flag.FlagSet) map[string]string {
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})
	return set
}
