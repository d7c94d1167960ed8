package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestBindParsesFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-width", "20", "-wrap=false", "-interval", "1s", "-seed-mode", "noise"}))

	want := Default()
	want.Width = 20
	want.Wrap = false
	want.Interval = time.Second
	want.SeedMode = SeedNoise
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]string{"width": "20", "wrap": "false", "interval": "1s", "seed-mode": "noise"}, Visited(fs))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative hud", func(c *Config) { c.HUDWidth = -5 }},
		{"density above one", func(c *Config) { c.Density = 1.01 }},
		{"density below zero", func(c *Config) { c.Density = -0.1 }},
		{"unknown seed mode", func(c *Config) { c.SeedMode = "gliders" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	c, err := Load("testdata/small.yaml")
	require.NoError(t, err)

	want := Default()
	want.Width = 12
	want.Height = 8
	want.Wrap = false
	want.Interval = 250 * time.Millisecond
	want.SeedMode = SeedUniform
	want.Density = 0.4
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/malformed.yaml")
	assert.Error(t, err)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	c, err := Resolve("testdata/small.yaml", map[string]string{"width": "30", "wrap": "true"})
	require.NoError(t, err)
	assert.Equal(t, 30, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.True(t, c.Wrap)
	assert.Equal(t, 250*time.Millisecond, c.Interval)
}

func TestResolveRejectsInvalidResult(t *testing.T) {
	_, err := Resolve("testdata/bad_density.yaml", nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Resolve("", map[string]string{"width": "abc"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Resolve("", map[string]string{"height": "0"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestResolveIgnoresUnknownFlags(t *testing.T) {
	c, err := Resolve("", map[string]string{"verbose": "true"})
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
