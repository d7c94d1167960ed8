package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRunBlinker(t *testing.T) {
	out, _, err := execute(t, "run",
		"--width", "5", "--height", "5", "--wrap=false",
		"--alive", "2,1", "--alive", "2,2", "--alive", "2,3",
		"--steps", "2", "--every", "1")
	require.NoError(t, err)
	golden(t).Assert(t, "run_blinker", []byte(out))
}

func TestRunWrappedThreeByThree(t *testing.T) {
	out, _, err := execute(t, "run",
		"--width", "3", "--height", "3", "--wrap",
		"--alive", "2,1", "--alive", "2,2", "--alive", "2,3",
		"--steps", "2", "--every", "1")
	require.NoError(t, err)
	golden(t).Assert(t, "run_wrap3x3", []byte(out))
}

func TestRunFinalFrameOnly(t *testing.T) {
	out, _, err := execute(t, "run",
		"--width", "3", "--height", "3", "--wrap=false",
		"--alive", "2,1", "--alive", "2,2",
		"--steps", "1")
	require.NoError(t, err)
	assert.Equal(t, "generation 1 population 0\n...\n...\n...\n", out)
}

func TestRunRejectsOutOfBoundsCell(t *testing.T) {
	_, _, err := execute(t, "run", "--width", "3", "--height", "3", "--wrap=false", "--alive", "2,3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "outside the 3x3 grid")
}

func TestRunRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"malformed cell": {"run", "--alive", "7"},
		"non-numeric":    {"run", "--alive", "a,1"},
		"negative steps": {"run", "--steps", "-1"},
		"negative every": {"run", "--every", "-2"},
		"bad density":    {"--density", "2", "run"},
		"bad width":      {"--width", "0", "run"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestRunInvalidConfigWrapsSentinel(t *testing.T) {
	_, _, err := execute(t, "--seed-mode", "gliders", "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "-v", "run", "--width", "2", "--height", "2", "--steps", "0")
	require.NoError(t, err)
	assert.Equal(t, "generation 0 population 0\n..\n..\n", out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "run finished")
}

func TestParseCell(t *testing.T) {
	x, y, err := parseCell(" -1, 4")
	require.NoError(t, err)
	assert.Equal(t, -1, x)
	assert.Equal(t, 4, y)

	_, _, err = parseCell("1;2")
	assert.Error(t, err)
}
