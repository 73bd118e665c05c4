package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/askiada/go-puzzlepipe/internal/config"
	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/internal/puzzles"
	"github.com/askiada/go-puzzlepipe/pkg/linesource"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the root command. Commands change the global logger, so tests
// calling it do not run in parallel.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

// inputDir writes the sample of every given day as its input file and points
// the configuration at it.
func inputDir(t *testing.T, days ...int) string {
	t.Helper()

	dir := t.TempDir()

	cfg, err := config.Default()
	require.NoError(t, err)

	reg, err := puzzles.Registry(cfg)
	require.NoError(t, err)

	for _, day := range days {
		p, err := reg.Get(day)
		require.NoError(t, err)

		path := filepath.Join(dir, filepath.Base(cfg.InputPath(day)))
		require.NoError(t, os.WriteFile(path, []byte(p.Sample().Input), 0o600))
	}

	t.Setenv("PUZZLEPIPE_INPUT_DIR", dir)

	return dir
}

func TestRun(t *testing.T) {
	inputDir(t, 1, 2)

	stdout, _, err := execute(t, "run", "1", "2")
	require.NoError(t, err)

	want := "Day 1: Calories carried by the top elf = 24000\n" +
		"Day 1: Calories carried by the top 3 elves = 45000\n" +
		"\n" +
		"Day 2: Score playing the second column = 15\n" +
		"Day 2: Score reaching the second column = 12\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestRunAllDays(t *testing.T) {
	inputDir(t, 1, 2, 3, 4, 5, 6, 7)

	stdout, _, err := execute(t, "run")
	require.NoError(t, err)

	for day := 1; day <= 7; day++ {
		assert.Contains(t, stdout, fmt.Sprintf("Day %d: ", day))
	}

	assert.Contains(t, stdout, "Day 5: Top of stacks (CrateMover 9000) = CMZ\n")
	assert.Contains(t, stdout, "Day 7: Total size of directories of at most 100000 = 95437\n")
}

func TestRunConfigOverridesParameters(t *testing.T) {
	dir := inputDir(t, 1)

	cfgPath := filepath.Join(dir, "puzzlepipe.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[calories]\ntop_k = 2\n"), 0o600))

	stdout, _, err := execute(t, "run", "--config", cfgPath, "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Day 1: Calories carried by the top 2 elves = 35000\n")
}

func TestRunMissingInput(t *testing.T) {
	inputDir(t, 1)

	stdout, stderr, err := execute(t, "run", "3", "1")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "Day 3")
	assert.Contains(t, stdout, "Day 1: ")
	assert.Contains(t, stderr, "skipping puzzle")

	_, _, err = execute(t, "run", "--strict", "3", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, linesource.ErrIO))
}

func TestRunMalformedInput(t *testing.T) {
	dir := inputDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.txt"), []byte("1000\nlots\n"), 0o600))

	stdout, _, err := execute(t, "run", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parse.ErrParse))
	assert.Empty(t, stdout)
}

func TestRunInvalidDays(t *testing.T) {
	inputDir(t)

	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"not a number": {
			args:    []string{"run", "one"},
			wantErr: errInvalidDay,
		},
		"zero": {
			args:    []string{"run", "0"},
			wantErr: errInvalidDay,
		},
		"unknown day": {
			args:    []string{"run", "25"},
			wantErr: puzzle.ErrUnknownDay,
		},
		"unknown check day": {
			args:    []string{"check", "8"},
			wantErr: puzzle.ErrUnknownDay,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err)
		})
	}
}

func TestCheck(t *testing.T) {
	stdout, _, err := execute(t, "check")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Day 1: sample ok", lines[0])
	assert.Equal(t, "Day 7: sample ok", lines[6])
}

func TestCheckIgnoresConfiguredParameters(t *testing.T) {
	t.Setenv("PUZZLEPIPE_CALORIES__TOP_K", "2")

	stdout, _, err := execute(t, "check", "1")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: sample ok\n", stdout)
}

func TestCheckWritesGraphs(t *testing.T) {
	graphDir := filepath.Join(t.TempDir(), "graphs")

	_, stderr, err := execute(t, "check", "-v", "--measure", "--graph-dir", graphDir, "4")
	require.NoError(t, err)

	assert.Contains(t, stderr, "stage timings")
	assert.FileExists(t, filepath.Join(graphDir, "day04-sample.gv"))
}

func TestList(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Day 1: Calorie Counting\n"))
	assert.Contains(t, stdout, "Day 7: No Space Left On Device\n")

	_, _, err = execute(t, "list", "3")
	require.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("PUZZLEPIPE_MARKERS__PACKET", "0")

	_, _, err := execute(t, "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}
