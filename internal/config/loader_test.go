package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points HOME and the working directory at empty temp dirs so the
// search path only sees files created by the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	chdirForTest(t, wd)
	return wd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPongFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadPongCustomYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
playfield:
  wall_thickness: 30
ball:
  speed_divisor: 2
`)

	cfg, err := LoadPong(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Playfield.WallThickness)
	assert.Equal(t, 2.0, cfg.Ball.SpeedDivisor)
	// Untouched keys keep defaults
	assert.Equal(t, 20.0, cfg.Playfield.GoalThickness)
	assert.Equal(t, 0.05, cfg.Ball.SizeRatio)
	assert.Equal(t, 60, cfg.Runtime.TickRate)
}

func TestLoadPongCustomTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", `
[playfield]
goal_thickness = 40.0

[ball.direction]
x = -1.0
y = 0.5

[window]
title = "Table"
`)

	cfg, err := LoadPong(path)
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Playfield.GoalThickness)
	assert.Equal(t, Vec2Config{X: -1, Y: 0.5}, cfg.Ball.Direction)
	assert.Equal(t, "Table", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
}

func TestLoadPongCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "playfield: [unterminated"), false},
		{"bad toml", writeFile(t, dir, "bad.toml", "playfield = ="), false},
		{"zero thickness", writeFile(t, dir, "zero.yaml", "playfield:\n  wall_thickness: 0\n"), true},
		{"zero direction", writeFile(t, dir, "dir.yaml", "ball:\n  direction: {x: 0, y: 0}\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadPong(tc.path)
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadPongSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd := t.TempDir()
	chdirForTest(t, wd)

	writeFile(t, wd, filepath.Join("configs", "pong.yaml"), "runtime:\n  tick_rate: 30\n")
	cfg, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Runtime.TickRate, "local configs dir should be used")

	writeFile(t, home, filepath.Join(".pong", "configs", "pong.toml"), "[runtime]\ntick_rate = 120\n")
	cfg, err = LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Runtime.TickRate, "user config dir wins over local dir")
}

func TestLoadPongSkipsBrokenDiscoveredFiles(t *testing.T) {
	wd := isolate(t)
	writeFile(t, wd, filepath.Join("configs", "pong.yaml"), "ball: [")
	writeFile(t, wd, filepath.Join("configs", "pong.toml"), "[ball]\nsize_ratio = 0.1\n")

	cfg, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Ball.SizeRatio)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Window.Title = "Encoded"

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wall_thickness: 20")

	decoded, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
