// Package config provides YAML/TOML configuration loading for the pong
// simulation and its hosts.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for the simulation and its hosts.
type PongConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Runtime   RuntimeConfig   `yaml:"runtime" toml:"runtime"`
	Terminal  TerminalConfig  `yaml:"terminal" toml:"terminal"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
}

// PlayfieldConfig defines the static obstacles.
type PlayfieldConfig struct {
	WallThickness float64 `yaml:"wall_thickness" toml:"wall_thickness"`
	GoalThickness float64 `yaml:"goal_thickness" toml:"goal_thickness"`
}

// BallConfig defines ball sizing and speed relative to the playfield height.
type BallConfig struct {
	SizeRatio    float64    `yaml:"size_ratio" toml:"size_ratio"`       // Ball edge = SizeRatio * height
	SpeedDivisor float64    `yaml:"speed_divisor" toml:"speed_divisor"` // Speed = height / SpeedDivisor
	Direction    Vec2Config `yaml:"direction" toml:"direction"`         // Initial direction, normalized on use
}

// Vec2Config is a plain 2D vector in config files.
type Vec2Config struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// RuntimeConfig defines frame timing for hosts.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
}

// TerminalConfig maps terminal cells to playfield units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// WindowConfig defines the initial window of the graphical host.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks that all values are usable.
func (c PongConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Playfield.WallThickness > 0, "playfield.wall_thickness"},
		{c.Playfield.GoalThickness > 0, "playfield.goal_thickness"},
		{c.Ball.SizeRatio > 0, "ball.size_ratio"},
		{c.Ball.SpeedDivisor > 0, "ball.speed_divisor"},
		{c.Ball.Direction.X != 0 || c.Ball.Direction.Y != 0, "ball.direction"},
		{c.Runtime.TickRate > 0, "runtime.tick_rate"},
		{c.Terminal.CellWidth > 0, "terminal.cell_width"},
		{c.Terminal.CellHeight > 0, "terminal.cell_height"},
		{c.Window.Width > 0, "window.width"},
		{c.Window.Height > 0, "window.height"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}
	return nil
}
