package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PlayfieldConfig{
			WallThickness: 20,
			GoalThickness: 20,
		},
		Ball: BallConfig{
			SizeRatio:    0.05,
			SpeedDivisor: 1.5,
			Direction:    Vec2Config{X: 1, Y: 1},
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Pong",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
