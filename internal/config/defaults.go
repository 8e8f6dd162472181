package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		PlayArea: PlayArea{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Width:     20,
			Height:    20,
			Speed:     15,
			Direction: 200,
			StartX:    0,
			StartY:    180,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
		},
		Blocks: BlockConfig{
			Rows:    5,
			Columns: 32,
			Width:   23,
			Height:  15,
			Gap:     2,
			Top:     80,
			Left:    1,
		},
		Timing: TimingConfig{
			TickRate:        30,
			GameOverDelayMS: 2000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
