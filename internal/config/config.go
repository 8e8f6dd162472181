// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BreakoutConfig contains all tunables of the game.
type BreakoutConfig struct {
	PlayArea PlayArea     `yaml:"play_area"`
	Ball     BallConfig   `yaml:"ball"`
	Paddle   PaddleConfig `yaml:"paddle"`
	Blocks   BlockConfig  `yaml:"blocks"`
	Timing   TimingConfig `yaml:"timing"`
}

// PlayArea is the logical drawing surface every entity lives in.
type PlayArea struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball size and its starting motion.
type BallConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`     // Units per tick
	Direction float64 `yaml:"direction"` // Degrees, 0 = straight up, clockwise
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
}

// PaddleConfig defines the paddle size.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlockConfig defines the block grid laid out at session start.
type BlockConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Gap     int `yaml:"gap"`  // Spacing between neighbouring blocks
	Top     int `yaml:"top"`  // Y of the first row
	Left    int `yaml:"left"` // X of the first column
}

// TimingConfig defines the loop cadence.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`          // Ticks per second
	GameOverDelayMS int `yaml:"game_over_delay_ms"` // Pause on the game over screen
}

// GameOverDelay returns the game over pause as a duration.
func (t TimingConfig) GameOverDelay() time.Duration {
	return time.Duration(t.GameOverDelayMS) * time.Millisecond
}

// GameOverTicks returns the game over pause measured in ticks, rounded up.
func (t TimingConfig) GameOverTicks() int {
	if t.TickRate <= 0 || t.GameOverDelayMS <= 0 {
		return 0
	}
	return (t.GameOverDelayMS*t.TickRate + 999) / 1000
}

// Validate reports every inconsistency found in the configuration.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		errs = append(errs, fmt.Errorf("play area must be positive, got %dx%d", c.PlayArea.Width, c.PlayArea.Height))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %dx%d", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %dx%d", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.PlayArea.Width {
		errs = append(errs, fmt.Errorf("paddle width %d exceeds play area width %d", c.Paddle.Width, c.PlayArea.Width))
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Columns <= 0 || c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, errors.New("block grid dimensions must be positive"))
	} else {
		right := c.Blocks.Left + c.Blocks.Columns*(c.Blocks.Width+c.Blocks.Gap) - c.Blocks.Gap
		bottom := c.Blocks.Top + c.Blocks.Rows*(c.Blocks.Height+c.Blocks.Gap) - c.Blocks.Gap
		if right > c.PlayArea.Width || bottom > c.PlayArea.Height-c.Paddle.Height {
			errs = append(errs, fmt.Errorf("block grid (%d,%d) does not fit above the paddle", right, bottom))
		}
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.GameOverDelayMS < 0 {
		errs = append(errs, fmt.Errorf("game over delay must not be negative, got %d", c.Timing.GameOverDelayMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
