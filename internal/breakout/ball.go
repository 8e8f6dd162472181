package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallColor is the ball's fill color.
const BallColor = core.ColorWhite

// Ball moves along Direction at a constant Speed. X and Y hold the precise
// position; Rect is its truncation, refreshed on every Update.
type Ball struct {
	Rect core.Rect

	X, Y      float64
	Direction float64 // Degrees, 0 = up, clockwise
	Speed     float64 // Units per tick

	areaW int
	areaH int
}

// NewBall places a ball at its configured start inside a play area.
func NewBall(cfg config.BallConfig, area config.PlayArea) *Ball {
	b := &Ball{
		X:         cfg.StartX,
		Y:         cfg.StartY,
		Direction: cfg.Direction,
		Speed:     cfg.Speed,
		areaW:     area.Width,
		areaH:     area.Height,
	}
	b.Rect = core.NewRect(int(b.X), int(b.Y), cfg.Width, cfg.Height)
	return b
}

// Bounce reflects the ball off a horizontal surface.
// diff biases the new direction left or right; it is the paddle center
// minus the ball center for paddle hits and 0 for blocks.
func (b *Ball) Bounce(diff float64) {
	b.Direction = wrapDegrees(180-b.Direction) - diff
}

// Update moves the ball one tick, bouncing it off the top and side walls.
// It returns true if the ball has fallen past the bottom of the play area.
func (b *Ball) Update() bool {
	rad := b.Direction * math.Pi / 180

	b.X += b.Speed * math.Sin(rad)
	b.Y -= b.Speed * math.Cos(rad)

	b.Rect.X = int(b.X)
	b.Rect.Y = int(b.Y)

	// Top wall
	if b.Y <= 0 {
		b.Direction = wrapDegrees(180 - b.Direction)
		b.Y = 1
	}

	// Left wall
	if b.X <= 0 {
		b.Direction = wrapDegrees(360 - b.Direction)
		b.X = 1
	}

	// Right wall
	if b.X >= float64(b.areaW-b.Rect.W) {
		b.Direction = wrapDegrees(360 - b.Direction)
		b.X = float64(b.areaW - b.Rect.W - 1)
	}

	return b.Y > float64(b.areaH)
}

// Draw renders the ball.
func (b *Ball) Draw(dst core.Surface) {
	dst.FillRect(b.Rect, BallColor)
}

// wrapDegrees folds an angle into [0, 360).
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
