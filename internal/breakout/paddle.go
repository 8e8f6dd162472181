package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaddleColor is the paddle's fill color.
const PaddleColor = core.ColorWhite

// Paddle is the player's bar along the bottom of the play area.
type Paddle struct {
	Rect core.Rect

	areaW int
}

// NewPaddle creates a paddle resting on the bottom edge at x = 0.
func NewPaddle(cfg config.PaddleConfig, area config.PlayArea) *Paddle {
	return &Paddle{
		Rect:  core.NewRect(0, area.Height-cfg.Height, cfg.Width, cfg.Height),
		areaW: area.Width,
	}
}

// Update moves the paddle's left edge to the pointer, keeping it on screen.
func (p *Paddle) Update(pointerX int) {
	p.Rect.X = core.Clamp(pointerX, 0, p.areaW-p.Rect.W)
}

// Draw renders the paddle.
func (p *Paddle) Draw(dst core.Surface) {
	dst.FillRect(p.Rect, PaddleColor)
}
