package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestPaddleUpdate(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	tests := []struct {
		name     string
		pointerX int
		expected int
	}{
		{"follows pointer", 350, 350},
		{"left edge", 0, 0},
		{"right edge exact", 700, 700},
		{"clamped right", 750, 700},
		{"clamped left", -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(cfg.Paddle, cfg.PlayArea)
			p.Update(tc.pointerX)
			if p.Rect.X != tc.expected {
				t.Errorf("Update(%d): X = %d, expected %d", tc.pointerX, p.Rect.X, tc.expected)
			}
			if p.Rect.Y != 580 {
				t.Errorf("paddle Y = %d, expected 580", p.Rect.Y)
			}
			if p.Rect.Right() > cfg.PlayArea.Width {
				t.Errorf("paddle right edge %d exceeds play area", p.Rect.Right())
			}
		})
	}
}
