package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func newTestBall(x, y, direction float64) *Ball {
	cfg := config.DefaultBreakoutConfig()
	b := NewBall(cfg.Ball, cfg.PlayArea)
	b.X = x
	b.Y = y
	b.Direction = direction
	return b
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestBallStartsAtConfiguredPosition(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	b := NewBall(cfg.Ball, cfg.PlayArea)

	if b.X != 0 || b.Y != 180 {
		t.Errorf("start = (%v, %v), expected (0, 180)", b.X, b.Y)
	}
	if b.Direction != 200 || b.Speed != 15 {
		t.Errorf("direction %v speed %v, expected 200 and 15", b.Direction, b.Speed)
	}
	if b.Rect.W != 20 || b.Rect.H != 20 {
		t.Errorf("size = %dx%d, expected 20x20", b.Rect.W, b.Rect.H)
	}
}

func TestBallFirstTickHitsLeftWall(t *testing.T) {
	b := newTestBall(0, 180, 200)

	lost := b.Update()

	if lost {
		t.Error("ball should not be lost")
	}
	if b.X != 1 {
		t.Errorf("X = %v, expected clamp to 1", b.X)
	}
	if !approx(b.Y, 194.0954) {
		t.Errorf("Y = %v, expected ~194.0954", b.Y)
	}
	if b.Direction != 160 {
		t.Errorf("Direction = %v, expected 160", b.Direction)
	}
	// The rect is taken from the position before the wall clamp.
	if b.Rect.X != -5 || b.Rect.Y != 194 {
		t.Errorf("Rect = (%d, %d), expected (-5, 194)", b.Rect.X, b.Rect.Y)
	}
}

func TestBallTopWall(t *testing.T) {
	b := newTestBall(400, 5, 0)

	b.Update()

	if b.Y != 1 {
		t.Errorf("Y = %v, expected clamp to 1", b.Y)
	}
	if b.Direction != 180 {
		t.Errorf("Direction = %v, expected 180", b.Direction)
	}
}

func TestTopReflectionRoundTrip(t *testing.T) {
	for d := 0; d < 360; d++ {
		once := wrapDegrees(180 - float64(d))
		twice := wrapDegrees(180 - once)
		if twice != float64(d) {
			t.Fatalf("double reflection of %d = %v", d, twice)
		}
	}

	// Out of range inputs come back congruent
	for _, d := range []float64{-20, 380, 725} {
		twice := wrapDegrees(180 - wrapDegrees(180-d))
		if twice != wrapDegrees(d) {
			t.Errorf("double reflection of %v = %v, expected %v", d, twice, wrapDegrees(d))
		}
	}
}

func TestBallLeftWallClamp(t *testing.T) {
	for _, x := range []float64{-20, 0, 5, 14} {
		b := newTestBall(x, 300, 270)

		b.Update()

		if b.X != 1 {
			t.Errorf("start x=%v: X = %v, expected 1", x, b.X)
		}
		if b.Direction != 90 {
			t.Errorf("start x=%v: Direction = %v, expected 90", x, b.Direction)
		}

		// Moving away under its own velocity does not clamp again
		b.Update()
		if !approx(b.X, 16) {
			t.Errorf("start x=%v: X after moving away = %v, expected 16", x, b.X)
		}
	}
}

func TestBallRightWallClamp(t *testing.T) {
	for _, x := range []float64{770, 780, 790} {
		b := newTestBall(x, 300, 90)

		b.Update()

		if b.X != 779 {
			t.Errorf("start x=%v: X = %v, expected 779", x, b.X)
		}
		if b.Direction != 270 {
			t.Errorf("start x=%v: Direction = %v, expected 270", x, b.Direction)
		}
	}

	b := newTestBall(764, 300, 90)
	b.Update()
	if !approx(b.X, 779) || b.Direction != 90 {
		t.Errorf("ball short of the wall should not bounce: X=%v Direction=%v", b.X, b.Direction)
	}
}

func TestBallOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		lost bool
	}{
		{"above paddle row", 570, false},
		{"exactly at bottom", 585, false},
		{"past bottom", 590, true},
		{"far below", 700, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(300, tc.y, 180)
			if got := b.Update(); got != tc.lost {
				t.Errorf("Update() = %v with Y=%v, expected %v", got, b.Y, tc.lost)
			}
		})
	}
}

func TestBallBounce(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		diff      float64
		expected  float64
	}{
		{"straight up", 0, 0, 180},
		{"block from below", 30, 0, 150},
		{"wraps negative", 200, 0, 340},
		{"paddle offset", 160, 20, 0},
		{"paddle offset right", 160, -30, 50},
		{"result not normalized", 200, 350, -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(300, 300, tc.direction)
			b.Bounce(tc.diff)
			if b.Direction != tc.expected {
				t.Errorf("Bounce(%v) from %v = %v, expected %v", tc.diff, tc.direction, b.Direction, tc.expected)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		359:  359,
		360:  0,
		-20:  340,
		-360: 0,
		725:  5,
	}
	for in, want := range tests {
		if got := wrapDegrees(in); got != want {
			t.Errorf("wrapDegrees(%v) = %v, expected %v", in, got, want)
		}
	}
}
