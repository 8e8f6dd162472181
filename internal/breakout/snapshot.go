package breakout

import "math"

// Snapshot is a flat copy of the session state for logs and replay checks.
// Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	BallX           uint64
	BallY           uint64
	Direction       uint64
	BlocksRemaining int
	Outcome         int

	// Live block positions, 2 ints per block: X, Y
	BlockData []int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	blockData := make([]int, 0, len(s.blocks)*2)
	for _, b := range s.blocks {
		blockData = append(blockData, b.Rect.X, b.Rect.Y)
	}

	return Snapshot{
		Tick:            uint64(s.ticks), //#nosec G115 -- tick count is always positive
		PaddleX:         s.paddle.Rect.X,
		BallX:           math.Float64bits(s.ball.X),
		BallY:           math.Float64bits(s.ball.Y),
		Direction:       math.Float64bits(s.ball.Direction),
		BlocksRemaining: len(s.blocks),
		Outcome:         int(s.outcome),
		BlockData:       blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.Direction
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)         //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
