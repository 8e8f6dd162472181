package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome describes how a round ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Round still running
	OutcomeBallLost                // Ball fell past the paddle
	OutcomeCleared                 // Every block destroyed
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBallLost:
		return "ball-lost"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// TickResult is returned by Session.Step after each tick.
type TickResult struct {
	Over      bool    // Round has ended (this tick or earlier)
	Outcome   Outcome // Why it ended
	Destroyed int     // Blocks destroyed this tick
}

// Session is one round of play: a paddle, a ball and the live-block collection.
type Session struct {
	cfg     config.BreakoutConfig
	paddle  *Paddle
	ball    *Ball
	blocks  []*Block
	total   int
	ticks   int
	outcome Outcome
}

// NewSession starts a fresh round with a full block grid.
func NewSession(cfg config.BreakoutConfig) *Session {
	blocks := BuildGrid(cfg.Blocks)
	return &Session{
		cfg:    cfg,
		paddle: NewPaddle(cfg.Paddle, cfg.PlayArea),
		ball:   NewBall(cfg.Ball, cfg.PlayArea),
		blocks: blocks,
		total:  len(blocks),
	}
}

// Step advances the round by one tick using the pointer's x position.
// Once the round is over further calls change nothing.
func (s *Session) Step(pointerX int) TickResult {
	if s.Over() {
		return TickResult{Over: true, Outcome: s.outcome}
	}
	s.ticks++

	s.paddle.Update(pointerX)
	lost := s.ball.Update()

	CollidePaddle(s.paddle, s.ball, s.cfg.PlayArea.Height)

	remaining, hit := CollideBlocks(s.ball, s.blocks)
	s.blocks = remaining

	// One bounce per tick no matter how many blocks were struck.
	if len(hit) > 0 {
		s.ball.Bounce(0)
		if len(s.blocks) == 0 {
			s.outcome = OutcomeCleared
		}
	}

	if lost && s.outcome == OutcomeNone {
		s.outcome = OutcomeBallLost
	}

	return TickResult{
		Over:      s.Over(),
		Outcome:   s.outcome,
		Destroyed: len(hit),
	}
}

// Draw renders the live blocks, the paddle and the ball.
func (s *Session) Draw(dst core.Surface) {
	for _, d := range s.drawables() {
		d.Draw(dst)
	}
}

// drawables lists everything on the field in paint order.
func (s *Session) drawables() []core.Drawable {
	out := make([]core.Drawable, 0, len(s.blocks)+2)
	for _, b := range s.blocks {
		out = append(out, b)
	}
	return append(out, s.paddle, s.ball)
}

// Over returns true once the ball is lost or the blocks are cleared.
func (s *Session) Over() bool {
	return s.outcome != OutcomeNone
}

// Outcome returns how the round ended, or OutcomeNone while it runs.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// BlocksRemaining returns the size of the live-block collection.
func (s *Session) BlocksRemaining() int {
	return len(s.blocks)
}

// BlocksDestroyed returns how many blocks have been broken this round.
func (s *Session) BlocksDestroyed() int {
	return s.total - len(s.blocks)
}

// Ticks returns the number of ticks played.
func (s *Session) Ticks() int {
	return s.ticks
}

// Ball returns the session's ball.
func (s *Session) Ball() *Ball {
	return s.ball
}

// Paddle returns the session's paddle.
func (s *Session) Paddle() *Paddle {
	return s.paddle
}

var (
	_ core.Drawable = (*Block)(nil)
	_ core.Drawable = (*Paddle)(nil)
	_ core.Drawable = (*Ball)(nil)
)
