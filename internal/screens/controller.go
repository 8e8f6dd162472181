package screens

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Controller owns the current screen and the running session.
// It is not safe for concurrent use; the host calls Step and Draw from a
// single loop.
type Controller struct {
	cfg    config.BreakoutConfig
	logger *log.Logger

	state   State
	session *breakout.Session
	rounds  int

	// Ticks left on the game over screen
	pause int

	pointerX int
	pointerY int

	menu         []Button
	instructions []Button

	newSession func(config.BreakoutConfig) *breakout.Session
}

// NewController creates a controller showing the menu.
// A nil logger discards all output.
func NewController(cfg config.BreakoutConfig, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		cfg:          cfg,
		logger:       logger,
		state:        StateMenu,
		menu:         menuButtons(),
		instructions: instructionButtons(),
		newSession:   breakout.NewSession,
	}
}

// State returns the current screen.
func (c *Controller) State() State {
	return c.state
}

// Session returns the current or most recent round, or nil before the first.
func (c *Controller) Session() *breakout.Session {
	return c.session
}

// Rounds returns how many rounds have been started.
func (c *Controller) Rounds() int {
	return c.rounds
}

// Buttons returns the buttons of the current screen.
func (c *Controller) Buttons() []Button {
	switch c.state {
	case StateMenu:
		return c.menu
	case StateInstructions:
		return c.instructions
	default:
		return nil
	}
}

// Step advances the current screen by one tick.
func (c *Controller) Step(in core.InputFrame) Command {
	c.pointerX, c.pointerY = in.PointerX, in.PointerY

	if in.Has(core.ActionQuit) {
		c.logger.Info("quit requested", "state", c.state)
		return CommandQuit
	}

	switch c.state {
	case StateMenu:
		return c.stepMenu(in)
	case StateInstructions:
		return c.stepInstructions(in)
	case StatePlaying:
		c.stepPlaying(in)
	case StateGameOver:
		c.stepGameOver()
	}
	return CommandNone
}

func (c *Controller) stepMenu(in core.InputFrame) Command {
	action := pressed(c.menu, in)
	if action == core.ActionNone {
		action = keyAction(in, core.ActionPlay, core.ActionInstructions)
	}
	return c.apply(action)
}

func (c *Controller) stepInstructions(in core.InputFrame) Command {
	action := pressed(c.instructions, in)
	if action == core.ActionNone {
		action = keyAction(in, core.ActionPlay, core.ActionBack)
	}
	return c.apply(action)
}

func (c *Controller) apply(action core.Action) Command {
	switch action {
	case core.ActionPlay:
		c.startRound()
	case core.ActionInstructions:
		c.setState(StateInstructions)
	case core.ActionBack:
		c.setState(StateMenu)
	case core.ActionQuit:
		c.logger.Info("quit selected", "state", c.state)
		return CommandQuit
	}
	return CommandNone
}

func (c *Controller) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		c.logger.Info("round abandoned", "round", c.rounds, "ticks", c.session.Ticks())
		c.setState(StateMenu)
		return
	}

	res := c.session.Step(in.PointerX)
	if res.Destroyed > 0 {
		c.logger.Debug("blocks destroyed", "count", res.Destroyed, "remaining", c.session.BlocksRemaining())
	}
	if res.Over {
		c.endRound(res.Outcome)
	}
}

func (c *Controller) stepGameOver() {
	c.pause--
	if c.pause <= 0 {
		c.setState(StateMenu)
	}
}

func (c *Controller) startRound() {
	c.session = c.newSession(c.cfg)
	c.rounds++
	c.logger.Info("round started", "round", c.rounds, "blocks", c.session.BlocksRemaining())
	c.setState(StatePlaying)
}

func (c *Controller) endRound(outcome breakout.Outcome) {
	snap := c.session.Snapshot()
	c.logger.Info("round over",
		"round", c.rounds,
		"outcome", outcome,
		"ticks", c.session.Ticks(),
		"destroyed", c.session.BlocksDestroyed(),
		"hash", snap.Hash(),
	)
	c.pause = c.cfg.Timing.GameOverTicks()
	c.setState(StateGameOver)
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.logger.Debug("state change", "from", c.state, "to", s)
	c.state = s
}

// keyAction returns the first of the allowed actions present in the frame.
func keyAction(in core.InputFrame, allowed ...core.Action) core.Action {
	for _, a := range allowed {
		if in.Has(a) {
			return a
		}
	}
	return core.ActionNone
}
