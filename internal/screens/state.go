// Package screens holds the screen flow of the game: the menu, the
// instructions page, a running round and the game over pause. A Controller
// advances exactly one screen per tick and never nests screen loops.
package screens

// State identifies the screen currently shown.
type State int

const (
	StateMenu State = iota
	StateInstructions
	StatePlaying
	StateGameOver
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Command tells the host what to do after a Step.
type Command int

const (
	CommandNone Command = iota // Keep running
	CommandQuit                // Terminate the program
)
