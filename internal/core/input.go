package core

// Action represents a semantic request decoded from keyboard input.
// Pointer position and presses travel separately in InputFrame.
type Action int

const (
	ActionNone         Action = iota
	ActionPlay                // Enter, Space - start a game from a menu screen
	ActionInstructions        // I - open the instructions screen
	ActionBack                // B, Escape - leave a running game for the menu
	ActionQuit                // Q, Ctrl+C, window close - terminate
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionInstructions:
		return "Instructions"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collaborator's state for one tick.
// The pointer position is in play-area units and persists across ticks;
// Pressed and Actions are edge events that are cleared after every tick.
type InputFrame struct {
	PointerX int
	PointerY int

	// Pressed is true if the primary pointer button went down this tick.
	Pressed bool

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer sets the pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.PointerX = x
	f.PointerY = y
}

// Clear resets the edge events for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	f.Pressed = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
