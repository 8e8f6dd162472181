package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// pointerStep is how far the arrow keys move the pointer, in play-area units.
const pointerStep = 25

// KeyMap defines the keyboard bindings. The mouse stays the primary input;
// keys cover the menu buttons and nudge the paddle.
type KeyMap struct {
	Play         key.Binding
	Instructions key.Binding
	Back         key.Binding
	Left         key.Binding
	Right        key.Binding
	Screenshot   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Left, k.Right, k.Back, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Instructions, k.Back},
		{k.Left, k.Right},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "start game"),
		),
		Instructions: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "instructions"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a screen action.
// Keys without a screen action (movement, help) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Instructions):
		return core.ActionInstructions
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// PointerDelta returns the horizontal pointer movement for a key message.
func (k KeyMap) PointerDelta(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, k.Left):
		return -pointerStep
	case key.Matches(msg, k.Right):
		return pointerStep
	}
	return 0
}
