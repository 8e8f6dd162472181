package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/screens"
)

// Model is the Bubble Tea model hosting one game controller.
type Model struct {
	ctrl       *screens.Controller
	screen     *core.Screen
	canvas     *core.Canvas
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a model for a terminal of cfg's size.
// A zero tick rate falls back to the game configuration's rate.
func NewModel(cfg core.RuntimeConfig, game config.BreakoutConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Timing.TickRate
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		ctrl:       screens.NewController(game, logger),
		screen:     screen,
		canvas:     core.NewCanvas(screen, game.PlayArea.Width, game.PlayArea.Height),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if dx := m.keys.PointerDelta(msg); dx != 0 {
		w, _ := m.canvas.Size()
		x := core.Clamp(m.inputFrame.PointerX+dx, 0, w-1)
		m.inputFrame.MovePointer(x, m.inputFrame.PointerY)
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)

	// Quit is handled right away rather than on the next tick
	if action == core.ActionQuit {
		return m.advance()
	}
	return m, nil
}

// handleMouse tracks the pointer and records left button presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.canvas.ToLogical(msg.X, msg.Y)
	m.inputFrame.MovePointer(x, y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Pressed = true
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the play area every terminal row the help view leaves free.
// The view must never be taller than the terminal: the renderer would drop
// the top lines and mouse rows would no longer match the drawn cells.
func (m *Model) layout() {
	helpRows := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, core.Max(m.config.ScreenH-helpRows, 1))
}

// handleTick runs one controller step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next, cmd := m.advance()
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.config.TickRate)
}

// advance feeds the collected input to the controller and clears it.
func (m Model) advance() (Model, tea.Cmd) {
	cmd := m.ctrl.Step(m.inputFrame)
	m.inputFrame.Clear()

	if cmd == screens.CommandQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.ctrl.Draw(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current screen and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Draw(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the controller's current screen.
func (m Model) State() screens.State {
	return m.ctrl.State()
}

// Run starts the Bubble Tea program in the current terminal.
func Run(cfg core.RuntimeConfig, game config.BreakoutConfig, logger *log.Logger) error {
	model := NewModel(cfg, game, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the paddle and button hover
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
