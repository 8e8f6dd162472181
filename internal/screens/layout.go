package screens

import "github.com/vovakirdan/tui-breakout/internal/core"

// Text shown on the menu and game over screens.
const (
	Title        = "Breakout"
	GameOverText = "Game Over"
)

// InstructionLines are drawn centered at y = 100, 200 and 300.
var InstructionLines = []string{
	"The objective of the game is to break all the bricks on the screen",
	"Do not let the ball hit the floor or else the game will end",
	"Use the mouse to direct the paddle in order to hit the ball and stop it from touching the floor",
}

const (
	titleY        = 100
	gameOverY     = 300
	instructionsY = 100
	lineSpacing   = 100
)

func menuButtons() []Button {
	return []Button{
		NewButton("Start game", 300, 150, 200, 100, core.ActionPlay),
		NewButton("Instructions", 300, 300, 200, 100, core.ActionInstructions),
		NewButton("Quit game", 300, 450, 200, 100, core.ActionQuit),
	}
}

func instructionButtons() []Button {
	return []Button{
		NewButton("Start game", 300, 400, 200, 100, core.ActionPlay),
		NewButton("Quit game", 300, 500, 200, 100, core.ActionQuit),
	}
}
