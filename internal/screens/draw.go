package screens

import "github.com/vovakirdan/tui-breakout/internal/core"

// Background and text colors.
const (
	BackgroundColor = core.ColorDefault
	TextColor       = core.ColorWhite
)

// Draw renders the current screen.
func (c *Controller) Draw(dst core.Surface) {
	dst.Fill(BackgroundColor)
	w, _ := dst.Size()

	switch c.state {
	case StateMenu:
		dst.DrawText(w/2, titleY, Title, TextColor)
		drawButtons(dst, c.menu, c.pointerX, c.pointerY)

	case StateInstructions:
		for i, line := range InstructionLines {
			dst.DrawText(w/2, instructionsY+i*lineSpacing, line, TextColor)
		}
		drawButtons(dst, c.instructions, c.pointerX, c.pointerY)

	case StatePlaying:
		c.session.Draw(dst)

	case StateGameOver:
		c.session.Draw(dst)
		dst.DrawText(w/2, gameOverY, GameOverText, TextColor)
	}
}
