package screens

import "github.com/vovakirdan/tui-breakout/internal/core"

// Button colors.
const (
	ButtonHoverColor = core.ColorBlue
	ButtonLabelColor = core.ColorWhite
)

// labelOffset is the distance from a button's top to its label's center.
const labelOffset = 50

// Button is a clickable area of the play area that triggers an action.
type Button struct {
	Label  string
	Rect   core.Rect
	Action core.Action
}

// NewButton creates a button covering (x, y, w, h).
func NewButton(label string, x, y, w, h int, action core.Action) Button {
	return Button{
		Label:  label,
		Rect:   core.NewRect(x, y, w, h),
		Action: action,
	}
}

// Hovered reports whether the pointer is strictly inside the button.
func (b Button) Hovered(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Draw renders the button, filled when hovered.
func (b Button) Draw(dst core.Surface, hovered bool) {
	if hovered {
		dst.FillRect(b.Rect, ButtonHoverColor)
	}
	dst.DrawText(b.Rect.X+b.Rect.W/2, b.Rect.Y+labelOffset, b.Label, ButtonLabelColor)
}

// pressed returns the action of the button under a pointer press, if any.
func pressed(buttons []Button, in core.InputFrame) core.Action {
	if !in.Pressed {
		return core.ActionNone
	}
	for _, b := range buttons {
		if b.Hovered(in.PointerX, in.PointerY) {
			return b.Action
		}
	}
	return core.ActionNone
}

func drawButtons(dst core.Surface, buttons []Button, pointerX, pointerY int) {
	for _, b := range buttons {
		b.Draw(dst, b.Hovered(pointerX, pointerY))
	}
}
