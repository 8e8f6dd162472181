package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorBlue
	ColorBrightBlue
	ColorRed
	ColorYellow
	ColorGray
)

// String returns the color name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
