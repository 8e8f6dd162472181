package core

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Glyph used for filled rectangles.
const FillGlyph = '█'

// Surface is the display capability the game draws through: a fixed-size
// logical area that can be filled, have rectangles painted on it and carry
// text. Coordinates are play-area units, not terminal cells.
type Surface interface {
	Size() (w, h int)
	Fill(c Color)
	FillRect(r Rect, c Color)
	DrawText(centerX, centerY int, text string, c Color)
}

// Drawable is anything that renders itself onto a Surface.
type Drawable interface {
	Draw(dst Surface)
}

// Canvas maps a logical play area onto a cell Screen.
// A logical rectangle covers the cells between its rounded scaled edges and
// never less than one cell, so small entities stay visible on small terminals.
type Canvas struct {
	screen *Screen
	width  int
	height int
}

// NewCanvas creates a canvas of the given logical size drawing into dst.
func NewCanvas(dst *Screen, width, height int) *Canvas {
	return &Canvas{
		screen: dst,
		width:  Max(width, 1),
		height: Max(height, 1),
	}
}

// Size returns the logical dimensions.
func (c *Canvas) Size() (w, h int) {
	return c.width, c.height
}

// Fill clears every cell. Only the default terminal background is supported,
// so the color is applied to the blank cells' foreground.
func (c *Canvas) Fill(col Color) {
	for y := 0; y < c.screen.Height(); y++ {
		for x := 0; x < c.screen.Width(); x++ {
			c.screen.SetCell(x, y, Cell{Rune: ' ', Color: col})
		}
	}
}

// FillRect paints the cells covered by a logical rectangle.
func (c *Canvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := c.cellX(r.X), c.cellX(r.Right())
	y0, y1 := c.cellY(r.Y), c.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.FillRect(NewRect(x0, y0, x1-x0, y1-y0), FillGlyph, col)
}

// DrawText writes text centered on the logical point (centerX, centerY).
// Text wider than the screen is wrapped at word boundaries onto the rows
// below; each row is centered and shifted back on screen at the edges.
func (c *Canvas) DrawText(centerX, centerY int, text string, col Color) {
	y := c.cellY(centerY)
	for i, line := range c.wrap(text) {
		n := len([]rune(line))
		x := Clamp(c.cellX(centerX)-n/2, 0, Max(c.screen.Width()-n, 0))
		c.screen.DrawText(x, y+i, line, col)
	}
}

func (c *Canvas) wrap(text string) []string {
	w := c.screen.Width()
	if w <= 0 || len([]rune(text)) <= w {
		return []string{text}
	}
	lines := strings.Split(ansi.Wrap(text, w, ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// ToLogical converts a cell position to the logical point at the cell's center.
func (c *Canvas) ToLogical(cellX, cellY int) (x, y int) {
	sw, sh := Max(c.screen.Width(), 1), Max(c.screen.Height(), 1)
	x = (2*cellX + 1) * c.width / (2 * sw)
	y = (2*cellY + 1) * c.height / (2 * sh)
	return Clamp(x, 0, c.width-1), Clamp(y, 0, c.height-1)
}

// cellX scales a logical x coordinate to a cell column.
func (c *Canvas) cellX(x int) int {
	return int(math.Round(float64(x) * float64(c.screen.Width()) / float64(c.width)))
}

// cellY scales a logical y coordinate to a cell row.
func (c *Canvas) cellY(y int) int {
	return int(math.Round(float64(y) * float64(c.screen.Height()) / float64(c.height)))
}

// Ensure Canvas implements Surface.
var _ Surface = (*Canvas)(nil)
