// Package breakout implements the block-breaking game: the entity models,
// their collision rules and the per-tick game session.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BlockColor is the color every block is created with.
const BlockColor = core.ColorBlue

// Block is a single breakable block. It is in play exactly as long as it is
// a member of the session's live-block collection.
type Block struct {
	Rect  core.Rect
	Color core.Color
}

// NewBlock creates a block at (x, y).
func NewBlock(color core.Color, x, y, w, h int) *Block {
	return &Block{
		Rect:  core.NewRect(x, y, w, h),
		Color: color,
	}
}

// Draw renders the block.
func (b *Block) Draw(dst core.Surface) {
	dst.FillRect(b.Rect, b.Color)
}

// BuildGrid lays out the full block grid row by row, left to right.
func BuildGrid(cfg config.BlockConfig) []*Block {
	blocks := make([]*Block, 0, cfg.Rows*cfg.Columns)

	top := cfg.Top
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			x := cfg.Left + col*(cfg.Width+cfg.Gap)
			blocks = append(blocks, NewBlock(BlockColor, x, top, cfg.Width, cfg.Height))
		}
		top += cfg.Height + cfg.Gap
	}

	return blocks
}
