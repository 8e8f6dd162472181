package breakout

// CollidePaddle bounces the ball off the paddle if they overlap.
// The ball's rect is lifted to sit just above the paddle so it cannot be
// caught inside it, and the bounce is biased by where the ball hit.
func CollidePaddle(p *Paddle, b *Ball, areaH int) bool {
	if !p.Rect.Intersects(b.Rect) {
		return false
	}

	diff := p.Rect.CenterX() - b.Rect.CenterX()

	b.Rect.Y = areaH - p.Rect.H - b.Rect.H - 1
	b.Bounce(diff)

	return true
}

// CollideBlocks removes every live block the ball overlaps.
// remaining reuses the backing array of live; hit holds the destroyed blocks.
func CollideBlocks(b *Ball, live []*Block) (remaining, hit []*Block) {
	remaining = live[:0]
	for _, block := range live {
		if block.Rect.Intersects(b.Rect) {
			hit = append(hit, block)
			continue
		}
		remaining = append(remaining, block)
	}

	// Drop references past the new length so destroyed blocks can be collected.
	for i := len(remaining); i < len(live); i++ {
		live[i] = nil
	}

	return remaining, hit
}
