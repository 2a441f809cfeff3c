package life

import "lifecanvas/internal/core"

func (b *Board) handlePointerDown(ev core.PointerEvent) {
	b.dragging = true
	b.paint(ev.X, ev.Y)
}

func (b *Board) handlePointerMove(ev core.PointerEvent) {
	if !b.dragging {
		return
	}
	b.paint(ev.X, ev.Y)
}

func (b *Board) handlePointerUp(core.PointerEvent) {
	b.dragging = false
}

// paint forces the working state of the cell under (px,py) alive. Painting
// never kills and never redraws; the cell is committed, counted and drawn by
// the next generation.
func (b *Board) paint(px, py float64) {
	i, ok := b.geo.IndexAt(px, py)
	if !ok || i >= len(b.cells) {
		return
	}
	b.cells[i].alive = true
}
