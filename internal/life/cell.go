package life

import (
	"image/color"
	"math"

	"lifecanvas/internal/core"
)

const goldenRatio = 0.618033988749895

// Cell is one automaton unit. Neighbour state is always read from the
// board-owned slice handed to update.
//
// alive is the working state that painting writes to; committed is the
// state published by the last generation.
type Cell struct {
	index     int
	alive     bool
	previous  bool
	committed bool
	neighbors []int

	from     color.NRGBA
	to       color.NRGBA
	progress float64
}

// Index returns the row-major position of the cell.
func (c *Cell) Index() int { return c.index }

// Alive reports the state committed by the last generation.
func (c *Cell) Alive() bool { return c.committed }

// Pending reports the state the next generation will start from, which
// includes cells painted since the last commit.
func (c *Cell) Pending() bool { return c.alive }

// Neighbors returns the in-bounds neighbour indices. Callers must not modify it.
func (c *Cell) Neighbors() []int { return c.neighbors }

// Color returns the colour the cell is drawn with.
func (c *Cell) Color() color.NRGBA { return core.LerpNRGBA(c.from, c.to, c.progress) }

func (c *Cell) snapshotPrevious() {
	c.previous = c.alive
}

func (c *Cell) liveNeighbors(cells []Cell) int {
	n := 0
	for _, i := range c.neighbors {
		if cells[i].previous {
			n++
		}
	}
	return n
}

func (c *Cell) update(cells []Cell) {
	c.alive = nextState(c.previous, c.liveNeighbors(cells))
	c.committed = c.alive
}

func (c *Cell) draw(canvas core.Canvas, geo core.Geometry, p *palette) {
	if !c.committed {
		return
	}
	c.drift(p)
	x, y := geo.Origin(c.index)
	size := float64(geo.Scale() - 1)
	if size < 1 {
		size = 1
	}
	canvas.FillRect(float64(x), float64(y), size, size, core.Solid(c.Color()))
}

func (c *Cell) drift(p *palette) {
	c.progress += p.step
	if c.progress >= 1 {
		c.from = c.to
		c.to = p.next()
		c.progress = 0
	}
}

// palette hands out drift targets from the board's seeded source.
type palette struct {
	rng  *core.RNG
	base color.NRGBA
	step float64
}

func (p *palette) next() color.NRGBA {
	hue := math.Mod(p.rng.Float64()+goldenRatio, 1)
	return core.HSV(hue, 0.5, 0.8, 0.6)
}
