package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidScale reports a non-positive cell size.
	ErrInvalidScale = errors.New("core: cell scale must be positive")
	// ErrEmptySurface reports a surface too small to hold a single cell.
	ErrEmptySurface = errors.New("core: surface holds no cells")
)

// Geometry maps row-major cell indices to grid and pixel coordinates for a
// bounded (non-wrapping) grid.
type Geometry struct {
	scale   int
	columns int
	rows    int
}

// NewGeometry derives the grid that fits a width x height surface using
// square cells of scale pixels.
func NewGeometry(scale, width, height int) (Geometry, error) {
	if scale <= 0 {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrEmptySurface, width, height)
	}
	g := Geometry{scale: scale, columns: width / scale, rows: height / scale}
	if g.columns == 0 || g.rows == 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d at scale %d", ErrEmptySurface, width, height, scale)
	}
	return g, nil
}

// Scale returns the pixel size of one cell.
func (g Geometry) Scale() int { return g.scale }

// Columns returns the number of cells per row.
func (g Geometry) Columns() int { return g.columns }

// Rows returns the number of rows.
func (g Geometry) Rows() int { return g.rows }

// Count returns the total number of cells.
func (g Geometry) Count() int { return g.columns * g.rows }

// ColRow returns the grid coordinates of index i.
func (g Geometry) ColRow(i int) (col, row int) {
	return i % g.columns, i / g.columns
}

// Origin returns the top-left pixel of cell i.
func (g Geometry) Origin(i int) (x, y int) {
	col, row := g.ColRow(i)
	return col * g.scale, row * g.scale
}

// IndexAt resolves a surface coordinate to a cell index. ok is false when
// the coordinate falls outside the grid.
func (g Geometry) IndexAt(px, py float64) (int, bool) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, false
	}
	col := int(math.Floor(px / float64(g.scale)))
	row := int(math.Floor(py / float64(g.scale)))
	if col < 0 || row < 0 || col >= g.columns || row >= g.rows {
		return 0, false
	}
	return row*g.columns + col, true
}

// Neighbors lists the in-bounds neighbours of index i in the order north,
// north-west, north-east, south, south-west, south-east, west, east.
// Corners yield 3 entries, edges 5, interior cells 8.
func (g Geometry) Neighbors(i int) []int {
	col, row := g.ColRow(i)
	cols := g.columns
	n := i - cols
	s := i + cols

	out := make([]int, 0, 8)
	if row > 0 {
		out = append(out, n)
		if col > 0 {
			out = append(out, n-1)
		}
		if col < cols-1 {
			out = append(out, n+1)
		}
	}
	if row < g.rows-1 {
		out = append(out, s)
		if col > 0 {
			out = append(out, s-1)
		}
		if col < cols-1 {
			out = append(out, s+1)
		}
	}
	if col > 0 {
		out = append(out, i-1)
	}
	if col < cols-1 {
		out = append(out, i+1)
	}
	return out
}
