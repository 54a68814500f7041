// Package grid provides a fixed-size rectangular coordinate space and a
// sparse map of values keyed by cell. Iteration is row-major: rows ascend by
// Y, cells within a row ascend by X. That order is load-bearing for anything
// that lays cells out on screen, so it is guaranteed stable.
package grid

import "fmt"

// MaxDim is the largest width or depth a Grid accepts per axis.
const MaxDim = 255

// Grid is an immutable rectangular bounds: width columns by depth rows.
// The zero Grid is empty (0x0) and contains no cells.
type Grid struct {
	width int
	depth int
}

// New returns a Grid of the given dimensions. It returns an error if either
// dimension is negative or exceeds MaxDim.
func New(width, depth int) (Grid, error) {
	if width < 0 || width > MaxDim || depth < 0 || depth > MaxDim {
		return Grid{}, fmt.Errorf("grid: dimensions %dx%d out of range (0 to %d per axis)", width, depth, MaxDim)
	}
	return Grid{width: width, depth: depth}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Depth returns the number of rows.
func (g Grid) Depth() int { return g.depth }

// Contains reports whether c lies within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.depth
}

// Rows returns the grid's rows in ascending Y order.
func (g Grid) Rows() []Row {
	rows := make([]Row, g.depth)
	for y := range rows {
		rows[y] = Row{y: y, width: g.width}
	}
	return rows
}

// Row is one horizontal slice of a Grid.
type Row struct {
	y     int
	width int
}

// Y returns the row index.
func (r Row) Y() int { return r.y }

// Cells returns the row's cells in ascending X order.
func (r Row) Cells() []Cell {
	cells := make([]Cell, r.width)
	for x := range cells {
		cells[x] = Cell{X: x, Y: r.y}
	}
	return cells
}
