package grid

import "fmt"

// Cell identifies a single grid position. X is the column, Y is the row.
// Cells compare by value, so they work directly as map keys.
type Cell struct {
	X int
	Y int
}

// NewCell returns the cell at column x, row y.
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
