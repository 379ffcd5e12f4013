package grid

import "fmt"

// Coordinate addresses a cell by column (X) and row (Y).
// It carries no bounds of its own; Grid.InBounds is the only authority.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets lists the orthogonal moves in enumeration order: N, W, E, S.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Grid is a rectangular, row-major matrix of values. It is immutable once built.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}
