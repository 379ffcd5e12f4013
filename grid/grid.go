package grid

import "fmt"

// New constructs a Grid from a flat row-major slice of length rows*cols.
// The data is copied, so later changes to the argument are not observed.
// Returns ErrEmptyGrid if rows or cols is not positive,
// ErrShapeMismatch if len(data) != rows*cols.
func New[T any](rows, cols int, data []T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d×%d needs %d cells, got %d",
			ErrShapeMismatch, rows, cols, rows*cols, len(data))
	}
	cells := make([]T, len(data))
	copy(cells, data)

	return &Grid[T]{rows: rows, cols: cols, cells: cells}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice,
// flattening it row by row.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, h*w)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// Map builds a grid of the same shape whose cells are fn applied to the
// cells of g in row-major order. The first error returned by fn aborts the
// mapping and is returned unchanged.
func Map[T, U any](g *Grid[T], fn func(c Coordinate, v T) (U, error)) (*Grid[U], error) {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		u, err := fn(g.Coordinate(i), v)
		if err != nil {
			return nil, err
		}
		cells[i] = u
	}

	return &Grid[U]{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of cells, Rows()*Cols().
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0,Cols)×[0,Rows).
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// Index maps c to its row-major index: y*Cols + x.
// The caller must ensure c is in bounds.
func (g *Grid[T]) Index(c Coordinate) int {
	return c.Y*g.cols + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid[T]) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.cols, Y: idx / g.cols}
}

// Get returns the value at c, or ErrOutOfBounds if c lies outside the grid.
func (g *Grid[T]) Get(c Coordinate) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v not in %d×%d", ErrOutOfBounds, c, g.cols, g.rows)
	}

	return g.cells[g.Index(c)], nil
}

// At returns the value at c and panics if c lies outside the grid.
// Use it only with coordinates the caller obtained from this grid.
func (g *Grid[T]) At(c Coordinate) T {
	v, err := g.Get(c)
	if err != nil {
		panic(err)
	}

	return v
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c in the order
// north, west, east, south. Out-of-grid positions are omitted.
func (g *Grid[T]) Neighbors4(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Find returns every coordinate whose value satisfies pred, in row-major order.
func (g *Grid[T]) Find(pred func(T) bool) []Coordinate {
	var out []Coordinate
	for i, v := range g.cells {
		if pred(v) {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Row returns a copy of row y, or ErrOutOfBounds if y is not a valid row.
func (g *Grid[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= g.rows {
		return nil, fmt.Errorf("%w: row %d not in [0,%d)", ErrOutOfBounds, y, g.rows)
	}
	row := make([]T, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])

	return row, nil
}
