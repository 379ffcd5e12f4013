// Package grid provides a fixed-size, row-major 2D container with
// bounds-checked access and orthogonal neighbour enumeration.
//
// What:
//
//   - Grid[T] stores Rows×Cols values in one flat slice (index = y*Cols + x).
//   - Neighbors4 enumerates the in-bounds cells north, west, east and south of
//     a coordinate, always in that order.
//   - Find, Map and Row give read-only views for callers building other grids.
//
// Why:
//
//   - One contiguous allocation instead of nested slices.
//   - Adjacency is a pure function of the coordinate, so graph searches never
//     materialise edge objects.
//
// Complexity:
//
//   - New, FromRows, Map, Find: O(W×H) time and memory.
//   - Get, At, InBounds, Neighbors4: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrShapeMismatch: flat data length differs from rows×cols.
//   - ErrOutOfBounds: coordinate outside [0,Cols)×[0,Rows).
//
// A Grid is immutable once built and may be shared between goroutines.
package grid
