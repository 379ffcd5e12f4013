package grid_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/grid"
)

// BenchmarkNeighbors4 enumerates neighbours of every cell of a 1000×1000 grid.
func BenchmarkNeighbors4(b *testing.B) {
	const n = 1000
	g, err := grid.New(n, n, make([]uint8, n*n))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Len(); idx++ {
			_ = g.Neighbors4(g.Coordinate(idx))
		}
	}
}
