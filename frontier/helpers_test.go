package frontier_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/grid"
)

// canonical is the five-row reference heightmap: 31 steps from S, 29 from the best 'a'.
var canonical = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

// mustGrid converts heightmap rows with the default alphabet or fails the test.
func mustGrid(tb testing.TB, rows ...string) *grid.Grid[elevation.Elevation] {
	tb.Helper()
	alpha := elevation.DefaultAlphabet()
	cells := make([][]elevation.Elevation, len(rows))
	for y, row := range rows {
		for _, r := range row {
			e, err := alpha.Elevation(r)
			if err != nil {
				tb.Fatalf("row %d: %v", y, err)
			}
			cells[y] = append(cells[y], e)
		}
	}
	g, err := grid.FromRows(cells)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}
	return g
}

// referenceDistances computes shortest step counts by repeated relaxation,
// independently of the queue-based search. Unreached cells hold -1.
func referenceDistances(g *grid.Grid[elevation.Elevation], seeds func(elevation.Elevation) bool) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	for _, c := range g.Find(seeds) {
		dist[g.Index(c)] = 0
	}
	for changed := true; changed; {
		changed = false
		for i := range dist {
			if dist[i] < 0 {
				continue
			}
			u := g.Coordinate(i)
			for _, v := range g.Neighbors4(u) {
				if !elevation.CanStep(g.At(u), g.At(v)) {
					continue
				}
				j := g.Index(v)
				if dist[j] < 0 || dist[i]+1 < dist[j] {
					dist[j] = dist[i] + 1
					changed = true
				}
			}
		}
	}
	return dist
}
