// Package hillclimb answers one question about a heightmap: what is the
// fewest number of orthogonal steps from a start cell to the goal, if each
// step may climb at most one level but may drop any distance?
//
// Packages, leaves first:
//
//	grid/        generic row-major 2D container with N/W/E/S neighbour lookup
//	elevation/   a–z heights, start/goal sentinels, seed and step predicates
//	frontier/    breadth-first search from one or many seeds to the goal
//	heightmap/   text parser and renderer for elevation grids
//	config/      HCL run configuration
//	cmd/         the hillclimb command
//
// Quick start:
//
//	g, err := heightmap.Load("input.txt", elevation.DefaultAlphabet())
//	if err != nil { ... }
//	steps, err := frontier.ShortestPathSingleSource(g)
//	if errors.Is(err, frontier.ErrUnreachable) { ... }
//
// The multi-source variant (frontier.ShortestPathMultiSource) also starts
// from every 'a' cell and never returns more steps than the single-source one.
package hillclimb
