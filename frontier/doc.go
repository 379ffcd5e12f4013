// Package frontier finds the fewest unit steps from a set of seed cells to the
// nearest goal cell of an elevation grid, moving only between orthogonal
// neighbours and never climbing more than one level per step.
//
// What
//
//   - Search runs one breadth-first traversal over the implicit graph induced
//     by a grid.Grid[elevation.Elevation] and elevation.CanStep.
//   - The seed set is injected as a SeedFunc, so single- and multi-source
//     searches share the same loop:
//   - ShortestPathSingleSource seeds from the start cell only.
//   - ShortestPathMultiSource seeds from the start cell and every 'a' cell.
//   - The first goal cell dequeued ends the search; its step count is minimal
//     because the frontier is processed in non-decreasing step order.
//
// Visited Handling
//
//	Neighbours are enqueued without a visited check; duplicates are dropped
//	when they are dequeued. Each visited cell enqueues at most four entries,
//	so the frontier stays O(W×H).
//
// Unreachable Goals
//
//	When the frontier empties without reaching a goal, Search returns
//	ErrUnreachable. A zero step count is always a real result (a seed that
//	is itself a goal) and never stands in for "no path".
//
// Complexity (W×H = number of cells)
//
//   - Time:   O(W×H)
//   - Memory: O(W×H) for the visited set and frontier, released on return.
//
// Usage
//
//	steps, err := frontier.ShortestPathSingleSource(g)
//	switch {
//	case errors.Is(err, frontier.ErrUnreachable):
//	    // no route
//	case err != nil:
//	    // invalid input or option
//	}
//
//	// With options:
//	res, err := frontier.Search(g, elevation.IsTrailhead,
//	    frontier.WithMaxSteps(500),
//	    frontier.WithOnVisit(func(c grid.Coordinate, steps int) error { return nil }),
//	    frontier.WithLogger(logger),
//	)
//
// Options
//
//   - WithTraversal(fn): replace the movement rule (default elevation.CanStep).
//   - WithGoal(fn):      replace the goal predicate (default elevation.IsGoal).
//   - WithMaxSteps(n):   do not expand beyond n steps (n>0); 0 means no limit.
//   - WithOnEnqueue, WithOnDequeue: observation hooks.
//   - WithOnVisit(fn):   called once per visited cell; an error aborts.
//   - WithLogger(l):     debug logging of seeds and outcome.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxSteps).
//   - ErrUnreachable      if no goal can be reached from any seed.
//   - ErrStepLimit        if MaxSteps cut the search short before a goal.
//   - Wrapped OnVisit errors.
//
// A search never shares state with another; concurrent searches over the
// same grid are safe.
package frontier
