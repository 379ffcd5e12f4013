// Package frontier runs breadth-first searches over elevation grids,
// returning the fewest steps from a seed set to the nearest goal.
package frontier

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/grid"
)

// state is one pending frontier entry.
type state struct {
	at    grid.Coordinate
	steps int
}

// walker encapsulates mutable search state; it lives for one Search call.
type walker struct {
	grid    *grid.Grid[elevation.Elevation]
	opts    Options
	queue   []state
	visited []bool
	count   int
	// truncated records that MaxSteps cut off at least one unvisited cell.
	truncated bool
}

// Search runs a breadth-first search on g from every cell satisfying seeds,
// applying any number of functional Options.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// ErrUnreachable when no goal is reached, ErrStepLimit when MaxSteps cut the
// search short before a goal was found, or a wrapped OnVisit error.
func Search(g *grid.Grid[elevation.Elevation], seeds SeedFunc, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if seeds == nil {
		return Result{}, fmt.Errorf("%w: seed predicate is nil", ErrOptionViolation)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]state, 0, g.Len()),
		visited: make([]bool, g.Len()),
	}
	start := g.Find(seeds)
	for _, c := range start {
		w.enqueue(c, 0)
	}
	o.Logger.Debug("frontier search started",
		"rows", g.Rows(), "cols", g.Cols(), "seeds", len(start), "max_steps", o.MaxSteps)

	res, err := w.loop()
	if err != nil {
		o.Logger.Debug("frontier search failed", "visited", w.count, "error", err)
		return Result{}, err
	}
	o.Logger.Debug("frontier search finished",
		"steps", res.Steps, "goal", res.Goal.String(), "visited", res.Visited)

	return res, nil
}

// ShortestPathSingleSource returns the fewest steps from the start cell to the goal.
func ShortestPathSingleSource(g *grid.Grid[elevation.Elevation], opts ...Option) (int, error) {
	return Run(g, SingleSource, opts...)
}

// ShortestPathMultiSource returns the fewest steps from the start cell or any
// lowest-elevation cell to the goal. It never exceeds ShortestPathSingleSource.
func ShortestPathMultiSource(g *grid.Grid[elevation.Elevation], opts ...Option) (int, error) {
	return Run(g, MultiSource, opts...)
}

// Run searches g with the seed policy of variant v and returns the step count.
func Run(g *grid.Grid[elevation.Elevation], v Variant, opts ...Option) (int, error) {
	res, err := Search(g, v.Seeds(), opts...)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// enqueue appends a frontier entry and fires OnEnqueue.
func (w *walker) enqueue(c grid.Coordinate, steps int) {
	w.opts.OnEnqueue(c, steps)
	w.queue = append(w.queue, state{at: c, steps: steps})
}

// dequeue pops the first entry and fires OnDequeue.
func (w *walker) dequeue() state {
	s := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(s.at, s.steps)
	return s
}

// loop processes the frontier until a goal is visited or it runs dry.
func (w *walker) loop() (Result, error) {
	for len(w.queue) > 0 {
		s := w.dequeue()
		idx := w.grid.Index(s.at)
		if w.visited[idx] {
			continue // duplicate entry from another seed or predecessor
		}
		w.visited[idx] = true
		w.count++

		if err := w.opts.OnVisit(s.at, s.steps); err != nil {
			return Result{}, fmt.Errorf("frontier: OnVisit error at %v: %w", s.at, err)
		}

		height := w.grid.At(s.at)
		if w.opts.Goal(height) {
			return Result{Steps: s.steps, Goal: s.at, Visited: w.count}, nil
		}
		w.expand(s, height)
	}

	if w.truncated {
		return Result{}, fmt.Errorf("%w: no goal within %d steps", ErrStepLimit, w.opts.MaxSteps)
	}
	return Result{}, ErrUnreachable
}

// expand enqueues every neighbour of s the traversal rule allows,
// unless MaxSteps forbids going deeper; a cut-off unvisited neighbour marks
// the search as truncated.
func (w *walker) expand(s state, height elevation.Elevation) {
	next := s.steps + 1
	limited := w.opts.MaxSteps > 0 && next > w.opts.MaxSteps
	for _, n := range w.grid.Neighbors4(s.at) {
		if !w.opts.Traversal(height, w.grid.At(n)) {
			continue
		}
		if limited {
			if !w.visited[w.grid.Index(n)] {
				w.truncated = true
			}
			continue
		}
		w.enqueue(n, next)
	}
}
