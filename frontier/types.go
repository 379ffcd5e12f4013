package frontier

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("frontier: grid is nil")

	// ErrUnreachable is returned when no goal cell can be reached from any seed.
	ErrUnreachable = errors.New("frontier: goal unreachable")

	// ErrStepLimit is returned when MaxSteps stopped the search before any goal
	// was reached while unexplored cells remained; a goal may still be reachable.
	ErrStepLimit = errors.New("frontier: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")

	// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
	ErrUnknownVariant = errors.New("frontier: unknown search variant")
)

// SeedFunc selects the cells a search starts from.
type SeedFunc func(elevation.Elevation) bool

// Variant names one of the two standard seed policies.
type Variant int

const (
	// SingleSource seeds from the start cell only.
	SingleSource Variant = iota
	// MultiSource seeds from the start cell and every lowest-elevation cell.
	MultiSource
)

// Seeds returns the seed predicate for v.
func (v Variant) Seeds() SeedFunc {
	if v == MultiSource {
		return elevation.IsTrailhead
	}
	return elevation.IsStart
}

// String returns "single-source" or "multi-source".
func (v Variant) String() string {
	switch v {
	case SingleSource:
		return "single-source"
	case MultiSource:
		return "multi-source"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "single", "multi" and their "-source" spellings,
// case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-source":
		return SingleSource, nil
	case "multi", "multi-source":
		return MultiSource, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Option configures Search via functional arguments.
// If an Option is invalid (e.g. negative MaxSteps), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one search.
type Options struct {
	// Traversal reports whether a step from one height to a neighbour's is allowed.
	Traversal func(from, to elevation.Elevation) bool

	// Goal reports whether a cell ends the search.
	Goal func(elevation.Elevation) bool

	// MaxSteps, if > 0, stops expanding cells reached in MaxSteps steps.
	MaxSteps int

	// OnEnqueue is called for every frontier entry, duplicates included.
	OnEnqueue func(c grid.Coordinate, steps int)

	// OnDequeue is called for every entry taken off the frontier, before the
	// visited check.
	OnDequeue func(c grid.Coordinate, steps int)

	// OnVisit is called once per cell when it is first visited. If it returns
	// an error, Search aborts and propagates that error.
	OnVisit func(c grid.Coordinate, steps int) error

	// Logger receives debug records about seeds and outcome.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard hill-climbing rules:
//   - elevation.CanStep traversal and elevation.IsGoal goal
//   - no step limit
//   - no-op hooks
//   - slog.Default() logger
func DefaultOptions() Options {
	return Options{
		Traversal: elevation.CanStep,
		Goal:      elevation.IsGoal,
		MaxSteps:  0,
		OnEnqueue: func(grid.Coordinate, int) {},
		OnDequeue: func(grid.Coordinate, int) {},
		OnVisit:   func(grid.Coordinate, int) error { return nil },
		Logger:    slog.Default(),
	}
}

// WithTraversal replaces the movement rule.
func WithTraversal(fn func(from, to elevation.Elevation) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Traversal = fn
		}
	}
}

// WithGoal replaces the goal predicate.
func WithGoal(fn func(elevation.Elevation) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Goal = fn
		}
	}
}

// WithMaxSteps bounds the search depth.
//
//	n > 0:  cells at n steps are visited but not expanded; a search cut
//	        short this way fails with ErrStepLimit, not ErrUnreachable
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coordinate, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coordinate, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c grid.Coordinate, steps int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful search.
//   - Steps: fewest unit steps from the nearest seed to Goal.
//   - Goal: the goal cell reached.
//   - Visited: number of distinct cells visited, Goal included.
type Result struct {
	Steps   int
	Goal    grid.Coordinate
	Visited int
}
