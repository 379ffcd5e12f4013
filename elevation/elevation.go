package elevation

import (
	"fmt"
	"unicode"
)

// Validate reports ErrInvalidAlphabet if the sentinels are equal to each
// other, fall inside the ordinary a–z range, or are whitespace (which the
// heightmap reader treats as layout).
func (a Alphabet) Validate() error {
	switch {
	case a.Start == a.Goal:
		return fmt.Errorf("%w: start and goal share symbol %q", ErrInvalidAlphabet, a.Start)
	case isLetter(a.Start):
		return fmt.Errorf("%w: start symbol %q is an ordinary elevation", ErrInvalidAlphabet, a.Start)
	case isLetter(a.Goal):
		return fmt.Errorf("%w: goal symbol %q is an ordinary elevation", ErrInvalidAlphabet, a.Goal)
	case unicode.IsSpace(a.Start):
		return fmt.Errorf("%w: start symbol %q is whitespace", ErrInvalidAlphabet, a.Start)
	case unicode.IsSpace(a.Goal):
		return fmt.Errorf("%w: goal symbol %q is whitespace", ErrInvalidAlphabet, a.Goal)
	}

	return nil
}

// Elevation maps r to its elevation: the start symbol to Start, the goal
// symbol to End, and 'a'..'z' to 1..26.
// Any other rune yields ErrInvalidSymbol.
func (a Alphabet) Elevation(r rune) (Elevation, error) {
	switch {
	case r == a.Start:
		return Start, nil
	case r == a.Goal:
		return End, nil
	case isLetter(r):
		return Elevation(r-'a') + Lowest, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
}

// Symbol is the inverse of Elevation.
// Values above End yield ErrInvalidSymbol.
func (a Alphabet) Symbol(e Elevation) (rune, error) {
	switch {
	case e == Start:
		return a.Start, nil
	case e == End:
		return a.Goal, nil
	case e >= Lowest && e <= Highest:
		return 'a' + rune(e-Lowest), nil
	}

	return 0, fmt.Errorf("%w: elevation %d", ErrInvalidSymbol, uint8(e))
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsStart reports whether e seeds a single-source search.
func IsStart(e Elevation) bool {
	return e == Start
}

// IsTrailhead reports whether e seeds a multi-source search:
// the start cell or any cell at the lowest ordinary elevation.
func IsTrailhead(e Elevation) bool {
	return e == Start || e == Lowest
}

// IsGoal reports whether e marks the goal.
func IsGoal(e Elevation) bool {
	return e == End
}

// CanStep reports whether a move from a cell at height from into an adjacent
// cell at height to is allowed: any descent, or an ascent of at most one.
func CanStep(from, to Elevation) bool {
	return to.Effective() <= from.Effective()+1
}
