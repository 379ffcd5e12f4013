package elevation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the elevation model.
var (
	// ErrInvalidSymbol indicates a rune outside a–z and the alphabet's sentinels.
	ErrInvalidSymbol = errors.New("elevation: invalid symbol")
	// ErrInvalidAlphabet indicates sentinel symbols that collide with each other
	// or with the ordinary a–z range.
	ErrInvalidAlphabet = errors.New("elevation: invalid alphabet")
)

// Elevation is a totally ordered cell height.
type Elevation uint8

const (
	// Start marks a start cell. It sorts below every ordinary elevation.
	Start Elevation = 0
	// Lowest is the elevation of 'a'.
	Lowest Elevation = 1
	// Highest is the elevation of 'z'.
	Highest Elevation = 26
	// End marks the goal cell. It sorts above every ordinary elevation.
	End Elevation = Highest + 1
)

// Effective returns the height used for movement: Start climbs like Lowest
// and End is entered like Highest. Ordinary values are returned unchanged.
func (e Elevation) Effective() Elevation {
	switch e {
	case Start:
		return Lowest
	case End:
		return Highest
	default:
		return e
	}
}

// String renders e with the default alphabet.
func (e Elevation) String() string {
	r, err := DefaultAlphabet().Symbol(e)
	if err != nil {
		return fmt.Sprintf("Elevation(%d)", uint8(e))
	}

	return string(r)
}

// Alphabet selects the runes that denote the start and goal cells.
// Ordinary elevations are always the lowercase letters a–z.
type Alphabet struct {
	Start rune
	Goal  rune
}

// DefaultAlphabet returns the conventional alphabet: 'S' for start, 'E' for goal.
func DefaultAlphabet() Alphabet {
	return Alphabet{Start: 'S', Goal: 'E'}
}
