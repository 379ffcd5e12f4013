// Package elevation maps heightmap symbols to ordered elevation values and
// defines the predicates a hill-climbing search needs.
//
// Ordinary cells use the lowercase letters a–z, ranked 1..26. Two sentinels
// mark special cells: Start (0) for the start cell and End (27) for the goal.
// The sentinels only identify cells; for movement Start counts as 'a' and End
// as 'z' (see Elevation.Effective and CanStep).
//
// Predicates:
//
//   - IsStart:     the single-source seed set (Start only).
//   - IsTrailhead: the multi-source seed set (Start or the lowest letter).
//   - IsGoal:      the goal set (End only).
//   - CanStep:     descent of any size, ascent of at most one.
//
// Which runes act as start and goal is configured by Alphabet;
// DefaultAlphabet uses 'S' and 'E'.
package elevation
