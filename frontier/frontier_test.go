package frontier_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/frontier"
	"github.com/katalvlaran/hillclimb/grid"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := frontier.Search(nil, elevation.IsStart); !errors.Is(err, frontier.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustGrid(t, "SE")
	if _, err := frontier.Search(g, elevation.IsStart, frontier.WithMaxSteps(-1)); !errors.Is(err, frontier.ErrOptionViolation) {
		t.Errorf("negative MaxSteps: want ErrOptionViolation, got %v", err)
	}
	if _, err := frontier.Search(g, nil); !errors.Is(err, frontier.ErrOptionViolation) {
		t.Errorf("nil seeds: want ErrOptionViolation, got %v", err)
	}
	if _, err := frontier.ShortestPathSingleSource(nil); !errors.Is(err, frontier.ErrGridNil) {
		t.Errorf("single-source nil grid: want ErrGridNil, got %v", err)
	}
}

// TestCanonical covers the reference heightmap for both variants.
func TestCanonical(t *testing.T) {
	g := mustGrid(t, canonical...)

	single, err := frontier.ShortestPathSingleSource(g)
	require.NoError(t, err)
	require.Equal(t, 31, single)

	multi, err := frontier.ShortestPathMultiSource(g)
	require.NoError(t, err)
	require.Equal(t, 29, multi)

	res, err := frontier.Search(g, elevation.IsStart)
	require.NoError(t, err)
	require.Equal(t, grid.Coordinate{X: 5, Y: 2}, res.Goal)
	require.Positive(t, res.Visited)
	require.LessOrEqual(t, res.Visited, g.Len())
}

// TestUnreachable covers grids where no seed can reach a goal.
func TestUnreachable(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		// S can only climb to 'b'; every neighbour is 'z'.
		{"StartWalledInByPeaks", []string{
			"Szz",
			"zzz",
			"zzE",
		}},
		// A single 'z' between S and E with no way around it.
		{"PeakBetween", []string{"SzE"}},
		// The goal sits in a ring of 'c' cells, two levels above every approach.
		{"GoalInHighRing", []string{
			"Saaaa",
			"aaccc",
			"aacEc",
			"aaccc",
		}},
		{"NoGoal", []string{"Sabc"}},
		{"NoSeed", []string{"bcdE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows...)
			_, err := frontier.ShortestPathSingleSource(g)
			require.ErrorIs(t, err, frontier.ErrUnreachable)
			_, err = frontier.ShortestPathMultiSource(g)
			require.ErrorIs(t, err, frontier.ErrUnreachable)
		})
	}
}

// TestPlateau_FiveByFive: S at (0,0), E at (4,4), every other cell 'a'.
// Under the standard rule E counts as 'z' and cannot be entered from 'a';
// once the ascent bound is lifted the answer is the Manhattan distance.
func TestPlateau_FiveByFive(t *testing.T) {
	g := mustGrid(t,
		"Saaaa",
		"aaaaa",
		"aaaaa",
		"aaaaa",
		"aaaaE",
	)

	_, err := frontier.ShortestPathSingleSource(g)
	require.ErrorIs(t, err, frontier.ErrUnreachable)

	free := frontier.WithTraversal(func(_, _ elevation.Elevation) bool { return true })
	steps, err := frontier.ShortestPathSingleSource(g, free)
	require.NoError(t, err)
	require.Equal(t, 8, steps)
}

// TestManhattanOnRamp: a diagonal ramp a..i keeps every ascent at one level,
// so the shortest route is the Manhattan distance.
func TestManhattanOnRamp(t *testing.T) {
	rows := make([]string, 5)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < 5; x++ {
			b.WriteRune(rune('a' + x + y))
		}
		rows[y] = b.String()
	}
	g := mustGrid(t, rows...)
	target := grid.Coordinate{X: 4, Y: 4}

	res, err := frontier.Search(g, elevation.IsTrailhead,
		frontier.WithGoal(func(e elevation.Elevation) bool { return e == g.At(target) }))
	require.NoError(t, err)
	require.Equal(t, 8, res.Steps)
	require.Equal(t, target, res.Goal)
}

// TestSeedIsGoal returns zero steps, distinct from ErrUnreachable.
func TestSeedIsGoal(t *testing.T) {
	g := mustGrid(t, "Sz", "zz")
	res, err := frontier.Search(g, elevation.IsStart, frontier.WithGoal(elevation.IsStart))
	require.NoError(t, err)
	require.Equal(t, 0, res.Steps)
	require.Equal(t, 1, res.Visited)
}

// TestDescentIsFree: from a peak any drop is allowed, however large,
// while the same row cannot be climbed in the other direction.
func TestDescentIsFree(t *testing.T) {
	g := mustGrid(t, "abcdz")
	isPeak := func(e elevation.Elevation) bool { return e == elevation.Highest }

	res, err := frontier.Search(g, isPeak, frontier.WithGoal(func(e elevation.Elevation) bool { return e == elevation.Lowest }))
	require.NoError(t, err)
	require.Equal(t, 4, res.Steps)

	_, err = frontier.Search(g, elevation.IsTrailhead, frontier.WithGoal(isPeak))
	require.ErrorIs(t, err, frontier.ErrUnreachable)
}

// TestMaxSteps bounds expansion depth and reports a cut-off search
// separately from a goal that no path leads to.
func TestMaxSteps(t *testing.T) {
	g := mustGrid(t, canonical...)

	for _, limit := range []int{5, 30} {
		steps, err := frontier.ShortestPathSingleSource(g, frontier.WithMaxSteps(limit))
		require.ErrorIs(t, err, frontier.ErrStepLimit, "limit %d", limit)
		require.NotErrorIs(t, err, frontier.ErrUnreachable, "limit %d", limit)
		require.Zero(t, steps)
	}

	steps, err := frontier.ShortestPathSingleSource(g, frontier.WithMaxSteps(31))
	require.NoError(t, err)
	require.Equal(t, 31, steps)

	steps, err = frontier.ShortestPathSingleSource(g, frontier.WithMaxSteps(0))
	require.NoError(t, err)
	require.Equal(t, 31, steps)
}

// TestMaxSteps_ExhaustedStillUnreachable: a limit that cuts nothing off
// leaves a walled-in goal reported as unreachable.
func TestMaxSteps_ExhaustedStillUnreachable(t *testing.T) {
	g := mustGrid(t, "SzE")

	_, err := frontier.ShortestPathSingleSource(g, frontier.WithMaxSteps(1))
	require.ErrorIs(t, err, frontier.ErrUnreachable)
	require.NotErrorIs(t, err, frontier.ErrStepLimit)

	g = mustGrid(t, "SaazE")
	_, err = frontier.ShortestPathSingleSource(g, frontier.WithMaxSteps(2))
	require.ErrorIs(t, err, frontier.ErrUnreachable)
}

// TestOnVisitAbort propagates hook errors.
func TestOnVisitAbort(t *testing.T) {
	g := mustGrid(t, canonical...)
	stop := errors.New("stop")
	_, err := frontier.ShortestPathSingleSource(g,
		frontier.WithOnVisit(func(_ grid.Coordinate, steps int) error {
			if steps == 3 {
				return stop
			}
			return nil
		}))
	require.ErrorIs(t, err, stop)
	require.NotErrorIs(t, err, frontier.ErrUnreachable)
}

// TestDeterminism: repeated runs yield the same answer and visit trace.
func TestDeterminism(t *testing.T) {
	g := mustGrid(t, canonical...)
	trace := func() ([]grid.Coordinate, int) {
		var order []grid.Coordinate
		steps, err := frontier.ShortestPathMultiSource(g,
			frontier.WithOnVisit(func(c grid.Coordinate, _ int) error {
				order = append(order, c)
				return nil
			}))
		require.NoError(t, err)
		return order, steps
	}
	o1, s1 := trace()
	o2, s2 := trace()
	require.Equal(t, s1, s2)
	require.Equal(t, o1, o2)
}

// TestLevelsMatchReference: every cell is visited exactly once, at its true
// distance, and dequeued steps never decrease.
func TestLevelsMatchReference(t *testing.T) {
	g := mustGrid(t, canonical...)
	noGoal := frontier.WithGoal(func(elevation.Elevation) bool { return false })

	for _, v := range []frontier.Variant{frontier.SingleSource, frontier.MultiSource} {
		t.Run(v.String(), func(t *testing.T) {
			want := referenceDistances(g, v.Seeds())
			seen := make(map[grid.Coordinate]int)
			last := 0
			enqueued, dequeued := 0, 0

			_, err := frontier.Search(g, v.Seeds(), noGoal,
				frontier.WithOnEnqueue(func(grid.Coordinate, int) { enqueued++ }),
				frontier.WithOnDequeue(func(_ grid.Coordinate, steps int) {
					dequeued++
					require.GreaterOrEqual(t, steps, last, "frontier went back a level")
					last = steps
				}),
				frontier.WithOnVisit(func(c grid.Coordinate, steps int) error {
					_, dup := seen[c]
					require.False(t, dup, "cell %v visited twice", c)
					seen[c] = steps
					return nil
				}))
			require.ErrorIs(t, err, frontier.ErrUnreachable)
			require.Equal(t, enqueued, dequeued)
			require.GreaterOrEqual(t, dequeued, len(seen))

			for i, d := range want {
				c := g.Coordinate(i)
				got, ok := seen[c]
				if d < 0 {
					require.False(t, ok, "unreachable cell %v visited", c)
					continue
				}
				require.True(t, ok, "reachable cell %v not visited", c)
				require.Equal(t, d, got, "distance of %v", c)
			}
		})
	}
}

// TestDuplicatesSkipped: many seeds produce duplicate entries without error.
func TestDuplicatesSkipped(t *testing.T) {
	g := mustGrid(t,
		"aaa",
		"aSa",
		"aab",
		"bcE",
	)
	dequeued, visited := 0, 0
	res, err := frontier.Search(g, elevation.IsTrailhead,
		frontier.WithTraversal(func(_, _ elevation.Elevation) bool { return true }),
		frontier.WithOnDequeue(func(grid.Coordinate, int) { dequeued++ }),
		frontier.WithOnVisit(func(grid.Coordinate, int) error { visited++; return nil }))
	require.NoError(t, err)
	require.Equal(t, 2, res.Steps)
	require.Equal(t, visited, res.Visited)
	require.Greater(t, dequeued, visited)
}

// TestSeedSupersetMonotonicity: on random terrain the multi-source answer
// never exceeds the single-source one.
func TestSeedSupersetMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	top := elevation.Lowest + 5
	goal := frontier.WithGoal(func(e elevation.Elevation) bool { return e == top })

	for trial := 0; trial < 200; trial++ {
		rows, cols := 2+rng.Intn(8), 2+rng.Intn(8)
		cells := make([]elevation.Elevation, rows*cols)
		for i := range cells {
			cells[i] = elevation.Lowest + elevation.Elevation(rng.Intn(6))
		}
		cells[rng.Intn(len(cells))] = elevation.Start
		g, err := grid.New(rows, cols, cells)
		require.NoError(t, err)

		single, sErr := frontier.ShortestPathSingleSource(g, goal)
		multi, mErr := frontier.ShortestPathMultiSource(g, goal)
		if sErr != nil {
			require.ErrorIs(t, sErr, frontier.ErrUnreachable)
			continue
		}
		require.NoError(t, mErr, "trial %d: multi-source failed where single-source succeeded", trial)
		require.LessOrEqual(t, multi, single, "trial %d", trial)
	}
}

// TestVariant covers parsing and naming.
func TestVariant(t *testing.T) {
	cases := []struct {
		in   string
		want frontier.Variant
	}{
		{"single", frontier.SingleSource},
		{"Single-Source", frontier.SingleSource},
		{" multi ", frontier.MultiSource},
		{"multi-source", frontier.MultiSource},
	}
	for _, tc := range cases {
		got, err := frontier.ParseVariant(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
	_, err := frontier.ParseVariant("both")
	require.ErrorIs(t, err, frontier.ErrUnknownVariant)

	require.Equal(t, "single-source", frontier.SingleSource.String())
	require.Equal(t, "multi-source", frontier.MultiSource.String())
	require.Equal(t, "Variant(7)", frontier.Variant(7).String())
}
