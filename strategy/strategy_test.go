package strategy

import (
	"math/big"
	"testing"

	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func square() geometry.Polygon {
	return geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10), geometry.Pt(0, 10))
}

func lShape() geometry.Polygon {
	return geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 4), geometry.Pt(4, 4), geometry.Pt(4, 10), geometry.Pt(0, 10))
}

func TestMaximizingHalfPlane(t *testing.T) {
	t.Run("collinear through the pivot", func(t *testing.T) {
		result := MaximizingHalfPlane(geometry.Pt(5, 5), []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)})
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, []int{0}, result.Members, "west comes first, on the left of the northward line")
		assert.Equal(t, geometry.CounterClockwise, result.Side)
		assert.True(t, result.Normal().Equal(geometry.Pt(-3, 0)))
	})

	t.Run("all on one side", func(t *testing.T) {
		result := MaximizingHalfPlane(geometry.Pt(5, 8), []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)})
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, []int{0, 1}, result.Members)
	})

	t.Run("around the L", func(t *testing.T) {
		result := MaximizingHalfPlane(geometry.Pt(8, 2), []geometry.Point{geometry.Pt(4, 4), geometry.Pt(9, 1), geometry.Pt(7, 3)})
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, []int{0, 1}, result.Members)
		assert.True(t, result.Line.Direction().Equal(geometry.Pt(-5, 3)), "got %v", result.Line.Direction())
	})

	t.Run("surrounded", func(t *testing.T) {
		points := []geometry.Point{geometry.Pt(1, 0), geometry.Pt(0, 1), geometry.Pt(-1, 0), geometry.Pt(0, -1)}
		result := MaximizingHalfPlane(geometry.Pt(0, 0), points)
		assert.Equal(t, 2, result.Count, "a line through the centre leaves at most two on one side")
		for _, i := range result.Members {
			assert.Equal(t, result.Side, result.Line.Side(points[i]))
		}
	})

	t.Run("points on the pivot never count", func(t *testing.T) {
		result := MaximizingHalfPlane(geometry.Pt(1, 1), []geometry.Point{geometry.Pt(1, 1), geometry.Pt(1, 1)})
		assert.Equal(t, 0, result.Count)
		assert.Empty(t, result.Members)
	})

	t.Run("no points", func(t *testing.T) {
		result := MaximizingHalfPlane(geometry.Pt(1, 1), nil)
		assert.Equal(t, 0, result.Count)
	})
}

func TestAnchors(t *testing.T) {
	decomposition := geometry.NonVisibilityRegions(lShape(), geometry.Pt(8, 2))
	anchors := Anchors(lShape(), decomposition, []geometry.Point{geometry.Pt(2, 8), geometry.Pt(9, 1)})
	require.Len(t, anchors, 2)
	assert.True(t, anchors[0].Equal(geometry.Pt(4, 4)), "hidden users are reached through the anchor")
	assert.True(t, anchors[1].Equal(geometry.Pt(9, 1)), "visible users stand for themselves")

	// (2, 6) is on the cut through (4, 4), so it is not hidden, but the path
	// to it grazes the reflex vertex.
	decomposition = geometry.NonVisibilityRegions(lShape(), geometry.Pt(6, 2))
	anchors = Anchors(lShape(), decomposition, []geometry.Point{geometry.Pt(2, 6), geometry.Pt(9, 1)})
	assert.True(t, anchors[0].Equal(geometry.Pt(4, 4)), "got %v", anchors[0])
	assert.True(t, anchors[1].Equal(geometry.Pt(9, 1)))
}

func TestScores(t *testing.T) {
	users := []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5), geometry.Pt(5, 9)}

	score1, score2 := Scores(geometry.Pt(3, 5), geometry.Pt(7, 5), square(), users)
	assert.Equal(t, 1, score1)
	assert.Equal(t, 1, score2, "the user on the bisector is a tie")

	claims := Claims(geometry.Pt(3, 5), geometry.Pt(7, 5), square(), users)
	assert.Equal(t, []int{1, -1, 0}, []int{claims[0].Winner, claims[1].Winner, claims[2].Winner})
	assert.Equal(t, []int{1, 2, 0}, []int{claims[0].Owner(), claims[1].Owner(), claims[2].Owner()})
	score1, score2 = Tally(claims)
	assert.Equal(t, 1, score1)
	assert.Equal(t, 1, score2)

	score1, score2 = Tally(nil)
	assert.Zero(t, score1)
	assert.Zero(t, score2)

	score1, score2 = Scores(geometry.Pt(8, 2), geometry.Pt(4, 2), lShape(), []geometry.Point{geometry.Pt(2, 8), geometry.Pt(9, 3)})
	assert.Equal(t, 1, score1)
	assert.Equal(t, 1, score2)
}

func TestRespond(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		response, err := Respond(geometry.Pt(5, 5), square(), []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)})
		require.NoError(t, err)
		assert.True(t, response.Facility.Equal(half(7, 10)), "got %v", response.Facility)
	})

	t.Run("L shape", func(t *testing.T) {
		l := lShape()
		users := []geometry.Point{geometry.Pt(2, 8), geometry.Pt(9, 1), geometry.Pt(7, 3)}
		response, err := Respond(geometry.Pt(8, 2), l, users)
		require.NoError(t, err)
		assert.True(t, response.Facility.Equal(geometry.PtRat(big.NewRat(269, 34), big.NewRat(63, 34))), "got %v", response.Facility)
		assert.True(t, l.Contains(response.Facility))

		score1, score2 := Scores(geometry.Pt(8, 2), response.Facility, l, users)
		assert.Equal(t, 1, score1)
		assert.Equal(t, 2, score2)
	})

	t.Run("halves the step to stay inside", func(t *testing.T) {
		// The only user sits on p1, so the first step is the full extent cap
		// and lands on the boundary.
		response, err := Respond(geometry.Pt(5, 5), square(), []geometry.Point{geometry.Pt(5, 5)})
		require.NoError(t, err)
		assert.Equal(t, 0, response.HalfPlane.Count)
		assert.True(t, response.Facility.Equal(half(10, 15)), "got %v", response.Facility)
	})

	t.Run("user in line with a reflex vertex", func(t *testing.T) {
		l := lShape()
		users := []geometry.Point{geometry.Pt(2, 6), geometry.Pt(9, 1)}
		response, err := Respond(geometry.Pt(6, 2), l, users)
		require.NoError(t, err)
		assert.Equal(t, 2, response.HalfPlane.Count)
		assert.True(t, response.Facility.Equal(geometry.PtRat(big.NewRat(105, 17), big.NewRat(39, 17))), "got %v", response.Facility)

		score1, score2 := Scores(geometry.Pt(6, 2), response.Facility, l, users)
		assert.Equal(t, 0, score1)
		assert.Equal(t, 2, score2)

		users = []geometry.Point{geometry.Pt(2, 6), geometry.Pt(9, 3), geometry.Pt(8, 1)}
		response, err = Respond(geometry.Pt(6, 2), l, users)
		require.NoError(t, err)
		assert.True(t, l.Contains(response.Facility))
		_, score2 = Scores(geometry.Pt(6, 2), response.Facility, l, users)
		assert.GreaterOrEqual(t, score2, response.HalfPlane.Count)
	})

	t.Run("gives up when every step leaves the polygon", func(t *testing.T) {
		p1 := geometry.PtRat(big.NewRat(5, 1), new(big.Rat).Sub(big.NewRat(10, 1), tiny()))
		_, err := Respond(p1, square(), []geometry.Point{p1})
		assert.True(t, errors.Is(err, geometry.ErrDecompositionDivergence), "got %v", err)
		assert.Contains(t, err.Error(), "halvings")
	})
}

// 2^-80, far below the smallest step Respond tries.
func tiny() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 80))
}

// Point from half units.
func half(x, y int64) geometry.Point {
	return geometry.PtRat(big.NewRat(x, 2), big.NewRat(y, 2))
}

func TestCandidateFacilities(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		candidates := CandidateFacilities(square(), []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)})
		require.NotEmpty(t, candidates)
		seen := make(geometry.PointSet)
		for _, c := range candidates {
			assert.False(t, seen.Contains(c), "duplicate candidate %v", c)
			seen.Add(c)
			assert.True(t, square().Contains(c), "candidate %v is not strictly inside", c)
		}
		assert.True(t, seen.Contains(geometry.Pt(5, 5)), "the diagonals cross in the centre")
	})

	t.Run("falls back to the users", func(t *testing.T) {
		triangle := geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(0, 10))
		candidates := CandidateFacilities(triangle, []geometry.Point{geometry.Pt(1, 1)})
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].Equal(geometry.Pt(1, 1)))
	})

	t.Run("only chords inside the polygon", func(t *testing.T) {
		for _, chord := range Chords(lShape(), nil) {
			assert.True(t, lShape().SegmentInside(chord.Start, chord.End), "%v", chord)
			assert.False(t, chord.Start.Equal(geometry.Pt(10, 4)) && chord.End.Equal(geometry.Pt(4, 10)), "across the notch")
		}
	})

	t.Run("users on vertices", func(t *testing.T) {
		var chords []geometry.Segment
		require.NotPanics(t, func() {
			chords = Chords(square(), []geometry.Point{geometry.Pt(0, 0), geometry.Pt(5, 5), geometry.Pt(5, 5)})
		})
		require.NotEmpty(t, chords)
		for _, chord := range chords {
			assert.False(t, chord.Start.Equal(chord.End), "%v", chord)
		}
	})
}

func TestSolver(t *testing.T) {
	t.Run("symmetric users tie", func(t *testing.T) {
		solver := &Solver{Workers: 4}
		users := []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)}
		p1, err := solver.BestFacility(square(), users)
		require.NoError(t, err)
		p2, err := solver.BestResponse(p1, square(), users)
		require.NoError(t, err)
		score1, score2, err := solver.ComputeScores(p1, p2, square(), users)
		require.NoError(t, err)
		assert.Equal(t, 1, score1)
		assert.Equal(t, 1, score2)
	})

	t.Run("deterministic across worker counts", func(t *testing.T) {
		users := []geometry.Point{geometry.Pt(2, 8), geometry.Pt(9, 1), geometry.Pt(7, 3)}
		serial, err := (&Solver{Workers: 1}).BestFacility(lShape(), users)
		require.NoError(t, err)
		parallel, err := (&Solver{Workers: 8}).BestFacility(lShape(), users)
		require.NoError(t, err)
		assert.True(t, serial.Equal(parallel), "%v != %v", serial, parallel)
	})

	t.Run("logs the choice", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		solver := &Solver{Logger: zap.New(core)}
		_, err := solver.BestFacility(square(), []geometry.Point{geometry.Pt(2, 5), geometry.Pt(8, 5)})
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("best facility").Len())
	})

	t.Run("errors instead of panics", func(t *testing.T) {
		var solver Solver
		_, err := solver.BestResponse(geometry.Pt(20, 20), square(), []geometry.Point{geometry.Pt(2, 5)})
		assert.True(t, errors.Is(err, geometry.ErrInvalidInput))

		_, _, err = solver.ComputeScores(geometry.Pt(5, 5), geometry.Pt(6, 6), square(), []geometry.Point{geometry.Pt(50, 50)})
		assert.True(t, errors.Is(err, geometry.ErrInvalidInput))

		_, err = solver.BestFacility(geometry.Polygon{Points: []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1)}}, []geometry.Point{geometry.Pt(1, 0)})
		assert.True(t, errors.Is(err, geometry.ErrInvalidInput))
	})

	t.Run("a candidate that cannot be answered fails the search", func(t *testing.T) {
		// No chords cross, so the user is the only candidate, and it sits
		// too close to the hypotenuse for any step to stay inside.
		triangle := geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(0, 10))
		user := geometry.PtRat(big.NewRat(1, 1), new(big.Rat).Sub(big.NewRat(9, 1), tiny()))
		core, logs := observer.New(zap.DebugLevel)
		solver := &Solver{Logger: zap.New(core), Workers: 2}

		_, err := solver.BestFacility(triangle, []geometry.Point{user})
		assert.True(t, errors.Is(err, geometry.ErrDecompositionDivergence), "got %v", err)
		assert.Contains(t, err.Error(), "candidate 0")
		assert.Zero(t, logs.FilterMessage("best facility").Len())

		_, err = solver.BestResponse(user, triangle, []geometry.Point{user})
		assert.True(t, errors.Is(err, geometry.ErrDecompositionDivergence), "got %v", err)
	})
}
