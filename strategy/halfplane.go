package strategy

import (
	"math/big"
	"sort"

	"github.com/osuushi/voronoigame/geometry"
)

// The best open half plane bounded by a line through a pivot.
type HalfPlaneResult struct {
	Line geometry.Line
	// CounterClockwise for the left of Line, Clockwise for the right.
	Side geometry.Turn
	// Number of points strictly on Side.
	Count int
	// Indexes of those points, ascending.
	Members []int
}

// Find the line through pivot with the most points strictly on one side.
//
// The count only changes when the line sweeps over a point, so it is enough to
// try each point direction (mod 180°) and one direction strictly between each
// pair of angularly consecutive point directions. Candidates are tried in
// ascending angle from the +x axis, the left side before the right, and the
// first candidate to reach the maximum wins. Points equal to the pivot never
// count.
func MaximizingHalfPlane(pivot geometry.Point, points []geometry.Point) HalfPlaneResult {
	best := HalfPlaneResult{Count: -1}
	for _, direction := range candidateDirections(pivot, points) {
		line := geometry.LineThrough(pivot, pivot.Add(direction))
		var left, right []int
		for i, p := range points {
			switch line.Side(p) {
			case geometry.CounterClockwise:
				left = append(left, i)
			case geometry.Clockwise:
				right = append(right, i)
			}
		}
		if len(left) > best.Count {
			best = HalfPlaneResult{Line: line, Side: geometry.CounterClockwise, Count: len(left), Members: left}
		}
		if len(right) > best.Count {
			best = HalfPlaneResult{Line: line, Side: geometry.Clockwise, Count: len(right), Members: right}
		}
	}
	return best
}

func candidateDirections(pivot geometry.Point, points []geometry.Point) []geometry.Point {
	var directions []geometry.Point
	for _, p := range points {
		if d := p.Sub(pivot); !d.IsZero() {
			directions = append(directions, upperHalf(d))
		}
	}
	if len(directions) == 0 {
		return []geometry.Point{geometry.Pt(1, 0)}
	}

	// All directions are in [0°, 180°), where the cross product orders them.
	sort.SliceStable(directions, func(i, j int) bool {
		return directions[i].Cross(directions[j]).Sign() > 0
	})
	distinct := directions[:1]
	for _, d := range directions[1:] {
		if distinct[len(distinct)-1].Cross(d).Sign() != 0 {
			distinct = append(distinct, d)
		}
	}

	var candidates []geometry.Point
	for i, d := range distinct {
		candidates = append(candidates, d)
		switch {
		case len(distinct) == 1:
			candidates = append(candidates, d.Perp())
		case i < len(distinct)-1:
			candidates = append(candidates, d.Add(distinct[i+1]))
		default:
			// Between the last direction and the first one turned half way round
			candidates = append(candidates, d.Sub(distinct[0]))
		}
	}
	return candidates
}

// The representative of d's line direction in [0°, 180°).
func upperHalf(d geometry.Point) geometry.Point {
	if d.Y.Sign() < 0 || d.Y.Sign() == 0 && d.X.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// The normal of the result's line pointing into the winning side.
func (r HalfPlaneResult) Normal() geometry.Point {
	normal := r.Line.Direction().Perp()
	if r.Side == geometry.Clockwise {
		return normal.Neg()
	}
	return normal
}

func ratMin(a, b *big.Rat) *big.Rat {
	if a == nil || b.Cmp(a) < 0 {
		return b
	}
	return a
}
