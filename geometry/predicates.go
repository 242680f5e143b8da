package geometry

import (
	"math/big"
	"sort"
)

// Turn is the orientation of an ordered triple of points.
type Turn int

const (
	Clockwise        Turn = -1
	Collinear        Turn = 0
	CounterClockwise Turn = 1
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	}
	return "collinear"
}

// Twice the signed area of the triangle (p, q, r). This is the one place a
// three point cross product is computed; every side test goes through it.
func SignedArea2(p, q, r Point) *big.Rat {
	return q.Sub(p).Cross(r.Sub(p))
}

func Orientation(p, q, r Point) Turn {
	return Turn(SignedArea2(p, q, r).Sign())
}

func inBox(point, p, q Point) bool {
	between := func(v, a, b *big.Rat) bool {
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		return a.Cmp(v) <= 0 && v.Cmp(b) <= 0
	}
	return between(point.X, p.X, q.X) && between(point.Y, p.Y, q.Y)
}

// Is point on the closed segment pq?
func PointOnSegment(point, p, q Point) bool {
	return Orientation(p, q, point) == Collinear && inBox(point, p, q)
}

// Like PointOnSegment, but the endpoints themselves don't count.
func PointStrictlyOnSegment(point, p, q Point) bool {
	return PointOnSegment(point, p, q) && !point.Equal(p) && !point.Equal(q)
}

// Intersection of the open segments p1q1 and p2q2. Only a proper crossing
// counts: each segment's endpoints must lie strictly on opposite sides of the
// other's line. Collinear overlaps and touching endpoints report no
// intersection. Every caller in this module relies on that convention.
func SegmentsIntersect(p1, q1, p2, q2 Point) (Point, bool) {
	if p1.Equal(q1) || p2.Equal(q2) {
		fatalf(ErrInvalidInput, "degenerate segment in intersection test")
	}
	if Orientation(p1, q1, p2)*Orientation(p1, q1, q2) >= 0 {
		return Point{}, false
	}
	if Orientation(p2, q2, p1)*Orientation(p2, q2, q1) >= 0 {
		return Point{}, false
	}
	return LinesIntersect(LineThrough(p1, q1), LineThrough(p2, q2))
}

// Nearest point of the closed segment ab on the ray that starts at origin and
// passes through `through`, restricted to points strictly beyond `through`.
// Segments parallel to the ray are skipped; their nearest endpoint is also an
// endpoint of a neighbouring, non-parallel edge in any closed polygon.
func RaySegmentIntersection(origin, through, a, b Point) (Point, bool) {
	if a.Equal(b) {
		fatalf(ErrInvalidInput, "degenerate segment in ray test")
	}
	hit, ok := LinesIntersect(LineThrough(origin, through), LineThrough(a, b))
	if !ok || !PointOnSegment(hit, a, b) {
		return Point{}, false
	}
	if hit.Sub(through).Dot(through.Sub(origin)).Sign() <= 0 {
		return Point{}, false
	}
	return hit, true
}

// Sort points counterclockwise around the lowest (then leftmost) one, which
// ends up first. Collinear points are ordered nearest first.
func SortAround(points []Point) []Point {
	result := append([]Point(nil), points...)
	if len(result) < 2 {
		return result
	}
	lowest := 0
	for i, p := range result {
		c := p.Y.Cmp(result[lowest].Y)
		if c < 0 || c == 0 && p.X.Cmp(result[lowest].X) < 0 {
			lowest = i
		}
	}
	result[0], result[lowest] = result[lowest], result[0]
	pivot := result[0]
	rest := result[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return aroundLess(pivot, rest[i], rest[j])
	})
	return result
}

func aroundLess(pivot, a, b Point) bool {
	switch Orientation(pivot, a, b) {
	case CounterClockwise:
		return true
	case Clockwise:
		return false
	}
	return pivot.Dist2(a).Cmp(pivot.Dist2(b)) < 0
}
