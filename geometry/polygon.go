package geometry

import (
	"math/big"
	"strings"
)

func NewPolygon(points ...Point) Polygon {
	poly := Polygon{Points: append([]Point(nil), points...)}
	poly.Validate()
	return poly
}

// Panics with ErrInvalidInput unless the polygon has at least three vertices
// and no zero length edges.
func (poly Polygon) Validate() {
	if len(poly.Points) < 3 {
		fatalf(ErrInvalidInput, "polygon needs at least 3 vertices, got %d", len(poly.Points))
	}
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if a.Equal(b) {
			fatalf(ErrInvalidInput, "zero length edge at vertex %d %v", i, a)
		}
	}
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Vertex with circular indexing.
func (poly Polygon) Vertex(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// The edge from vertex i to vertex i+1.
func (poly Polygon) Edge(i int) (Point, Point) {
	return poly.Vertex(i), poly.Vertex(i + 1)
}

// Index of the vertex equal to p, or -1.
func (poly Polygon) VertexIndex(p Point) int {
	for i, vertex := range poly.Points {
		if vertex.Equal(p) {
			return i
		}
	}
	return -1
}

// Twice the signed area (shoelace). Positive for counterclockwise polygons.
func (poly Polygon) SignedArea2() *big.Rat {
	area := new(big.Rat)
	for i := range poly.Points {
		a, b := poly.Edge(i)
		area.Add(area, a.Cross(b))
	}
	return area
}

func (poly Polygon) Area() *big.Rat {
	area := poly.SignedArea2()
	area.Abs(area)
	return area.Quo(area, big.NewRat(2, 1))
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea2().Sign() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea2().Sign() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The same polygon wound counterclockwise.
func (poly Polygon) CCW() Polygon {
	if poly.IsCW() {
		return poly.Reverse()
	}
	return poly
}

// Same vertices in the same order, starting at the same vertex.
func (poly Polygon) Equal(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	for i := range poly.Points {
		if !poly.Points[i].Equal(other.Points[i]) {
			return false
		}
	}
	return true
}

// Even-odd point-in-polygon test. Boundary points are not handled specially
// here; use Contains for the strict interior test.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossed by the
// horizontal ray going right from p, with the half-open rule on y so that a
// vertex on the ray is counted exactly once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if (a.Y.Cmp(p.Y) > 0) == (b.Y.Cmp(p.Y) > 0) {
			continue
		}
		// x = a.X + (p.Y - a.Y) * (b.X - a.X) / (b.Y - a.Y)
		x := new(big.Rat).Sub(p.Y, a.Y)
		x.Mul(x, new(big.Rat).Sub(b.X, a.X))
		x.Quo(x, new(big.Rat).Sub(b.Y, a.Y))
		x.Add(x, a.X)
		if p.X.Cmp(x) < 0 {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) OnBoundary(p Point) bool {
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if PointOnSegment(p, a, b) {
			return true
		}
	}
	return false
}

// Strict interior test. Points on the boundary, as PointOnSegment sees them,
// are not contained.
func (poly Polygon) Contains(p Point) bool {
	return !poly.OnBoundary(p) && poly.ContainsPointByEvenOdd(p)
}

// Axis aligned bounding box.
func (poly Polygon) Bounds() (min, max Point) {
	minX, minY := poly.Points[0].X, poly.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly.Points[1:] {
		if p.X.Cmp(minX) < 0 {
			minX = p.X
		}
		if p.X.Cmp(maxX) > 0 {
			maxX = p.X
		}
		if p.Y.Cmp(minY) < 0 {
			minY = p.Y
		}
		if p.Y.Cmp(maxY) > 0 {
			maxY = p.Y
		}
	}
	return PtRat(minX, minY), PtRat(maxX, maxY)
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
