package geometry

import "math/big"

func NewSegment(start, end Point) Segment {
	if start.Equal(end) {
		fatalf(ErrInvalidInput, "zero length segment at %v", start)
	}
	return Segment{start, end}
}

// The oriented line from p through q. The left normal (A, B) is the direction
// rotated counterclockwise, so a vertical line has B == 0 with no special case.
func LineThrough(p, q Point) Line {
	if p.Equal(q) {
		fatalf(ErrInvalidInput, "line through coincident points %v", p)
	}
	a := new(big.Rat).Sub(p.Y, q.Y)
	b := new(big.Rat).Sub(q.X, p.X)
	c := new(big.Rat).Mul(a, p.X)
	c.Add(c, new(big.Rat).Mul(b, p.Y))
	return Line{A: a, B: b, C: c}
}

func (l Line) Direction() Point {
	return Point{new(big.Rat).Set(l.B), new(big.Rat).Neg(l.A)}
}

// Which side of the line the point is on: CounterClockwise for left, Clockwise
// for right, Collinear for on the line.
func (l Line) Side(p Point) Turn {
	v := new(big.Rat).Mul(l.A, p.X)
	v.Add(v, new(big.Rat).Mul(l.B, p.Y))
	return Turn(v.Cmp(l.C))
}

// Lines are equal when they describe the same point set, regardless of
// scaling or orientation.
func (l Line) Equal(other Line) bool {
	cross := func(a, b, c, d *big.Rat) int {
		return new(big.Rat).Mul(a, d).Cmp(new(big.Rat).Mul(b, c))
	}
	return cross(l.A, l.B, other.A, other.B) == 0 &&
		cross(l.A, l.C, other.A, other.C) == 0 &&
		cross(l.B, l.C, other.B, other.C) == 0
}

// Intersection of two lines. Returns false only when the determinant is
// exactly zero, that is for parallel or identical lines.
func LinesIntersect(l1, l2 Line) (Point, bool) {
	det := new(big.Rat).Mul(l1.A, l2.B)
	det.Sub(det, new(big.Rat).Mul(l2.A, l1.B))
	if det.Sign() == 0 {
		return Point{}, false
	}
	x := new(big.Rat).Mul(l1.C, l2.B)
	x.Sub(x, new(big.Rat).Mul(l2.C, l1.B))
	x.Quo(x, det)
	y := new(big.Rat).Mul(l1.A, l2.C)
	y.Sub(y, new(big.Rat).Mul(l2.A, l1.C))
	y.Quo(y, det)
	return Point{x, y}, true
}
