package geometry

import (
	"fmt"
	"math"
	"math/big"
)

func Pt(x, y int64) Point {
	return Point{big.NewRat(x, 1), big.NewRat(y, 1)}
}

// Build a point from rationals. The rationals are copied, so the caller may
// keep mutating its own values.
func PtRat(x, y *big.Rat) Point {
	return Point{new(big.Rat).Set(x), new(big.Rat).Set(y)}
}

// Exact conversion of a float pair. Every finite float64 is a rational, so no
// precision is lost here.
func PtFloat(x, y float64) Point {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		fatalf(ErrInvalidInput, "non-finite coordinate (%v, %v)", x, y)
	}
	return Point{new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y)}
}

func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) Add(q Point) Point {
	return Point{new(big.Rat).Add(p.X, q.X), new(big.Rat).Add(p.Y, q.Y)}
}

func (p Point) Sub(q Point) Point {
	return Point{new(big.Rat).Sub(p.X, q.X), new(big.Rat).Sub(p.Y, q.Y)}
}

func (p Point) Scale(s *big.Rat) Point {
	return Point{new(big.Rat).Mul(p.X, s), new(big.Rat).Mul(p.Y, s)}
}

func (p Point) Neg() Point {
	return Point{new(big.Rat).Neg(p.X), new(big.Rat).Neg(p.Y)}
}

// Counterclockwise perpendicular.
func (p Point) Perp() Point {
	return Point{new(big.Rat).Neg(p.Y), new(big.Rat).Set(p.X)}
}

func (p Point) Dot(q Point) *big.Rat {
	a := new(big.Rat).Mul(p.X, q.X)
	return a.Add(a, new(big.Rat).Mul(p.Y, q.Y))
}

// 2D cross product of p and q treated as vectors.
func (p Point) Cross(q Point) *big.Rat {
	a := new(big.Rat).Mul(p.X, q.Y)
	return a.Sub(a, new(big.Rat).Mul(p.Y, q.X))
}

func (p Point) IsZero() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Squared Euclidean distance. Squared so that it stays rational.
func (p Point) Dist2(q Point) *big.Rat {
	d := p.Sub(q)
	return d.Dot(d)
}

func (p Point) Float64() (float64, float64) {
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	return x, y
}

// Canonical string usable as a map key.
func (p Point) Key() string {
	return p.X.RatString() + "," + p.Y.RatString()
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.RatString(), p.Y.RatString())
}

func (s PointSet) Add(p Point) {
	s[p.Key()] = p
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p.Key()]
	return ok
}
