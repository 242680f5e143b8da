package geometry

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Precision used when sums of square roots have to be compared.
const (
	distancePrecision = 512
	distanceTolerance = -400 // binary exponent, relative to the larger sum
)

// A geodesic length, kept as the list of straight legs of the shortest path.
// Each leg is an exact squared Euclidean length, so single leg distances
// compare exactly and nothing ever mixes squared and linear units.
type Distance struct {
	legs []*big.Rat
}

func StraightDistance(a, b Point) Distance {
	return Distance{legs: []*big.Rat{a.Dist2(b)}}
}

func (d Distance) Legs() []*big.Rat {
	return append([]*big.Rat(nil), d.legs...)
}

func (d Distance) Add(other Distance) Distance {
	legs := make([]*big.Rat, 0, len(d.legs)+len(other.legs))
	legs = append(legs, d.legs...)
	return Distance{legs: append(legs, other.legs...)}
}

func (d Distance) IsZero() bool {
	for _, leg := range d.legs {
		if leg.Sign() != 0 {
			return false
		}
	}
	return true
}

// The exact squared length, available only for straight (at most one leg)
// distances.
func (d Distance) Squared() (*big.Rat, bool) {
	switch len(d.legs) {
	case 0:
		return new(big.Rat), true
	case 1:
		return new(big.Rat).Set(d.legs[0]), true
	}
	return nil, false
}

// Approximate length.
func (d Distance) Float64() float64 {
	lengths := make([]float64, len(d.legs))
	for i, leg := range d.legs {
		f, _ := leg.Float64()
		lengths[i] = math.Sqrt(f)
	}
	return floats.Sum(lengths)
}

// Compare two lengths, returning -1, 0 or +1.
//
// The result is exact when both sides have at most two legs, which covers
// every path with at most one bend, and when both sides are made of the same
// legs. Otherwise it is approximate: the sums of square roots are compared at
// distancePrecision bits, and sums closer than 2^distanceTolerance times the
// larger sum (or absolutely, below 1) compare equal.
func (d Distance) Cmp(other Distance) int {
	if sameLegs(d.legs, other.legs) {
		return 0
	}
	a, aok := d.Squared()
	b, bok := other.Squared()
	if aok && bok {
		return a.Cmp(b)
	}
	if len(d.legs) <= 2 && len(other.legs) <= 2 {
		return cmpRootPairs(d.legs, other.legs)
	}

	x, y := d.bigLength(), other.bigLength()
	diff := new(big.Float).SetPrec(distancePrecision).Sub(x, y)
	scale := x
	if y.Cmp(x) > 0 {
		scale = y
	}
	tolerance := new(big.Float).SetPrec(distancePrecision).SetMantExp(big.NewFloat(1), distanceTolerance)
	if scale.Cmp(big.NewFloat(1)) > 0 {
		tolerance.Mul(tolerance, scale)
	}
	if new(big.Float).Abs(diff).Cmp(tolerance) <= 0 {
		return 0
	}
	return diff.Sign()
}

// Exact sign of (√a + √b) - (√c + √d), for legs x = [a, b] and y = [c, d]
// with missing legs read as zero. Both sums are non-negative, so their squares
// compare the same way: a + b + √(4ab) against c + d + √(4cd).
func cmpRootPairs(x, y []*big.Rat) int {
	a, b := legPair(x)
	c, d := legPair(y)
	k := new(big.Rat).Add(c, d)
	k.Sub(k, a)
	k.Sub(k, b)
	four := big.NewRat(4, 1)
	p := new(big.Rat).Mul(a, b)
	p.Mul(p, four)
	q := new(big.Rat).Mul(c, d)
	q.Mul(q, four)
	return cmpRootDifference(p, q, k)
}

func legPair(legs []*big.Rat) (*big.Rat, *big.Rat) {
	pair := [2]*big.Rat{new(big.Rat), new(big.Rat)}
	copy(pair[:], legs)
	return pair[0], pair[1]
}

// Exact sign of √p - √q - k for p, q >= 0, squaring once more to get rid of
// the remaining roots.
func cmpRootDifference(p, q, k *big.Rat) int {
	k2 := new(big.Rat).Mul(k, k)
	switch k.Sign() {
	case 0:
		return p.Cmp(q)
	case 1:
		// √p > √q + k  <=>  p - q - k² > 2k√q
		m := new(big.Rat).Sub(p, q)
		m.Sub(m, k2)
		if m.Sign() <= 0 {
			if m.Sign() == 0 && q.Sign() == 0 {
				return 0
			}
			return -1
		}
		rhs := new(big.Rat).Mul(k2, q)
		rhs.Mul(rhs, big.NewRat(4, 1))
		return new(big.Rat).Mul(m, m).Cmp(rhs)
	default:
		// √p + |k| > √q  <=>  2|k|√p > q - p - k²
		m := new(big.Rat).Sub(q, p)
		m.Sub(m, k2)
		if m.Sign() <= 0 {
			if m.Sign() == 0 && p.Sign() == 0 {
				return 0
			}
			return 1
		}
		lhs := new(big.Rat).Mul(k2, p)
		lhs.Mul(lhs, big.NewRat(4, 1))
		return lhs.Cmp(new(big.Rat).Mul(m, m))
	}
}

func (d Distance) bigLength() *big.Float {
	sum := new(big.Float).SetPrec(distancePrecision)
	for _, leg := range d.legs {
		root := new(big.Float).SetPrec(distancePrecision).SetRat(leg)
		sum.Add(sum, new(big.Float).SetPrec(distancePrecision).Sqrt(root))
	}
	return sum
}

func sameLegs(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	sorted := func(legs []*big.Rat) []*big.Rat {
		legs = append([]*big.Rat(nil), legs...)
		sort.Slice(legs, func(i, j int) bool { return legs[i].Cmp(legs[j]) < 0 })
		return legs
	}
	a, b = sorted(a), sorted(b)
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

func (d Distance) String() string {
	if d.IsZero() {
		return "0"
	}
	parts := make([]string, len(d.legs))
	for i, leg := range d.legs {
		parts[i] = "√" + leg.RatString()
	}
	return fmt.Sprintf("%s ≈ %.6g", strings.Join(parts, " + "), d.Float64())
}

// Shortest path length from a to b inside the polygon. If the segment ab stays
// inside, that is the answer. Otherwise b sits in one of the regions hidden
// from a, every shortest path into that region bends around its anchor, and
// the remainder is a shortest path from the anchor within the region.
//
// a must be strictly inside the polygon or one of its vertices; b must be
// strictly inside.
func DistanceInPolygon(a, b Point, poly Polygon) Distance {
	poly.Validate()
	if !hasFacility(poly, a) {
		fatalf(ErrInvalidInput, "distance from %v, which is not inside %v", a, poly)
	}
	if !poly.Contains(b) {
		fatalf(ErrInvalidInput, "distance to %v, which is not inside %v", b, poly)
	}
	return distanceIn(a, b, poly.CCW(), 0, poly.Len())
}

func distanceIn(a, b Point, poly Polygon, depth, limit int) Distance {
	if depth > limit {
		fatalf(ErrDecompositionDivergence, "geodesic from %v to %v bent more than %d times", a, b, limit)
	}
	if a.Equal(b) {
		return Distance{}
	}
	if poly.SegmentInside(a, b) {
		return StraightDistance(a, b)
	}
	decomposition := NonVisibilityRegions(poly, a)
	region, ok := decomposition.RegionContaining(b)
	if !ok {
		fatalf(ErrDecompositionDivergence, "%v is neither visible from %v nor hidden behind any anchor", b, a)
	}
	rest := distanceIn(region.Anchor, b, region.Hidden, depth+1, limit)
	return StraightDistance(a, region.Anchor).Add(rest)
}
