package geometry

import "math/big"

// All coordinates are exact rationals. Points share their *big.Rat values
// freely, so nothing in this package ever mutates a coordinate in place; every
// arithmetic helper allocates its result. Equality is exact, with no epsilon
// anywhere in the predicates.
type Point struct {
	X, Y *big.Rat
}

type Segment struct {
	Start, End Point
}

// Oriented line in general form A*x + B*y = C. The direction of the line is
// (B, -A), and the left side is where A*x + B*y > C. Vertical lines simply have
// B == 0.
type Line struct {
	A, B, C *big.Rat
}

// Simple polygon, implicitly closed. Winding is not fixed; algorithms that care
// normalize with CCW().
type Polygon struct {
	Points []Point
}

// A part of a polygon hidden from some facility, together with the polygon
// vertex that occludes it.
type VisibilityRegion struct {
	Anchor Point
	Hidden Polygon
}

// Result of a visibility decomposition rooted at Facility. Visible is the
// remainder of the polygon that the facility sees directly.
type Decomposition struct {
	Facility Point
	Visible  Polygon
	Regions  []VisibilityRegion
}

type PointSet map[string]Point
