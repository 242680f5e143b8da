// The Voronoi game on a simple polygon.
//
// Two players each build one facility inside a polygon full of users. Every
// user goes to whichever facility is closer, measured by the shortest path
// that stays inside the polygon. The first player builds first, and the
// second player builds knowing where the first facility is.
//
// This package answers the questions both players ask: who wins with a given
// pair of facilities, where the second player should build, and where the
// first player should build to lose as few users as possible. All coordinates
// are exact rationals.
package voronoigame

import (
	"github.com/osuushi/voronoigame/geometry"
	"github.com/osuushi/voronoigame/strategy"
)

type Point = geometry.Point
type Polygon = geometry.Polygon
type Decomposition = geometry.Decomposition
type VisibilityRegion = geometry.VisibilityRegion
type Distance = geometry.Distance

var (
	ErrInvalidInput            = geometry.ErrInvalidInput
	ErrPointsNotOnBoundary     = geometry.ErrPointsNotOnBoundary
	ErrDecompositionDivergence = geometry.ErrDecompositionDivergence
)

// Solver used by the package level functions. It logs nowhere.
var DefaultSolver = &strategy.Solver{}

// Whether point is strictly inside polygon. Points on the boundary, and any
// point of an invalid polygon, are outside.
func IsInsidePolygon(polygon Polygon, point Point) (inside bool) {
	geometry.Try(func() {
		polygon.Validate()
		inside = polygon.Contains(point)
	})
	return inside
}

// How many users each facility wins. Users at the same distance from both
// count for neither.
func ComputeScores(p1, p2 Point, polygon Polygon, users []Point) (int, int, error) {
	return DefaultSolver.ComputeScores(p1, p2, polygon, users)
}

// The second player's best facility against a first facility at p1.
func BestResponse(p1 Point, polygon Polygon, users []Point) (Point, error) {
	return DefaultSolver.BestResponse(p1, polygon, users)
}

// The first player's best facility, assuming the second player responds with
// BestResponse.
func BestFacility(polygon Polygon, users []Point) (Point, error) {
	return DefaultSolver.BestFacility(polygon, users)
}

// Split polygon into the part visible from facility and the regions hidden
// from it.
func Decompose(polygon Polygon, facility Point) (result Decomposition, err error) {
	err = geometry.Try(func() {
		result = geometry.NonVisibilityRegions(polygon, facility)
	})
	return result, err
}

// Length of the shortest path from a to b inside polygon.
func GeodesicDistance(a, b Point, polygon Polygon) (result Distance, err error) {
	err = geometry.Try(func() {
		result = geometry.DistanceInPolygon(a, b, polygon)
	})
	return result, err
}
