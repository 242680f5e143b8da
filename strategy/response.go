package strategy

import (
	"math/big"

	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
)

// How many times the step away from the first facility is halved before the
// placement gives up.
const MaxPlacementHalvings = 64

// The second player's answer to a first facility.
type Response struct {
	Facility  geometry.Point
	HalfPlane HalfPlaneResult
	// Per user, the first point the first facility's shortest path to it
	// passes: the user itself, the anchor of the region hiding it, or a reflex
	// vertex the straight path runs through.
	Anchors []geometry.Point
}

// Replace every user with the point where the shortest path from the
// decomposition's facility first touches the boundary. A hidden user is
// reached through the anchor of its region. A visible user whose straight path
// passes exactly through a reflex vertex is reached through that vertex, since
// a facility nudged to the blocked side has to bend there. Any other user
// stands for itself.
func Anchors(poly geometry.Polygon, decomposition geometry.Decomposition, users []geometry.Point) []geometry.Point {
	anchors := make([]geometry.Point, len(users))
	for i, user := range users {
		if region, ok := decomposition.RegionContaining(user); ok {
			anchors[i] = region.Anchor
		} else if w, ok := geometry.FirstReflexOnSegment(poly, decomposition.Facility, user); ok {
			anchors[i] = w
		} else {
			anchors[i] = user
		}
	}
	return anchors
}

// Place the second facility just across the best half plane line through p1.
//
// Every winning anchor a satisfies dot(a-p1, n) > 0 for the half plane's inward
// normal n, and p1 + ε·n is strictly closer to a whenever ε·|n|² < 2·dot(a-p1,
// n). The first ε tried is a quarter of the smallest such bound (capped by the
// polygon's extent). It is halved until the placement is strictly inside the
// polygon and strictly closer than p1, by geodesic distance, to every user the
// half plane wins.
func Respond(p1 geometry.Point, poly geometry.Polygon, users []geometry.Point) (Response, error) {
	decomposition := geometry.NonVisibilityRegions(poly, p1)
	anchors := Anchors(poly, decomposition, users)
	halfPlane := MaximizingHalfPlane(p1, anchors)
	normal := halfPlane.Normal()
	norm2 := normal.Dot(normal)

	var epsilon *big.Rat
	for _, i := range halfPlane.Members {
		bound := anchors[i].Sub(p1).Dot(normal)
		bound.Quo(bound, norm2)
		bound.Quo(bound, big.NewRat(2, 1))
		epsilon = ratMin(epsilon, bound)
	}
	epsilon = ratMin(epsilon, extentStep(poly, normal))

	incumbent := make(map[int]geometry.Distance, len(halfPlane.Members))
	for _, i := range halfPlane.Members {
		incumbent[i] = geometry.DistanceInPolygon(p1, users[i], poly)
	}

	for attempt := 0; attempt < MaxPlacementHalvings; attempt++ {
		candidate := p1.Add(normal.Scale(epsilon))
		if poly.Contains(candidate) && winsAll(poly, candidate, users, incumbent) {
			return Response{Facility: candidate, HalfPlane: halfPlane, Anchors: anchors}, nil
		}
		epsilon = new(big.Rat).Quo(epsilon, big.NewRat(2, 1))
	}
	return Response{}, errors.Wrapf(geometry.ErrDecompositionDivergence,
		"no placement near %v after %d halvings", p1, MaxPlacementHalvings)
}

// A step along normal no longer than a quarter of the polygon's extent.
func extentStep(poly geometry.Polygon, normal geometry.Point) *big.Rat {
	min, max := poly.Bounds()
	extent := new(big.Rat).Sub(max.X, min.X)
	extent.Add(extent, new(big.Rat).Sub(max.Y, min.Y))
	manhattan := new(big.Rat).Abs(normal.X)
	manhattan.Add(manhattan, new(big.Rat).Abs(normal.Y))
	manhattan.Mul(manhattan, big.NewRat(4, 1))
	return extent.Quo(extent, manhattan)
}

func winsAll(poly geometry.Polygon, from geometry.Point, users []geometry.Point, incumbent map[int]geometry.Distance) bool {
	for i, d := range incumbent {
		if geometry.DistanceInPolygon(from, users[i], poly).Cmp(d) >= 0 {
			return false
		}
	}
	return true
}
