package geometry

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoigame/dbg"
)

// Visibility decomposition. Given a facility F, the polygon is cut into the
// part F sees directly and a set of hidden regions, each tagged with the
// polygon vertex that occludes it.
//
// A vertex V occludes when F sees V and the ray from F through V, continued
// past V, enters the interior of the polygon. That can only happen at a reflex
// vertex. The ray is followed to the first boundary point X beyond V, and the
// chord V-X splits the polygon. The chord lies on a line through F, so no
// straight segment from F can reach the far side: that half is hidden, and the
// half holding F is decomposed again. When no vertex occludes any more, what
// is left is exactly the visibility polygon of F.
//
// Every cut consumes one reflex vertex of the original polygon (V gains a
// neighbour collinear with F and never occludes again), so the recursion depth
// is bounded by the vertex count.

// Decompose poly as seen from facility. The facility must be strictly inside
// the polygon or be one of its vertices. Regions are reported in the order
// they were cut, scanning vertices in polygon order after normalizing to
// counterclockwise winding.
func NonVisibilityRegions(poly Polygon, facility Point) Decomposition {
	poly.Validate()
	work := poly.CCW()
	if !hasFacility(work, facility) {
		fatalf(ErrInvalidInput, "facility %v is not inside %v", facility, poly)
	}
	visible, regions := decompose(work, facility, 0, work.Len())
	return Decomposition{Facility: facility, Visible: visible, Regions: regions}
}

func decompose(work Polygon, facility Point, depth, limit int) (Polygon, []VisibilityRegion) {
	if depth > limit {
		fatalf(ErrDecompositionDivergence, "more than %d cuts while decomposing around %v", limit, facility)
	}
	for i, vertex := range work.Points {
		if !occludes(work, facility, i) {
			continue
		}
		exit := firstExit(work, facility, vertex)
		visibleHalf, hidden := SplitPolygon(work, vertex, exit)
		if !hasFacility(visibleHalf, facility) {
			visibleHalf, hidden = hidden, visibleHalf
		}
		if !hasFacility(visibleHalf, facility) {
			fatalf(ErrDecompositionDivergence, "neither half of the cut at %v holds %v", vertex, facility)
		}
		visible, regions := decompose(visibleHalf, facility, depth+1, limit)
		return visible, append([]VisibilityRegion{{Anchor: vertex, Hidden: hidden}}, regions...)
	}
	return work, nil
}

func hasFacility(poly Polygon, facility Point) bool {
	return poly.VertexIndex(facility) >= 0 || poly.Contains(facility)
}

// Occlusion check for vertex i of a counterclockwise polygon.
func occludes(work Polygon, facility Point, i int) bool {
	vertex := work.Points[i]
	if vertex.Equal(facility) {
		return false
	}
	u := work.Vertex(i + 1).Sub(vertex)
	v := work.Vertex(i - 1).Sub(vertex)
	if !inOpenWedge(u, v, vertex.Sub(facility)) {
		return false
	}
	return work.SegmentInside(facility, vertex)
}

// Nearest boundary point on the ray from facility through vertex, strictly
// beyond vertex.
func firstExit(work Polygon, facility, vertex Point) Point {
	var best Point
	found := false
	for i := range work.Points {
		a, b := work.Edge(i)
		if a.Equal(vertex) || b.Equal(vertex) {
			continue
		}
		hit, ok := RaySegmentIntersection(facility, vertex, a, b)
		if !ok {
			continue
		}
		if !found || vertex.Dist2(hit).Cmp(vertex.Dist2(best)) < 0 {
			best, found = hit, true
		}
	}
	if !found {
		fatalf(ErrDecompositionDivergence, "ray from %v through %v never leaves the polygon", facility, vertex)
	}
	return best
}

// The hidden region strictly containing p, if any. A point that is not in any
// region (including one on a cut chord) is visible from the facility.
func (d Decomposition) RegionContaining(p Point) (VisibilityRegion, bool) {
	for _, region := range d.Regions {
		if region.Hidden.Contains(p) {
			return region, true
		}
	}
	return VisibilityRegion{}, false
}

func (r VisibilityRegion) DbgName() string {
	return aurora.Yellow(dbg.Name(r.Anchor.Key() + r.Hidden.String())).String()
}

func (r VisibilityRegion) String() string {
	return fmt.Sprintf("Region %s <anchor: %v, vertices: %d>", r.DbgName(), r.Anchor, r.Hidden.Len())
}
