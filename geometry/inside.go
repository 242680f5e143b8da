package geometry

// Boundary-respecting segment containment. A segment is "inside" a polygon
// when every point of it lies in the closed polygon, so a segment may run along
// an edge or graze a reflex vertex. This is the one visibility test shared by
// the decomposition, the geodesic distance and the chord enumeration of the
// solver.

// The interior wedge at a boundary point w of a counterclockwise polygon, as
// the pair of directions (u, v): the interior is swept counterclockwise from u
// to v. For a vertex, u points at the next vertex and v at the previous one.
// For a point in the middle of an edge the wedge is a half plane. ok is false
// when w is not on the boundary at all.
func (poly Polygon) wedgeAt(w Point) (u, v Point, ok bool) {
	if i := poly.VertexIndex(w); i >= 0 {
		return poly.Vertex(i + 1).Sub(w), poly.Vertex(i - 1).Sub(w), true
	}
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if PointOnSegment(w, a, b) {
			return b.Sub(w), a.Sub(w), true
		}
	}
	return Point{}, Point{}, false
}

// Is direction d in the closed wedge swept counterclockwise from u to v?
func inClosedWedge(u, v, d Point) bool {
	switch u.Cross(v).Sign() {
	case 1: // convex
		return u.Cross(d).Sign() >= 0 && d.Cross(v).Sign() >= 0
	case -1: // reflex: anything not strictly in the convex exterior wedge
		return !(v.Cross(d).Sign() > 0 && d.Cross(u).Sign() > 0)
	}
	if u.Dot(v).Sign() < 0 { // straight angle
		return u.Cross(d).Sign() >= 0
	}
	// Zero angle spike; only the spike direction itself.
	return u.Cross(d).Sign() == 0 && u.Dot(d).Sign() > 0
}

// Is direction d strictly inside the wedge swept counterclockwise from u to v?
func inOpenWedge(u, v, d Point) bool {
	switch u.Cross(v).Sign() {
	case 1:
		return u.Cross(d).Sign() > 0 && d.Cross(v).Sign() > 0
	case -1:
		return !(v.Cross(d).Sign() >= 0 && d.Cross(u).Sign() >= 0)
	}
	if u.Dot(v).Sign() < 0 {
		return u.Cross(d).Sign() > 0
	}
	return false
}

// Does the closed segment ab lie in the closed polygon? Both endpoints are
// expected to be in the closed polygon already when they lie on the boundary;
// an endpoint off the boundary is checked with Contains.
func (poly Polygon) SegmentInside(a, b Point) bool {
	poly = poly.CCW()
	if a.Equal(b) {
		return poly.OnBoundary(a) || poly.Contains(a)
	}
	for i := range poly.Points {
		p, q := poly.Edge(i)
		if _, ok := SegmentsIntersect(a, b, p, q); ok {
			return false
		}
	}

	d := b.Sub(a)
	back := d.Neg()
	for _, w := range poly.Points {
		if !PointStrictlyOnSegment(w, a, b) {
			continue
		}
		u, v, _ := poly.wedgeAt(w)
		if !inClosedWedge(u, v, d) || !inClosedWedge(u, v, back) {
			return false
		}
	}

	if u, v, ok := poly.wedgeAt(a); ok {
		if !inClosedWedge(u, v, d) {
			return false
		}
	} else if !poly.Contains(a) {
		return false
	}
	if u, v, ok := poly.wedgeAt(b); ok {
		if !inClosedWedge(u, v, back) {
			return false
		}
	} else if !poly.Contains(b) {
		return false
	}
	return true
}

// The reflex vertex of poly closest to a lying strictly inside segment ab. A
// segment that passes exactly through a reflex vertex is still inside the
// polygon, but any segment from a point just beside a, on the blocked side,
// has to bend there.
func FirstReflexOnSegment(poly Polygon, a, b Point) (Point, bool) {
	poly = poly.CCW()
	var best Point
	found := false
	for i, w := range poly.Points {
		if !PointStrictlyOnSegment(w, a, b) {
			continue
		}
		u := poly.Vertex(i + 1).Sub(w)
		v := poly.Vertex(i - 1).Sub(w)
		if u.Cross(v).Sign() >= 0 {
			continue
		}
		if !found || a.Dist2(w).Cmp(a.Dist2(best)) < 0 {
			best, found = w, true
		}
	}
	return best, found
}
