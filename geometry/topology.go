package geometry

// Upper bound on the number of reorders RemoveSelfIntersections performs for a
// polygon with n vertices before it gives up.
func MaxUnknotIterations(n int) int {
	return n*n*n + 16
}

// Return a simple polygon with the same vertices, removing crossings between
// non-adjacent edges. Each crossing pair (v_i, v_i+1), (v_j, v_j+1) is resolved
// by reversing the run v_i+1 .. v_j, which replaces the crossing pair with
// (v_i, v_j), (v_i+1, v_j+1). By the triangle inequality that strictly shortens
// the perimeter, so the loop terminates; MaxUnknotIterations guards it anyway.
//
// Only proper crossings are found (see SegmentsIntersect). An already simple
// polygon comes back unchanged.
func RemoveSelfIntersections(poly Polygon) Polygon {
	poly.Validate()
	points := append([]Point(nil), poly.Points...)
	n := len(points)
	limit := MaxUnknotIterations(n)

	for iteration := 0; ; iteration++ {
		i, j, found := findCrossing(points)
		if !found {
			return Polygon{Points: points}
		}
		if iteration >= limit {
			fatalf(ErrDecompositionDivergence, "polygon still knotted after %d reorders", iteration)
		}
		reverseRun(points, i+1, j)
	}
}

// First pair of crossing non-adjacent edges, scanning in vertex order.
func findCrossing(points []Point) (i, j int, found bool) {
	n := len(points)
	for i = 0; i < n; i++ {
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 { // adjacent through the wraparound
				continue
			}
			if _, ok := SegmentsIntersect(points[i], points[i+1], points[j], points[CircularIndex(j+1, n)]); ok {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func reverseRun(points []Point, from, to int) {
	var stack PointStack
	for k := from; k <= to; k++ {
		stack.Push(points[k])
	}
	for k := from; k <= to; k++ {
		points[k], _ = stack.Pop()
	}
}

// Split a polygon in two along the chord pq, where p and q lie on the boundary.
// The first polygon walks the boundary from p to q, the second from q back to
// p; both contain the chord as an edge. A point coinciding with a vertex is not
// duplicated. The walk is a single O(n) pass.
//
// Panics with ErrPointsNotOnBoundary if either point is off the boundary, and
// with ErrInvalidInput if p == q or the chord runs along the boundary (one
// side would be degenerate).
func SplitPolygon(poly Polygon, p, q Point) (Polygon, Polygon) {
	if p.Equal(q) {
		fatalf(ErrInvalidInput, "cannot split on a zero length chord at %v", p)
	}

	var boundary []Point
	pok := poly.VertexIndex(p) >= 0
	qok := poly.VertexIndex(q) >= 0
	for i := range poly.Points {
		a, b := poly.Edge(i)
		boundary = append(boundary, a)

		var inserts []Point
		if !pok && PointStrictlyOnSegment(p, a, b) {
			inserts = append(inserts, p)
			pok = true
		}
		if !qok && PointStrictlyOnSegment(q, a, b) {
			inserts = append(inserts, q)
			qok = true
		}
		// Both on the same edge: keep the walk order
		if len(inserts) == 2 && a.Dist2(inserts[0]).Cmp(a.Dist2(inserts[1])) > 0 {
			inserts[0], inserts[1] = inserts[1], inserts[0]
		}
		boundary = append(boundary, inserts...)
	}
	if !pok || !qok {
		fatalf(ErrPointsNotOnBoundary, "chord %v-%v does not end on the boundary of %v", p, q, poly)
	}

	augmented := Polygon{Points: boundary}
	ip := augmented.VertexIndex(p)
	iq := augmented.VertexIndex(q)
	first := walk(augmented, ip, iq)
	second := walk(augmented, iq, ip)
	if first.Len() < 3 || second.Len() < 3 {
		fatalf(ErrInvalidInput, "chord %v-%v runs along the boundary", p, q)
	}
	return first, second
}

// Vertices from index `from` to index `to`, inclusive, going forward.
func walk(poly Polygon, from, to int) Polygon {
	n := poly.Len()
	var points []Point
	for k := from; ; k = CircularIndex(k+1, n) {
		points = append(points, poly.Points[k])
		if k == to {
			break
		}
	}
	return Polygon{Points: points}
}
