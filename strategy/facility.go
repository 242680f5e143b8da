package strategy

import (
	"github.com/osuushi/voronoigame/geometry"
)

// Chords between every pair of users and polygon vertices that stay inside the
// polygon. Vertices come before users, in order, and a user sitting on a
// vertex is only counted once.
func Chords(poly geometry.Polygon, users []geometry.Point) []geometry.Segment {
	poly.Validate()
	var points []geometry.Point
	seen := make(geometry.PointSet)
	for _, p := range append(append([]geometry.Point(nil), poly.Points...), users...) {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		points = append(points, p)
	}

	var chords []geometry.Segment
	for i, p := range points {
		for _, q := range points[i+1:] {
			if poly.SegmentInside(p, q) {
				chords = append(chords, geometry.NewSegment(p, q))
			}
		}
	}
	return chords
}

// Candidate first facilities: the points where two chords properly cross,
// strictly inside the polygon, without duplicates, in the order they are
// found. The optimum can always be moved to one of these points without
// changing any user's winner. When no two chords cross, the users themselves
// are the candidates.
func CandidateFacilities(poly geometry.Polygon, users []geometry.Point) []geometry.Point {
	chords := Chords(poly, users)
	seen := make(geometry.PointSet)
	var candidates []geometry.Point
	add := func(p geometry.Point) {
		if !seen.Contains(p) && poly.Contains(p) {
			seen.Add(p)
			candidates = append(candidates, p)
		}
	}
	for i, a := range chords {
		for _, b := range chords[i+1:] {
			if crossing, ok := geometry.SegmentsIntersect(a.Start, a.End, b.Start, b.End); ok {
				add(crossing)
			}
		}
	}
	if len(candidates) == 0 {
		for _, user := range users {
			add(user)
		}
	}
	return candidates
}
