package geometry

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a visibility decomposition is valid. The rules are:
// 1. The visible polygon and the hidden regions are counterclockwise.
// 2. Their areas sum exactly to the area of the polygon.
// 3. Every anchor is a vertex of the polygon and of its region, and the
//    facility sees it.
// 4. No sample point is strictly inside two pieces.
// 5. Sample points strictly inside the visible polygon are seen from the
//    facility, and sample points strictly inside a hidden region are not.
func AssertValidDecomposition(t *testing.T, poly Polygon, decomposition Decomposition) {
	t.Helper()
	facility := decomposition.Facility

	require.True(t, decomposition.Visible.IsCCW(), "visible polygon is not counterclockwise")
	area := new(big.Rat).Set(decomposition.Visible.Area())
	for _, region := range decomposition.Regions {
		require.True(t, region.Hidden.IsCCW(), "clockwise region: %s", region)
		area.Add(area, region.Hidden.Area())

		assert.GreaterOrEqual(t, poly.VertexIndex(region.Anchor), 0, "anchor %v is not a polygon vertex", region.Anchor)
		assert.GreaterOrEqual(t, region.Hidden.VertexIndex(region.Anchor), 0, "anchor %v is not on its region", region.Anchor)
		assert.True(t, poly.SegmentInside(facility, region.Anchor), "facility %v does not see anchor %v", facility, region.Anchor)
	}
	require.Equal(t, 0, area.Cmp(poly.Area()), "pieces cover %s of %s", area.RatString(), poly.Area().RatString())

	for _, p := range samplePoints(poly) {
		pieces := 0
		if decomposition.Visible.Contains(p) {
			pieces++
			assert.True(t, poly.SegmentInside(facility, p), "%v is in the visible polygon but not seen from %v", p, facility)
		}
		for _, region := range decomposition.Regions {
			if region.Hidden.Contains(p) {
				pieces++
				assert.False(t, poly.SegmentInside(facility, p), "%v is hidden behind %v but seen from %v", p, region.Anchor, facility)
			}
		}
		assert.LessOrEqual(t, pieces, 1, "%v is inside %d pieces", p, pieces)
	}
}

// Points of an offset unit grid over the polygon's bounding box that are
// strictly inside it. The offsets keep the grid off integer coordinates.
func samplePoints(poly Polygon) []Point {
	min, max := poly.Bounds()
	xOffset, yOffset := big.NewRat(1, 3), big.NewRat(2, 7)
	var points []Point
	for x := new(big.Rat).Add(min.X, xOffset); x.Cmp(max.X) < 0; x = new(big.Rat).Add(x, big.NewRat(1, 1)) {
		for y := new(big.Rat).Add(min.Y, yOffset); y.Cmp(max.Y) < 0; y = new(big.Rat).Add(y, big.NewRat(1, 1)) {
			p := PtRat(x, y)
			if poly.Contains(p) {
				points = append(points, p)
			}
		}
	}
	return points
}
