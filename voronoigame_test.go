package voronoigame

import (
	"testing"

	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestVoronoiGame(t *testing.T) {
	square := geometry.NewPolygon(geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10), geometry.Pt(0, 10))
	users := []Point{geometry.Pt(2, 5), geometry.Pt(8, 5)}

	assert.True(t, IsInsidePolygon(square, geometry.Pt(5, 5)))
	assert.False(t, IsInsidePolygon(square, geometry.Pt(10, 5)), "boundary is outside")
	assert.False(t, IsInsidePolygon(Polygon{}, geometry.Pt(0, 0)))

	p1, err := BestFacility(square, users)
	require.NoError(t, err)
	p2, err := BestResponse(p1, square, users)
	require.NoError(t, err)
	score1, score2, err := ComputeScores(p1, p2, square, users)
	require.NoError(t, err)
	assert.Equal(t, 2, score1+score2, "nobody ties against a best response here")
	assert.Equal(t, score1, score2)

	decomposition, err := Decompose(square, geometry.Pt(5, 5))
	require.NoError(t, err)
	assert.Empty(t, decomposition.Regions)

	d, err := GeodesicDistance(users[0], users[1], square)
	require.NoError(t, err)
	assert.InDelta(t, 6, d.Float64(), 1e-12)

	_, err = GeodesicDistance(users[0], geometry.Pt(20, 5), square)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = Decompose(square, geometry.Pt(20, 5))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
