package strategy

import (
	"github.com/osuushi/voronoigame/geometry"
)

// A user's distance to both facilities, and who won them.
type Claim struct {
	User   geometry.Point
	First  geometry.Distance
	Second geometry.Distance
	// +1 when the first facility is strictly closer, -1 when the second is, 0
	// for a tie.
	Winner int
}

// The player who won the user: 1 or 2, or 0 for a tie.
func (c Claim) Owner() int {
	switch c.Winner {
	case 1:
		return 1
	case -1:
		return 2
	}
	return 0
}

// Geodesic distances from both facilities to every user. Users must be
// strictly inside the polygon.
func Claims(p1, p2 geometry.Point, poly geometry.Polygon, users []geometry.Point) []Claim {
	claims := make([]Claim, len(users))
	for i, user := range users {
		first := geometry.DistanceInPolygon(p1, user, poly)
		second := geometry.DistanceInPolygon(p2, user, poly)
		claims[i] = Claim{User: user, First: first, Second: second, Winner: -first.Cmp(second)}
	}
	return claims
}

// Count the users each facility won. Ties go to nobody.
func Tally(claims []Claim) (score1, score2 int) {
	for _, claim := range claims {
		switch claim.Owner() {
		case 1:
			score1++
		case 2:
			score2++
		}
	}
	return score1, score2
}

func Scores(p1, p2 geometry.Point, poly geometry.Polygon, users []geometry.Point) (score1, score2 int) {
	return Tally(Claims(p1, p2, poly, users))
}
