package strategy

import (
	"runtime"

	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Solver runs the two level optimal strategy search. The zero value is ready
// to use: it logs nowhere and uses one worker per CPU.
type Solver struct {
	Logger *zap.Logger
	// Upper bound on candidates evaluated at once. Zero or less means
	// GOMAXPROCS.
	Workers int
}

func (s *Solver) logger() *zap.Logger {
	if s == nil || s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Solver) workers() int {
	if s == nil || s.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return s.Workers
}

// Number of users each facility wins by geodesic distance.
func (s *Solver) ComputeScores(p1, p2 geometry.Point, poly geometry.Polygon, users []geometry.Point) (score1, score2 int, err error) {
	err = geometry.Try(func() {
		score1, score2 = Scores(p1, p2, poly, users)
	})
	return score1, score2, err
}

// Where the second player should build against a first facility at p1.
func (s *Solver) BestResponse(p1 geometry.Point, poly geometry.Polygon, users []geometry.Point) (geometry.Point, error) {
	var response Response
	var respondErr error
	if err := geometry.Try(func() {
		response, respondErr = Respond(p1, poly, users)
	}); err != nil {
		return geometry.Point{}, err
	}
	if respondErr != nil {
		return geometry.Point{}, respondErr
	}
	s.logger().Debug("best response",
		zap.Stringer("p1", p1),
		zap.Stringer("p2", response.Facility),
		zap.Int("halfPlaneCount", response.HalfPlane.Count),
	)
	return response.Facility, nil
}

// The first facility that leaves the second player's best response with the
// fewest users. Candidates are evaluated in parallel; the first candidate in
// enumeration order wins ties. Any candidate that cannot be evaluated fails
// the whole search.
func (s *Solver) BestFacility(poly geometry.Polygon, users []geometry.Point) (geometry.Point, error) {
	log := s.logger()

	var candidates []geometry.Point
	if err := geometry.Try(func() {
		candidates = CandidateFacilities(poly, users)
	}); err != nil {
		return geometry.Point{}, err
	}
	if len(candidates) == 0 {
		return geometry.Point{}, errors.Wrap(geometry.ErrInvalidInput, "no candidate facilities; are there any users?")
	}
	log.Debug("candidate facilities", zap.Int("count", len(candidates)))

	opponentScores := make([]int, len(candidates))
	var group errgroup.Group
	group.SetLimit(s.workers())
	for i, candidate := range candidates {
		i, candidate := i, candidate
		group.Go(func() error {
			score, err := s.evaluate(candidate, poly, users)
			if err != nil {
				return errors.Wrapf(err, "candidate %d at %v", i, candidate)
			}
			log.Debug("evaluated candidate",
				zap.Int("candidate", i),
				zap.Stringer("facility", candidate),
				zap.Int("opponentScore", score),
			)
			opponentScores[i] = score
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return geometry.Point{}, err
	}

	best := 0
	for i, score := range opponentScores {
		if score < opponentScores[best] {
			best = i
		}
	}
	log.Info("best facility",
		zap.Stringer("facility", candidates[best]),
		zap.Int("candidate", best),
		zap.Int("opponentScore", opponentScores[best]),
	)
	return candidates[best], nil
}

// Score the second player gets against a first facility at candidate.
func (s *Solver) evaluate(candidate geometry.Point, poly geometry.Polygon, users []geometry.Point) (score int, err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	response, err := Respond(candidate, poly, users)
	if err != nil {
		return 0, err
	}
	_, score = Scores(candidate, response.Facility, poly, users)
	return score, nil
}
