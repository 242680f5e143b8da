package game

import (
	"context"

	"github.com/osuushi/voronoigame/geometry"
	"github.com/osuushi/voronoigame/strategy"
)

// Plays optimally in either seat: the best facility when it goes first, the
// best response when it goes second.
type StrategyPlayer struct {
	Solver *strategy.Solver
}

func (p StrategyPlayer) Play(ctx context.Context, state State) (geometry.Point, error) {
	if err := ctx.Err(); err != nil {
		return geometry.Point{}, err
	}
	s := state.Scenario
	if state.P1 == nil {
		return p.Solver.BestFacility(s.Polygon, s.Users)
	}
	return p.Solver.BestResponse(*state.P1, s.Polygon, s.Users)
}

// Always plays the same point.
type FixedPlayer struct {
	Facility geometry.Point
}

func (p FixedPlayer) Play(context.Context, State) (geometry.Point, error) {
	return p.Facility, nil
}
