package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/osuushi/voronoigame/geometry"
	"github.com/osuushi/voronoigame/scenario"
	"github.com/osuushi/voronoigame/strategy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Number of plays a player gets per turn when MaxAttempts is not set.
const DefaultMaxAttempts = 3

var ErrTooManyAttempts = errors.New("too many invalid plays")

// What a player can see when it is asked to play. P1 is nil on the first
// player's turn.
type State struct {
	Scenario *scenario.Scenario
	P1       *geometry.Point
}

type Player interface {
	Play(ctx context.Context, state State) (geometry.Point, error)
}

type PlayerFunc func(ctx context.Context, state State) (geometry.Point, error)

func (f PlayerFunc) Play(ctx context.Context, state State) (geometry.Point, error) {
	return f(ctx, state)
}

// One round on a scenario: the first player builds, then the second, then the
// users are counted.
type Game struct {
	ID       uuid.UUID
	Scenario *scenario.Scenario
	// Plays each player gets before the game is abandoned. Zero or less means
	// DefaultMaxAttempts.
	MaxAttempts int
	Logger      *zap.Logger
}

type Result struct {
	GameID uuid.UUID
	P1, P2 geometry.Point
	Score1 int
	Score2 int
	Claims []strategy.Claim
}

// Winner is 1 or 2, or 0 for a draw.
func (r Result) Winner() int {
	switch {
	case r.Score1 > r.Score2:
		return 1
	case r.Score2 > r.Score1:
		return 2
	}
	return 0
}

func New(s *scenario.Scenario, logger *zap.Logger) *Game {
	return &Game{ID: uuid.New(), Scenario: s, Logger: logger}
}

func (g *Game) logger() *zap.Logger {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.Stringer("game", g.ID), zap.String("scenario", g.Scenario.Name))
}

func (g *Game) maxAttempts() int {
	if g.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return g.MaxAttempts
}

func (g *Game) Play(ctx context.Context, first, second Player) (Result, error) {
	log := g.logger()
	if err := g.Scenario.Validate(); err != nil {
		return Result{}, err
	}

	p1, err := g.turn(ctx, log, 1, first, State{Scenario: g.Scenario})
	if err != nil {
		return Result{}, err
	}
	p2, err := g.turn(ctx, log, 2, second, State{Scenario: g.Scenario, P1: &p1})
	if err != nil {
		return Result{}, err
	}

	result := Result{GameID: g.ID, P1: p1, P2: p2}
	if err := geometry.Try(func() {
		result.Claims = strategy.Claims(p1, p2, g.Scenario.Polygon, g.Scenario.Users)
	}); err != nil {
		return Result{}, errors.Wrap(err, "scoring")
	}
	result.Score1, result.Score2 = strategy.Tally(result.Claims)
	log.Info("game over",
		zap.Stringer("p1", p1),
		zap.Stringer("p2", p2),
		zap.Int("score1", result.Score1),
		zap.Int("score2", result.Score2),
	)
	return result, nil
}

// Ask a player for a facility until it gives one strictly inside the polygon.
// Player errors count as invalid plays, except for context cancellation.
func (g *Game) turn(ctx context.Context, log *zap.Logger, player int, p Player, state State) (geometry.Point, error) {
	log = log.With(zap.Int("player", player))
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return geometry.Point{}, err
		}
		facility, err := p.Play(ctx, state)
		switch {
		case err != nil && ctx.Err() != nil:
			return geometry.Point{}, ctx.Err()
		case err != nil:
			lastErr = err
		case facility.X == nil || facility.Y == nil:
			lastErr = errors.Wrap(geometry.ErrInvalidInput, "no facility")
		case !g.Scenario.Polygon.Contains(facility):
			lastErr = errors.Wrapf(geometry.ErrInvalidInput, "facility %v is not strictly inside the polygon", facility)
		default:
			log.Debug("played", zap.Stringer("facility", facility), zap.Int("attempt", attempt))
			return facility, nil
		}
		log.Warn("invalid play", zap.Int("attempt", attempt), zap.Error(lastErr))
	}
	return geometry.Point{}, errors.Wrapf(ErrTooManyAttempts, "player %d: %v", player, lastErr)
}
