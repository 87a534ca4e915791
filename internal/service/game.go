// FILE: internal/service/game.go
package service

import (
	"context"
	"fmt"
	"time"

	"breakthrough/internal/core"
	"breakthrough/internal/game"
	"breakthrough/internal/storage"

	"github.com/rs/zerolog"
)

// NewGame registers a game under id. An empty position starts from the
// standard layout.
func (s *Service) NewGame(id, position string, rule core.StalemateRule) (game.Snapshot, error) {
	var (
		g   *game.Game
		err error
	)
	if position == "" {
		g = game.New(game.WithStalemateRule(rule))
	} else {
		g, err = game.FromPosition(position, game.WithStalemateRule(rule))
		if err != nil {
			return game.Snapshot{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameExists, id)
	}
	s.games[id] = g

	s.log.Debug().Str("game", id).Str("rule", rule.String()).Msg("game created")

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:          id,
			InitialPosition: g.InitialPosition(),
			StalemateRule:   rule.String(),
			StartTimeUTC:    time.Now().UTC(),
		})
	}

	return g.Snapshot(), nil
}

// GetGame returns a copy of the game's current state
func (s *Service) GetGame(gameID string) (game.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g.Snapshot(), nil
}

// MakeMove applies from->to for the side to move. Rejected moves leave
// the game untouched and return the engine's error.
func (s *Service) MakeMove(gameID string, from, to core.Location) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	result, err := g.Apply(from, to)
	if err != nil {
		return game.Snapshot{}, err
	}

	moveCount := len(g.History())
	s.waiter.NotifyGame(gameID, moveCount)

	level := zerolog.DebugLevel
	if result.State != core.StateOngoing {
		level = zerolog.InfoLevel
	}
	s.log.WithLevel(level).
		Str("game", gameID).
		Str("move", result.Move).
		Str("color", result.Color.String()).
		Str("reason", result.Reason.String()).
		Msg(result.State.String())

	if s.store != nil {
		now := time.Now().UTC()
		s.store.RecordMove(storage.MoveRecord{
			GameID:        gameID,
			MoveNumber:    moveCount,
			Move:          result.Move,
			PositionAfter: g.Position(),
			PlayerColor:   result.Color.String(),
			Captured:      result.Captured,
			MoveTimeUTC:   now,
		})
		if result.State != core.StateOngoing {
			s.store.RecordResult(storage.ResultRecord{
				GameID:     gameID,
				Winner:     result.Color.String(),
				EndReason:  result.Reason.String(),
				EndTimeUTC: now,
			})
		}
	}

	return g.Snapshot(), nil
}

// DeleteGame removes a game from memory, releasing anyone waiting on it
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	s.waiter.RemoveGame(gameID)
	delete(s.games, gameID)
	return nil
}

// WaitForChange blocks until the game's move count differs from moveCount,
// the game is decided, the wait times out or ctx ends. It returns the state
// current at wake-up.
func (s *Service) WaitForChange(ctx context.Context, gameID string, moveCount int) (game.Snapshot, error) {
	s.mu.RLock()
	g, ok := s.games[gameID]
	if !ok {
		s.mu.RUnlock()
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if len(g.History()) != moveCount || g.State() != core.StateOngoing {
		snap := g.Snapshot()
		s.mu.RUnlock()
		return snap, nil
	}
	// Registered under the lock so a concurrent move cannot slip in between
	req := s.waiter.Register(gameID, moveCount)
	s.mu.RUnlock()

	s.waiter.Await(ctx, req)

	return s.GetGame(gameID)
}
