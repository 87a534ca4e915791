// FILE: internal/service/service.go
package service

import (
	"errors"
	"sync"
	"time"

	"breakthrough/internal/game"
	"breakthrough/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// Recorder persists games as they are played. *storage.Store satisfies it.
type Recorder interface {
	RecordNewGame(record storage.GameRecord)
	RecordMove(record storage.MoveRecord)
	RecordResult(record storage.ResultRecord)
	IsHealthy() bool
	Close() error
}

// Service is a state manager for Breakthrough games with optional persistence
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	store  Recorder // nil if persistence disabled
	waiter *WaitRegistry
	log    zerolog.Logger
}

// New creates a new service instance with optional storage
func New(store Recorder, logger zerolog.Logger) *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		store:  store,
		waiter: NewWaitRegistry(WaitTimeout),
		log:    logger.With().Str("component", "service").Logger(),
	}
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// StorageHealth returns the storage component status
func (s *Service) StorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// GameCount is the number of games held in memory
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Close releases waiters, drops all games and closes storage
func (s *Service) Close() error {
	if err := s.waiter.Shutdown(2 * time.Second); err != nil {
		s.log.Warn().Err(err).Msg("wait registry shutdown incomplete")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
