package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/wordboard/internal/dependencies/clock"
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	clock clock.Clock
	ttl   time.Duration

	moves map[string]cachedMove
}

type cachedMove struct {
	move      model.BestMove
	expiresAt time.Time // zero means no expiry
}

// New creates a new in-memory storage instance. A zero ttl keeps entries forever.
func New(clk clock.Clock, ttl time.Duration) *Storage {
	return &Storage{
		clock: clk,
		ttl:   ttl,
		moves: make(map[string]cachedMove),
	}
}

// Ensure Storage implements the interface
var _ storage.MoveCache = (*Storage)(nil)

func (s *Storage) GetBestMove(ctx context.Context, key string) (*model.BestMove, error) {
	s.mu.RLock()
	entry, ok := s.moves[key]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrMoveNotCached
	}

	if !entry.expiresAt.IsZero() && !s.clock.Now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.moves, key)
		s.mu.Unlock()
		return nil, model.ErrMoveNotCached
	}

	move := entry.move
	return &move, nil
}

func (s *Storage) SaveBestMove(ctx context.Context, key string, move *model.BestMove) error {
	entry := cachedMove{move: *move}
	if s.ttl > 0 {
		entry.expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves[key] = entry
	return nil
}

// Len returns the number of stored entries, expired or not
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.moves)
}
