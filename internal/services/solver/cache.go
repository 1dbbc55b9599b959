package solver

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/storage"
)

// Cached answers repeated requests from a MoveCache before asking the solver.
// Cache failures never fail a request.
type Cached struct {
	next   Solver
	cache  storage.MoveCache
	logger *slog.Logger
}

var _ Solver = (*Cached)(nil)

// NewCached wraps a solver with a cache
func NewCached(next Solver, cache storage.MoveCache, logger *slog.Logger) *Cached {
	return &Cached{
		next:   next,
		cache:  cache,
		logger: logger.With(slog.String("component", "solver-cache")),
	}
}

func (c *Cached) BestMove(ctx context.Context, req *model.MoveRequest) (*model.BestMove, error) {
	key, err := CacheKey(req)
	if err != nil {
		return c.next.BestMove(ctx, req)
	}

	move, err := c.cache.GetBestMove(ctx, key)
	switch {
	case err == nil:
		c.logger.Debug("solver cache hit", slog.String("key", key))
		return move, nil
	case !errors.Is(err, model.ErrMoveNotCached):
		c.logger.Warn("solver cache read failed", slog.String("error", err.Error()))
	}

	move, err = c.next.BestMove(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SaveBestMove(ctx, key, move); err != nil {
		c.logger.Warn("solver cache write failed", slog.String("error", err.Error()))
	}
	return move, nil
}

// CacheKey hashes a request. Rack order does not matter to the solver, so
// rack letters are sorted before hashing.
func CacheKey(req *model.MoveRequest) (string, error) {
	canonical := model.MoveRequest{
		GameLetters: req.GameLetters,
		UserLetters: slices.Sorted(slices.Values(req.UserLetters)),
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
