package storage

import (
	"context"

	"github.com/mcoot/wordboard/internal/model"
)

// MoveCache remembers solver answers keyed by a hash of the request
type MoveCache interface {
	// GetBestMove returns model.ErrMoveNotCached when the key is absent or expired
	GetBestMove(ctx context.Context, key string) (*model.BestMove, error)
	SaveBestMove(ctx context.Context, key string, move *model.BestMove) error
}
