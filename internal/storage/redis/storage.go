package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.MoveCache = (*Storage)(nil)

// cachedMove is the stored JSON shape of a move
type cachedMove struct {
	Word      string `json:"word"`
	Score     int    `json:"score"`
	Direction string `json:"direction"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

func (s *Storage) GetBestMove(ctx context.Context, key string) (*model.BestMove, error) {
	data, err := s.client.Get(ctx, moveKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMoveNotCached
		}
		return nil, err
	}

	var cm cachedMove
	if err := json.Unmarshal(data, &cm); err != nil {
		return nil, err
	}
	direction, err := model.ParseDirection(cm.Direction)
	if err != nil {
		return nil, err
	}
	return &model.BestMove{
		Word:       cm.Word,
		Score:      cm.Score,
		Direction:  direction,
		LastLetter: model.Position{Row: cm.Row, Col: cm.Col},
	}, nil
}

func (s *Storage) SaveBestMove(ctx context.Context, key string, move *model.BestMove) error {
	data, err := json.Marshal(cachedMove{
		Word:      move.Word,
		Score:     move.Score,
		Direction: string(move.Direction),
		Row:       move.LastLetter.Row,
		Col:       move.LastLetter.Col,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, moveKey(key), data, s.cfg.MoveTTL).Err()
}
