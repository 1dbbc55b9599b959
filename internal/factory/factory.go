package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mcoot/wordboard/internal/dependencies/clock"
	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/layout"
	"github.com/mcoot/wordboard/internal/services/board"
	"github.com/mcoot/wordboard/internal/services/solver"
	"github.com/mcoot/wordboard/internal/storage"
	"github.com/mcoot/wordboard/internal/storage/memory"
	redisstorage "github.com/mcoot/wordboard/internal/storage/redis"
	"github.com/mcoot/wordboard/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultCacheTTL is how long the in-memory cache keeps a solver answer
const DefaultCacheTTL = time.Hour

// App contains all wired application components
type App struct {
	// Storage
	Cache storage.MoveCache

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Document    *layout.Document
	Solver      solver.Solver
	Board       *board.Controller
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// SolverConfig holds the best-move service settings
	// If BaseURL is empty, defaults to solver.DefaultConfig()
	SolverConfig solver.Config
	// LayoutPath is an HTML page to load the board from (optional)
	// If empty, the standard page is rendered
	LayoutPath string
	// RackSize is the number of rack slots on the standard page
	// If zero, defaults to layout.DefaultRackSize
	RackSize int
	// StorageType selects the cache backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// CacheTTL is the in-memory cache lifetime. If zero, DefaultCacheTTL.
	CacheTTL time.Duration
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	var cache storage.MoveCache
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		ttl := cfg.CacheTTL
		if ttl == 0 {
			ttl = DefaultCacheTTL
		}
		cache = memory.New(clk, ttl)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		cache = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	solverCfg := cfg.SolverConfig
	if solverCfg.BaseURL == "" {
		solverCfg = solver.DefaultConfig()
	}
	client := solver.NewClient(solverCfg, rnd, logger)

	doc, err := loadDocument(cfg.LayoutPath, cfg.RackSize)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(cache, clk, rnd, client, doc, logger)
}

func loadDocument(path string, rackSize int) (*layout.Document, error) {
	if path == "" {
		if rackSize == 0 {
			rackSize = layout.DefaultRackSize
		}
		return layout.Load(context.Background(), rackSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return layout.Parse(f)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cache storage.MoveCache, clk clock.Clock, rnd random.Random, upstream solver.Solver, doc *layout.Document, logger *slog.Logger) (*App, error) {
	cached := solver.NewCached(upstream, cache, logger)
	hub := sse.NewHub(logger)

	var broadcaster *sse.Broadcaster
	controller, err := board.NewController(doc, cached, logger, board.Options{
		OnChange: func() { broadcaster.Notify() },
	})
	if err != nil {
		return nil, err
	}
	broadcaster = sse.NewBroadcaster(hub, controller, layout.RegionBoard, logger)

	return &App{
		Cache:       cache,
		Clock:       clk,
		Random:      rnd,
		Document:    doc,
		Solver:      cached,
		Board:       controller,
		Hub:         hub,
		Broadcaster: broadcaster,
		logger:      logger,
	}, nil
}

// Start runs the board event loop, the SSE hub and the broadcaster until ctx
// is cancelled. It returns once the board accepts events.
func (a *App) Start(ctx context.Context) error {
	go a.Hub.Run()
	go a.Board.Run(ctx)
	go a.Broadcaster.Run(ctx)
	context.AfterFunc(ctx, a.Hub.Close)
	return a.Board.Wait(ctx)
}

// Close releases the cache backend
func (a *App) Close() error {
	if closer, ok := a.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
