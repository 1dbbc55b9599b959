package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/wordboard/internal/dependencies/mocks"
	"github.com/mcoot/wordboard/internal/layout"
	"github.com/mcoot/wordboard/internal/services/solver"
	"github.com/mcoot/wordboard/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App on the standard page with mocked dependencies
// and an in-memory cache in front of upstream
func NewTestApp(upstream solver.Solver) (*TestApp, error) {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	store := memory.New(mockClock, DefaultCacheTTL)

	doc, err := layout.Load(context.Background(), layout.DefaultRackSize)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app, err := newWithDependencies(store, mockClock, mockRandom, upstream, doc, logger)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}, nil
}

// TestLogger returns the discarding logger the app was built with
func (t *TestApp) TestLogger() *slog.Logger {
	return t.logger
}
