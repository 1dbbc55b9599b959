package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordboard/internal/dependencies/mocks"
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/storage/memory"
	"github.com/mcoot/wordboard/internal/testutil"
)

type countingSolver struct {
	calls int
	move  *model.BestMove
	err   error
}

func (c *countingSolver) BestMove(ctx context.Context, req *model.MoveRequest) (*model.BestMove, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	move := *c.move
	return &move, nil
}

type failingCache struct{}

func (failingCache) GetBestMove(ctx context.Context, key string) (*model.BestMove, error) {
	return nil, errors.New("cache down")
}

func (failingCache) SaveBestMove(ctx context.Context, key string, move *model.BestMove) error {
	return errors.New("cache down")
}

type CachedSuite struct {
	suite.Suite
	next   *countingSolver
	cached *Cached
	ctx    context.Context
}

func TestCachedSuite(t *testing.T) {
	suite.Run(t, new(CachedSuite))
}

func (s *CachedSuite) SetupTest() {
	s.next = &countingSolver{move: &model.BestMove{
		Word:       "CAT",
		Score:      5,
		Direction:  model.DirectionAcross,
		LastLetter: model.Position{Row: 0, Col: 2},
	}}
	store := memory.New(mocks.NewMockClock(time.Now()), time.Hour)
	s.cached = NewCached(s.next, store, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *CachedSuite) TestSecondIdenticalRequestIsCached() {
	first, err := s.cached.BestMove(s.ctx, sampleRequest())
	s.Require().NoError(err)
	second, err := s.cached.BestMove(s.ctx, sampleRequest())
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(1, s.next.calls)
}

func (s *CachedSuite) TestRackOrderDoesNotMatter() {
	_, _ = s.cached.BestMove(s.ctx, &model.MoveRequest{UserLetters: []string{"A", "B"}})
	_, _ = s.cached.BestMove(s.ctx, &model.MoveRequest{UserLetters: []string{"B", "A"}})

	s.Equal(1, s.next.calls)
}

func (s *CachedSuite) TestDifferentBoardMisses() {
	_, _ = s.cached.BestMove(s.ctx, sampleRequest())
	other := sampleRequest()
	other.GameLetters[0].Index = 113
	_, _ = s.cached.BestMove(s.ctx, other)

	s.Equal(2, s.next.calls)
}

func (s *CachedSuite) TestErrorsAreNotCached() {
	s.next.err = model.ErrSolverUnavailable

	_, err := s.cached.BestMove(s.ctx, sampleRequest())
	s.ErrorIs(err, model.ErrSolverUnavailable)
	_, _ = s.cached.BestMove(s.ctx, sampleRequest())

	s.Equal(2, s.next.calls)
}

func (s *CachedSuite) TestCacheFailureFallsThrough() {
	cached := NewCached(s.next, failingCache{}, testutil.NopLogger())

	move, err := cached.BestMove(s.ctx, sampleRequest())

	s.Require().NoError(err)
	s.Equal("CAT", move.Word)
}

func (s *CachedSuite) TestCacheKeyIsStable() {
	a, err := CacheKey(sampleRequest())
	s.Require().NoError(err)
	b, err := CacheKey(sampleRequest())
	s.Require().NoError(err)

	s.Equal(a, b)
	s.Len(a, 64)
}
