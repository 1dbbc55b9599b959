package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/api"
	"github.com/mcoot/wordboard/internal/api/apierr"
	"github.com/mcoot/wordboard/internal/api/response"
	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/factory"
	"github.com/mcoot/wordboard/internal/model"
)

// gatedSolver answers with move once the gate is opened
type gatedSolver struct {
	move model.BestMove
	gate chan struct{}
	once sync.Once
}

func (g *gatedSolver) open() {
	g.once.Do(func() { close(g.gate) })
}

func (g *gatedSolver) BestMove(ctx context.Context, _ *model.MoveRequest) (*model.BestMove, error) {
	select {
	case <-g.gate:
		move := g.move
		return &move, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type testServer struct {
	handler http.Handler
	solver  *gatedSolver
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	solver := &gatedSolver{
		move: model.BestMove{
			Word:       "AX",
			Score:      18,
			Direction:  model.DirectionAcross,
			LastLetter: model.Position{Row: 7, Col: 8},
		},
		gate: make(chan struct{}),
	}
	t.Cleanup(solver.open)

	app, err := factory.NewTestApp(solver)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, app.Start(ctx))

	router := api.NewRouter(api.RouterConfig{
		Logger: app.TestLogger(),
		Random: random.New(),
		Board:  app.Board,
	})
	return &testServer{handler: router, solver: solver}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBoard(t *testing.T, rr *httptest.ResponseRecorder) response.Board {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var b response.Board
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	return b
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func (ts *testServer) place(t *testing.T, target, key string) response.Board {
	t.Helper()
	decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/click", map[string]string{"target": target}))
	return decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/key", map[string]string{"key": key}))
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestGetBoard(t *testing.T) {
	ts := newTestServer(t)

	b := decodeBoard(t, ts.request(http.MethodGet, "/api/v1/board", nil))
	assert.Equal(t, model.Width, b.Width)
	assert.Len(t, b.Cells, model.BoardSize)
	assert.Len(t, b.Rack, 7)
	assert.Equal(t, "start", b.Cells[112].Type)
	assert.Equal(t, "triple-word", b.Cells[0].Type)
	assert.Nil(t, b.Selected)
	assert.Nil(t, b.Score)
	assert.Empty(t, b.Overlay.RackOrigin)
}

func TestClickAndKey(t *testing.T) {
	ts := newTestServer(t)

	b := decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/click", map[string]string{"target": "cell-20"}))
	require.NotNil(t, b.Selected)
	assert.Equal(t, "cell-20", *b.Selected)
	assert.True(t, b.Cells[20].Selected)

	b = decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/key", map[string]string{"key": "j"}))
	assert.Nil(t, b.Selected)
	require.NotNil(t, b.Cells[20].Letter)
	assert.Equal(t, "J", *b.Cells[20].Letter)
	assert.Equal(t, 10, *b.Cells[20].Value)
}

func TestClick_Errors(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/click", map[string]string{"target": "nowhere"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnknownTarget, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "/api/v1/board/click", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/board/key", bytes.NewBufferString("{"))
	rr = httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommand_Unknown(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/cell-3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnknownTarget, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "/api/v1/board/go?wait=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGo_InFlightThenWait(t *testing.T) {
	ts := newTestServer(t)
	ts.place(t, "cell-112", "a")
	ts.place(t, "rack-0", "x")

	b := decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/go", nil))
	assert.True(t, b.Busy)

	rr := ts.request(http.MethodPost, "/api/v1/board/go", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeRequestInFlight, decodeError(t, rr).Code)

	ts.solver.open()
	require.Eventually(t, func() bool {
		b = decodeBoard(t, ts.request(http.MethodGet, "/api/v1/board", nil))
		return !b.Busy
	}, time.Second, 5*time.Millisecond)

	require.NotNil(t, b.Score)
	assert.Equal(t, 18, *b.Score)
	assert.Equal(t, []int{112}, b.Overlay.BoardOrigin)
	assert.Equal(t, []int{113}, b.Overlay.RackOrigin)
	assert.True(t, b.Cells[113].Proposed)
}

func TestGo_WaitReturnsAppliedMove(t *testing.T) {
	ts := newTestServer(t)
	ts.place(t, "cell-112", "a")
	ts.place(t, "rack-0", "x")
	ts.solver.open()

	b := decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/go?wait=true", nil))
	assert.False(t, b.Busy)
	require.NotNil(t, b.Score)
	assert.Equal(t, 18, *b.Score)

	b = decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/keep", nil))
	assert.Nil(t, b.Score)
	assert.Equal(t, "X", *b.Cells[113].Letter)
	assert.False(t, b.Cells[113].Proposed)
	require.NotNil(t, b.Rack[0].Letter)
	assert.Equal(t, "X", *b.Rack[0].Letter)
}

func TestDiscardAndClear(t *testing.T) {
	ts := newTestServer(t)
	ts.place(t, "cell-112", "a")
	ts.place(t, "rack-0", "x")
	ts.solver.open()
	decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/go?wait=1", nil))

	b := decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/discard", nil))
	assert.Nil(t, b.Cells[113].Letter)
	assert.Equal(t, "A", *b.Cells[112].Letter)
	assert.Equal(t, "X", *b.Rack[0].Letter)

	b = decodeBoard(t, ts.request(http.MethodPost, "/api/v1/board/clear", nil))
	assert.Nil(t, b.Cells[112].Letter)
	assert.Nil(t, b.Rack[0].Letter)
}
