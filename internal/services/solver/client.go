package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/model"
)

// BestMovePath is the solver endpoint
const BestMovePath = "/bestGameMove"

// Solver computes the best move for a board and rack
type Solver interface {
	BestMove(ctx context.Context, req *model.MoveRequest) (*model.BestMove, error)
}

// Config holds solver client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the solver client
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:5000",
		Timeout: 30 * time.Second,
	}
}

// Client calls the external solver over HTTP. Each call is a single POST
// with no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	random     random.Random
	logger     *slog.Logger
}

var _ Solver = (*Client)(nil)

// NewClient creates a new solver client
func NewClient(cfg Config, rnd random.Random, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		random: rnd,
		logger: logger.With(slog.String("component", "solver")),
	}
}

// BestMove posts the request and decodes the answer. Every failure matches
// model.ErrSolverUnavailable.
func (c *Client) BestMove(ctx context.Context, req *model.MoveRequest) (*model.BestMove, error) {
	requestID := random.RequestID(c.random)
	logger := c.logger.With(slog.String("request_id", requestID))

	data, err := json.Marshal(req)
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+BestMovePath, bytes.NewReader(data))
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("solver request failed", slog.String("error", err.Error()))
		return nil, unavailable(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to read response: %w", err))
	}

	logger.Info("solver responded",
		slog.Int("status", resp.StatusCode),
		slog.Int("game_letters", len(req.GameLetters)),
		slog.Int("user_letters", len(req.UserLetters)),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body)))
	}

	return Decode(body)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", model.ErrSolverUnavailable, err)
}

// BuildRequest collects the letters on the board (row-major) and in the rack
func BuildRequest(board, rack []*model.Cell) *model.MoveRequest {
	req := &model.MoveRequest{
		GameLetters: []model.GameLetter{},
		UserLetters: []string{},
	}
	for _, cell := range board {
		if l := cell.Letter(); l != nil {
			req.GameLetters = append(req.GameLetters, model.GameLetter{
				Letter: l.String(),
				Index:  cell.Index(),
			})
		}
	}
	for _, cell := range rack {
		if l := cell.Letter(); l != nil {
			req.UserLetters = append(req.UserLetters, l.String())
		}
	}
	return req
}
