package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/api"
	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/factory"
	"github.com/mcoot/wordboard/internal/model"
)

type quickSolver struct{}

func (quickSolver) BestMove(_ context.Context, _ *model.MoveRequest) (*model.BestMove, error) {
	return &model.BestMove{
		Word:       "HI",
		Score:      10,
		Direction:  model.DirectionAcross,
		LastLetter: model.Position{Row: 7, Col: 8},
	}, nil
}

func startServer(t *testing.T) string {
	t.Helper()
	app, err := factory.NewTestApp(quickSolver{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, app.Start(ctx))

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger: app.TestLogger(),
		Random: random.New(),
		Board:  app.Board,
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func run(t *testing.T, serverURL string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHealth(t *testing.T) {
	url := startServer(t)

	out, _, err := run(t, url, "health")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\n", out)
}

func TestBoardShow_Text(t *testing.T) {
	url := startServer(t)

	out, _, err := run(t, url, "board", "show")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 18)
	assert.True(t, strings.HasPrefix(lines[1], "   +---"))
	assert.Equal(t, " 0 | = "+" . "+" . "+" ' ", lines[2][:16])
	assert.Contains(t, lines[9], " * ")
	assert.Contains(t, out, "Rack:  .  .  .  .  .  .  . \n")
	assert.NotContains(t, out, "Score:")
}

func TestBoardPlaceAndRack(t *testing.T) {
	url := startServer(t)

	_, _, err := run(t, url, "board", "place", "7", "7", "h")
	require.NoError(t, err)

	out, _, err := run(t, url, "--output", "json", "board", "rack", "0", "?")
	require.NoError(t, err)

	var b Board
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	require.NotNil(t, b.Cells[112].Letter)
	assert.Equal(t, "H", *b.Cells[112].Letter)
	require.NotNil(t, b.Rack[0].Letter)
	assert.Equal(t, "?", *b.Rack[0].Letter)
	assert.Nil(t, b.Selected)
}

func TestBoardGoWait(t *testing.T) {
	url := startServer(t)
	_, _, err := run(t, url, "board", "place", "7", "7", "h")
	require.NoError(t, err)
	_, _, err = run(t, url, "board", "rack", "0", "i")
	require.NoError(t, err)

	out, _, err := run(t, url, "board", "go", "--wait")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 10\n")
	assert.Contains(t, out, "[H][I]")

	out, _, err = run(t, url, "board", "discard")
	require.NoError(t, err)
	assert.NotContains(t, out, "[I]")
	assert.Contains(t, out, " H  . ")
	assert.NotContains(t, out, "Score:")
}

func TestBoardErrors(t *testing.T) {
	url := startServer(t)

	_, _, err := run(t, url, "board", "place", "15", "0", "a")
	assert.ErrorContains(t, err, "invalid row")

	_, _, err = run(t, url, "board", "rack", "0", "ab")
	assert.ErrorContains(t, err, "single character")

	_, _, err = run(t, url, "board", "click", "nowhere")
	assert.ErrorContains(t, err, "UNKNOWN_TARGET")

	_, _, err = run(t, url, "--output", "yaml", "health")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestVerboseTracesRequests(t *testing.T) {
	url := startServer(t)

	_, stderr, err := run(t, url, "--verbose", "health")
	require.NoError(t, err)
	assert.Contains(t, stderr, "GET /api/v1/health -> 200")
}

func TestCellText(t *testing.T) {
	letter := "Q"
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"plain empty", Cell{Type: "plain"}, " . "},
		{"triple word empty", Cell{Type: "triple-word"}, " = "},
		{"rack empty", Cell{}, " . "},
		{"letter", Cell{Letter: &letter}, " Q "},
		{"proposed", Cell{Letter: &letter, Proposed: true}, "[Q]"},
		{"selected", Cell{Type: "start", Selected: true}, "<*>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellText(tt.cell))
		})
	}
}

func TestSummarizeBoard(t *testing.T) {
	html := `<main id="board-region"><table><tr>` +
		`<td class="game-board-cell letter">A<span>1</span></td>` +
		`<td class="game-board-cell letter best-move">T<span>1</span></td>` +
		`<td class="game-board-cell"></td></tr></table>` +
		`<div class="user-letter">C<span>4</span></div><div class="user-letter"></div>` +
		`<span id="score-value">05</span><span id="loader"></span></main>`

	assert.Equal(t, "2 board letters, 1 rack letters, 1 proposed, score 05, waiting for best move", summarizeBoard(html))
}
