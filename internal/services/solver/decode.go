package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcoot/wordboard/internal/model"
)

// response is the solver's wire format
type response struct {
	Word            *string         `json:"word"`
	Score           json.RawMessage `json:"score"`
	Direction       *string         `json:"direction"`
	LastLetterIndex []int           `json:"last_letter_index"`
}

// Decode validates a solver response body. A move is returned only if the
// whole response is well formed and fits on the board.
func Decode(body []byte) (*model.BestMove, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, invalid("malformed JSON: %v", err)
	}

	if resp.Word == nil || *resp.Word == "" {
		return nil, invalid("word is empty")
	}
	word := strings.ToUpper(*resp.Word)
	for _, r := range word {
		if _, ok := model.LetterTable[r]; !ok {
			return nil, invalid("word %q has unknown letter %q", word, r)
		}
	}

	score, err := decodeScore(resp.Score)
	if err != nil {
		return nil, err
	}

	if resp.Direction == nil {
		return nil, invalid("direction is missing")
	}
	direction, err := model.ParseDirection(*resp.Direction)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSolverUnavailable, err)
	}

	if len(resp.LastLetterIndex) != 2 {
		return nil, invalid("last_letter_index must be [row, column]")
	}
	anchor := model.Position{Row: resp.LastLetterIndex[0], Col: resp.LastLetterIndex[1]}
	if !anchor.InBounds() {
		return nil, invalid("last_letter_index %v is off the board", resp.LastLetterIndex)
	}

	move := &model.BestMove{
		Word:       word,
		Score:      int(score),
		Direction:  direction,
		LastLetter: anchor,
	}
	if !move.Fits() {
		return nil, invalid("%q does not fit %s from %v", word, direction, resp.LastLetterIndex)
	}
	return move, nil
}

// decodeScore accepts only a bare JSON integer; quoted numbers are rejected
func decodeScore(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, invalid("score is missing")
	}
	if raw[0] == '"' {
		return 0, invalid("score %s is a string", raw)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, invalid("score %s is not a number", raw)
	}
	score, err := n.Int64()
	if err != nil || score < 0 {
		return 0, invalid("score %s is not a non-negative integer", raw)
	}
	return score, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", model.ErrSolverUnavailable, model.ErrInvalidResponseShape, fmt.Sprintf(format, args...))
}
