package model

import "fmt"

// Direction is the reading direction of a placed word
type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

// ParseDirection decodes a direction string from the solver
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionAcross, DirectionDown:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidResponseShape, s)
	}
}

// Step returns how far the row-major index moves between consecutive letters
func (d Direction) Step() int {
	if d == DirectionDown {
		return Width
	}
	return 1
}

// BestMove is a decoded placement returned by the solver.
// LastLetter is the anchor: the position of the final letter in reading order.
type BestMove struct {
	Word       string
	Score      int
	Direction  Direction
	LastLetter Position
}

// Fits reports whether every letter of the word lands on the board when
// walking backward from the anchor.
func (m *BestMove) Fits() bool {
	if !m.LastLetter.InBounds() {
		return false
	}
	n := len([]rune(m.Word))
	if n == 0 {
		return false
	}
	if m.Direction == DirectionDown {
		return m.LastLetter.Row-(n-1) >= 0
	}
	return m.LastLetter.Col-(n-1) >= 0
}

// GameLetter is a letter already on the board, by row-major index
type GameLetter struct {
	Letter string `json:"letter"`
	Index  int    `json:"index"`
}

// MoveRequest is the input sent to the solver
type MoveRequest struct {
	GameLetters []GameLetter `json:"gameLetters"`
	UserLetters []string     `json:"userLetters"`
}
