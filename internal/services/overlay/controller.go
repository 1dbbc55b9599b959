package overlay

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mcoot/wordboard/internal/model"
)

// emptyScore is what the score display shows with no proposed move
const emptyScore = "00"

// ScoreDisplay is where the proposed move's score is shown
type ScoreDisplay interface {
	ShowText(text string)
}

// Controller lays a solver placement over the board as a provisional move
// and later keeps or discards it.
//
// boardOrigin holds overlay cells whose letter was already on the board;
// rackOrigin holds cells the move filled from the rack. The two never share
// a cell, and together they are exactly the cells marked as proposed.
type Controller struct {
	board       []*model.Cell
	score       ScoreDisplay
	logger      *slog.Logger
	boardOrigin []*model.Cell
	rackOrigin  []*model.Cell
	scoreValue  *int
}

// NewController creates a Controller over a full board of cells
func NewController(board []*model.Cell, score ScoreDisplay, logger *slog.Logger) *Controller {
	c := &Controller{
		board:  board,
		score:  score,
		logger: logger.With(slog.String("component", "overlay")),
	}
	c.setScore(nil)
	return c
}

// Apply places the move on the board. The anchor is the last letter in
// reading order, so the word is consumed from its end while the index walks
// back toward the start. Any live overlay is discarded first.
func (c *Controller) Apply(move *model.BestMove) error {
	if !move.Fits() {
		return fmt.Errorf("%w: %q does not fit from %v", model.ErrInvalidResponseShape, move.Word, move.LastLetter)
	}
	letters := make([]model.Letter, 0, len(move.Word))
	for _, r := range move.Word {
		l, err := model.LookupLetter(r)
		if err != nil {
			return fmt.Errorf("%w: %w", model.ErrInvalidResponseShape, err)
		}
		letters = append(letters, l)
	}

	c.Discard()

	current := move.LastLetter.Index()
	step := move.Direction.Step()
	for i := range letters {
		cell := c.board[current]
		if cell.IsEmpty() {
			c.rackOrigin = append(c.rackOrigin, cell)
		} else {
			c.boardOrigin = append(c.boardOrigin, cell)
		}

		l := letters[len(letters)-1-i]
		cell.ToggleProposedMove()
		cell.SetLetter(&l)
		c.setScore(&move.Score)

		if i < len(letters)-1 {
			current -= step
		}
	}

	c.logger.Debug("proposed move applied",
		slog.String("word", move.Word),
		slog.Int("score", move.Score),
		slog.Int("from_rack", len(c.rackOrigin)),
		slog.Int("from_board", len(c.boardOrigin)))
	return nil
}

// Discard removes the proposed move. Letters the move brought from the rack
// are cleared; letters that were already on the board stay.
func (c *Controller) Discard() {
	c.release(true)
}

// Keep accepts the proposed move as permanent board state
func (c *Controller) Keep() {
	c.release(false)
}

func (c *Controller) release(clearRackLetters bool) {
	if !c.Active() && c.scoreValue == nil {
		return
	}
	for _, cell := range c.boardOrigin {
		cell.ToggleProposedMove()
	}
	for _, cell := range c.rackOrigin {
		cell.ToggleProposedMove()
		if clearRackLetters {
			cell.SetLetter(nil)
		}
	}
	c.boardOrigin = nil
	c.rackOrigin = nil
	c.setScore(nil)
}

// Active reports whether a proposed move is on the board
func (c *Controller) Active() bool {
	return len(c.boardOrigin) > 0 || len(c.rackOrigin) > 0
}

// BoardCells returns overlay cells whose letter pre-existed on the board
func (c *Controller) BoardCells() []*model.Cell {
	return append([]*model.Cell(nil), c.boardOrigin...)
}

// RackOriginCells returns overlay cells filled by the proposed move
func (c *Controller) RackOriginCells() []*model.Cell {
	return append([]*model.Cell(nil), c.rackOrigin...)
}

// Score returns the proposed move's score, or nil when empty
func (c *Controller) Score() *int {
	if c.scoreValue == nil {
		return nil
	}
	v := *c.scoreValue
	return &v
}

func (c *Controller) setScore(score *int) {
	if score == nil {
		c.scoreValue = nil
		c.score.ShowText(emptyScore)
		return
	}
	v := *score
	c.scoreValue = &v
	if v == 0 {
		c.score.ShowText(emptyScore)
		return
	}
	c.score.ShowText(strconv.Itoa(v))
}
