package response

import (
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/services/board"
)

// Cell represents one board or rack cell
type Cell struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	Type     string  `json:"type,omitempty"`
	Letter   *string `json:"letter"`
	Value    *int    `json:"value,omitempty"`
	Selected bool    `json:"selected,omitempty"`
	Proposed bool    `json:"proposed,omitempty"`
}

// CellFromState converts a board.CellState
func CellFromState(c board.CellState, withType bool) Cell {
	cell := Cell{
		ID:       c.ID,
		Index:    c.Index,
		Selected: c.Selected,
		Proposed: c.Proposed,
	}
	if withType {
		cell.Type = c.Type.String()
	}
	if c.Letter != nil {
		symbol := c.Letter.String()
		value := c.Letter.Value
		cell.Letter = &symbol
		cell.Value = &value
	}
	return cell
}

// Overlay represents the proposed move currently shown
type Overlay struct {
	BoardOrigin []int `json:"board_origin"`
	RackOrigin  []int `json:"rack_origin"`
}

// Board represents the whole board state
type Board struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Cells    []Cell  `json:"cells"`
	Rack     []Cell  `json:"rack"`
	Selected *string `json:"selected"`
	Overlay  Overlay `json:"overlay"`
	Score    *int    `json:"score"`
	Busy     bool    `json:"busy"`
}

// BoardFromSnapshot converts a board.Snapshot to a response Board
func BoardFromSnapshot(s *board.Snapshot) Board {
	cells := make([]Cell, len(s.Board))
	for i, c := range s.Board {
		cells[i] = CellFromState(c, true)
	}
	rack := make([]Cell, len(s.Rack))
	for i, c := range s.Rack {
		rack[i] = CellFromState(c, false)
	}

	var selected *string
	if s.SelectedID != "" {
		id := s.SelectedID
		selected = &id
	}

	return Board{
		Width:    model.Width,
		Height:   model.Height,
		Cells:    cells,
		Rack:     rack,
		Selected: selected,
		Overlay: Overlay{
			BoardOrigin: nonNil(s.OverlayBoardOrigin),
			RackOrigin:  nonNil(s.OverlayRackOrigin),
		},
		Score: s.Score,
		Busy:  s.Busy,
	}
}

func nonNil(indices []int) []int {
	if indices == nil {
		return []int{}
	}
	return indices
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
