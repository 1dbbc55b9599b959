package board

import (
	"context"

	"github.com/mcoot/wordboard/internal/model"
)

// CellState is a copy of one cell's state
type CellState struct {
	ID       string
	Index    int
	Type     model.CellType
	Letter   *model.Letter
	Selected bool
	Proposed bool
}

// Snapshot is a consistent copy of the whole board taken on the event loop
type Snapshot struct {
	Board []CellState
	Rack  []CellState

	// SelectedID is empty when no cell is selected
	SelectedID string

	// Row-major indices of the proposed move, split by where the letter came from
	OverlayBoardOrigin []int
	OverlayRackOrigin  []int

	Score    *int
	Busy     bool
	InFlight bool
}

// Snapshot copies the current state
func (c *Controller) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap *Snapshot
	err := c.query(ctx, func() error {
		snap = c.snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Render returns the page HTML, or a single region of it when region is set
func (c *Controller) Render(ctx context.Context, region string) (string, error) {
	var html string
	err := c.query(ctx, func() error {
		var err error
		html, err = c.render(region)
		return err
	})
	return html, err
}

func (c *Controller) render(region string) (string, error) {
	if region == "" {
		return c.doc.HTML()
	}
	return c.doc.Fragment(region)
}

func (c *Controller) snapshot() *Snapshot {
	snap := &Snapshot{
		Board:    cellStates(c.board),
		Rack:     cellStates(c.rack),
		Score:    c.overlay.Score(),
		Busy:     c.doc.Busy(),
		InFlight: c.inFlight,
	}
	if sel := c.selection.Selected(); sel != nil {
		snap.SelectedID = sel.ID()
	}
	for _, cell := range c.overlay.BoardCells() {
		snap.OverlayBoardOrigin = append(snap.OverlayBoardOrigin, cell.Index())
	}
	for _, cell := range c.overlay.RackOriginCells() {
		snap.OverlayRackOrigin = append(snap.OverlayRackOrigin, cell.Index())
	}
	return snap
}

func cellStates(cells []*model.Cell) []CellState {
	states := make([]CellState, len(cells))
	for i, cell := range cells {
		states[i] = CellState{
			ID:       cell.ID(),
			Index:    cell.Index(),
			Type:     cell.Type(),
			Selected: cell.Selected(),
			Proposed: cell.InProposedMove(),
		}
		if l := cell.Letter(); l != nil {
			copied := *l
			states[i].Letter = &copied
		}
	}
	return states
}
