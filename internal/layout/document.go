package layout

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/mcoot/wordboard/internal/model"
)

// Command target ids
const (
	TargetClear   = "clear"
	TargetGo      = "go"
	TargetDiscard = "discard"
	TargetKeep    = "keep"
)

// Region ids used for partial renders
const (
	RegionBoard = "board-region"
)

var commandTargets = []string{TargetClear, TargetGo, TargetDiscard, TargetKeep}

// Document is the page a board is drawn on. All slots are discovered once
// at load time; the document never creates or removes elements afterwards.
type Document struct {
	doc      *goquery.Document
	board    []*Slot
	rack     []*Slot
	commands map[string]*Slot
	score    *Slot
	loader   *Slot
}

// Load renders the standard page and parses it
func Load(ctx context.Context, rackSize int) (*Document, error) {
	var buf bytes.Buffer
	if err := Page(StandardPremiums, rackSize).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return Parse(&buf)
}

// Parse builds a Document from any page with the expected slots
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrLayout, err)
	}

	d := &Document{
		doc:      doc,
		commands: make(map[string]*Slot),
	}

	doc.Find("." + classBoardCell).Each(func(i int, sel *goquery.Selection) {
		d.board = append(d.board, newSlot(sel, fmt.Sprintf("cell-%d", i)))
	})
	if len(d.board) != model.BoardSize {
		return nil, fmt.Errorf("%w: expected %d board cells, found %d", model.ErrLayout, model.BoardSize, len(d.board))
	}

	doc.Find("." + classRackCell).Each(func(i int, sel *goquery.Selection) {
		d.rack = append(d.rack, newSlot(sel, fmt.Sprintf("rack-%d", i)))
	})
	if len(d.rack) == 0 {
		return nil, fmt.Errorf("%w: no rack cells", model.ErrLayout)
	}

	for _, id := range commandTargets {
		if sel := doc.Find("#" + id); sel.Length() > 0 {
			d.commands[id] = newSlot(sel.First(), id)
		}
	}

	d.score = d.byID("score-value")
	d.loader = d.byID("loader")
	if d.score == nil || d.loader == nil {
		return nil, fmt.Errorf("%w: missing score or loader element", model.ErrLayout)
	}

	return d, nil
}

func (d *Document) byID(id string) *Slot {
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil
	}
	return newSlot(sel.First(), id)
}

// BoardSlots returns the board slots in row-major order
func (d *Document) BoardSlots() []*Slot {
	return d.board
}

// RackSlots returns the rack slots in page order
func (d *Document) RackSlots() []*Slot {
	return d.rack
}

// HasCommand reports whether the page wires a command target
func (d *Document) HasCommand(id string) bool {
	_, ok := d.commands[id]
	return ok
}

// Score returns the score display
func (d *Document) Score() *Slot {
	return d.score
}

// SetBusy shows or hides the busy indicator
func (d *Document) SetBusy(busy bool) {
	d.loader.SetClass(classHidden, !busy)
}

// Busy reports whether the busy indicator is showing
func (d *Document) Busy() bool {
	return !d.loader.HasClass(classHidden)
}

// Classify reads a slot's static cell type from its classes
func Classify(s *Slot) model.CellType {
	cellType := model.CellPlain
	for _, c := range classifications {
		if s.HasClass(c.class) {
			cellType = c.cellType
		}
	}
	return cellType
}

// HTML renders the whole document
func (d *Document) HTML() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}

// Fragment renders one element by id
func (d *Document) Fragment(id string) (string, error) {
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: no element %q", model.ErrLayout, id)
	}
	return goquery.OuterHtml(sel.First())
}
