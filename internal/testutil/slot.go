package testutil

import (
	"fmt"

	"github.com/mcoot/wordboard/internal/model"
)

// FakeSlot records what a cell projected onto it
type FakeSlot struct {
	Name    string
	Classes map[string]bool
	Text    string
	claimed bool
}

var _ model.Slot = (*FakeSlot)(nil)

// NewFakeSlot creates an unclaimed slot
func NewFakeSlot(name string) *FakeSlot {
	return &FakeSlot{Name: name, Classes: make(map[string]bool)}
}

func (s *FakeSlot) ID() string { return s.Name }

func (s *FakeSlot) Claim() error {
	if s.claimed {
		return model.ErrImmutable
	}
	s.claimed = true
	return nil
}

func (s *FakeSlot) SetClass(class string, on bool) {
	if on {
		s.Classes[class] = true
	} else {
		delete(s.Classes, class)
	}
}

func (s *FakeSlot) ShowLetter(l model.Letter, _ string) {
	s.Text = fmt.Sprintf("%c%d", l.Symbol, l.Value)
}

func (s *FakeSlot) ShowText(text string) {
	s.Text = text
}

// BoardCells builds a full board of plain cells backed by fake slots
func BoardCells() []*model.Cell {
	cells := make([]*model.Cell, model.BoardSize)
	for i := range cells {
		cell, err := model.NewBoardCell(NewFakeSlot(fmt.Sprintf("cell-%d", i)), i, model.CellPlain)
		if err != nil {
			panic(err)
		}
		cells[i] = cell
	}
	return cells
}

// RackCells builds n rack cells backed by fake slots
func RackCells(n int) []*model.Cell {
	cells := make([]*model.Cell, n)
	for i := range cells {
		cell, err := model.NewRackCell(NewFakeSlot(fmt.Sprintf("rack-%d", i)), i)
		if err != nil {
			panic(err)
		}
		cells[i] = cell
	}
	return cells
}
