package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordboard/internal/model"
)

// boardCell is one board square as the page template draws it
type boardCell struct {
	ID    string
	Class string
	Glyph string
}

// Page renders a complete board page for the given premium layout
func Page(premiums []string, rackSize int) templ.Component {
	rows, err := boardRows(premiums)
	if err != nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return err
		})
	}
	return page(rows, rackSize)
}

func boardRows(premiums []string) ([][]boardCell, error) {
	if len(premiums) != model.Height {
		return nil, fmt.Errorf("%w: premium layout has %d rows", model.ErrLayout, len(premiums))
	}

	rows := make([][]boardCell, 0, model.Height)
	for row, line := range premiums {
		markers := []rune(line)
		if len(markers) != model.Width {
			return nil, fmt.Errorf("%w: premium row %d has %d columns", model.ErrLayout, row, len(markers))
		}
		cells := make([]boardCell, 0, model.Width)
		for col, marker := range markers {
			cells = append(cells, newBoardCell(model.Position{Row: row, Col: col}.Index(), premiumClass(marker)))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func newBoardCell(index int, premium string) boardCell {
	cell := boardCell{
		ID:    fmt.Sprintf("cell-%d", index),
		Class: classBoardCell,
	}
	if premium == "" {
		return cell
	}
	cell.Class += " " + premium
	for _, c := range classifications {
		if c.class == premium {
			cell.Glyph = c.cellType.Placeholder()
		}
	}
	return cell
}

func rackID(i int) string {
	return fmt.Sprintf("rack-%d", i)
}

func clickPath(id string) string {
	return "/click/" + id
}
