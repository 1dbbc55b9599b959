package selection

import (
	"github.com/mcoot/wordboard/internal/model"
)

// Special keys handled while a cell is selected
const (
	KeyBackspace = "Backspace"
	KeyEscape    = "Escape"
	KeySpace     = " "
)

// Controller tracks the single selected cell across board and rack
type Controller struct {
	selected *model.Cell
}

// NewController creates an idle Controller
func NewController() *Controller {
	return &Controller{}
}

// Selected returns the selected cell, or nil when idle
func (c *Controller) Selected() *model.Cell {
	return c.selected
}

// Click selects the cell, deselects it if already selected, or moves the
// selection from the previous cell.
func (c *Controller) Click(cell *model.Cell) {
	if cell == c.selected {
		c.Deselect()
		return
	}
	if c.selected != nil {
		c.selected.ToggleSelected()
	}
	c.selected = cell
	c.selected.ToggleSelected()
}

// Deselect clears the selection, if any
func (c *Controller) Deselect() {
	if c.selected == nil {
		return
	}
	c.selected.ToggleSelected()
	c.selected = nil
}

// KeyDown applies a key to the selected cell. It returns false if the key
// was ignored.
func (c *Controller) KeyDown(key string) bool {
	if c.selected == nil {
		return false
	}

	switch key {
	case KeyBackspace:
		c.selected.SetLetter(nil)
		c.Deselect()
		return true
	case KeyEscape:
		c.Deselect()
		return true
	}

	symbol, ok := printable(key)
	if !ok {
		return false
	}
	l := model.MustLetter(symbol)
	c.selected.SetLetter(&l)
	c.Deselect()
	return true
}

// printable maps a single letter or space to its tile symbol
func printable(key string) (rune, bool) {
	if key == KeySpace {
		return model.Wildcard, true
	}
	if len(key) != 1 {
		return 0, false
	}
	r := rune(key[0])
	if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
		return r, true
	}
	return 0, false
}
