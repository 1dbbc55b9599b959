package layout

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"

	"github.com/mcoot/wordboard/internal/model"
)

// Slot is a single element of the page, addressed through a goquery selection
type Slot struct {
	id      string
	sel     *goquery.Selection
	claimed bool
}

var _ model.Slot = (*Slot)(nil)

func newSlot(sel *goquery.Selection, fallbackID string) *Slot {
	id, ok := sel.Attr("id")
	if !ok || id == "" {
		id = fallbackID
		sel.SetAttr("id", id)
	}
	return &Slot{id: id, sel: sel}
}

// ID returns the element id
func (s *Slot) ID() string {
	return s.id
}

// Claim binds the slot to its owner
func (s *Slot) Claim() error {
	if s.claimed {
		return fmt.Errorf("%w: slot %s already belongs to a cell", model.ErrImmutable, s.id)
	}
	s.claimed = true
	return nil
}

// HasClass reports whether the element carries a class
func (s *Slot) HasClass(class string) bool {
	return s.sel.HasClass(class)
}

// SetClass adds or removes a class
func (s *Slot) SetClass(class string, on bool) {
	if on {
		s.sel.AddClass(class)
	} else {
		s.sel.RemoveClass(class)
	}
}

// ShowLetter renders a letter with its point value
func (s *Slot) ShowLetter(l model.Letter, valueClass string) {
	s.sel.SetHtml(fmt.Sprintf(`%s<span class="%s">%d</span>`,
		html.EscapeString(l.String()), valueClass, l.Value))
}

// ShowText replaces the content with plain text
func (s *Slot) ShowText(text string) {
	s.sel.SetText(text)
}

// Text returns the element's text content
func (s *Slot) Text() string {
	return s.sel.Text()
}
