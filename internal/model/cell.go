package model

// CellType is the static bonus classification of a board cell
type CellType int

const (
	CellPlain CellType = iota
	CellStart
	CellDoubleLetter
	CellTripleLetter
	CellDoubleWord
	CellTripleWord
)

var cellTypeNames = map[CellType]string{
	CellPlain:        "plain",
	CellStart:        "start",
	CellDoubleLetter: "double-letter",
	CellTripleLetter: "triple-letter",
	CellDoubleWord:   "double-word",
	CellTripleWord:   "triple-word",
}

func (t CellType) String() string {
	return cellTypeNames[t]
}

// Placeholder is the glyph shown in an empty cell of this type
func (t CellType) Placeholder() string {
	switch t {
	case CellStart:
		return "★"
	case CellDoubleLetter:
		return "DL"
	case CellTripleLetter:
		return "TL"
	case CellDoubleWord:
		return "DW"
	case CellTripleWord:
		return "TW"
	default:
		return ""
	}
}

// CellKind tags which variant a Cell is
type CellKind int

const (
	KindBoard CellKind = iota
	KindRack
)

// CSS classes a cell toggles on its slot
const (
	ClassSelected = "selected-cell"
	ClassBestMove = "best-move"
	ClassLetter   = "letter"
)

// Slot is the visual element a cell projects its state onto
type Slot interface {
	// ID returns the slot's stable identifier
	ID() string
	// Claim binds the slot to a cell. It fails with ErrImmutable if already claimed.
	Claim() error
	SetClass(class string, on bool)
	ShowLetter(l Letter, valueClass string)
	ShowText(text string)
}

// Cell is a board or rack cell. Kind, Index, Type and the slot are fixed
// at construction; only the letter and the two flags change afterwards.
type Cell struct {
	kind     CellKind
	index    int
	cellType CellType
	slot     Slot

	letter         *Letter
	selected       bool
	inProposedMove bool
}

// NewBoardCell creates a board cell at the given row-major index
func NewBoardCell(slot Slot, index int, cellType CellType) (*Cell, error) {
	return newCell(slot, KindBoard, index, cellType)
}

// NewRackCell creates a cell in the letter rack
func NewRackCell(slot Slot, index int) (*Cell, error) {
	return newCell(slot, KindRack, index, CellPlain)
}

func newCell(slot Slot, kind CellKind, index int, cellType CellType) (*Cell, error) {
	if err := slot.Claim(); err != nil {
		return nil, err
	}
	return &Cell{
		kind:     kind,
		index:    index,
		cellType: cellType,
		slot:     slot,
	}, nil
}

// Kind returns whether this is a board or rack cell
func (c *Cell) Kind() CellKind { return c.kind }

// Index is the row-major board index, or the rack slot number
func (c *Cell) Index() int { return c.index }

// Type returns the bonus classification. Rack cells are always plain.
func (c *Cell) Type() CellType { return c.cellType }

// Slot returns the visual element owned by this cell
func (c *Cell) Slot() Slot { return c.slot }

// ID returns the identifier of the cell's slot
func (c *Cell) ID() string { return c.slot.ID() }

// Letter returns the cell's letter, or nil if empty
func (c *Cell) Letter() *Letter { return c.letter }

// IsEmpty returns true if the cell holds no letter
func (c *Cell) IsEmpty() bool { return c.letter == nil }

// Selected returns true if the cell is the current input target
func (c *Cell) Selected() bool { return c.selected }

// InProposedMove returns true if the cell shows uncommitted solver content
func (c *Cell) InProposedMove() bool { return c.inProposedMove }

// SetLetter updates the letter and its visual content. nil clears the cell.
func (c *Cell) SetLetter(l *Letter) {
	if l != nil {
		copied := *l
		c.letter = &copied
	} else {
		c.letter = nil
	}

	switch c.kind {
	case KindBoard:
		if c.letter == nil {
			c.slot.SetClass(ClassLetter, false)
			c.slot.ShowText(c.cellType.Placeholder())
			return
		}
		c.slot.SetClass(ClassLetter, true)
		c.slot.ShowLetter(*c.letter, "letter-point-value")
	case KindRack:
		if c.letter == nil {
			c.slot.ShowText("")
			return
		}
		c.slot.ShowLetter(*c.letter, "user-letter-point-value")
	}
}

// ToggleSelected flips the selected flag and its border
func (c *Cell) ToggleSelected() {
	c.selected = !c.selected
	c.slot.SetClass(ClassSelected, c.selected)
}

// ToggleProposedMove flips the proposed-move flag and its border
func (c *Cell) ToggleProposedMove() {
	c.inProposedMove = !c.inProposedMove
	c.slot.SetClass(ClassBestMove, c.inProposedMove)
}
