package layout

import "github.com/mcoot/wordboard/internal/model"

// StandardPremiums is the usual 15x15 bonus square layout.
// = triple word, - double word, " triple letter, ' double letter, * start.
var StandardPremiums = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// DefaultRackSize is the number of rack slots on the standard page
const DefaultRackSize = 7

// Slot classes used to tag cell types in the page
const (
	classBoardCell    = "game-board-cell"
	classRackCell     = "user-letter"
	classStart        = "start-cell"
	classDoubleLetter = "double-letter"
	classTripleLetter = "triple-letter"
	classDoubleWord   = "double-word"
	classTripleWord   = "triple-word"
	classHidden       = "hidden"
)

// premiumClass maps a premium marker to the class the page tags it with
func premiumClass(marker rune) string {
	switch marker {
	case '*':
		return classStart
	case '\'':
		return classDoubleLetter
	case '"':
		return classTripleLetter
	case '-':
		return classDoubleWord
	case '=':
		return classTripleWord
	default:
		return ""
	}
}

// classifications is checked in order; a later match overrides an earlier one
var classifications = []struct {
	class    string
	cellType model.CellType
}{
	{classStart, model.CellStart},
	{classDoubleLetter, model.CellDoubleLetter},
	{classTripleLetter, model.CellTripleLetter},
	{classDoubleWord, model.CellDoubleWord},
	{classTripleWord, model.CellTripleWord},
}
