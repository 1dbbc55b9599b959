package model

import "unicode"

// Wildcard is the blank tile symbol. It is always worth zero points.
const Wildcard = '?'

// LetterTable maps each tile symbol to its point value
var LetterTable = map[rune]int{
	'A': 1, 'B': 4, 'C': 4, 'D': 2, 'E': 1, 'F': 4, 'G': 3,
	'H': 3, 'I': 1, 'J': 10, 'K': 5, 'L': 2, 'M': 4, 'N': 2,
	'O': 1, 'P': 4, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 2,
	'V': 5, 'W': 4, 'X': 8, 'Y': 3, 'Z': 10,
	Wildcard: 0,
}

// Letter is a tile symbol together with its point value
type Letter struct {
	Symbol rune
	Value  int
}

// LookupLetter returns the Letter for a symbol, normalising to uppercase
func LookupLetter(symbol rune) (Letter, error) {
	upper := unicode.ToUpper(symbol)
	value, ok := LetterTable[upper]
	if !ok {
		return Letter{}, ErrInvalidLetter
	}
	return Letter{Symbol: upper, Value: value}, nil
}

// MustLetter is LookupLetter for symbols known to be in the table
func MustLetter(symbol rune) Letter {
	l, err := LookupLetter(symbol)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the symbol as a string
func (l Letter) String() string {
	return string(l.Symbol)
}
