package model

// Board dimensions
const (
	Width  = 15
	Height = 15

	// BoardSize is the number of cells on the board
	BoardSize = Width * Height
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Index returns the row-major index of the position
func (p Position) Index() int {
	return p.Row*Width + p.Col
}

// InBounds returns true if the position is on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Height && p.Col >= 0 && p.Col < Width
}

// PositionOf converts a row-major index back to a Position
func PositionOf(index int) Position {
	return Position{Row: index / Width, Col: index % Width}
}
