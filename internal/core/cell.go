package core

import "fmt"

// Cell describes what occupies one grid slot. It always fits in a byte.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	// CellOutOfBounds marks index slots that exist only because of gaps in
	// the Z-order layout.
	CellOutOfBounds

	cellSnake Cell = 0x10
	cellDir   Cell = 0x03
)

// SnakeCell returns a body segment pointing towards d.
func SnakeCell(d Direction) Cell { return cellSnake | Cell(d)&cellDir }

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool { return c == CellEmpty }

// IsSnake reports whether a body segment occupies the cell.
func (c Cell) IsSnake() bool { return c&^cellDir == cellSnake }

// Snake returns the heading stored in a body segment.
func (c Cell) Snake() (Direction, bool) {
	if !c.IsSnake() {
		return 0, false
	}
	return Direction(c & cellDir), true
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellFood:
		return "food"
	case CellOutOfBounds:
		return "out-of-bounds"
	}
	if d, ok := c.Snake(); ok {
		return "snake:" + d.String()
	}
	return fmt.Sprintf("cell(%#x)", uint8(c))
}
