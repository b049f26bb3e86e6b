package ui

import (
	"image/color"

	"tile-snake/internal/core"
)

// CellTint returns the debug overlay colour for a cell. Empty cells are
// fully transparent.
func CellTint(c core.Cell) color.RGBA {
	switch {
	case c.IsSnake():
		d, _ := c.Snake()
		// Heading shades let the overlay show which way each segment points.
		shade := uint8(100 + 40*uint8(d))
		return color.RGBA{R: 40, G: shade, B: 220, A: 140}
	case c == core.CellFood:
		return color.RGBA{R: 255, G: 200, B: 40, A: 160}
	case c == core.CellOutOfBounds:
		return color.RGBA{R: 255, A: 200}
	}
	return color.RGBA{}
}

// FillCellMask writes one RGBA pixel per grid cell into buf in row-major
// order, growing buf when needed, and returns it.
func FillCellMask(buf []byte, g *core.Grid) []byte {
	total := int(g.Width()) * int(g.Height()) * 4
	if cap(buf) < total {
		buf = make([]byte, total)
	}
	buf = buf[:total]
	i := 0
	for _, cell := range g.All() {
		col := CellTint(cell)
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
		i += 4
	}
	return buf
}
