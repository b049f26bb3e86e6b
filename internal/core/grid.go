package core

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

// Size describes the dimensions of a grid in tiles.
type Size struct {
	W SmallNat
	H SmallNat
}

// Grid stores one Cell per tile in Z-order so that neighbouring tiles stay
// close in memory. The backing slice covers every index up to the code of
// (W-1, H-1); slots that decode outside the rectangle hold CellOutOfBounds.
type Grid struct {
	w, h  SmallNat
	cells []Cell
}

// NewGrid allocates an all-empty grid. Zero dimensions are raised to 1.
func NewGrid(w, h SmallNat) *Grid {
	w = max(w, 1)
	h = max(h, 1)
	cells := make([]Cell, Coordinate{X: w - 1, Y: h - 1}.index()+1)
	for i := range cells {
		cells[i] = CellOutOfBounds
	}
	g := &Grid{w: w, h: h, cells: cells}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() SmallNat { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() SmallNat { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Contains reports whether c lies inside the logical rectangle.
func (g *Grid) Contains(c Coordinate) bool { return c.X < g.w && c.Y < g.h }

// At returns the cell at c, or CellOutOfBounds for coordinates outside the
// rectangle.
func (g *Grid) At(c Coordinate) Cell {
	if !g.Contains(c) {
		return CellOutOfBounds
	}
	return g.cells[c.index()]
}

// Set writes v at c. Writing outside the rectangle, or writing the
// out-of-bounds marker, is a programming error and panics.
func (g *Grid) Set(c Coordinate, v Cell) {
	if !g.Contains(c) {
		panic(fmt.Sprintf("core: write at %v outside %dx%d grid", c, g.w, g.h))
	}
	if v == CellOutOfBounds {
		panic(fmt.Sprintf("core: out-of-bounds marker written at %v", c))
	}
	g.cells[c.index()] = v
}

// Clear resets every tile to CellEmpty without reallocating.
func (g *Grid) Clear() {
	for y := SmallNat(0); y < g.h; y++ {
		for x := SmallNat(0); x < g.w; x++ {
			g.cells[Coordinate{X: x, Y: y}.index()] = CellEmpty
		}
	}
}

// RandomCoordinate samples a tile uniformly using r.
func (g *Grid) RandomCoordinate(r *rand.Rand) Coordinate {
	return Coordinate{
		X: SmallNat(r.IntN(int(g.w))),
		Y: SmallNat(r.IntN(int(g.h))),
	}
}

// All yields every tile of the rectangle in row-major order.
func (g *Grid) All() iter.Seq2[Coordinate, Cell] {
	return func(yield func(Coordinate, Cell) bool) {
		for y := SmallNat(0); y < g.h; y++ {
			for x := SmallNat(0); x < g.w; x++ {
				c := Coordinate{X: x, Y: y}
				if !yield(c, g.cells[c.index()]) {
					return
				}
			}
		}
	}
}

// GridBuilder accumulates sparse (coordinate, cell) entries. The grid's size
// is inferred from the largest x and y seen.
type GridBuilder struct {
	cells      []Cell
	xMax, yMax SmallNat
}

// NewGridBuilder returns a builder holding a single empty tile.
func NewGridBuilder() *GridBuilder {
	return &GridBuilder{cells: []Cell{CellEmpty}}
}

// Add stores v at c, growing the backing storage as needed. A later entry
// for the same coordinate replaces the earlier one. The grid's size is one
// past the largest coordinate, so an axis value of math.MaxUint16 cannot be
// stored and panics.
func (b *GridBuilder) Add(c Coordinate, v Cell) {
	if v == CellOutOfBounds {
		panic(fmt.Sprintf("core: out-of-bounds marker added at %v", c))
	}
	if c.X == math.MaxUint16 || c.Y == math.MaxUint16 {
		panic(fmt.Sprintf("core: %v leaves no room for the grid size", c))
	}
	b.xMax = max(b.xMax, c.X)
	b.yMax = max(b.yMax, c.Y)
	need := Coordinate{X: b.xMax, Y: b.yMax}.index() + 1
	for len(b.cells) < need {
		b.cells = append(b.cells, CellEmpty)
	}
	b.cells[c.index()] = v
}

// Build finalises the grid. Slots created during growth that decode outside
// the final rectangle are marked out of bounds. The builder must not be used
// afterwards.
func (b *GridBuilder) Build() *Grid {
	for i := range b.cells {
		c := coordinateAt(i)
		if c.X > b.xMax || c.Y > b.yMax {
			b.cells[i] = CellOutOfBounds
		}
	}
	g := &Grid{w: b.xMax + 1, h: b.yMax + 1, cells: b.cells}
	b.cells = nil
	return g
}

// CollectGrid builds a grid from a sequence of entries.
func CollectGrid(seq iter.Seq2[Coordinate, Cell]) *Grid {
	b := NewGridBuilder()
	for c, v := range seq {
		b.Add(c, v)
	}
	return b.Build()
}
