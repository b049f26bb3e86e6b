package core

import (
	"cmp"
	"fmt"
)

// SmallNat is the integer type of a single grid axis.
type SmallNat = uint16

// Direction is one of the four grid headings.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// TurnLeft rotates the heading a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case South:
		return East
	case East:
		return North
	default:
		return South
	}
}

// TurnRight rotates the heading a quarter turn clockwise.
func (d Direction) TurnRight() Direction { return d.Opposite().TurnLeft() }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Coordinate addresses one tile. Y grows downwards.
type Coordinate struct {
	X, Y SmallNat
}

// C is a convenience constructor for Coordinate.
func C(x, y SmallNat) Coordinate { return Coordinate{X: x, Y: y} }

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// MoveTowards offsets c by one tile. The result may lie outside any grid and
// must be resolved by a Bound before it is used.
func (c Coordinate) MoveTowards(d Direction) Tentative {
	t := Tentative{x: int32(c.X), y: int32(c.Y)}
	switch d {
	case North:
		t.y--
	case South:
		t.y++
	case East:
		t.x++
	default:
		t.x--
	}
	return t
}

// Compare orders coordinates by the product order. ok is false when the two
// axes disagree, in which case the coordinates are incomparable.
func (c Coordinate) Compare(o Coordinate) (order int, ok bool) {
	ox := cmp.Compare(c.X, o.X)
	oy := cmp.Compare(c.Y, o.Y)
	switch {
	case ox == 0:
		return oy, true
	case oy == 0:
		return ox, true
	case ox == oy:
		return ox, true
	}
	return 0, false
}

// index is the Z-order (Morton) code of c: x occupies the even bits and y the
// odd bits. It is monotonic in both axes.
func (c Coordinate) index() int {
	return int(spreadBits(c.X) | spreadBits(c.Y)<<1)
}

func coordinateAt(i int) Coordinate {
	n := uint32(i)
	return Coordinate{X: compactBits(n), Y: compactBits(n >> 1)}
}

func spreadBits(v SmallNat) uint32 {
	n := uint32(v)
	n = (n | n<<8) & 0x00ff00ff
	n = (n | n<<4) & 0x0f0f0f0f
	n = (n | n<<2) & 0x33333333
	n = (n | n<<1) & 0x55555555
	return n
}

func compactBits(n uint32) SmallNat {
	n &= 0x55555555
	n = (n | n>>1) & 0x33333333
	n = (n | n>>2) & 0x0f0f0f0f
	n = (n | n>>4) & 0x00ff00ff
	n = (n | n>>8) & 0x0000ffff
	return SmallNat(n)
}

// Tentative is a coordinate produced by an unchecked move. Its axes are
// signed and wider than SmallNat, so a step off either end of the axis range
// is still representable. Its value is only reachable through Wrap, Clip or a
// Bound.
type Tentative struct {
	x, y int32
}

func (t Tentative) String() string { return fmt.Sprintf("(%d,%d)?", t.x, t.y) }

// Wrap reduces t onto a w×h torus. w and h must be positive.
func (t Tentative) Wrap(w, h SmallNat) Coordinate {
	return Coordinate{X: wrapAxis(t.x, w), Y: wrapAxis(t.y, h)}
}

// Clip returns t unchanged when it already lies inside w×h.
func (t Tentative) Clip(w, h SmallNat) (Coordinate, bool) {
	if t.x < 0 || t.y < 0 || t.x >= int32(w) || t.y >= int32(h) {
		return Coordinate{}, false
	}
	return Coordinate{X: SmallNat(t.x), Y: SmallNat(t.y)}, true
}

func wrapAxis(v int32, n SmallNat) SmallNat {
	m := int32(n)
	return SmallNat(((v % m) + m) % m)
}
