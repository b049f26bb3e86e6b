// Package render turns model updates into drawing calls on a tile surface.
package render

import (
	"math"

	"tile-snake/internal/core"
)

// DrawGrid is the drawing surface renderers paint on. Positions are in
// tiles; fractional sizes select the part of a tile to touch.
type DrawGrid interface {
	// Setup (re)allocates a surface of w×h tiles of tileSize pixels.
	Setup(tileSize, w, h core.SmallNat)
	Clear()
	// SetFillColor changes the fill colour and returns the previous one.
	SetFillColor(c Color) Color
	FillTile(x, y core.SmallNat, dir core.Direction, size UnitInterval)
	ClearTile(x, y core.SmallNat, dir core.Direction, size UnitInterval)
	Circle(x, y core.SmallNat, radius UnitInterval)
	ShowGameOver()
}

// Cue is a one-shot event a surface may want to announce, e.g. with sound.
type Cue uint8

const (
	CueEat Cue = iota
	CueGameOver
)

// Cuer is implemented by surfaces that react to cues.
type Cuer interface {
	Cue(c Cue)
}

// UnitInterval is a fraction in [0, 1].
type UnitInterval float64

// Unit clamps v into [0, 1].
func Unit(v float64) UnitInterval {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return UnitInterval(v)
}

// Scale returns the fraction of full.
func (u UnitInterval) Scale(full float64) float64 { return float64(u) * full }

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// PartialTile returns the part of tile (x, y) covered by a fill of the given
// size growing along dir. An eastward fill starts at the tile's west edge,
// a northward fill at its south edge, and so on.
func PartialTile(tileSize float64, x, y core.SmallNat, dir core.Direction, size UnitInterval) Rect {
	x0 := float64(x) * tileSize
	y0 := float64(y) * tileSize
	long := tileSize
	short := size.Scale(tileSize)

	switch dir {
	case core.East:
		return Rect{X: x0, Y: y0, W: short, H: long}
	case core.West:
		return Rect{X: x0 + long - short, Y: y0, W: short, H: long}
	case core.South:
		return Rect{X: x0, Y: y0, W: long, H: short}
	default:
		return Rect{X: x0, Y: y0 + long - short, W: long, H: short}
	}
}
