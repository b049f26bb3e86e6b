//go:build ebiten

package app

import (
	"image"
	"image/color"

	"tile-snake/internal/audio"
	"tile-snake/internal/core"
	"tile-snake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Canvas is an offscreen ebiten image implementing render.DrawGrid. It keeps
// its pixels between frames so renderers only repaint what changed.
type Canvas struct {
	img    *ebiten.Image
	tile   float32
	size   core.Size
	fill   render.Color
	sounds *audio.Cues
}

// NewCanvas returns an empty canvas. sounds may be nil.
func NewCanvas(sounds *audio.Cues) *Canvas {
	return &Canvas{tile: 1, fill: render.White, sounds: sounds}
}

// Image returns the backing image, or nil before the first Setup.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Board returns the board size in tiles.
func (c *Canvas) Board() core.Size { return c.size }

// TileSize returns the tile edge in pixels.
func (c *Canvas) TileSize() int { return int(c.tile) }

// Setup implements render.DrawGrid.
func (c *Canvas) Setup(tileSize, w, h core.SmallNat) {
	c.tile = float32(max(tileSize, 1))
	c.size = core.Size{W: w, H: h}
	pw, ph := int(w)*int(c.tile), int(h)*int(c.tile)
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == pw && b.Dy() == ph {
			return
		}
		c.img.Dispose()
	}
	c.img = ebiten.NewImage(pw, ph)
}

// Clear implements render.DrawGrid.
func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Fill(render.Black.RGBA())
	}
}

// SetFillColor implements render.DrawGrid.
func (c *Canvas) SetFillColor(col render.Color) render.Color {
	prev := c.fill
	c.fill = col
	return prev
}

// FillTile implements render.DrawGrid.
func (c *Canvas) FillTile(x, y core.SmallNat, dir core.Direction, size render.UnitInterval) {
	c.rect(render.PartialTile(float64(c.tile), x, y, dir, size), c.fill.RGBA())
}

// ClearTile implements render.DrawGrid.
func (c *Canvas) ClearTile(x, y core.SmallNat, dir core.Direction, size render.UnitInterval) {
	c.rect(render.PartialTile(float64(c.tile), x, y, dir, size), render.Black.RGBA())
}

// Circle implements render.DrawGrid. The tile is cleared first so a
// shrinking or growing circle leaves no trace.
func (c *Canvas) Circle(x, y core.SmallNat, radius render.UnitInterval) {
	if c.img == nil {
		return
	}
	c.rect(render.PartialTile(float64(c.tile), x, y, core.East, 1), render.Black.RGBA())
	cx := (float32(x) + 0.5) * c.tile
	cy := (float32(y) + 0.5) * c.tile
	r := float32(radius.Scale(float64(c.tile) / 2))
	if r > 0 {
		vector.DrawFilledCircle(c.img, cx, cy, r, c.fill.RGBA(), true)
	}
}

// ShowGameOver implements render.DrawGrid.
func (c *Canvas) ShowGameOver() {
	if c.img == nil {
		return
	}
	const msg = "GAME OVER"
	face := basicfont.Face7x13
	b := text.BoundString(face, msg)
	bounds := c.img.Bounds()
	x := (bounds.Dx() - b.Dx()) / 2
	y := (bounds.Dy() + b.Dy()) / 2

	pad := 6
	box := image.Rect(x-pad, y-b.Dy()-pad, x+b.Dx()+pad, y+pad)
	vector.DrawFilledRect(c.img, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), color.RGBA{A: 200}, false)
	text.Draw(c.img, msg, face, x, y, c.fill.RGBA())
}

// Cue implements render.Cuer.
func (c *Canvas) Cue(cue render.Cue) {
	if c.sounds == nil {
		return
	}
	switch cue {
	case render.CueEat:
		c.sounds.Play(audio.SoundEat)
	case render.CueGameOver:
		c.sounds.Play(audio.SoundGameOver)
	}
}

func (c *Canvas) rect(r render.Rect, col color.RGBA) {
	if c.img == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}
