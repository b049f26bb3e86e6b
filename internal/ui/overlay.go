//go:build ebiten

package ui

import (
	"image/color"

	"tile-snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type gridProvider interface {
	Grid() *core.Grid
}

// Overlay draws optional debugging visuals on top of the board: tile grid
// lines (G) and the model's raw cell states (D).
type Overlay struct {
	model     any
	tile      int
	showGrid  bool
	showCells bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs an overlay for model. Cell states are only shown for
// models exposing their grid.
func NewOverlay(model any, tile int) *Overlay {
	return &Overlay{model: model, tile: max(tile, 1)}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showCells = !o.showCells
	}
}

// Draw renders the enabled layers for a board of size tiles.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size) {
	if size.W == 0 || size.H == 0 {
		return
	}
	if o.showCells {
		if provider, ok := o.model.(gridProvider); ok {
			o.drawCells(screen, provider.Grid())
		}
	}
	if o.showGrid {
		o.drawGrid(screen, size)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	col := color.RGBA{R: 60, G: 60, B: 70, A: 180}
	tile := float32(o.tile)
	w := float32(size.W) * tile
	h := float32(size.H) * tile
	for x := 0; x <= int(size.W); x++ {
		px := float32(x) * tile
		vector.StrokeLine(screen, px, 0, px, h, 1, col, false)
	}
	for y := 0; y <= int(size.H); y++ {
		py := float32(y) * tile
		vector.StrokeLine(screen, 0, py, w, py, 1, col, false)
	}
}

func (o *Overlay) drawCells(screen *ebiten.Image, g *core.Grid) {
	if g == nil {
		return
	}
	w, h := int(g.Width()), int(g.Height())
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
		o.maskImg = ebiten.NewImage(w, h)
	}
	o.maskBuf = FillCellMask(o.maskBuf, g)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.tile), float64(o.tile))
	screen.DrawImage(o.maskImg, op)
}
