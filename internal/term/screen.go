// Package term hosts games in a terminal through tcell. Every tile is two
// columns wide so that square tiles look square in most fonts.
package term

import (
	"math"

	"tile-snake/internal/audio"
	"tile-snake/internal/core"
	"tile-snake/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	tileCols   = 2
	background = render.Black
)

// Sounds plays audio cues. *audio.Cues satisfies it.
type Sounds interface {
	Play(s audio.Sound)
}

// Screen is a render.DrawGrid drawing tiles as block glyphs on a tcell
// screen. The board is anchored at the top-left corner; the row below it is
// left for the status line.
type Screen struct {
	screen tcell.Screen
	sounds Sounds

	w, h core.SmallNat
	fill render.Color
}

// NewScreen wraps an initialised tcell screen. sounds may be nil.
func NewScreen(s tcell.Screen, sounds Sounds) *Screen {
	return &Screen{screen: s, sounds: sounds, fill: render.White}
}

// Board returns the current board size in tiles.
func (s *Screen) Board() core.Size { return core.Size{W: s.w, H: s.h} }

// Setup implements render.DrawGrid. Terminal cells have a fixed size, so
// tileSize is ignored.
func (s *Screen) Setup(_ core.SmallNat, w, h core.SmallNat) {
	s.w, s.h = w, h
}

// Clear implements render.DrawGrid.
func (s *Screen) Clear() {
	s.screen.Clear()
	st := style(background, background)
	for y := 0; y < int(s.h); y++ {
		for x := 0; x < int(s.w)*tileCols; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// SetFillColor implements render.DrawGrid.
func (s *Screen) SetFillColor(c render.Color) render.Color {
	prev := s.fill
	s.fill = c
	return prev
}

// FillTile implements render.DrawGrid.
func (s *Screen) FillTile(x, y core.SmallNat, dir core.Direction, size render.UnitInterval) {
	s.put(x, y, partial(dir, size))
}

// ClearTile implements render.DrawGrid. The part of the tile not cleared
// keeps the fill colour.
func (s *Screen) ClearTile(x, y core.SmallNat, dir core.Direction, size render.UnitInterval) {
	s.put(x, y, partial(dir.Opposite(), render.Unit(1-float64(size))))
}

// Circle implements render.DrawGrid.
func (s *Screen) Circle(x, y core.SmallNat, radius render.UnitInterval) {
	switch {
	case radius <= 0:
		s.put(x, y, [tileCols]rune{' ', ' '})
	case radius < 0.5:
		s.put(x, y, [tileCols]rune{'▗', '▖'})
	default:
		s.put(x, y, [tileCols]rune{'▐', '▌'})
	}
}

// ShowGameOver implements render.DrawGrid.
func (s *Screen) ShowGameOver() {
	s.Caption(int(s.h)/2, "GAME OVER")
}

// Caption writes msg centred on row y of the board in the fill colour.
func (s *Screen) Caption(y int, msg string) {
	width := int(s.w) * tileCols
	x := max((width-len(msg))/2, 0)
	st := style(s.fill, background)
	for i, r := range msg {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
}

// Status replaces the line under the board.
func (s *Screen) Status(msg string) {
	y := int(s.h)
	width, _ := s.screen.Size()
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	col := 0
	for _, r := range msg {
		s.screen.SetContent(col, y, r, nil, st)
		col++
	}
	for ; col < width; col++ {
		s.screen.SetContent(col, y, ' ', nil, tcell.StyleDefault)
	}
}

// Cue implements render.Cuer.
func (s *Screen) Cue(c render.Cue) {
	if s.sounds == nil {
		return
	}
	switch c {
	case render.CueEat:
		s.sounds.Play(audio.SoundEat)
	case render.CueGameOver:
		s.sounds.Play(audio.SoundGameOver)
	}
}

func (s *Screen) put(x, y core.SmallNat, glyphs [tileCols]rune) {
	if x >= s.w || y >= s.h {
		return
	}
	st := style(s.fill, background)
	for i, r := range glyphs {
		s.screen.SetContent(int(x)*tileCols+i, int(y), r, nil, st)
	}
}

// partial returns the glyphs covering size of a tile, growing along dir.
// Horizontal fills step by whole columns, vertical fills by half rows.
func partial(dir core.Direction, size render.UnitInterval) [tileCols]rune {
	n := int(math.Round(size.Scale(tileCols)))
	switch dir {
	case core.East, core.West:
		var g [tileCols]rune
		for i := range g {
			col := i
			if dir == core.West {
				col = tileCols - 1 - i
			}
			g[col] = ' '
			if i < n {
				g[col] = '█'
			}
		}
		return g
	}

	r := ' '
	switch {
	case n >= 2:
		r = '█'
	case n == 1 && dir == core.South:
		r = '▀'
	case n == 1:
		r = '▄'
	}
	return [tileCols]rune{r, r}
}

func style(fg, bg render.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
}

func rgb(c render.Color) tcell.Color {
	v := c.RGBA()
	return tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
}
