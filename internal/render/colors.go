package render

import "image/color"

// Color is a palette entry understood by every DrawGrid.
type Color uint8

const (
	Black Color = iota
	White
	Green
	Red
	Gray
)

var palette = [...]color.RGBA{
	Black: {R: 0, G: 0, B: 0, A: 255},
	White: {R: 240, G: 240, B: 240, A: 255},
	Green: {R: 70, G: 160, B: 80, A: 255},
	Red:   {R: 220, G: 60, B: 50, A: 255},
	Gray:  {R: 130, G: 130, B: 130, A: 255},
}

// RGBA returns the palette colour. Unknown entries map to black.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Black]
	}
	return palette[c]
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Green:
		return "green"
	case Red:
		return "red"
	case Gray:
		return "gray"
	}
	return "unknown"
}
