package render

import "tile-snake/internal/core"

// Options configures the Tiles renderer.
type Options struct {
	TileSize core.SmallNat
	// Frames is the number of animation frames per update.
	Frames int
	// Hold is the number of extra frames the game-over caption stays up.
	Hold int

	Snake   Color
	Food    Color
	Caption Color
}

// DefaultOptions returns the standard look.
func DefaultOptions() Options {
	return Options{
		TileSize: 16,
		Frames:   4,
		Hold:     24,
		Snake:    Green,
		Food:     Red,
		Caption:  White,
	}
}

// NewTiles returns a factory building one Tiles renderer per update.
func NewTiles(opts Options) core.RenderFactory[core.Update, DrawGrid] {
	opts.Frames = max(opts.Frames, 1)
	opts.Hold = max(opts.Hold, 0)
	opts.TileSize = max(opts.TileSize, 1)
	return func(u core.Update, _ DrawGrid) core.Renderer[DrawGrid] {
		total := opts.Frames
		if u.GameOver {
			total += opts.Hold
		}
		return &Tiles{u: u, opts: opts, total: total}
	}
}

// Tiles animates one update: each call paints the next frame and reports
// true, and the call after the last frame reports false without drawing.
type Tiles struct {
	u     core.Update
	opts  Options
	frame int
	total int
}

// Render implements core.Renderer.
func (t *Tiles) Render(env DrawGrid) bool {
	if t.frame >= t.total {
		return false
	}
	if t.frame == 0 {
		t.begin(env)
	}
	t.frame++
	if t.frame <= t.opts.Frames {
		t.paint(env, Unit(float64(t.frame)/float64(t.opts.Frames)))
	}
	return true
}

func (t *Tiles) begin(env DrawGrid) {
	if s := t.u.Setup; s != nil {
		env.Setup(t.opts.TileSize, s.W, s.H)
		env.Clear()
	}
	if cuer, ok := env.(Cuer); ok {
		if t.u.Ate {
			cuer.Cue(CueEat)
		}
		if t.u.GameOver {
			cuer.Cue(CueGameOver)
		}
	}
}

func (t *Tiles) paint(env DrawGrid, progress UnitInterval) {
	prev := env.SetFillColor(t.opts.Snake)
	for _, tc := range t.u.Tiles {
		x, y := tc.At.X, tc.At.Y
		switch tc.Op {
		case core.TileGrow:
			env.FillTile(x, y, tc.Dir, progress)
		case core.TileShrink:
			env.ClearTile(x, y, tc.Dir, progress)
		case core.TileFood:
			env.SetFillColor(t.opts.Food)
			env.Circle(x, y, progress)
			env.SetFillColor(t.opts.Snake)
		case core.TileFill:
			env.FillTile(x, y, tc.Dir, 1)
		}
	}
	if t.u.GameOver && t.frame == t.opts.Frames {
		env.SetFillColor(t.opts.Caption)
		env.ShowGameOver()
	}
	env.SetFillColor(prev)
}
