//go:build ebiten

package app

import (
	"log"
	"time"

	"tile-snake/internal/core"
	"tile-snake/internal/game"
	"tile-snake/internal/render"
	"tile-snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Driver is the driver shape the GUI host runs.
type Driver = game.Driver[core.Key, core.Direction, core.Update, render.DrawGrid]

const hudWidth = 140

type scorer interface {
	Score() int
}

var directionKeys = []struct {
	key  ebiten.Key
	code core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowDown, core.KeyDown},
}

// Game adapts a driver to the ebiten.Game interface. Ebiten calls Update
// at a high fixed rate; the driver is resumed only when the FixedStep timer
// says a frame is due.
type Game struct {
	driver  *Driver
	canvas  *Canvas
	model   any
	name    string
	timer   *core.FixedStep
	hud     *ui.HUD
	overlay *ui.Overlay

	paused bool
}

// New constructs a Game. canvas must be the environment d was built with.
func New(d *Driver, canvas *Canvas, model any, name string, tps, tile int) *Game {
	return &Game{
		driver:  d,
		canvas:  canvas,
		model:   model,
		name:    name,
		timer:   core.NewFixedStep(tps),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(model, tile),
	}
}

// Close abandons the running game.
func (g *Game) Close() { g.driver.Close() }

// Update handles per-frame input and advances the driver.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	for _, dk := range directionKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			g.driver.Commands().Set(dk.code)
		}
	}
	g.overlay.Update()

	if !g.paused && g.timer.ShouldStep(time.Now()) {
		if g.driver.Resume() == game.YieldRestart {
			log.Printf("%s: starting game %d", g.name, g.driver.Cycles()+1)
		}
	}

	stats := ui.Stats{
		Name:   g.name,
		Game:   g.driver.Cycles() + 1,
		Step:   g.driver.Steps(),
		Paused: g.paused,
	}
	if s, ok := g.model.(scorer); ok {
		stats.Score, stats.Scored = s.Score(), true
	}
	g.hud.Update(stats)
	return nil
}

// Draw blits the canvas and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.canvas.Image()
	if img == nil {
		return
	}
	screen.DrawImage(img, nil)
	g.overlay.Draw(screen, g.canvas.Board())
	g.hud.Draw(screen, img.Bounds().Dx(), img.Bounds().Dy())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if img := g.canvas.Image(); img != nil {
		b := img.Bounds()
		return b.Dx() + g.hud.Width(), b.Dy()
	}
	return outsideWidth, outsideHeight
}
