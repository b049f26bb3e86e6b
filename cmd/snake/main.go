//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tile-snake/internal/app"
	"tile-snake/internal/audio"
	"tile-snake/internal/core"
	"tile-snake/internal/game"
	"tile-snake/internal/render"
	_ "tile-snake/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Games()[cfg.Model]
	if !ok {
		log.Fatalf("unknown model %q (have %v)", cfg.Model, core.GameNames())
	}
	opts, err := cfg.ModelOptions()
	if err != nil {
		log.Fatal(err)
	}
	model := factory(opts)

	var sounds *audio.Cues
	if !cfg.Mute {
		sounds = audio.NewCues()
		if err := sounds.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
		defer sounds.Close()
	}

	canvas := app.NewCanvas(sounds)
	driver := game.New[core.Key, core.Direction, core.Update, render.DrawGrid](model, canvas, render.NewTiles(cfg.RenderOptions()))
	g := app.New(driver, canvas, model, cfg.Model, cfg.TPS, cfg.Tile)
	defer g.Close()

	ebiten.SetWindowTitle("tile-snake: " + cfg.Model)
	ebiten.SetWindowSize(cfg.Width*cfg.Tile+140, cfg.Height*cfg.Tile)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
