package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tile-snake/internal/app"
	"tile-snake/internal/audio"
	"tile-snake/internal/core"
	"tile-snake/internal/game"
	"tile-snake/internal/render"
	_ "tile-snake/internal/sims/snake"
	"tile-snake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file instead of discarding it")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal from here on.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var sounds term.Sounds
	if !cfg.Mute {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
		defer cues.Close()
		sounds = cues
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface := term.NewScreen(screen, sounds)
	driver := game.New[core.Key, core.Direction, core.Update, render.DrawGrid](model, surface, render.NewTiles(cfg.RenderOptions()))
	host := term.NewHost(screen, surface, driver, model, cfg.Model, cfg.TPS)

	err = host.Run(ctx)
	driver.Close()
	screen.Fini()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
