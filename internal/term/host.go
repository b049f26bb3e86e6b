package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"tile-snake/internal/core"
	"tile-snake/internal/game"
	"tile-snake/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Driver is the driver shape the terminal host runs.
type Driver = game.Driver[core.Key, core.Direction, core.Update, render.DrawGrid]

type scorer interface {
	Score() int
}

// Host pumps terminal events into a driver and resumes it at a fixed rate.
type Host struct {
	screen  tcell.Screen
	surface *Screen
	driver  *Driver
	model   any
	name    string
	timer   *core.FixedStep
	paused  bool
}

// NewHost wires a driver to a terminal. surface must be the environment
// the driver was built with. model is only consulted for status details.
func NewHost(screen tcell.Screen, surface *Screen, d *Driver, model any, name string, tps int) *Host {
	return &Host{
		screen:  screen,
		surface: surface,
		driver:  d,
		model:   model,
		name:    name,
		timer:   core.NewFixedStep(tps),
	}
}

// Run blocks until ctx is done or the player quits.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.timer.Step())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.Tick(now)
		}
	}
}

// Tick resumes the driver if a step is due at now and flushes the screen.
func (h *Host) Tick(now time.Time) {
	if h.paused || !h.timer.ShouldStep(now) {
		return
	}
	if h.driver.Resume() == game.YieldRestart {
		log.Printf("%s: starting game %d", h.name, h.driver.Cycles()+1)
	}
	h.surface.Status(h.status())
	h.screen.Show()
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, key := Translate(ev)
		switch action {
		case ActionQuit:
			return false
		case ActionPause:
			h.paused = !h.paused
			h.surface.Status(h.status())
			h.screen.Show()
		case ActionKey:
			h.driver.Commands().Set(key)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) status() string {
	msg := fmt.Sprintf("%s  game %d  step %d", h.name, h.driver.Cycles()+1, h.driver.Steps())
	if s, ok := h.model.(scorer); ok {
		msg += fmt.Sprintf("  score %d", s.Score())
	}
	if h.paused {
		msg += "  [paused]"
	}
	return msg
}
