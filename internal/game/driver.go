// Package game runs a model and its renderers as one cooperative control
// flow that the host advances a suspension point at a time.
package game

import (
	"errors"
	"iter"
	"log"

	"tile-snake/internal/core"
)

// Yield tells the host why Resume returned.
type Yield uint8

const (
	// YieldRender means a renderer has more work for the next resume.
	YieldRender Yield = iota
	// YieldRestart means a game ended and was torn down; the next resume
	// starts a new one.
	YieldRestart
)

func (y Yield) String() string {
	if y == YieldRestart {
		return "restart"
	}
	return "render"
}

type phase uint8

const (
	phaseStart phase = iota
	phaseOpening
	phaseRunning
)

// Driver composes a model, an environment and a renderer factory. K is the
// raw input type stored in the command cell, C the model's command type, U
// its update type and E the environment handed to renderers.
type Driver[K Input[C], C, U, E any] struct {
	model  core.Model[C, U]
	env    E
	create core.RenderFactory[U, E]
	cmd    *CommandCell[K]

	phase  phase
	next   func() (U, bool)
	stop   func()
	active core.Renderer[E]

	cycles int
	steps  int
}

// New builds a driver in its initial state. Nothing runs until the first
// Resume.
func New[K Input[C], C, U, E any](model core.Model[C, U], env E, create core.RenderFactory[U, E]) *Driver[K, C, U, E] {
	return &Driver[K, C, U, E]{
		model:  model,
		env:    env,
		create: create,
		cmd:    &CommandCell[K]{},
	}
}

// Commands returns the cell the host writes input into.
func (d *Driver[K, C, U, E]) Commands() *CommandCell[K] { return d.cmd }

// Cycles returns the number of games that have ended.
func (d *Driver[K, C, U, E]) Cycles() int { return d.cycles }

// Steps returns the number of updates produced by Step in the current game.
func (d *Driver[K, C, U, E]) Steps() int { return d.steps }

// Resume runs until the next suspension point: either the active renderer
// asked for another turn, or a game ended. It never returns on its own
// otherwise, so a renderer that never finishes stalls the host.
func (d *Driver[K, C, U, E]) Resume() Yield {
	for {
		if d.active != nil {
			if d.active.Render(d.env) {
				return YieldRender
			}
			d.active = nil
		}

		switch d.phase {
		case phaseStart:
			d.next, d.stop = iter.Pull(d.model.Initialize())
			d.steps = 0
			d.phase = phaseOpening

		case phaseOpening:
			u, ok := d.next()
			if !ok {
				d.releaseOpening()
				d.phase = phaseRunning
				continue
			}
			d.active = d.create(u, d.env)

		case phaseRunning:
			cmd, ok := d.cmd.Get().Command()
			u, err := d.model.Step(cmd, ok)
			if err != nil {
				d.endGame(err)
				return YieldRestart
			}
			d.steps++
			d.active = d.create(u, d.env)
		}
	}
}

// Close abandons the current game, if any, and tears the model down. The
// driver can be resumed afterwards and starts a fresh game.
func (d *Driver[K, C, U, E]) Close() {
	if d.phase == phaseStart {
		return
	}
	d.active = nil
	d.releaseOpening()
	d.model.TearDown()
	d.phase = phaseStart
}

func (d *Driver[K, C, U, E]) releaseOpening() {
	if d.stop != nil {
		d.stop()
	}
	d.next, d.stop = nil, nil
}

func (d *Driver[K, C, U, E]) endGame(err error) {
	d.cycles++
	if errors.Is(err, core.ErrGameOver) {
		log.Printf("game %d over after %d steps: %v", d.cycles, d.steps, err)
	} else {
		log.Printf("game %d aborted after %d steps: %v", d.cycles, d.steps, err)
	}
	d.model.TearDown()
	d.phase = phaseStart
}
