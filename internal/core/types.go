package core

import (
	"errors"
	"iter"
	"sort"
)

// ErrGameOver is returned by Model.Step once the game has ended.
var ErrGameOver = errors.New("game over")

// Model is the contract a game implements for the driver.
//
// Initialize starts a new game and returns the updates that draw its opening
// state; the driver consumes them lazily. Step advances one tick given the
// latest command, if any. Any error from Step ends the game. TearDown runs
// once per game after it ends and must tolerate a game that never finished
// initialising.
type Model[C, U any] interface {
	Initialize() iter.Seq[U]
	Step(cmd C, ok bool) (U, error)
	TearDown()
}

// Renderer paints a single update incrementally. Render reports true while
// more work remains; after the first false the renderer is exhausted.
type Renderer[E any] interface {
	Render(env E) bool
}

// RenderFactory builds the renderer for one update.
type RenderFactory[U, E any] func(u U, env E) Renderer[E]

// Game is the model shape shared by the registered games.
type Game = Model[Direction, Update]

// Factory constructs a Game using an optional configuration map.
type Factory func(cfg map[string]string) Game

var games = map[string]Factory{}

// Register adds a game factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	games[name] = f
}

// Games exposes the registry of available game factories.
func Games() map[string]Factory {
	return games
}

// GameNames lists the registered names in sorted order.
func GameNames() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
