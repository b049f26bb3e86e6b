package game

import (
	"iter"

	"tile-snake/internal/core"
)

// Empty is a model with no opening and no moves: every step ends the game.
type Empty[C, U any] struct{}

// Initialize implements core.Model.
func (Empty[C, U]) Initialize() iter.Seq[U] {
	return func(func(U) bool) {}
}

// Step implements core.Model.
func (Empty[C, U]) Step(C, bool) (U, error) {
	var zero U
	return zero, core.ErrGameOver
}

// TearDown implements core.Model.
func (Empty[C, U]) TearDown() {}

// Replay plays back a recorded list of updates, one per step, ignoring
// commands. The game ends when the recording runs out.
type Replay[C, U any] struct {
	updates []U
	index   int
}

// NewReplay returns a replay of updates.
func NewReplay[C, U any](updates []U) *Replay[C, U] {
	return &Replay[C, U]{updates: updates}
}

// Initialize implements core.Model. It rewinds to the first update.
func (r *Replay[C, U]) Initialize() iter.Seq[U] {
	r.index = 0
	return func(func(U) bool) {}
}

// Step implements core.Model.
func (r *Replay[C, U]) Step(C, bool) (U, error) {
	if r.index >= len(r.updates) {
		var zero U
		return zero, core.ErrGameOver
	}
	u := r.updates[r.index]
	r.index++
	return u, nil
}

// TearDown implements core.Model.
func (r *Replay[C, U]) TearDown() {}
