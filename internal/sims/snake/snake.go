// Package snake implements the classic snake game as a core.Model.
package snake

import (
	"fmt"
	"iter"

	"tile-snake/internal/core"
	pcore "tile-snake/pkg/core"
)

type state uint8

const (
	stateIdle state = iota
	stateRunning
	stateDying
)

// Model is a single snake on a board whose edges are resolved by B: with
// core.Wrap the board is a torus, with core.Clip the edges are walls.
type Model[B core.Bound] struct {
	cfg  Config
	grid *core.Grid
	rng  *pcore.RNG

	// body runs from tail to head.
	body   []core.Coordinate
	dir    core.Direction
	food   core.Coordinate
	score  int
	state  state
	reason string
}

// New returns a model for cfg. The board is allocated on first Initialize.
func New[B core.Bound](cfg Config) *Model[B] {
	cfg.Width = min(max(cfg.Width, 1), maxSide)
	cfg.Height = min(max(cfg.Height, 1), maxSide)
	cfg.Length = min(max(cfg.Length, 1), cfg.Width/2+1)
	return &Model[B]{cfg: cfg, rng: pcore.NewRNG(cfg.Seed)}
}

// Grid exposes the board.
func (m *Model[B]) Grid() *core.Grid { return m.grid }

// Body returns a copy of the segments from tail to head.
func (m *Model[B]) Body() []core.Coordinate { return append([]core.Coordinate(nil), m.body...) }

// Heading returns the current direction of travel.
func (m *Model[B]) Heading() core.Direction { return m.dir }

// Food returns the position of the food.
func (m *Model[B]) Food() core.Coordinate { return m.food }

// Score returns the number of food items eaten this game.
func (m *Model[B]) Score() int { return m.score }

// Initialize lays out a fresh board. The returned sequence draws it: a setup
// update, one update per body segment from tail to head, then the food.
func (m *Model[B]) Initialize() iter.Seq[core.Update] {
	m.reset()
	body := m.Body()
	dir := m.dir
	food, hasFood := m.food, m.grid.At(m.food) == core.CellFood
	size := m.grid.Size()

	return func(yield func(core.Update) bool) {
		if !yield(core.Update{Setup: &size}) {
			return
		}
		for _, c := range body {
			u := core.Update{Tiles: []core.TileChange{{At: c, Dir: dir, Op: core.TileGrow}}}
			if !yield(u) {
				return
			}
		}
		if hasFood {
			yield(core.Update{Tiles: []core.TileChange{{At: food, Op: core.TileFood}}})
		}
	}
}

func (m *Model[B]) reset() {
	if m.grid == nil {
		m.grid = core.NewGrid(core.SmallNat(m.cfg.Width), core.SmallNat(m.cfg.Height))
	} else {
		m.grid.Clear()
	}

	// Every game with the same seed gets the same food sequence.
	m.rng.Rewind()
	m.dir = core.East
	m.score = 0
	m.reason = ""
	m.body = m.body[:0]

	head := core.C(m.grid.Width()/2, m.grid.Height()/2)
	for i := m.cfg.Length - 1; i >= 0; i-- {
		c := core.C(head.X-core.SmallNat(i), head.Y)
		m.grid.Set(c, core.SnakeCell(m.dir))
		m.body = append(m.body, c)
	}

	if food, ok := m.placeFood(); ok {
		m.food = food
	}
	m.state = stateRunning
}

// Step advances the snake by one tile. A command reversing the heading is
// ignored. A fatal move produces one final update with GameOver set; the
// step after that returns core.ErrGameOver.
func (m *Model[B]) Step(cmd core.Direction, ok bool) (core.Update, error) {
	switch m.state {
	case stateIdle:
		return core.Update{}, fmt.Errorf("%w: not initialised", core.ErrGameOver)
	case stateDying:
		return core.Update{}, fmt.Errorf("%w: %s (score %d)", core.ErrGameOver, m.reason, m.score)
	}

	turned := false
	if ok && cmd != m.dir && cmd != m.dir.Opposite() {
		turned = true
		m.dir = cmd
	}

	head := m.body[len(m.body)-1]
	next, inside := core.Inside[B](head.MoveTowards(m.dir), m.grid)
	if !inside {
		return m.die(fmt.Sprintf("hit the wall at %v heading %v", head, m.dir)), nil
	}

	tail := m.body[0]
	target := m.grid.At(next)
	if target.IsSnake() && next != tail {
		return m.die(fmt.Sprintf("bit itself at %v", next)), nil
	}
	ate := target == core.CellFood

	u := core.Update{Score: m.score}
	m.grid.Set(head, core.SnakeCell(m.dir))
	if !ate {
		tailDir, _ := m.grid.At(tail).Snake()
		m.grid.Set(tail, core.CellEmpty)
		m.body = m.body[1:]
		u.Tiles = append(u.Tiles, core.TileChange{At: tail, Dir: tailDir, Op: core.TileShrink})
	}
	if turned && len(m.body) > 0 {
		// The old head becomes a corner pointing the new way.
		u.Tiles = append(u.Tiles, core.TileChange{At: head, Dir: m.dir, Op: core.TileFill})
	}
	m.grid.Set(next, core.SnakeCell(m.dir))
	m.body = append(m.body, next)
	u.Tiles = append(u.Tiles, core.TileChange{At: next, Dir: m.dir, Op: core.TileGrow})

	if ate {
		m.score++
		u.Score = m.score
		u.Ate = true
		food, ok := m.placeFood()
		if !ok {
			m.state = stateDying
			m.reason = "board full"
			u.GameOver = true
			return u, nil
		}
		m.food = food
		u.Tiles = append(u.Tiles, core.TileChange{At: food, Op: core.TileFood})
	}
	return u, nil
}

func (m *Model[B]) die(reason string) core.Update {
	m.state = stateDying
	m.reason = reason
	return core.Update{Score: m.score, GameOver: true}
}

// placeFood drops food on a random empty tile.
func (m *Model[B]) placeFood() (core.Coordinate, bool) {
	r := m.rng.Source()
	for attempt := 0; attempt < 32; attempt++ {
		c := m.grid.RandomCoordinate(r)
		if m.grid.At(c).IsEmpty() {
			m.grid.Set(c, core.CellFood)
			return c, true
		}
	}

	var free []core.Coordinate
	for c, v := range m.grid.All() {
		if v.IsEmpty() {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Coordinate{}, false
	}
	c := free[r.IntN(len(free))]
	m.grid.Set(c, core.CellFood)
	return c, true
}

// TearDown clears the board in place. It is safe to call repeatedly and
// before Initialize.
func (m *Model[B]) TearDown() {
	if m.grid != nil {
		m.grid.Clear()
	}
	m.body = m.body[:0]
	m.state = stateIdle
}

func init() {
	core.Register("snake", func(cfg map[string]string) core.Game {
		return New[core.Wrap](FromMap(cfg))
	})
	core.Register("snake-walled", func(cfg map[string]string) core.Game {
		return New[core.Clip](FromMap(cfg))
	})
}
