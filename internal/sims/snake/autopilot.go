package snake

import "tile-snake/internal/core"

// Suggest picks a move for the current position: of the moves that do not
// end the game, the one bringing the head closest to the food, keeping the
// heading on ties. With no safe move it keeps the heading.
func (m *Model[B]) Suggest() core.Direction {
	if m.state != stateRunning || len(m.body) == 0 {
		return m.dir
	}
	head := m.body[len(m.body)-1]
	tail := m.body[0]

	best, bestDist := m.dir, -1
	for _, d := range [...]core.Direction{m.dir, m.dir.TurnLeft(), m.dir.TurnRight()} {
		next, ok := core.Inside[B](head.MoveTowards(d), m.grid)
		if !ok {
			continue
		}
		if c := m.grid.At(next); c.IsSnake() && next != tail {
			continue
		}
		if dist := manhattan(next, m.food); bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func manhattan(a, b core.Coordinate) int {
	dx := int(a.X) - int(b.X)
	dy := int(a.Y) - int(b.Y)
	return max(dx, -dx) + max(dy, -dy)
}
