package snake

import (
	"testing"

	"tile-snake/internal/core"
)

func TestSuggestHeadsForFood(t *testing.T) {
	m := New[core.Clip](testConfig(5, 5, 2))
	collect(m.Initialize())

	moveFood(m, core.C(2, 0))
	if got := m.Suggest(); got != core.North {
		t.Fatalf("food to the north: Suggest = %v", got)
	}

	moveFood(m, core.C(4, 2))
	if got := m.Suggest(); got != core.East {
		t.Fatalf("food ahead: Suggest = %v", got)
	}
}

func TestSuggestAvoidsWalls(t *testing.T) {
	m := New[core.Clip](testConfig(3, 3, 2))
	collect(m.Initialize())
	if _, err := m.Step(core.East, true); err != nil {
		t.Fatal(err)
	}
	if got := m.Suggest(); got != core.North && got != core.South {
		t.Fatalf("at the east wall Suggest = %v", got)
	}
}

func TestSuggestWhenIdle(t *testing.T) {
	m := New[core.Wrap](testConfig(5, 5, 2))
	if got := m.Suggest(); got != m.Heading() {
		t.Fatalf("idle Suggest = %v, want heading %v", got, m.Heading())
	}
}

func TestAutopilotPlaysFullGames(t *testing.T) {
	m := New[core.Clip](testConfig(12, 10, 3))
	for game := 0; game < 3; game++ {
		collect(m.Initialize())
		over := false
		for step := 0; step < 5000 && !over; step++ {
			u, err := m.Step(m.Suggest(), true)
			if err != nil {
				t.Fatalf("game %d step %d: %v before a game-over update", game, step, err)
			}
			over = u.GameOver
		}
		if !over {
			continue
		}
		if _, err := m.Step(0, false); err == nil {
			t.Fatalf("game %d: step after game over succeeded", game)
		}
		m.TearDown()
	}
}
