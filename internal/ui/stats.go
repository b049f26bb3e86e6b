package ui

import "fmt"

// Stats is the game summary shown beside the board.
type Stats struct {
	Name   string
	Game   int
	Step   int
	Score  int
	Scored bool
	Paused bool
}

// Lines formats the stats as HUD text, one entry per line.
func (s Stats) Lines() []string {
	lines := []string{
		s.Name,
		fmt.Sprintf("game  %d", s.Game),
		fmt.Sprintf("step  %d", s.Step),
	}
	if s.Scored {
		lines = append(lines, fmt.Sprintf("score %d", s.Score))
	}
	if s.Paused {
		lines = append(lines, "", "PAUSED")
	}
	return lines
}

// Help lists the GUI key bindings.
var Help = []string{
	"arrows  steer",
	"space   pause",
	"g       grid",
	"d       cells",
	"q/esc   quit",
}
