package term

import (
	"strings"
	"testing"

	"tile-snake/internal/audio"
	"tile-snake/internal/core"
	"tile-snake/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func tileText(s tcell.Screen, x, y int) string {
	var b strings.Builder
	for i := 0; i < tileCols; i++ {
		r, _, _, _ := s.GetContent(x*tileCols+i, y)
		b.WriteRune(r)
	}
	return b.String()
}

func rowText(s tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestPartialGlyphs(t *testing.T) {
	cases := []struct {
		dir  core.Direction
		size render.UnitInterval
		want string
	}{
		{core.East, 0, "  "},
		{core.East, 0.2, "  "},
		{core.East, 0.5, "█ "},
		{core.West, 0.5, " █"},
		{core.East, 1, "██"},
		{core.West, 1, "██"},
		{core.South, 0.5, "▀▀"},
		{core.North, 0.5, "▄▄"},
		{core.North, 1, "██"},
		{core.South, 0.1, "  "},
	}
	for _, tc := range cases {
		g := partial(tc.dir, tc.size)
		if got := string(g[:]); got != tc.want {
			t.Errorf("partial(%v, %v) = %q, want %q", tc.dir, tc.size, got, tc.want)
		}
	}
}

func TestScreenDrawsTiles(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, nil)
	s.Setup(16, 4, 3)
	s.Clear()

	if prev := s.SetFillColor(render.Green); prev != render.White {
		t.Fatalf("initial fill = %v", prev)
	}
	s.FillTile(0, 0, core.East, 1)
	s.FillTile(1, 0, core.East, 0.5)
	s.ClearTile(2, 1, core.East, 0.5)
	s.Circle(3, 2, 1)
	s.FillTile(9, 9, core.East, 1)

	for _, tc := range []struct {
		x, y int
		want string
	}{
		{0, 0, "██"},
		{1, 0, "█ "},
		{2, 1, " █"},
		{3, 2, "▐▌"},
		{0, 1, "  "},
	} {
		if got := tileText(sim, tc.x, tc.y); got != tc.want {
			t.Errorf("tile (%d,%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}

	_, _, st, _ := sim.GetContent(0, 0)
	fg, bg, _ := st.Decompose()
	if fg != rgb(render.Green) || bg != rgb(render.Black) {
		t.Fatalf("tile style fg=%v bg=%v", fg, bg)
	}

	s.Clear()
	if got := tileText(sim, 0, 0); got != "  " {
		t.Fatalf("after Clear tile (0,0) = %q", got)
	}
}

func TestScreenCaptionAndStatus(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, nil)
	s.Setup(16, 10, 4)
	s.Clear()

	s.ShowGameOver()
	if got := rowText(sim, 2, 20); got != "     GAME OVER" {
		t.Fatalf("caption row = %q", got)
	}

	s.Status("score 3")
	if got := rowText(sim, 4, 40); got != "score 3" {
		t.Fatalf("status row = %q", got)
	}
	s.Status("ok")
	if got := rowText(sim, 4, 40); got != "ok" {
		t.Fatalf("status row after rewrite = %q", got)
	}
}

type soundLog []audio.Sound

func (l *soundLog) Play(s audio.Sound) { *l = append(*l, s) }

func TestScreenForwardsCues(t *testing.T) {
	var played soundLog
	s := NewScreen(newSimScreen(t), &played)
	s.Cue(render.CueEat)
	s.Cue(render.CueGameOver)
	if len(played) != 2 || played[0] != audio.SoundEat || played[1] != audio.SoundGameOver {
		t.Fatalf("played = %v", played)
	}

	NewScreen(newSimScreen(t), nil).Cue(render.CueEat)
}
