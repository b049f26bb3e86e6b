package ui

import (
	"slices"
	"testing"
)

func TestStatsLines(t *testing.T) {
	s := Stats{Name: "snake", Game: 2, Step: 14}
	if got := s.Lines(); !slices.Equal(got, []string{"snake", "game  2", "step  14"}) {
		t.Fatalf("unscored lines = %q", got)
	}

	s.Scored, s.Score, s.Paused = true, 5, true
	want := []string{"snake", "game  2", "step  14", "score 5", "", "PAUSED"}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}
