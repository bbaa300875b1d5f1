package typerace_test

import (
	"errors"
	"testing"
	"time"

	"saaf/src-server/game/typerace"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, c := range cases {
		if got := typerace.Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestComputeStatsPerfect(t *testing.T) {
	target := "The quick brown fox jumps over the lazy dog."
	stats := typerace.ComputeStats(target, target, time.Minute)
	if stats.Accuracy != 1 {
		t.Errorf("accuracy = %f, want 1", stats.Accuracy)
	}
	// 44 chars / 5 per word / 1 minute
	wantWPM := float64(len(target)) / 5
	if stats.GrossWPM != wantWPM {
		t.Errorf("gross WPM = %f, want %f", stats.GrossWPM, wantWPM)
	}
	if stats.NetWPM != wantWPM {
		t.Errorf("net WPM = %f, want %f", stats.NetWPM, wantWPM)
	}
}

func TestComputeStatsGarbage(t *testing.T) {
	stats := typerace.ComputeStats("hello world", "zzzzzzzzzzz", time.Minute)
	if stats.Accuracy != 0 {
		t.Errorf("accuracy = %f, want 0", stats.Accuracy)
	}
	if stats.NetWPM != 0 {
		t.Errorf("net WPM = %f, want 0", stats.NetWPM)
	}
}

func TestBeginHostGated(t *testing.T) {
	r := typerace.NewRace("host")
	if err := r.Begin("guest", time.Now()); !errors.Is(err, typerace.ErrNotHost) {
		t.Errorf("guest begin: %v", err)
	}
	if err := r.Begin("host", time.Now()); err != nil {
		t.Errorf("host begin: %v", err)
	}
	if err := r.Begin("host", time.Now()); err == nil {
		t.Error("second begin should be rejected")
	}
}

func TestSubmitBeforeBegin(t *testing.T) {
	r := typerace.NewRace("host")
	if _, err := r.Submit("guest", "whatever", time.Now()); !errors.Is(err, typerace.ErrNotStarted) {
		t.Errorf("submit before begin: %v", err)
	}
}

func TestLeaderboardSortedByNetWPM(t *testing.T) {
	r := typerace.NewRace("host")
	start := time.Now()
	if err := r.Begin("host", start); err != nil {
		t.Fatal(err)
	}

	// slow accurate, fast accurate, fast sloppy
	if _, err := r.Submit("slow", r.Passage, start.Add(2*time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Submit("fast", r.Passage, start.Add(30*time.Second)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Submit("sloppy", "zz", start.Add(30*time.Second)); err != nil {
		t.Fatal(err)
	}

	board := r.Leaderboard()
	if len(board) != 3 {
		t.Fatalf("board has %d entries, want 3", len(board))
	}
	if board[0].ActorID != "fast" || board[1].ActorID != "slow" || board[2].ActorID != "sloppy" {
		t.Errorf("board order: %s, %s, %s", board[0].ActorID, board[1].ActorID, board[2].ActorID)
	}
	for i := 1; i < len(board); i++ {
		if board[i-1].Stats.NetWPM < board[i].Stats.NetWPM {
			t.Errorf("board not sorted at %d", i)
		}
	}
}
