package rps_test

import (
	"testing"

	"saaf/src-server/game/rps"
)

func TestDecideIdenticalChoicesTie(t *testing.T) {
	for _, name := range rps.Names() {
		if got := rps.Decide(name, name); got != rps.Tie {
			t.Errorf("Decide(%q, %q) = %v, want Tie", name, name, got)
		}
	}
}

func TestDecideCaseInsensitive(t *testing.T) {
	if got := rps.Decide("Rock", "SCISSORS"); got != rps.P1 {
		t.Errorf("Decide(Rock, SCISSORS) = %v, want P1", got)
	}
	if got := rps.Decide("ROCK", "rock"); got != rps.Tie {
		t.Errorf("Decide(ROCK, rock) = %v, want Tie", got)
	}
}

// Wherever a relation is defined the resolver must be antisymmetric.
func TestDecideAntisymmetric(t *testing.T) {
	names := rps.Names()
	for _, a := range names {
		for _, b := range names {
			forward := rps.Decide(a, b)
			backward := rps.Decide(b, a)
			switch forward {
			case rps.P1:
				if backward != rps.P2 {
					t.Errorf("Decide(%q,%q)=P1 but Decide(%q,%q)=%v", a, b, b, a, backward)
				}
			case rps.P2:
				if backward != rps.P1 {
					t.Errorf("Decide(%q,%q)=P2 but Decide(%q,%q)=%v", a, b, b, a, backward)
				}
			case rps.Tie:
				if backward != rps.Tie {
					t.Errorf("Decide(%q,%q)=Tie but Decide(%q,%q)=%v", a, b, b, a, backward)
				}
			}
		}
	}
}

func TestVerbDefinedForEveryWin(t *testing.T) {
	names := rps.Names()
	for _, a := range names {
		for _, b := range names {
			if rps.Decide(a, b) == rps.P1 && rps.Verb(a, b) == "" {
				t.Errorf("no verb for %q beating %q", a, b)
			}
		}
	}
}

func TestShuffledNamesComplete(t *testing.T) {
	shuffled := rps.ShuffledNames()
	if len(shuffled) != len(rps.Names()) {
		t.Fatalf("shuffled has %d names, want %d", len(shuffled), len(rps.Names()))
	}
	seen := make(map[string]bool)
	for _, name := range shuffled {
		seen[name] = true
	}
	for _, name := range rps.Names() {
		if !seen[name] {
			t.Errorf("shuffled names missing %q", name)
		}
	}
}
