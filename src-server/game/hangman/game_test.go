package hangman_test

import (
	"strings"
	"testing"

	"saaf/src-server/game/hangman"
)

func TestFullSolveByLetters(t *testing.T) {
	g := hangman.New("cat", "host")
	if got := g.Masked(); got != "_ _ _" {
		t.Fatalf("initial mask = %q, want %q", got, "_ _ _")
	}

	res := g.GuessLetter('c')
	if !res.Correct || res.Status != hangman.Active {
		t.Fatalf("guess c: %+v", res)
	}
	if got := g.Masked(); got != "c _ _" {
		t.Errorf("mask after c = %q", got)
	}
	if g.Wrong != 0 {
		t.Errorf("wrong after c = %d", g.Wrong)
	}

	res = g.GuessLetter('z')
	if res.Correct || res.Status != hangman.Active {
		t.Fatalf("guess z: %+v", res)
	}
	if g.Wrong != 1 {
		t.Errorf("wrong after z = %d, want 1", g.Wrong)
	}
	if got := g.Masked(); got != "c _ _" {
		t.Errorf("mask unchanged by wrong guess, got %q", got)
	}

	if res = g.GuessLetter('a'); res.Status != hangman.Active {
		t.Fatalf("guess a: %+v", res)
	}
	if got := g.Masked(); got != "c a _" {
		t.Errorf("mask after a = %q", got)
	}

	res = g.GuessLetter('t')
	if res.Status != hangman.Solved {
		t.Fatalf("guess t should solve, got %+v", res)
	}
	if got := g.Masked(); got != "c a t" {
		t.Errorf("final mask = %q", got)
	}
}

func TestRepeatedGuessDoesNotMutate(t *testing.T) {
	g := hangman.New("discord", "host")
	g.GuessLetter('z')
	wrongBefore := g.Wrong

	res := g.GuessLetter('z')
	if !res.AlreadyGuessed {
		t.Error("second z should be flagged as already guessed")
	}
	if g.Wrong != wrongBefore {
		t.Errorf("wrong changed on repeat: %d -> %d", wrongBefore, g.Wrong)
	}

	g.GuessLetter('d')
	res = g.GuessLetter('D')
	if !res.AlreadyGuessed {
		t.Error("repeat of correct letter (different case) should be rejected")
	}
}

func TestLostExactlyAtSixWrong(t *testing.T) {
	g := hangman.New("cat", "host")
	misses := []rune{'z', 'x', 'q', 'w', 'e'}
	for _, ch := range misses {
		res := g.GuessLetter(ch)
		if res.Status != hangman.Active {
			t.Fatalf("status after %d misses = %v, want Active", g.Wrong, res.Status)
		}
	}
	res := g.GuessLetter('b')
	if res.Status != hangman.Lost {
		t.Fatalf("sixth miss should lose the game, got %v", res.Status)
	}
	if g.Wrong != hangman.MaxWrong {
		t.Errorf("wrong = %d, want %d", g.Wrong, hangman.MaxWrong)
	}
}

func TestSolveSharesWrongBudget(t *testing.T) {
	g := hangman.New("cat", "host")
	for _, ch := range []rune{'z', 'x', 'q', 'w', 'e'} {
		g.GuessLetter(ch)
	}

	res := g.Solve("dog")
	if res.Correct {
		t.Error("wrong solve reported correct")
	}
	if res.Status != hangman.Lost {
		t.Errorf("failed solve at budget edge should lose, got %v", res.Status)
	}
}

func TestSolveCaseInsensitive(t *testing.T) {
	g := hangman.New("Discord", "host")
	res := g.Solve("  dIsCoRd ")
	if !res.Correct || res.Status != hangman.Solved {
		t.Errorf("solve: %+v", res)
	}
	if g.Wrong != 0 {
		t.Errorf("correct solve should not spend budget, wrong = %d", g.Wrong)
	}
}

func TestWrongCountMatchesMisses(t *testing.T) {
	g := hangman.New("function", "host")
	guesses := []rune{'f', 'z', 'u', 'x', 'n', 'q'}
	misses := 0
	for _, ch := range guesses {
		if !strings.ContainsRune("function", ch) {
			misses++
		}
		g.GuessLetter(ch)
	}
	g.Solve("wrong")
	misses++
	if g.Wrong != misses {
		t.Errorf("wrong = %d, want %d", g.Wrong, misses)
	}
}

func TestRemainingLettersExcludeGuessed(t *testing.T) {
	g := hangman.New("cat", "host")
	g.GuessLetter('c')
	g.GuessLetter('z')
	for _, ch := range g.RemainingLetters() {
		if ch == 'c' || ch == 'z' {
			t.Errorf("guessed letter %q still offered", ch)
		}
	}
	if len(g.RemainingLetters()) != 24 {
		t.Errorf("remaining = %d, want 24", len(g.RemainingLetters()))
	}
}

func TestCorpusBuckets(t *testing.T) {
	for _, length := range hangman.Lengths() {
		w, ok := hangman.PickByLength(length)
		if !ok {
			t.Errorf("no word for advertised length %d", length)
		}
		if len(w) != length {
			t.Errorf("picked %q for length %d", w, length)
		}
	}
	if _, ok := hangman.PickByLength(99); ok {
		t.Error("length 99 should have no bucket")
	}
	if _, ok := hangman.PickRandom(); !ok {
		t.Error("random pick from non-empty corpus failed")
	}
}
