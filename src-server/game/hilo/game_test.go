package hilo_test

import (
	"testing"

	"saaf/src-server/game/card"
	"saaf/src-server/game/hilo"
)

func TestNewDrawsTwoFromDeck(t *testing.T) {
	g := hilo.New()
	if g.Deck.Remaining() != 50 {
		t.Errorf("deck remaining = %d, want 50", g.Deck.Remaining())
	}
	if g.Current == g.Next {
		t.Error("current and next are the same card")
	}
}

func TestCorrectHigherPromotesAndDraws(t *testing.T) {
	g := hilo.New()
	g.Current = card.Card{Rank: "5", Suit: card.Hearts}
	g.Next = card.Card{Rank: "10", Suit: card.Spades}
	before := g.Deck.Remaining()

	res := g.Call(hilo.Higher)
	if !res.Correct || res.Status != hilo.Active {
		t.Fatalf("higher on 5->10: %+v", res)
	}
	if res.Streak != 1 || g.Streak != 1 {
		t.Errorf("streak = %d, want 1", g.Streak)
	}
	if g.Current != (card.Card{Rank: "10", Suit: card.Spades}) {
		t.Errorf("current not promoted: %v", g.Current)
	}
	if g.Deck.Remaining() != before-1 {
		t.Errorf("deck did not shrink by one: %d -> %d", before, g.Deck.Remaining())
	}
}

func TestIncorrectCallIsTerminal(t *testing.T) {
	g := hilo.New()
	g.Current = card.Card{Rank: "King", Suit: card.Hearts}
	g.Next = card.Card{Rank: "2", Suit: card.Spades}
	g.Streak = 3

	res := g.Call(hilo.Higher)
	if res.Correct {
		t.Error("higher on K->2 judged correct")
	}
	if res.Status != hilo.Lost {
		t.Errorf("status = %v, want Lost", res.Status)
	}
	if res.Streak != 3 {
		t.Errorf("final streak = %d, want 3", res.Streak)
	}
	if res.Revealed != g.Next {
		t.Errorf("revealed %v, want %v", res.Revealed, g.Next)
	}
}

func TestAceIsAlwaysHigh(t *testing.T) {
	g := hilo.New()
	g.Current = card.Card{Rank: "Ace", Suit: card.Hearts}
	g.Next = card.Card{Rank: "King", Suit: card.Spades}
	if res := g.Call(hilo.Lower); !res.Correct {
		t.Error("king should be lower than ace")
	}
}

func TestColorCalls(t *testing.T) {
	g := hilo.New()
	g.Current = card.Card{Rank: "5", Suit: card.Clubs}
	g.Next = card.Card{Rank: "9", Suit: card.Diamonds}
	if res := g.Call(hilo.Red); !res.Correct {
		t.Error("diamond should match red")
	}

	g.Next = card.Card{Rank: "9", Suit: card.Spades}
	if res := g.Call(hilo.Red); res.Status != hilo.Lost {
		t.Error("spade on red call should lose")
	}
}

func TestEndIsAlwaysTerminal(t *testing.T) {
	g := hilo.New()
	g.Streak = 7
	res := g.Call(hilo.End)
	if res.Status != hilo.Ended {
		t.Errorf("status = %v, want Ended", res.Status)
	}
	if res.Streak != 7 {
		t.Errorf("streak = %d, want 7", res.Streak)
	}
}

func TestDeckExhaustionWins(t *testing.T) {
	g := hilo.New()
	// drain the deck so the next correct call is the last one
	for g.Deck.Remaining() > 0 {
		g.Deck.Draw()
	}
	g.Current = card.Card{Rank: "2", Suit: card.Hearts}
	g.Next = card.Card{Rank: "9", Suit: card.Spades}
	g.Streak = 49

	res := g.Call(hilo.Higher)
	if res.Status != hilo.Won {
		t.Errorf("status = %v, want Won", res.Status)
	}
	if res.Streak != 50 {
		t.Errorf("final streak = %d, want 50", res.Streak)
	}
}
