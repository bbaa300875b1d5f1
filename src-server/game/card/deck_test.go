package card_test

import (
	"testing"

	"saaf/src-server/game/card"
)

func TestDeckDrawsEveryCardExactlyOnce(t *testing.T) {
	deck := card.NewDeck()
	if deck.Remaining() != 52 {
		t.Errorf("fresh deck has %d cards, want 52", deck.Remaining())
	}

	seen := make(map[card.Card]int)
	for {
		c, ok := deck.Draw()
		if !ok {
			break
		}
		seen[c]++
	}

	if len(seen) != 52 {
		t.Errorf("drew %d distinct cards, want 52", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("card %v drawn %d times", c, n)
		}
	}
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			if seen[card.Card{Rank: rank, Suit: suit}] != 1 {
				t.Errorf("missing %s of %s", rank, suit)
			}
		}
	}

	if _, ok := deck.Draw(); ok {
		t.Error("draw from exhausted deck should fail")
	}
}

func TestCardValueAndColor(t *testing.T) {
	cases := []struct {
		card  card.Card
		value int
		color card.Color
	}{
		{card.Card{Rank: "2", Suit: card.Clubs}, 2, card.Black},
		{card.Card{Rank: "10", Suit: card.Hearts}, 10, card.Red},
		{card.Card{Rank: "Jack", Suit: card.Spades}, 11, card.Black},
		{card.Card{Rank: "Queen", Suit: card.Diamonds}, 12, card.Red},
		{card.Card{Rank: "King", Suit: card.Clubs}, 13, card.Black},
		{card.Card{Rank: "Ace", Suit: card.Hearts}, 14, card.Red},
	}
	for _, c := range cases {
		if c.card.Value() != c.value {
			t.Errorf("%v value = %d, want %d", c.card, c.card.Value(), c.value)
		}
		if c.card.Color() != c.color {
			t.Errorf("%v color = %s, want %s", c.card, c.card.Color(), c.color)
		}
	}
}
