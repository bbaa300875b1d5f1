package blackjack_test

import (
	"testing"

	"saaf/src-server/game/blackjack"
	"saaf/src-server/game/card"
)

func hand(ranks ...card.Rank) []card.Card {
	cards := make([]card.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card.Card{Rank: r, Suit: card.Spades}
	}
	return cards
}

func TestHandValue(t *testing.T) {
	cases := []struct {
		ranks []card.Rank
		want  int
	}{
		{[]card.Rank{"Ace", "Ace", "9"}, 21},
		{[]card.Rank{"King", "Queen"}, 20},
		{[]card.Rank{"Ace", "King", "5"}, 16},
		{[]card.Rank{"Ace", "King"}, 21},
		{[]card.Rank{"Ace", "Ace", "Ace", "8"}, 21},
		{[]card.Rank{"2", "3", "4"}, 9},
		{[]card.Rank{"10", "9", "5"}, 24},
		{[]card.Rank{"Ace"}, 11},
	}
	for _, c := range cases {
		if got := blackjack.HandValue(hand(c.ranks...)); got != c.want {
			t.Errorf("HandValue(%v) = %d, want %d", c.ranks, got, c.want)
		}
	}
}

func TestNewDealsTwoAndTwo(t *testing.T) {
	g := blackjack.New()
	if len(g.Player) != 2 || len(g.Dealer) != 2 {
		t.Fatalf("dealt %d/%d cards, want 2/2", len(g.Player), len(g.Dealer))
	}
	if g.Deck.Remaining() != 48 {
		t.Errorf("deck remaining = %d, want 48", g.Deck.Remaining())
	}
}

func TestHitBust(t *testing.T) {
	g := blackjack.New()
	g.Player = hand("10", "9")
	// keep hitting; with a 19 hand any 3+ busts, aces/2s keep it alive
	for {
		res := g.Hit()
		if res.Total > 21 {
			if res.Outcome != blackjack.PlayerBust {
				t.Fatalf("total %d but outcome %v", res.Total, res.Outcome)
			}
			return
		}
		if res.Outcome != blackjack.InProgress {
			t.Fatalf("total %d but outcome %v", res.Total, res.Outcome)
		}
	}
}

func TestStandDealerDrawsToSeventeen(t *testing.T) {
	g := blackjack.New()
	g.Player = hand("King", "Queen")
	g.Dealer = hand("2", "3")

	res := g.Stand()
	if res.DealerTotal < 17 {
		t.Errorf("dealer stopped under 17 at %d", res.DealerTotal)
	}
	if res.PlayerTotal != 20 {
		t.Errorf("player total = %d, want 20", res.PlayerTotal)
	}
	switch res.Outcome {
	case blackjack.PlayerWin, blackjack.DealerWin, blackjack.Push:
	default:
		t.Errorf("stand must be terminal, got %v", res.Outcome)
	}
}

func TestStandOutcomes(t *testing.T) {
	// dealer already at 17+ so no draws happen and outcomes are forced
	cases := []struct {
		player, dealer []card.Card
		want           blackjack.Outcome
	}{
		{hand("King", "Queen"), hand("10", "7"), blackjack.PlayerWin},
		{hand("10", "7"), hand("King", "Queen"), blackjack.DealerWin},
		{hand("King", "9"), hand("10", "9"), blackjack.Push},
		// dealer stands on soft 17
		{hand("King", "8"), hand("Ace", "6"), blackjack.PlayerWin},
	}
	for _, c := range cases {
		g := blackjack.New()
		g.Player = c.player
		g.Dealer = c.dealer
		res := g.Stand()
		if res.Outcome != c.want {
			t.Errorf("player %v vs dealer %v: outcome %v, want %v",
				c.player, c.dealer, res.Outcome, c.want)
		}
	}
}
