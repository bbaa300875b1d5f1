// Package blackjack is the hit/stand state machine against a house dealer.
// The dealer draws to any total of 17 or more, soft 17 included.
package blackjack

import "saaf/src-server/game/card"

const dealerStandsAt = 17

type Outcome int

const (
	InProgress Outcome = iota
	PlayerBust
	PlayerWin
	DealerWin
	Push
)

type Game struct {
	Deck   *card.Deck
	Player []card.Card
	Dealer []card.Card
}

// New deals two cards to each side from one fresh shuffled deck.
func New() *Game {
	deck := card.NewDeck()
	g := &Game{Deck: deck}
	for i := 0; i < 2; i++ {
		c, _ := deck.Draw()
		g.Player = append(g.Player, c)
		c, _ = deck.Draw()
		g.Dealer = append(g.Dealer, c)
	}
	return g
}

// HandValue scores a hand: face cards 10, numerals at face value, aces 11
// demoted to 1 one at a time while the total busts.
func HandValue(hand []card.Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		switch c.Rank {
		case "Ace":
			total += 11
			aces++
		case "Jack", "Queen", "King":
			total += 10
		default:
			total += c.Value()
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (g *Game) PlayerValue() int { return HandValue(g.Player) }
func (g *Game) DealerValue() int { return HandValue(g.Dealer) }

type HitResult struct {
	Drawn   card.Card
	Total   int
	Outcome Outcome
}

// Hit draws one card into the player hand; over 21 is a terminal bust.
func (g *Game) Hit() HitResult {
	c, _ := g.Deck.Draw()
	g.Player = append(g.Player, c)
	total := g.PlayerValue()
	if total > 21 {
		return HitResult{Drawn: c, Total: total, Outcome: PlayerBust}
	}
	return HitResult{Drawn: c, Total: total, Outcome: InProgress}
}

type StandResult struct {
	PlayerTotal int
	DealerTotal int
	Outcome     Outcome
}

// Stand runs the dealer (draw while under 17) and compares totals.
// Terminal in every branch.
func (g *Game) Stand() StandResult {
	for g.DealerValue() < dealerStandsAt {
		c, ok := g.Deck.Draw()
		if !ok {
			break
		}
		g.Dealer = append(g.Dealer, c)
	}

	playerTotal := g.PlayerValue()
	dealerTotal := g.DealerValue()
	res := StandResult{PlayerTotal: playerTotal, DealerTotal: dealerTotal}
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		res.Outcome = PlayerWin
	case playerTotal == dealerTotal:
		res.Outcome = Push
	default:
		res.Outcome = DealerWin
	}
	return res
}
