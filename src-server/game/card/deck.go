package card

import "math/rand/v2"

// Deck is a single-use pile of cards; every draw consumes one card and no
// card is ever put back.
type Deck struct {
	cards []Card
}

// NewDeck returns a shuffled standard 52-card deck.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, len(Suits)*len(Ranks))}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns the top card, false when the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
