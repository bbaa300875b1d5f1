package card

import "fmt"

type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

type Color string

const (
	Red   Color = "Red"
	Black Color = "Black"
)

type Rank string

var Ranks = []Rank{
	"2", "3", "4", "5", "6", "7", "8", "9", "10",
	"Jack", "Queen", "King", "Ace",
}

var rankValues = map[Rank]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"Jack": 11, "Queen": 12, "King": 13, "Ace": 14,
}

var suitEmojis = map[Suit]string{
	Hearts:   "♥️",
	Diamonds: "♦️",
	Clubs:    "♣️",
	Spades:   "♠️",
}

type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the higher-lower ordering value, ace high (14), never low.
func (c Card) Value() int {
	return rankValues[c.Rank]
}

func (c Card) Color() Color {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}
	return Black
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s %s", c.Rank, c.Suit, suitEmojis[c.Suit])
}
