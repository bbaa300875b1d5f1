// Package hilo is the higher-lower state machine. One single-use deck per
// game; the current and next card were both drawn from it, so no card can
// show up twice.
package hilo

import "saaf/src-server/game/card"

type Guess string

const (
	Higher Guess = "higher"
	Lower  Guess = "lower"
	Red    Guess = "red"
	Black  Guess = "black"
	End    Guess = "end"
)

type Status int

const (
	Active Status = iota
	// deck exhausted after a correct call
	Won
	Lost
	// user-initiated stop
	Ended
)

type Game struct {
	Deck    *card.Deck
	Current card.Card
	Next    card.Card
	Streak  int
}

// New draws the first two cards from a fresh shuffled deck.
func New() *Game {
	deck := card.NewDeck()
	current, _ := deck.Draw()
	next, _ := deck.Draw()
	return &Game{Deck: deck, Current: current, Next: next}
}

type Result struct {
	Status  Status
	Correct bool
	// the card the guess was judged against
	Revealed card.Card
	Streak   int
}

// Call plays one guess. End is always terminal with the current streak.
// A correct call promotes the next card and draws a replacement; winning
// the whole deck or any incorrect call is terminal.
func (g *Game) Call(guess Guess) Result {
	if guess == End {
		return Result{Status: Ended, Streak: g.Streak}
	}

	revealed := g.Next
	var correct bool
	switch guess {
	case Higher:
		correct = g.Next.Value() > g.Current.Value()
	case Lower:
		correct = g.Next.Value() < g.Current.Value()
	case Red:
		correct = g.Next.Color() == card.Red
	case Black:
		correct = g.Next.Color() == card.Black
	}

	if !correct {
		return Result{Status: Lost, Revealed: revealed, Streak: g.Streak}
	}

	g.Streak++
	if g.Deck.Remaining() == 0 {
		return Result{Status: Won, Correct: true, Revealed: revealed, Streak: g.Streak}
	}
	g.Current = g.Next
	g.Next, _ = g.Deck.Draw()
	return Result{Status: Active, Correct: true, Revealed: revealed, Streak: g.Streak}
}
