// Package hangman holds the hangman state machine: Active until either the
// masked reveal has no placeholders left (Solved) or the shared wrong budget
// of 6 is spent (Lost). Letter guesses and failed full-word solves draw from
// the same budget.
package hangman

import "strings"

const MaxWrong = 6

type Status int

const (
	Active Status = iota
	Solved
	Lost
)

type Game struct {
	Word    string
	HostID  string
	Guessed map[rune]bool
	// wrong letters in guess order, for display
	WrongLetters []rune
	Wrong        int
}

func New(word, hostID string) *Game {
	return &Game{
		Word:    strings.ToLower(word),
		HostID:  hostID,
		Guessed: make(map[rune]bool),
	}
}

type GuessResult struct {
	AlreadyGuessed bool
	Correct        bool
	Status         Status
}

// GuessLetter plays one letter. A repeated letter is rejected without
// mutating anything; a miss spends one point of the wrong budget.
func (g *Game) GuessLetter(letter rune) GuessResult {
	letter = toLower(letter)
	if g.Guessed[letter] {
		return GuessResult{AlreadyGuessed: true, Status: Active}
	}
	g.Guessed[letter] = true

	correct := strings.ContainsRune(g.Word, letter)
	if !correct {
		g.WrongLetters = append(g.WrongLetters, letter)
		g.Wrong++
	}
	return GuessResult{Correct: correct, Status: g.status()}
}

type SolveResult struct {
	Correct bool
	Status  Status
}

// Solve plays a full-word guess. A miss costs the same as a wrong letter.
func (g *Game) Solve(guess string) SolveResult {
	if strings.EqualFold(strings.TrimSpace(guess), g.Word) {
		return SolveResult{Correct: true, Status: Solved}
	}
	g.Wrong++
	return SolveResult{Status: g.status()}
}

func (g *Game) status() Status {
	if g.Wrong >= MaxWrong {
		return Lost
	}
	if !strings.ContainsRune(g.Masked(), '_') {
		return Solved
	}
	return Active
}

// Masked renders the secret word with unguessed letters replaced by "_",
// characters space-separated. Spaces and hyphens are always revealed.
func (g *Game) Masked() string {
	var sb strings.Builder
	for i, ch := range g.Word {
		if i > 0 {
			sb.WriteRune(' ')
		}
		switch {
		case ch == ' ' || ch == '-':
			sb.WriteRune(ch)
		case g.Guessed[ch]:
			sb.WriteRune(ch)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// RemainingLetters lists a-z minus everything already guessed, the
// affordances a render layer should still offer.
func (g *Game) RemainingLetters() []rune {
	remaining := make([]rune, 0, 26)
	for ch := 'a'; ch <= 'z'; ch++ {
		if !g.Guessed[ch] {
			remaining = append(remaining, ch)
		}
	}
	return remaining
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
