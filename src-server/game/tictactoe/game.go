// Package tictactoe is the challenge/accept/move state machine. Terminal
// games stay around with further moves rejected instead of being deleted.
package tictactoe

import "errors"

type Mark byte

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

var (
	ErrOwnChallenge    = errors.New("can't accept your own challenge")
	ErrAlreadyAccepted = errors.New("challenge already accepted by someone else")
	ErrNotAPlayer      = errors.New("you're not part of this game")
	ErrFinished        = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrOutOfRange      = errors.New("cell must be between 0 and 8")
	ErrCellTaken       = errors.New("cell is already taken")
	ErrNoOpponent      = errors.New("waiting for an opponent to accept")
)

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

type Game struct {
	XPlayerID string
	OPlayerID string
	Board     [9]Mark
	Turn      Mark
	Finished  bool
	Winner    Mark
	Draw      bool
}

// New creates a challenge waiting for an opponent; the creator plays X.
func New(creatorID string) *Game {
	return &Game{XPlayerID: creatorID, Turn: X}
}

// Accept binds the acceptor as O. The creator can't accept their own
// challenge and a taken slot stays taken.
func (g *Game) Accept(actorID string) error {
	if actorID == g.XPlayerID {
		return ErrOwnChallenge
	}
	if g.OPlayerID != "" && g.OPlayerID != actorID {
		return ErrAlreadyAccepted
	}
	g.OPlayerID = actorID
	return nil
}

// Move places the actor's mark at cell. Validation order: player
// membership, finished, opponent bound, turn, range, occupancy.
func (g *Game) Move(actorID string, cell int) error {
	var mark Mark
	switch actorID {
	case g.XPlayerID:
		mark = X
	case g.OPlayerID:
		mark = O
	default:
		return ErrNotAPlayer
	}
	if g.Finished {
		return ErrFinished
	}
	if g.OPlayerID == "" {
		return ErrNoOpponent
	}
	if mark != g.Turn {
		return ErrNotYourTurn
	}
	if cell < 0 || cell > 8 {
		return ErrOutOfRange
	}
	if g.Board[cell] != Empty {
		return ErrCellTaken
	}

	g.Board[cell] = mark
	if winner := g.winner(); winner != Empty {
		g.Finished = true
		g.Winner = winner
		return nil
	}
	if g.full() {
		g.Finished = true
		g.Draw = true
		return nil
	}
	if g.Turn == X {
		g.Turn = O
	} else {
		g.Turn = X
	}
	return nil
}

func (g *Game) winner() Mark {
	for _, line := range winLines {
		m := g.Board[line[0]]
		if m != Empty && m == g.Board[line[1]] && m == g.Board[line[2]] {
			return m
		}
	}
	return Empty
}

func (g *Game) full() bool {
	for _, m := range g.Board {
		if m == Empty {
			return false
		}
	}
	return true
}
