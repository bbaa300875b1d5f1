package handler

import (
	"errors"
	"testing"

	"saaf/src-server/game/tictactoe"
)

// A finishing move must leave the board in the store: the Finished flag is
// what blocks further moves, not deletion.
func TestTicTacToeTerminalBoardStaysInStore(t *testing.T) {
	as := newTestAppState(t)
	s := as.DgSession

	game := tictactoe.New("alice")
	if err := game.Accept("bob"); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	gameID := "game"
	as.Games.TicTacToe.Put(gameID, game)
	ids := newTictactoeIDs(gameID)

	move := func(userID string, cell int) {
		t.Helper()
		h := tttCellHandler(as, gameID, ids, cell)
		if err := h(s, componentInteraction(userID, ids.cells[cell])); err != nil {
			t.Fatalf("move %s@%d: %v", userID, cell, err)
		}
	}
	move("alice", 0)
	move("bob", 3)
	move("alice", 1)
	move("bob", 4)
	move("alice", 2) // top row, X wins

	got, ok := as.Games.TicTacToe.Load(gameID)
	if !ok {
		t.Fatal("finished board was deleted from the store")
	}
	if !got.Finished || got.Winner != tictactoe.X {
		t.Fatalf("want finished X win, got finished=%v winner=%v", got.Finished, got.Winner)
	}
	if err := got.Move("bob", 5); !errors.Is(err, tictactoe.ErrFinished) {
		t.Fatalf("late move: want ErrFinished, got %v", err)
	}

	alice := as.Ledger.Get("alice")
	if alice.Wins != 1 {
		t.Fatalf("winner record: want 1 win, got %+v", alice)
	}
}
