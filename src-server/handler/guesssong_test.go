package handler

import (
	"testing"

	"saaf/src-server/game/songguess"
)

// The first answer claims the riddle; a second one must find it gone
// rather than resolving again.
func TestGuessSongAnswerClaimsRiddleOnce(t *testing.T) {
	as := newTestAppState(t)
	s := as.DgSession

	gameID := "game"
	as.Games.SongGuess.Put(gameID, &songguess.Game{
		HostID: "alice",
		Song:   songguess.Song{Title: "Umbrella - Rihanna", Emojis: "☔👑🌧️", Genre: "pop"},
	})
	selectID := "guesssong-select-" + gameID
	h := guessSongSelectHandler(as, gameID, selectID)

	if err := h(s, componentInteraction("bob", selectID, "Umbrella - Rihanna")); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if _, ok := as.Games.SongGuess.Load(gameID); ok {
		t.Fatal("riddle should be consumed by the first answer")
	}
	if err := h(s, componentInteraction("carol", selectID, "Umbrella - Rihanna")); err != nil {
		t.Fatalf("second answer: %v", err)
	}
}
