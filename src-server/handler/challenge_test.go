package handler

import (
	"strings"
	"sync"
	"testing"

	"saaf/src-server/game/rps"
)

// Concurrent selects racing for the same challenge must resolve it exactly
// once: the read and the delete share one critical section in the store.
func TestRpsSelectClaimsChallengeOnce(t *testing.T) {
	as := newTestAppState(t)
	s := as.DgSession

	gameID := "game"
	as.Games.RPS.Put(gameID, rps.Challenge{ChallengerID: "alice", Choice: "rock"})
	selectID := "rps-select-" + gameID
	h := rpsSelectHandler(as, gameID, "rps-accept-"+gameID, selectID, nil)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_ = h(s, componentInteraction("bob", selectID, "paper"))
		}()
	}
	close(start)
	wg.Wait()

	if _, ok := as.Games.RPS.Load(gameID); ok {
		t.Fatal("challenge should be consumed")
	}
	alice := as.Ledger.Get("alice")
	if got := alice.Wins + alice.Losses + alice.Ties; got != 1 {
		t.Fatalf("challenger resolved %d times, want exactly 1", got)
	}
	bob := as.Ledger.Get("bob")
	if bob.Wins != 1 {
		t.Fatalf("paper beats rock: want 1 win for the acceptor, got %+v", bob)
	}
}

// The challenger accepting their own challenge claims it in the same
// critical section, so a racing human select finds it gone.
func TestRpsHouseMatchClaimsChallenge(t *testing.T) {
	as := newTestAppState(t)
	s := as.DgSession

	gameID := "game"
	as.Games.RPS.Put(gameID, rps.Challenge{ChallengerID: "alice", Choice: "rock"})
	acceptID := "rps-accept-" + gameID
	h := rpsAcceptHandler(as, gameID, acceptID)

	if err := h(s, componentInteraction("alice", acceptID)); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, ok := as.Games.RPS.Load(gameID); ok {
		t.Fatal("house match should consume the challenge")
	}
	alice := as.Ledger.Get("alice")
	if got := alice.Wins + alice.Losses + alice.Ties; got != 1 {
		t.Fatalf("challenger resolved %d times, want exactly 1", got)
	}
}

// A tie between two different objects names both of them.
func TestResolveRpsTieRendersBothObjects(t *testing.T) {
	as := newTestAppState(t)

	// no relation either way
	summary := resolveRps(as, rps.Challenge{ChallengerID: "alice", Choice: "rock"}, "bob", "lizard")
	if !strings.Contains(summary, "rock") || !strings.Contains(summary, "lizard") {
		t.Fatalf("tie between different objects should name both, got %q", summary)
	}

	summary = resolveRps(as, rps.Challenge{ChallengerID: "alice", Choice: "rock"}, "bob", "rock")
	if !strings.Contains(summary, "draw with **rock**") {
		t.Fatalf("identical tie should keep the single-object line, got %q", summary)
	}
}
