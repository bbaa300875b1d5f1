// Package rps resolves extended rock-paper-scissors match-ups from a
// relation table: each choice lists which other choices it defeats and the
// verb describing the defeat.
package rps

import (
	"math/rand/v2"
	"strings"
)

// HouseID is the synthetic actor the ledger uses when someone plays
// against the bot instead of a second human.
const HouseID = "RPS_COMPUTER"

const HouseName = "Computer"

type Relation struct {
	Description string
	// choice it defeats -> verb describing the defeat
	Beats map[string]string
}

var choices = map[string]Relation{
	"rock": {
		Description: "sedimentary, igneous, or perhaps even metamorphic",
		Beats: map[string]string{
			"virus":    "outwaits",
			"computer": "smashes",
			"scissors": "crushes",
		},
	},
	"cowboy": {
		Description: "yeehaw~",
		Beats: map[string]string{
			"scissors": "puts away",
			"wumpus":   "lassos",
			"rock":     "steel-toe kicks",
		},
	},
	"scissors": {
		Description: "careful ! sharp ! edges !!",
		Beats: map[string]string{
			"paper":    "cuts",
			"computer": "cuts cord of",
			"virus":    "cuts DNA of",
		},
	},
	"virus": {
		Description: "genetic mutation, malware, or something inbetween",
		Beats: map[string]string{
			"cowboy":   "infects",
			"computer": "corrupts",
			"wumpus":   "infects",
		},
	},
	"computer": {
		Description: "beep boop beep bzzrrhggggg",
		Beats: map[string]string{
			"cowboy": "overwhelms",
			"paper":  "uninstalls firmware for",
			"wumpus": "deletes assets for",
		},
	},
	"wumpus": {
		Description: "the purple Discord fella",
		Beats: map[string]string{
			"paper":    "draws picture on",
			"rock":     "paints cute face on",
			"scissors": "admires own reflection in",
		},
	},
	"paper": {
		Description: "versatile and iconic",
		Beats: map[string]string{
			"virus":  "ignores",
			"cowboy": "gives papercut to",
			"rock":   "covers",
		},
	},
}

type Winner int

const (
	Tie Winner = iota
	P1
	P2
)

// Challenge is a pending public challenge, consumed exactly once when an
// acceptance resolves it.
type Challenge struct {
	ChallengerID string
	Choice       string
}

// Decide resolves two choices. Comparison is case-insensitive; identical
// choices tie. A pair with no relation defined in either direction also
// ties, matching the original behavior for an incomplete table.
func Decide(p1Choice, p2Choice string) Winner {
	a := strings.ToLower(p1Choice)
	b := strings.ToLower(p2Choice)
	if a == b {
		return Tie
	}
	if _, ok := choices[a].Beats[b]; ok {
		return P1
	}
	if _, ok := choices[b].Beats[a]; ok {
		return P2
	}
	return Tie
}

// Verb returns the defeat verb for winner over loser, "" when the relation
// is undefined.
func Verb(winnerChoice, loserChoice string) string {
	return choices[strings.ToLower(winnerChoice)].Beats[strings.ToLower(loserChoice)]
}

func Describe(choice string) string {
	return choices[strings.ToLower(choice)].Description
}

// Names returns every defined choice, sorted order not guaranteed.
func Names() []string {
	names := make([]string, 0, len(choices))
	for name := range choices {
		names = append(names, name)
	}
	return names
}

// ShuffledNames returns the choices in random order, for select menus that
// shouldn't hint at a canonical ordering.
func ShuffledNames() []string {
	names := Names()
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	return names
}

// HouseChoice picks the house's object. The house sticks to the classic
// three so its record stays comparable across table changes.
func HouseChoice() string {
	classics := []string{"rock", "paper", "scissors"}
	return classics[rand.IntN(len(classics))]
}
