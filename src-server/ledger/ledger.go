// Package ledger keeps the process-wide win/loss/tie counters per actor.
// Counters only ever go up and are never scoped to a single game.
package ledger

import "github.com/puzpuzpuz/xsync/v3"

type Outcome int

const (
	Win Outcome = iota
	Loss
	Tie
)

type Record struct {
	Wins   int
	Losses int
	Ties   int
}

type Ledger struct {
	records *xsync.MapOf[string, Record]
}

func New() *Ledger {
	return &Ledger{records: xsync.NewMapOf[string, Record]()}
}

// Bump increments one counter for the actor and returns the new record.
// The compute-swap keeps concurrent bumps for the same actor from losing
// increments.
func (l *Ledger) Bump(actorID string, outcome Outcome) Record {
	rec, _ := l.records.Compute(actorID, func(old Record, _ bool) (Record, bool) {
		switch outcome {
		case Win:
			old.Wins++
		case Loss:
			old.Losses++
		case Tie:
			old.Ties++
		}
		return old, false
	})
	return rec
}

// Get returns the actor's record, zero-valued when they never played.
func (l *Ledger) Get(actorID string) Record {
	rec, _ := l.records.Load(actorID)
	return rec
}
