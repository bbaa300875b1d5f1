// Package typerace scores typed reproductions of a passage: accuracy is
// 1 - normalized Levenshtein distance, net WPM is gross WPM scaled by
// accuracy. Races persist for the process lifetime so the leaderboard can
// keep being queried.
package typerace

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
)

var passages = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Pack my box with five dozen liquor jugs.",
	"Sphinx of black quartz, judge my vow.",
	"How vexingly quick daft zebras jump.",
	"Bright vixens jump; dozy fowl quack.",
	"Two driven jocks help fax my big quiz.",
	"Crazy Fredrick bought many very exquisite opal jewels.",
	"We promptly judged antique ivory buckles for the next prize.",
	"Amazingly few discotheques provide jukeboxes.",
	"Just keep examining every low bid quoted for zinc etchings.",
}

func PickPassage() string {
	return passages[rand.IntN(len(passages))]
}

var (
	ErrNotHost    = errors.New("only the host can start the race")
	ErrNotStarted = errors.New("race hasn't started yet")
)

type Stats struct {
	Distance     int
	CorrectChars int
	// 0..1
	Accuracy float64
	GrossWPM float64
	NetWPM   float64
	Elapsed  time.Duration
}

type Entry struct {
	ActorID string
	Stats   Stats
}

type Race struct {
	Passage   string
	HostID    string
	StartedAt time.Time
	Results   []Entry
}

func NewRace(hostID string) *Race {
	return &Race{Passage: PickPassage(), HostID: hostID}
}

// Begin stamps the start time; host only. Re-begin is rejected the same
// way so a host can't reset a running race.
func (r *Race) Begin(actorID string, now time.Time) error {
	if actorID != r.HostID || !r.StartedAt.IsZero() {
		return ErrNotHost
	}
	r.StartedAt = now
	return nil
}

// Submit scores one typed reproduction and appends it to the results.
func (r *Race) Submit(actorID, typed string, now time.Time) (Stats, error) {
	if r.StartedAt.IsZero() {
		return Stats{}, ErrNotStarted
	}
	stats := ComputeStats(r.Passage, typed, now.Sub(r.StartedAt))
	r.Results = append(r.Results, Entry{ActorID: actorID, Stats: stats})
	return stats, nil
}

// Leaderboard is the results sorted by net WPM, best first.
func (r *Race) Leaderboard() []Entry {
	board := make([]Entry, len(r.Results))
	copy(board, r.Results)
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Stats.NetWPM > board[j].Stats.NetWPM
	})
	return board
}

// ComputeStats scores typed against target for the given elapsed time.
func ComputeStats(target, typed string, elapsed time.Duration) Stats {
	target = strings.TrimSpace(target)
	typed = strings.TrimSpace(typed)

	distance := Levenshtein(target, typed)
	maxLen := len(target)
	if maxLen < 1 {
		maxLen = 1
	}
	correct := len(target) - distance
	if correct < 0 {
		correct = 0
	}
	accuracy := float64(correct) / float64(maxLen)

	minutes := elapsed.Minutes()
	if minutes < 0.0001 {
		minutes = 0.0001
	}
	grossWPM := float64(len(typed)) / 5 / minutes

	return Stats{
		Distance:     distance,
		CorrectChars: correct,
		Accuracy:     accuracy,
		GrossWPM:     grossWPM,
		NetWPM:       grossWPM * accuracy,
		Elapsed:      elapsed,
	}
}

// Levenshtein is the classic full-matrix edit distance.
func Levenshtein(a, b string) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}
