package hangman

import (
	"math/rand/v2"
	"sort"
)

// The corpus the original bot shipped, pre-partitioned by exact length so a
// requested-length draw never scans the whole list.
var words = []string{
	"javascript",
	"discord",
	"programming",
	"developer",
	"computer",
	"internet",
	"database",
	"algorithm",
	"variable",
	"function",
	"keyboard",
	"network",
	"compiler",
	"terminal",
	"package",
	"pointer",
	"channel",
	"routine",
	"server",
	"client",
	"binary",
	"syntax",
	"cursor",
	"kernel",
	"array",
	"stack",
	"queue",
	"slice",
	"cache",
	"debug",
}

var wordsByLength = func() map[int][]string {
	buckets := make(map[int][]string)
	for _, w := range words {
		buckets[len(w)] = append(buckets[len(w)], w)
	}
	return buckets
}()

// PickByLength draws uniformly from the bucket for that exact length,
// false when no such bucket exists.
func PickByLength(length int) (string, bool) {
	bucket := wordsByLength[length]
	if len(bucket) == 0 {
		return "", false
	}
	return bucket[rand.IntN(len(bucket))], true
}

// PickRandom draws uniformly from the full corpus.
func PickRandom() (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[rand.IntN(len(words))], true
}

// Lengths lists every word length the corpus can serve, ascending.
func Lengths() []int {
	lengths := make([]int, 0, len(wordsByLength))
	for l := range wordsByLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}
