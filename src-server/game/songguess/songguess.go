// Package songguess poses an emoji riddle from a fixed catalog and resolves
// a single guess against it. One resolution per game, right or wrong.
package songguess

import "math/rand/v2"

type Song struct {
	Title  string
	Emojis string
	Genre  string
}

var catalog = []Song{
	{Title: "Baby - Justin Bieber", Emojis: "👶💕🎶", Genre: "pop"},
	{Title: "Circus - Britney Spears", Emojis: "🎪🤹‍♀️✨", Genre: "pop"},
	{Title: "Thriller - Michael Jackson", Emojis: "🧛‍♂️🌕🧟‍♂️", Genre: "pop"},
	{Title: "Let It Go - Idina Menzel (from Frozen)", Emojis: "❄️👸🎤", Genre: "soundtrack"},
	{Title: "Rolling in the Deep - Adele", Emojis: "🌊🎵💔", Genre: "soul"},
	{Title: "Umbrella - Rihanna", Emojis: "☔👑🌧️", Genre: "pop"},
	{Title: "Bohemian Rhapsody - Queen", Emojis: "👨‍🎤🎸🔫", Genre: "rock"},
	{Title: "Highway to Hell - AC/DC", Emojis: "🛣️🔥😈", Genre: "rock"},
}

// Game is a posed riddle waiting for exactly one select answer.
type Game struct {
	HostID string
	Song   Song
}

// Genres lists the distinct genres in the catalog, in catalog order.
func Genres() []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, s := range catalog {
		if !seen[s.Genre] {
			seen[s.Genre] = true
			genres = append(genres, s.Genre)
		}
	}
	return genres
}

// Options returns the answer choices offered for a posed song: every
// catalog entry, or only the posed song's genre when narrowed.
func Options(genre string) []Song {
	if genre == "" {
		out := make([]Song, len(catalog))
		copy(out, catalog)
		return out
	}
	out := make([]Song, 0)
	for _, s := range catalog {
		if s.Genre == genre {
			out = append(out, s)
		}
	}
	return out
}

// Pick draws a random song, optionally narrowed to a genre. False when the
// genre has no songs.
func Pick(genre string) (Song, bool) {
	pool := Options(genre)
	if len(pool) == 0 {
		return Song{}, false
	}
	return pool[rand.IntN(len(pool))], true
}

// Resolve compares the chosen title against the posed one.
func (g *Game) Resolve(chosenTitle string) bool {
	return chosenTitle == g.Song.Title
}
