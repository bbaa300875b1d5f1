// Package zodiac maps a birth month/day to a western zodiac sign and a
// mildly insulting fact.
package zodiac

type Sign struct {
	Name string
	Fact string
	// inclusive month/day range
	StartMonth, StartDay int
	EndMonth, EndDay     int
}

var signs = []Sign{
	{"Capricorn", "You are ambitious, but you repress your emotions until you explode.", 1, 1, 1, 19},
	{"Aquarius", "You are unique, but you have a god complex about being an outsider.", 1, 20, 2, 18},
	{"Pisces", "You are psychic, but you cry over commercials.", 2, 19, 3, 20},
	{"Aries", "You are bold, but you have the patience of a toddler.", 3, 21, 4, 19},
	{"Taurus", "You are reliable, but you would rather nap than save the world.", 4, 20, 5, 20},
	{"Gemini", "You are adaptable, but you have two faces and we never know which one is driving.", 5, 21, 6, 20},
	{"Cancer", "You are nurturing, but you hold grudges from 2005.", 6, 21, 7, 22},
	{"Leo", "You are charismatic, but you think the sun literally revolves around you.", 7, 23, 8, 22},
	{"Virgo", "You are organized, but you stress clean when you are avoiding your feelings.", 8, 23, 9, 22},
	{"Libra", "You are charming, but you take three hours to pick a restaurant.", 9, 23, 10, 22},
	{"Scorpio", "You are passionate, but you treat every conversation like an interrogation.", 10, 23, 11, 21},
	{"Sagittarius", "You are adventurous, but you have a fear of commitment.", 11, 22, 12, 21},
	{"Capricorn", "You are ambitious, but you repress your emotions until you explode.", 12, 22, 12, 31},
}

// Lookup returns the sign covering month/day, false for an invalid date.
func Lookup(month, day int) (Sign, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Sign{}, false
	}
	for _, s := range signs {
		sameMonth := s.StartMonth == s.EndMonth
		if month == s.StartMonth && day >= s.StartDay && (!sameMonth || day <= s.EndDay) {
			return s, true
		}
		if month == s.EndMonth && day <= s.EndDay && (!sameMonth || day >= s.StartDay) {
			return s, true
		}
	}
	return Sign{}, false
}
