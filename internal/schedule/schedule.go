// Package schedule assigns a cipher to each weekday. The canonical order is
// shuffled with a generator seeded by the weekly seed, so every day that
// shares a weekly seed agrees on the same assignment.
package schedule

import (
	"time"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
)

// Canonical is the unshuffled order, Sunday (0) through Saturday (6).
var Canonical = [7]domain.CipherType{
	domain.Vigenere,
	domain.Caesar,
	domain.Atbash,
	domain.A1Z26,
	domain.Keyword,
	domain.Pigpen,
	domain.RailFence,
}

// Shuffled permutes Canonical with a Fisher-Yates pass driven by
// rng.New(weeklySeed), walking i from the last index down to 1.
func Shuffled(weeklySeed uint32) [7]domain.CipherType {
	s := Canonical
	r := rng.New(weeklySeed)
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(r, i+1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// TypeFor returns the cipher scheduled for t's weekday.
func TypeFor(t time.Time) domain.CipherType {
	return Shuffled(WeeklySeed(t))[t.Weekday()]
}

// Day is one entry of a week listing.
type Day struct {
	Date       string            `json:"date"`
	Weekday    int               `json:"weekday"`
	Type       domain.CipherType `json:"type"`
	WeeklySeed uint32            `json:"weeklySeed"`
}

// Week lists Sunday through Saturday of t's week, each entry evaluated at
// noon of its own date as daily generation would. Saturday already carries
// the next weekly seed (see WeekNumber) and a week straddling January 1st
// mixes two years, so WeeklySeed is reported per day.
func Week(t time.Time) []Day {
	y, m, d := t.Date()
	sunday := time.Date(y, m, d-int(t.Weekday()), 12, 0, 0, 0, t.Location())
	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		days = append(days, Day{
			Date:       Date(day),
			Weekday:    int(day.Weekday()),
			Type:       TypeFor(day),
			WeeklySeed: WeeklySeed(day),
		})
	}
	return days
}
