package schedule

import (
	"math"
	"time"
)

// DailySeed is year*10000 + month*100 + day of t's calendar date.
func DailySeed(t time.Time) uint32 {
	y, m, d := t.Date()
	return uint32(y*10000 + int(m)*100 + d)
}

// WeeklySeed is year*100 + WeekNumber(t).
func WeeklySeed(t time.Time) uint32 {
	return uint32(t.Year()*100 + WeekNumber(t))
}

// WeekNumber is ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7) with Sunday
// as weekday 0. daysSinceJan1 is fractional: it counts elapsed time since
// local midnight of January 1st, time of day included. A Saturday past
// 00:00 therefore already belongs to the next week number, so the week
// that shares one number effectively runs Saturday through Friday. This
// is not ISO-8601 numbering.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	past := float64(t.Sub(jan1)) / float64(24*time.Hour)
	return int(math.Ceil((past + float64(jan1.Weekday()) + 1) / 7))
}

// Date formats t as YYYY-MM-DD, the key used for same-day resumption.
func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}
