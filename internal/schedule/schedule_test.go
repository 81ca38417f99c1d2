package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/codebreaker/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestDailySeed(t *testing.T) {
	assert.Equal(t, uint32(20261014), DailySeed(date(2026, time.October, 14)))
	assert.Equal(t, uint32(20260101), DailySeed(date(2026, time.January, 1)))
	assert.Equal(t, uint32(20251231), DailySeed(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)))
}

func TestDailySeedUsesLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	utc := time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, uint32(20261014), DailySeed(utc))
	assert.Equal(t, uint32(20261015), DailySeed(utc.In(seoul)))
}

func TestWeeklySeed(t *testing.T) {
	cases := []struct {
		day  time.Time
		want uint32
	}{
		{date(2026, time.October, 14), 202642},
		{date(2026, time.January, 1), 202601},
		{date(2026, time.January, 2), 202601},
		// Saturday after midnight counts toward the next week
		{date(2026, time.January, 3), 202602},
		{date(2026, time.January, 4), 202602},
		{date(2025, time.December, 31), 202553},
		{date(2024, time.December, 29), 202453},
		{date(2027, time.January, 1), 202701},
		{date(2026, time.October, 17), 202643},
		{time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), 202642},
		{time.Date(2026, time.October, 16, 23, 59, 59, 0, time.UTC), 202642},
	}
	for _, tc := range cases {
		t.Run(tc.day.Format(time.DateTime), func(t *testing.T) {
			assert.Equal(t, tc.want, WeeklySeed(tc.day))
		})
	}
}

func TestWeeklySeedStableFromSaturdayToFriday(t *testing.T) {
	saturday := date(2026, time.October, 10)
	want := WeeklySeed(saturday)
	assert.Equal(t, uint32(202642), want)
	for i := 1; i < 7; i++ {
		assert.Equal(t, want, WeeklySeed(saturday.AddDate(0, 0, i)), "day %d", i)
	}
	assert.Equal(t, uint32(202641), WeeklySeed(saturday.AddDate(0, 0, -1)))
	assert.Equal(t, uint32(202643), WeeklySeed(saturday.AddDate(0, 0, 7)))
}

func TestWeeklySeedUsesTimeOfDayInLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	// Friday 20:00 UTC is Saturday 05:00 in Seoul.
	utc := time.Date(2026, time.October, 16, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, uint32(202642), WeeklySeed(utc))
	assert.Equal(t, uint32(202643), WeeklySeed(utc.In(seoul)))
}

func TestShuffledReferencePermutations(t *testing.T) {
	cases := []struct {
		seed uint32
		want [7]domain.CipherType
	}{
		{202642, [7]domain.CipherType{domain.RailFence, domain.Vigenere, domain.Keyword, domain.Caesar, domain.Atbash, domain.Pigpen, domain.A1Z26}},
		{202601, [7]domain.CipherType{domain.Vigenere, domain.RailFence, domain.A1Z26, domain.Pigpen, domain.Caesar, domain.Keyword, domain.Atbash}},
		{202553, [7]domain.CipherType{domain.A1Z26, domain.Atbash, domain.Pigpen, domain.Keyword, domain.Caesar, domain.RailFence, domain.Vigenere}},
		{202643, [7]domain.CipherType{domain.Vigenere, domain.Pigpen, domain.Keyword, domain.Caesar, domain.A1Z26, domain.Atbash, domain.RailFence}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Shuffled(tc.seed), "seed %d", tc.seed)
	}
}

func TestShuffledIsDeterministicPermutation(t *testing.T) {
	for seed := uint32(202401); seed < 202453; seed++ {
		s := Shuffled(seed)
		require.Equal(t, s, Shuffled(seed))
		seen := map[domain.CipherType]int{}
		for _, c := range s {
			seen[c]++
		}
		require.Len(t, seen, 7, "seed %d", seed)
		for _, c := range domain.AllCipherTypes() {
			require.Equal(t, 1, seen[c], "seed %d type %s", seed, c)
		}
	}
	assert.Equal(t, [7]domain.CipherType{domain.Vigenere, domain.Caesar, domain.Atbash, domain.A1Z26, domain.Keyword, domain.Pigpen, domain.RailFence}, Canonical)
}

func TestTypeFor(t *testing.T) {
	assert.Equal(t, domain.Caesar, TypeFor(date(2026, time.October, 14)))
	assert.Equal(t, domain.RailFence, TypeFor(date(2026, time.October, 11)))
	// Saturday reads slot 6 of the next week's shuffle.
	assert.Equal(t, domain.RailFence, TypeFor(date(2026, time.October, 17)))
	assert.Equal(t, domain.A1Z26, TypeFor(time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)))
}

func TestWeek(t *testing.T) {
	days := Week(date(2026, time.October, 14))
	require.Len(t, days, 7)
	assert.Equal(t, "2026-10-11", days[0].Date)
	assert.Equal(t, "2026-10-17", days[6].Date)
	want := Shuffled(202642)
	for i, d := range days[:6] {
		assert.Equal(t, i, d.Weekday)
		assert.Equal(t, want[i], d.Type)
		assert.Equal(t, uint32(202642), d.WeeklySeed)
	}
	sat := days[6]
	assert.Equal(t, 6, sat.Weekday)
	assert.Equal(t, uint32(202643), sat.WeeklySeed)
	assert.Equal(t, Shuffled(202643)[6], sat.Type)
	assert.Equal(t, TypeFor(date(2026, time.October, 17)), sat.Type)
}
