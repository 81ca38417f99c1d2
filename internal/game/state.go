// Package game applies player actions to a day's GameState and the
// player's running GameStats. It holds no I/O; callers load and save.
package game

import (
	"fmt"

	"svw.info/codebreaker/internal/domain"
)

// MaxAttempts is 6, or 7 once the second chance is taken.
func MaxAttempts(s domain.GameState) int {
	if s.SecondChanceUsed {
		return domain.MaxAttempts + 1
	}
	return domain.MaxAttempts
}

// New is a fresh game for p.
func New(p *domain.Puzzle) domain.GameState {
	return domain.GameState{
		LastPlayed: p.Date,
		Status:     domain.StatusPlaying,
		Guesses:    []string{},
		DailySeed:  p.DailySeed,
	}
}

// Resume keeps saved when it belongs to p's day and seed, otherwise it
// starts over. The bool reports whether saved was kept.
func Resume(saved domain.GameState, p *domain.Puzzle) (domain.GameState, bool) {
	if saved.LastPlayed == p.Date && saved.DailySeed == p.DailySeed {
		if saved.Guesses == nil {
			saved.Guesses = []string{}
		}
		return saved, true
	}
	return New(p), false
}

// Outcome describes one accepted guess.
type Outcome struct {
	Marks    []domain.Mark `json:"marks"`
	Correct  bool          `json:"correct"`
	Finished bool          `json:"finished"`
}

// Submit records a validated guess. Reaching WON or LOST updates stats.
func Submit(s *domain.GameState, stats *domain.GameStats, answer, guess string) (Outcome, error) {
	if s.Status != domain.StatusPlaying {
		return Outcome{}, fmt.Errorf("submit: %w", domain.ErrGameOver)
	}
	s.Guesses = append(s.Guesses, guess)
	out := Outcome{Marks: Evaluate(answer, guess), Correct: guess == answer}

	switch {
	case out.Correct:
		s.Status = domain.StatusWon
	case len(s.Guesses) >= MaxAttempts(*s):
		s.Status = domain.StatusLost
	default:
		return out, nil
	}
	out.Finished = true
	record(stats, s.Status, len(s.Guesses))
	return out, nil
}

// record folds a finished game into stats. Wins on the seventh attempt
// count as played and won but have no distribution bucket.
func record(stats *domain.GameStats, status domain.Status, attempts int) {
	stats.Played++
	if status != domain.StatusWon {
		stats.Streak = 0
		return
	}
	stats.Won++
	stats.Streak++
	if attempts >= 1 && attempts <= len(stats.Distribution) {
		stats.Distribution[attempts-1]++
	}
}

// UseHint marks the day's single hint as spent.
func UseHint(s *domain.GameState) error {
	if s.Status != domain.StatusPlaying {
		return fmt.Errorf("hint: %w", domain.ErrGameOver)
	}
	if s.HintUsed {
		return domain.ErrHintUsed
	}
	s.HintUsed = true
	return nil
}

// SecondChance reopens a lost game for one more attempt, once per day.
func SecondChance(s *domain.GameState) error {
	if s.Status != domain.StatusLost || s.SecondChanceUsed || len(s.Guesses) > domain.MaxAttempts {
		return domain.ErrSecondChanceUnavailable
	}
	s.SecondChanceUsed = true
	s.Status = domain.StatusPlaying
	return nil
}
