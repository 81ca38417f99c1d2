package game

import (
	"strings"

	"svw.info/codebreaker/internal/domain"
)

// Evaluate marks each letter of guess: correct at a matching index,
// present when the answer holds the letter anywhere, absent otherwise.
// Repeated letters are not counted against the answer.
func Evaluate(answer, guess string) []domain.Mark {
	marks := make([]domain.Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case i < len(answer) && answer[i] == guess[i]:
			marks[i] = domain.MarkCorrect
		case strings.IndexByte(answer, guess[i]) >= 0:
			marks[i] = domain.MarkPresent
		default:
			marks[i] = domain.MarkAbsent
		}
	}
	return marks
}

var rank = map[domain.Mark]int{
	domain.MarkAbsent:  1,
	domain.MarkPresent: 2,
	domain.MarkCorrect: 3,
}

// Keyboard returns the best mark seen for every guessed letter.
func Keyboard(answer string, guesses []string) map[string]domain.Mark {
	keys := make(map[string]domain.Mark)
	for _, g := range guesses {
		for i, m := range Evaluate(answer, g) {
			k := g[i : i+1]
			if rank[m] > rank[keys[k]] {
				keys[k] = m
			}
		}
	}
	return keys
}
