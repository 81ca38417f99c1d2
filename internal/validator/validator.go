package validator

import (
	"fmt"
	"strings"

	"svw.info/codebreaker/internal/domain"
)

type GuessValidator struct{}

func New() *GuessValidator { return &GuessValidator{} }

// Validate upper-cases guess and requires exactly length letters A-Z.
// Errors wrap domain.ErrInvalidGuess.
func (v *GuessValidator) Validate(guess string, length int) (string, error) {
	g := strings.ToUpper(strings.TrimSpace(guess))
	for i, r := range g {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: non-letter %q at %d", domain.ErrInvalidGuess, r, i)
		}
	}
	if n := len(g); n != length {
		return "", fmt.Errorf("%w: need %d letters, got %d", domain.ErrInvalidGuess, length, n)
	}
	return g, nil
}
