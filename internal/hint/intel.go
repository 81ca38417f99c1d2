package hint

import (
	"errors"
	"fmt"

	"svw.info/codebreaker/internal/domain"
)

// FirstLetter implements a Hinter that reveals the answer's first letter.
type FirstLetter struct{}

func NewFirstLetter() *FirstLetter { return &FirstLetter{} }

var messages = map[string]string{
	"ko": "긴급 인텔: 첫 글자는 '%s' 입니다",
	"en": "Urgent intel: the first letter is '%s'",
}

// Hint returns the first letter with a message in the puzzle's locale.
func (h *FirstLetter) Hint(p *domain.Puzzle) (domain.Hint, error) {
	if p == nil || p.Answer == "" {
		return domain.Hint{}, errors.New("puzzle has no answer")
	}
	format, ok := messages[p.Locale]
	if !ok {
		format = messages["ko"]
	}
	letter := p.Answer[:1]
	return domain.Hint{
		Message:  fmt.Sprintf(format, letter),
		Letter:   letter,
		Position: 0,
	}, nil
}
