// Package wordsource holds the adapters that propose the daily answer.
package wordsource

import (
	"context"
	"errors"
)

// Static always proposes the same word. Useful offline and for pinning a
// day's answer.
type Static struct {
	word string
}

func NewStatic(word string) *Static { return &Static{word: word} }

func (s *Static) Name() string { return "static" }

func (s *Static) Word(ctx context.Context, _ uint32) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.word == "" {
		return "", errors.New("static word source has no word")
	}
	return s.word, nil
}
