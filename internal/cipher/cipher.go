// Package cipher implements the seven encodings applied to puzzle answers.
//
// Every encoder upper-cases its input and transforms only the letters A-Z;
// other characters pass through. Encoders that need a sub-key draw it from
// the supplied rng.Source, exactly once, so the caller's stream stays in
// lockstep with other implementations.
package cipher

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	ErrUnknownCipher = errors.New("unknown cipher type")
	ErrMissingKey    = errors.New("cipher key required")
)

// Result is the encoded text and the sub-key drawn for it, if any.
type Result struct {
	Ciphertext string
	Key        *domain.CipherKey
}

// Encrypt encodes text with t, consuming src as the variant requires.
func Encrypt(text string, t domain.CipherType, src rng.Source) (Result, error) {
	upper := strings.ToUpper(text)
	switch t {
	case domain.Caesar:
		return caesar(upper, src), nil
	case domain.Atbash:
		return Result{Ciphertext: atbash(upper)}, nil
	case domain.A1Z26:
		return Result{Ciphertext: a1z26(upper)}, nil
	case domain.Keyword:
		return keyword(upper, src), nil
	case domain.Pigpen:
		return Result{Ciphertext: upper}, nil
	case domain.RailFence:
		return Result{Ciphertext: railFence(upper)}, nil
	case domain.Vigenere:
		return vigenere(upper, src), nil
	}
	return Result{}, fmt.Errorf("%w: %d", ErrUnknownCipher, int(t))
}

// Decrypt reverses Encrypt given the key it returned.
func Decrypt(ciphertext string, t domain.CipherType, key *domain.CipherKey) (string, error) {
	upper := strings.ToUpper(ciphertext)
	switch t {
	case domain.Caesar:
		if key == nil {
			return "", fmt.Errorf("caesar: %w", ErrMissingKey)
		}
		return shiftLetters(upper, func(int) int { return 26 - key.Shift%26 }), nil
	case domain.Atbash:
		return atbash(upper), nil
	case domain.A1Z26:
		return fromA1Z26(upper), nil
	case domain.Keyword:
		if key == nil || key.Keyword == "" {
			return "", fmt.Errorf("keyword: %w", ErrMissingKey)
		}
		return fromKeyword(upper, key.Keyword), nil
	case domain.Pigpen:
		return upper, nil
	case domain.RailFence:
		return fromRailFence(upper), nil
	case domain.Vigenere:
		if key == nil || key.Keyword == "" {
			return "", fmt.Errorf("vigenere: %w", ErrMissingKey)
		}
		k := strings.ToUpper(key.Keyword)
		return shiftLetters(upper, func(i int) int {
			return 26 - letterIndex(rune(k[i%len(k)]))
		}), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownCipher, int(t))
}

// letterIndex is the 0-based alphabet position of r, or -1.
func letterIndex(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}

// mapLetters rewrites each letter through fn(charIndex, letterIndex).
func mapLetters(s string, fn func(i, idx int) rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range []rune(s) {
		idx := letterIndex(r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(fn(i, idx))
	}
	return b.String()
}

// shiftLetters moves the letter at char index i forward by shift(i).
func shiftLetters(s string, shift func(i int) int) string {
	return mapLetters(s, func(i, idx int) rune {
		return rune(alphabet[(idx+shift(i))%26])
	})
}
