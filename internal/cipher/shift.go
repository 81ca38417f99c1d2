package cipher

import (
	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
)

// VigenereKeys are the repeating keys a Vigenère puzzle may use.
var VigenereKeys = []string{"ORBIT", "PULSE", "CODE", "BEEP"}

// caesar draws a shift in 1..25 and rotates every letter by it.
func caesar(s string, src rng.Source) Result {
	shift := rng.IntN(src, 25) + 1
	return Result{
		Ciphertext: shiftLetters(s, func(int) int { return shift }),
		Key:        domain.ShiftKey(shift),
	}
}

// vigenere shifts the character at index i by key[i mod len(key)]. The
// index counts every character, not only letters.
func vigenere(s string, src rng.Source) Result {
	key := VigenereKeys[rng.IntN(src, len(VigenereKeys))]
	return Result{
		Ciphertext: shiftLetters(s, func(i int) int {
			return letterIndex(rune(key[i%len(key)]))
		}),
		Key: domain.WordKey(key),
	}
}
