package generator

import "strings"

// Dictionary is the fallback word list, indexed by one draw of the daily
// generator. Repeats across a year are expected.
var Dictionary = []string{
	"AGENT", "ALIBI", "CIPHER", "COVERT", "DECODE",
	"ENIGMA", "ESCAPE", "HIDDEN", "INTEL", "LISTEN",
	"MATRIX", "MYSTERY", "PARITY", "PHOENIX", "POCKET",
	"RADAR", "SECRET", "SHIELD", "SIGNAL", "SPYING",
	"TARGET", "TRACKS", "TUNNEL", "VECTOR", "VISION",
	"WEAPON", "WHISPER", "WINDOW", "ZEROED", "ZODIAC",
}

const (
	MinWordLen = 4
	MaxWordLen = 7
)

// Normalize upper-cases w and drops everything outside A-Z. Length is
// not checked.
func Normalize(w string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(w) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
