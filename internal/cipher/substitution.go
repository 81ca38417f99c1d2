package cipher

import (
	"strings"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
)

// Keywords seed the keyword-substitution alphabet.
var Keywords = []string{"ZEBRA", "JAZZ", "GHOST", "SILVER", "VORTEX"}

func atbash(s string) string {
	return mapLetters(s, func(_, idx int) rune { return rune(alphabet[25-idx]) })
}

// KeywordAlphabet is the keyword's letters followed by the rest of A-Z,
// keeping only the first occurrence of each letter.
func KeywordAlphabet(kw string) string {
	seen := make(map[rune]bool, 26)
	var b strings.Builder
	for _, r := range strings.ToUpper(kw) + alphabet {
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	return b.String()
}

func keyword(s string, src rng.Source) Result {
	kw := Keywords[rng.IntN(src, len(Keywords))]
	sub := []rune(KeywordAlphabet(kw))
	return Result{
		Ciphertext: mapLetters(s, func(_, idx int) rune { return sub[idx] }),
		Key:        domain.WordKey(kw),
	}
}

func fromKeyword(s, kw string) string {
	sub := KeywordAlphabet(kw)
	return mapLetters(s, func(_, idx int) rune {
		pos := strings.IndexByte(sub, alphabet[idx])
		if pos < 0 || pos >= len(alphabet) {
			return rune(alphabet[idx])
		}
		return rune(alphabet[pos])
	})
}
