package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// a1z26 writes each letter as its two-digit 1-based position. Tokens are
// joined with "-"; a non-letter becomes its own token.
func a1z26(s string) string {
	runes := []rune(s)
	tokens := make([]string, len(runes))
	for i, r := range runes {
		idx := letterIndex(r)
		if idx < 0 {
			tokens[i] = string(r)
			continue
		}
		tokens[i] = fmt.Sprintf("%02d", idx+1)
	}
	return strings.Join(tokens, "-")
}

func fromA1Z26(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, tok := range strings.Split(s, "-") {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > 26 {
			b.WriteString(tok)
			continue
		}
		b.WriteByte(alphabet[n-1])
	}
	return b.String()
}

// railFence is a two-rail zigzag: rail 0 takes even indices, rail 1 odd,
// and the rails are concatenated.
func railFence(s string) string {
	runes := []rune(s)
	top := make([]rune, 0, (len(runes)+1)/2)
	bottom := make([]rune, 0, len(runes)/2)
	for i, r := range runes {
		if i%2 == 0 {
			top = append(top, r)
		} else {
			bottom = append(bottom, r)
		}
	}
	return string(top) + string(bottom)
}

func fromRailFence(s string) string {
	runes := []rune(s)
	split := (len(runes) + 1) / 2
	top, bottom := runes[:split], runes[split:]
	out := make([]rune, 0, len(runes))
	for i := range top {
		out = append(out, top[i])
		if i < len(bottom) {
			out = append(out, bottom[i])
		}
	}
	return string(out)
}
