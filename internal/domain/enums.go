package domain

import (
	"fmt"
	"strings"
)

// CipherType labels the scheme used to obscure a puzzle answer.
type CipherType int

const (
	Caesar CipherType = iota
	Atbash
	A1Z26
	Keyword
	Pigpen
	RailFence
	Vigenere
)

var cipherLabels = [...]string{
	Caesar:    "Caesar",
	Atbash:    "Atbash",
	A1Z26:     "A1Z26",
	Keyword:   "Keyword",
	Pigpen:    "Pigpen",
	RailFence: "Rail Fence",
	Vigenere:  "Vigenère",
}

// AllCipherTypes returns every variant in declaration order.
func AllCipherTypes() []CipherType {
	return []CipherType{Caesar, Atbash, A1Z26, Keyword, Pigpen, RailFence, Vigenere}
}

// Valid reports whether t is one of the declared variants.
func (t CipherType) Valid() bool {
	return t >= Caesar && t <= Vigenere
}

// String returns the display label.
func (t CipherType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("CipherType(%d)", int(t))
	}
	return cipherLabels[t]
}

func (t CipherType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid cipher type %d", int(t))
	}
	return []byte(cipherLabels[t]), nil
}

func (t *CipherType) UnmarshalText(b []byte) error {
	v, err := ParseCipherType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseCipherType accepts display labels as well as lowercase ASCII forms
// such as "vigenere", "railfence" or "rail-fence".
func ParseCipherType(s string) (CipherType, error) {
	for _, t := range AllCipherTypes() {
		if s == cipherLabels[t] {
			return t, nil
		}
	}
	switch strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s))) {
	case "caesar":
		return Caesar, nil
	case "atbash":
		return Atbash, nil
	case "a1z26":
		return A1Z26, nil
	case "keyword":
		return Keyword, nil
	case "pigpen":
		return Pigpen, nil
	case "railfence":
		return RailFence, nil
	case "vigenere", "vigenère":
		return Vigenere, nil
	}
	return 0, fmt.Errorf("unknown cipher type %q", s)
}

// Mark is per-letter guess feedback.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Status is the lifecycle of one day's game.
type Status string

const (
	StatusPlaying Status = "PLAYING"
	StatusWon     Status = "WON"
	StatusLost    Status = "LOST"
)
