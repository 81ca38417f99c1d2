package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// CipherKey is the sub-key drawn while encoding: a Caesar shift or a keyword.
type CipherKey struct {
	Shift   int
	Keyword string
}

// ShiftKey and WordKey build the two key shapes.
func ShiftKey(shift int) *CipherKey { return &CipherKey{Shift: shift} }
func WordKey(word string) *CipherKey { return &CipherKey{Keyword: word} }

func (k CipherKey) String() string {
	if k.Keyword != "" {
		return k.Keyword
	}
	return strconv.Itoa(k.Shift)
}

// MarshalJSON encodes shifts as numbers and keywords as strings.
func (k CipherKey) MarshalJSON() ([]byte, error) {
	if k.Keyword != "" {
		return json.Marshal(k.Keyword)
	}
	return json.Marshal(k.Shift)
}

func (k *CipherKey) UnmarshalJSON(b []byte) error {
	var word string
	if err := json.Unmarshal(b, &word); err == nil {
		*k = CipherKey{Keyword: word}
		return nil
	}
	var shift int
	if err := json.Unmarshal(b, &shift); err != nil {
		return fmt.Errorf("cipher key must be a number or a string: %w", err)
	}
	*k = CipherKey{Shift: shift}
	return nil
}

// Puzzle is one day's generated cipher challenge.
type Puzzle struct {
	Ciphertext     string     `json:"ciphertext"`
	Answer         string     `json:"answer"`
	Type           CipherType `json:"type"`
	Description    string     `json:"description"`
	DecryptionTips string     `json:"decryptionTips"`
	BeginnerGuide  string     `json:"beginnerGuide"`
	Key            *CipherKey `json:"key,omitempty"`

	DailySeed  uint32 `json:"dailySeed"`
	WeeklySeed uint32 `json:"weeklySeed"`
	Date       string `json:"date"`
	Weekday    int    `json:"weekday"`
	Locale     string `json:"locale,omitempty"`
	WordSource string `json:"wordSource,omitempty"`
}

// Hint is intel revealed about the answer.
type Hint struct {
	Message  string `json:"message"`
	Letter   string `json:"letter"`
	Position int    `json:"position"`
}

// GameState is a player's progress on the puzzle of LastPlayed.
type GameState struct {
	LastPlayed       string   `json:"lastPlayed"`
	Status           Status   `json:"status"`
	Guesses          []string `json:"guesses"`
	HintUsed         bool     `json:"hintsUsed"`
	SecondChanceUsed bool     `json:"secondChanceUsed"`
	DailySeed        uint32   `json:"dailySeed"`
}

// MaxAttempts is the number of guesses per day before a second chance.
const MaxAttempts = 6

// GameStats accumulates finished games across days.
type GameStats struct {
	Played       int              `json:"played"`
	Won          int              `json:"won"`
	Streak       int              `json:"streak"`
	Distribution [MaxAttempts]int `json:"distribution"`
}

// WinRate is the rounded percentage of played games that were won.
func (s GameStats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return int(math.Round(float64(s.Won) / float64(s.Played) * 100))
}

// Progress is everything persisted for one player.
type Progress struct {
	State GameState `json:"state"`
	Stats GameStats `json:"stats"`
}
