package game

import (
	"fmt"

	"svw.info/codebreaker/internal/domain"
)

// ShareText is the clipboard summary of a day's result.
func ShareText(s domain.GameState) string {
	result := "X/6"
	if s.Status == domain.StatusWon {
		result = fmt.Sprintf("%d/6", len(s.Guesses))
	}
	return fmt.Sprintf("CODEBREAKER %s\nRESULT: %s\n#코드브레이커 #DailyPuzzle", s.LastPlayed, result)
}
