package domain

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidGuess            = errors.New("invalid guess")
	ErrGameOver                = errors.New("game is over")
	ErrGameInProgress          = errors.New("game still in progress")
	ErrHintUsed                = errors.New("hint already used")
	ErrSecondChanceUnavailable = errors.New("second chance unavailable")
)
