package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks WordSource,Generator,ProgressStore

import (
	"context"
	"time"

	"svw.info/codebreaker/internal/domain"
)

// WordSource proposes today's answer. It may be slow, fail, or return
// garbage; callers fall back to the bundled dictionary.
type WordSource interface {
	Word(ctx context.Context, seed uint32) (string, error)
	Name() string
}

// Generator builds the puzzle for a calendar day.
type Generator interface {
	Generate(ctx context.Context, day time.Time) (*domain.Puzzle, error)
}

// Validator normalizes a guess and checks it against the answer length.
type Validator interface {
	Validate(guess string, length int) (string, error)
}

// Hinter reveals intel about a puzzle's answer.
type Hinter interface {
	Hint(p *domain.Puzzle) (domain.Hint, error)
}

// ProgressStore persists per-player state and stats as JSON.
type ProgressStore interface {
	Save(ctx context.Context, playerID string, p *domain.Progress) error
	Load(ctx context.Context, playerID string) (*domain.Progress, error)
}
