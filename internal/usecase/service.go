package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/game"
	"svw.info/codebreaker/internal/ports"
	"svw.info/codebreaker/internal/schedule"
)

// Recorder receives game events. *metrics.Metrics implements it.
type Recorder interface {
	IncGuess(outcome string)
	IncFinished(s domain.Status)
	IncHint()
	IncSecondChance()
}

type nopRecorder struct{}

func (nopRecorder) IncGuess(string)            {}
func (nopRecorder) IncFinished(domain.Status) {}
func (nopRecorder) IncHint()                  {}
func (nopRecorder) IncSecondChance()          {}

type Service struct {
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.ProgressStore

	Metrics  Recorder
	Logger   *slog.Logger
	Location *time.Location
	Now      func() time.Time

	// mu serializes load-modify-save of player progress.
	mu sync.Mutex

	group   singleflight.Group
	cacheMu sync.Mutex
	cache   map[string]*domain.Puzzle
}

func NewService(g ports.Generator, v ports.Validator, h ports.Hinter, st ports.ProgressStore) *Service {
	return &Service{
		Generator: g,
		Validator: v,
		Hinter:    h,
		Storage:   st,
		Metrics:   nopRecorder{},
		Logger:    discardLogger,
		Location:  time.Local,
		Now:       time.Now,
		cache:     map[string]*domain.Puzzle{},
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Session is a player's view of today's game.
type Session struct {
	State       domain.GameState       `json:"state"`
	Stats       domain.GameStats       `json:"stats"`
	WinRate     int                    `json:"winRate"`
	MaxAttempts int                    `json:"maxAttempts"`
	Marks       [][]domain.Mark        `json:"marks"`
	Keyboard    map[string]domain.Mark `json:"keyboard"`
	Answer      string                 `json:"answer,omitempty"`
	Resumed     bool                   `json:"resumed"`
}

// GuessResult is the outcome of one accepted guess plus the updated session.
type GuessResult struct {
	game.Outcome
	Session *Session `json:"session"`
}

// Today returns the puzzle for the current date in u.Location. Concurrent
// first requests for a date share one generation. The shared generation is
// detached from any single caller's cancellation and bounded by the
// generator's own word-source timeout; each caller stops waiting when its
// own ctx ends.
func (u *Service) Today(ctx context.Context) (*domain.Puzzle, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	day := u.today()
	key := schedule.Date(day)

	if p, ok := u.cached(key); ok {
		return p, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := u.group.DoChan(key, func() (any, error) {
		if p, ok := u.cached(key); ok {
			return p, nil
		}
		p, err := u.Generator.Generate(detached, day)
		if err != nil {
			return nil, err
		}
		u.store(key, schedule.Date(day.AddDate(0, 0, -1)), p)
		u.logger().Info("puzzle ready", "date", key, "cipher", p.Type.String(), "source", p.WordSource)
		return p, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("generate puzzle for %s: %w", key, res.Err)
		}
		return res.Val.(*domain.Puzzle), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("generate puzzle for %s: %w", key, ctx.Err())
	}
}

func (u *Service) cached(key string) (*domain.Puzzle, bool) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	p, ok := u.cache[key]
	return p, ok
}

// store caches p under key and drops everything but key and prev.
func (u *Service) store(key, prev string, p *domain.Puzzle) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	if u.cache == nil {
		u.cache = map[string]*domain.Puzzle{}
	}
	for k := range u.cache {
		if k != key && k != prev {
			delete(u.cache, k)
		}
	}
	u.cache[key] = p
}

// today, recorder and logger fall back to defaults so a Service literal
// without NewService still works.
func (u *Service) today() time.Time {
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}
	loc := time.Local
	if u.Location != nil {
		loc = u.Location
	}
	return now().In(loc)
}

func (u *Service) recorder() Recorder {
	if u.Metrics == nil {
		return nopRecorder{}
	}
	return u.Metrics
}

func (u *Service) logger() *slog.Logger {
	if u.Logger == nil {
		return discardLogger
	}
	return u.Logger
}

// Schedule lists this week's ciphers, Sunday first.
func (u *Service) Schedule() []schedule.Day {
	return schedule.Week(u.today())
}

// Session loads the player's progress, resetting it if it belongs to
// another day.
func (u *Service) Session(ctx context.Context, playerID string) (*Session, error) {
	p, prog, resumed, err := u.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer u.mu.Unlock()
	if !resumed {
		if err := u.save(ctx, playerID, prog); err != nil {
			return nil, err
		}
	}
	s := view(p, prog)
	s.Resumed = resumed
	return s, nil
}

// Guess validates and submits a guess. Invalid guesses use no attempt.
func (u *Service) Guess(ctx context.Context, playerID, guess string) (*GuessResult, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	p, prog, _, err := u.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer u.mu.Unlock()
	normalized, err := u.Validator.Validate(guess, len(p.Answer))
	if err != nil {
		u.recorder().IncGuess("invalid")
		return nil, err
	}
	out, err := game.Submit(&prog.State, &prog.Stats, p.Answer, normalized)
	if err != nil {
		return nil, err
	}
	if err := u.save(ctx, playerID, prog); err != nil {
		return nil, err
	}

	if out.Correct {
		u.recorder().IncGuess("correct")
	} else {
		u.recorder().IncGuess("wrong")
	}
	if out.Finished {
		u.recorder().IncFinished(prog.State.Status)
		u.logger().Info("game finished", "player", playerID, "status", string(prog.State.Status), "attempts", len(prog.State.Guesses))
	}
	return &GuessResult{Outcome: out, Session: view(p, prog)}, nil
}

// Hint spends the day's hint and reveals the first letter.
func (u *Service) Hint(ctx context.Context, playerID string) (domain.Hint, error) {
	if u.Hinter == nil {
		return domain.Hint{}, errNotConfigured
	}
	p, prog, _, err := u.begin(ctx, playerID)
	if err != nil {
		return domain.Hint{}, err
	}
	defer u.mu.Unlock()
	if err := game.UseHint(&prog.State); err != nil {
		return domain.Hint{}, err
	}
	h, err := u.Hinter.Hint(p)
	if err != nil {
		return domain.Hint{}, err
	}
	if err := u.save(ctx, playerID, prog); err != nil {
		return domain.Hint{}, err
	}
	u.recorder().IncHint()
	return h, nil
}

// SecondChance reopens a lost game for one more attempt.
func (u *Service) SecondChance(ctx context.Context, playerID string) (*Session, error) {
	p, prog, _, err := u.begin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer u.mu.Unlock()
	if err := game.SecondChance(&prog.State); err != nil {
		return nil, err
	}
	if err := u.save(ctx, playerID, prog); err != nil {
		return nil, err
	}
	u.recorder().IncSecondChance()
	return view(p, prog), nil
}

// Share returns the share text of a finished game.
func (u *Service) Share(ctx context.Context, playerID string) (string, error) {
	_, prog, _, err := u.begin(ctx, playerID)
	if err != nil {
		return "", err
	}
	defer u.mu.Unlock()
	if prog.State.Status == domain.StatusPlaying {
		return "", fmt.Errorf("share: %w", domain.ErrGameInProgress)
	}
	return game.ShareText(prog.State), nil
}

// begin loads today's puzzle and the player's progress for it. The
// puzzle is resolved before u.mu is taken so a slow generation does not
// block other players; on success the caller owns u.mu and must unlock.
func (u *Service) begin(ctx context.Context, playerID string) (*domain.Puzzle, *domain.Progress, bool, error) {
	if u.Storage == nil {
		return nil, nil, false, errNotConfigured
	}
	p, err := u.Today(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	u.mu.Lock()
	prog, err := u.Storage.Load(ctx, playerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		prog = &domain.Progress{}
	case err != nil:
		u.mu.Unlock()
		return nil, nil, false, err
	}
	state, resumed := game.Resume(prog.State, p)
	prog.State = state
	return p, prog, resumed, nil
}

func (u *Service) save(ctx context.Context, playerID string, prog *domain.Progress) error {
	if err := u.Storage.Save(ctx, playerID, prog); err != nil {
		u.logger().Error("save progress failed", "player", playerID, "err", err)
		return err
	}
	return nil
}

func view(p *domain.Puzzle, prog *domain.Progress) *Session {
	s := &Session{
		State:       prog.State,
		Stats:       prog.Stats,
		WinRate:     prog.Stats.WinRate(),
		MaxAttempts: game.MaxAttempts(prog.State),
		Marks:       make([][]domain.Mark, 0, len(prog.State.Guesses)),
		Keyboard:    game.Keyboard(p.Answer, prog.State.Guesses),
	}
	for _, g := range prog.State.Guesses {
		s.Marks = append(s.Marks, game.Evaluate(p.Answer, g))
	}
	if prog.State.Status != domain.StatusPlaying {
		s.Answer = p.Answer
	}
	return s
}
