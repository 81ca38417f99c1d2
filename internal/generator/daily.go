package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/codebreaker/internal/cipher"
	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
	"svw.info/codebreaker/internal/schedule"
)

// SourceDictionary marks answers drawn from the bundled list.
const SourceDictionary = "dictionary"

var errEmptyWord = errors.New("word source returned no letters")

// Generate builds the puzzle for day's calendar date in day's location.
//
// One generator stream, seeded by the daily seed, feeds first the optional
// dictionary draw and then the cipher sub-key draw. A failing word source
// is absorbed; the only error is the caller's own context ending.
func (g *Daily) Generate(ctx context.Context, day time.Time) (*domain.Puzzle, error) {
	start := time.Now()
	seed := schedule.DailySeed(day)
	r := rng.New(seed)

	word, source, err := g.pickWord(ctx, seed, r)
	if err != nil {
		return nil, err
	}

	weekly := schedule.WeeklySeed(day)
	typ := schedule.Shuffled(weekly)[day.Weekday()]

	res, err := cipher.Encrypt(word, typ, r)
	if err != nil {
		return nil, fmt.Errorf("encrypt %s: %w", typ, err)
	}
	b := BriefingFor(g.locale, typ)

	p := &domain.Puzzle{
		Ciphertext:     res.Ciphertext,
		Answer:         word,
		Type:           typ,
		Description:    b.Description,
		DecryptionTips: b.Tips,
		BeginnerGuide:  b.Guide,
		Key:            res.Key,
		DailySeed:      seed,
		WeeklySeed:     weekly,
		Date:           schedule.Date(day),
		Weekday:        int(day.Weekday()),
		Locale:         g.locale,
		WordSource:     source,
	}
	g.metrics.ObserveGenerate(typ, source, start)
	g.logger.Debug("puzzle generated",
		"date", p.Date,
		"seed", seed,
		"weekly_seed", weekly,
		"cipher", typ.String(),
		"source", source,
		"dur", time.Since(start).Round(time.Millisecond),
	)
	return p, nil
}

// pickWord asks the word source first and draws from the dictionary when
// it fails. The draw happens only on fallback.
func (g *Daily) pickWord(ctx context.Context, seed uint32, r rng.Source) (string, string, error) {
	if g.Source != nil {
		wctx, cancel := context.WithTimeout(ctx, g.wordTimeout)
		raw, err := g.Source.Word(wctx, seed)
		cancel()
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}
		if err == nil {
			if w := Normalize(raw); w != "" {
				if len(w) < MinWordLen || len(w) > MaxWordLen {
					g.logger.Warn("word source length out of range",
						"source", g.Source.Name(), "word_len", len(w))
				}
				return w, g.Source.Name(), nil
			}
			err = errEmptyWord
		}
		reason := fallbackReason(err)
		g.metrics.IncWordFallback(reason)
		g.logger.Warn("word source failed, using dictionary",
			"source", g.Source.Name(), "reason", reason, "err", err)
	}
	w := g.dictionary[rng.IntN(r, len(g.dictionary))]
	return Normalize(w), SourceDictionary, nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, errEmptyWord):
		return "empty"
	default:
		return "error"
	}
}
