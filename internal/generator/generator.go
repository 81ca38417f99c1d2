package generator

import (
	"io"
	"log/slog"
	"time"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/ports"
)

// Recorder receives generation telemetry. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveGenerate(t domain.CipherType, source string, start time.Time)
	IncWordFallback(reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGenerate(domain.CipherType, string, time.Time) {}
func (nopRecorder) IncWordFallback(string)                              {}

// DefaultWordTimeout bounds one word-source round-trip.
const DefaultWordTimeout = 5 * time.Second

// Daily creates the puzzle of a calendar day from the word source, falling
// back to the bundled dictionary.
type Daily struct {
	Source ports.WordSource

	dictionary  []string
	locale      string
	wordTimeout time.Duration
	logger      *slog.Logger
	metrics     Recorder
}

// Option configures a Daily generator.
type Option func(*Daily)

// WithDictionary replaces the fallback word list.
func WithDictionary(words []string) Option {
	return func(g *Daily) { g.dictionary = words }
}

// WithLocale selects the briefing language ("ko" or "en").
func WithLocale(locale string) Option {
	return func(g *Daily) { g.locale = locale }
}

func WithWordTimeout(d time.Duration) Option {
	return func(g *Daily) {
		if d > 0 {
			g.wordTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Daily) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithMetrics(r Recorder) Option {
	return func(g *Daily) {
		if r != nil {
			g.metrics = r
		}
	}
}

// NewDaily wires a generator around src; a nil src always uses the
// dictionary. It panics on an empty dictionary or an unknown locale, both
// of which are configuration defects.
func NewDaily(src ports.WordSource, opts ...Option) *Daily {
	g := &Daily{
		Source:      src,
		dictionary:  Dictionary,
		locale:      DefaultLocale,
		wordTimeout: DefaultWordTimeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:     nopRecorder{},
	}
	for _, o := range opts {
		o(g)
	}
	if len(g.dictionary) == 0 {
		panic("generator: empty dictionary")
	}
	if !SupportedLocale(g.locale) {
		panic("generator: unsupported locale " + g.locale)
	}
	return g
}
