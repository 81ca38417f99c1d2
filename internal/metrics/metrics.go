package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/codebreaker/internal/domain"
)

// Metrics provides observability for puzzle generation and play.
type Metrics struct {
	PuzzlesGenerated   *prometheus.CounterVec
	WordFallbacks      *prometheus.CounterVec
	GenerateDuration   prometheus.Histogram
	Guesses            *prometheus.CounterVec
	GamesFinished      *prometheus.CounterVec
	HintsRevealed      prometheus.Counter
	SecondChancesTaken prometheus.Counter
}

// New registers all collectors on reg. Pass prometheus.DefaultRegisterer in
// main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PuzzlesGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codebreaker_puzzles_generated_total",
			Help: "Puzzles generated, by cipher type and word source",
		}, []string{"cipher", "source"}),
		WordFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codebreaker_word_fallbacks_total",
			Help: "Dictionary fallbacks taken because the word source failed",
		}, []string{"reason"}),
		GenerateDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "codebreaker_generate_duration_seconds",
			Help:    "Duration of daily puzzle generation including the word source round-trip",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Guesses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codebreaker_guesses_total",
			Help: "Guesses submitted, by outcome",
		}, []string{"outcome"}),
		GamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codebreaker_games_finished_total",
			Help: "Games that reached a terminal status",
		}, []string{"status"}),
		HintsRevealed: f.NewCounter(prometheus.CounterOpts{
			Name: "codebreaker_hints_revealed_total",
			Help: "First-letter hints revealed",
		}),
		SecondChancesTaken: f.NewCounter(prometheus.CounterOpts{
			Name: "codebreaker_second_chances_total",
			Help: "Second chances granted after a loss",
		}),
	}
}

// ObserveGenerate records one finished generation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveGenerate(t domain.CipherType, source string, start time.Time) {
	m.PuzzlesGenerated.WithLabelValues(t.String(), source).Inc()
	m.GenerateDuration.Observe(time.Since(start).Seconds())
}

// IncWordFallback records a dictionary fallback.
func (m *Metrics) IncWordFallback(reason string) {
	m.WordFallbacks.WithLabelValues(reason).Inc()
}

// IncGuess records a submitted guess: "correct", "wrong" or "invalid".
func (m *Metrics) IncGuess(outcome string) {
	m.Guesses.WithLabelValues(outcome).Inc()
}

// IncFinished records a game reaching WON or LOST.
func (m *Metrics) IncFinished(s domain.Status) {
	m.GamesFinished.WithLabelValues(string(s)).Inc()
}

func (m *Metrics) IncHint() { m.HintsRevealed.Inc() }

func (m *Metrics) IncSecondChance() { m.SecondChancesTaken.Inc() }
