package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/schedule"
	"svw.info/codebreaker/internal/usecase"
)

// PlayerHeader carries the player identity on requests and, when the
// server mints one, on responses.
const PlayerHeader = "X-Player-ID"

type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/puzzle", h.handlePuzzle)
		r.Get("/schedule", h.handleSchedule)
		r.Group(func(r chi.Router) {
			r.Use(playerID)
			r.Get("/session", h.handleSession)
			r.Post("/guess", h.handleGuess)
			r.Post("/hint", h.handleHint)
			r.Post("/second-chance", h.handleSecondChance)
			r.Get("/share", h.handleShare)
		})
	})
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidGuess):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGameOver),
		errors.Is(err, domain.ErrHintUsed),
		errors.Is(err, domain.ErrSecondChanceUnavailable),
		errors.Is(err, domain.ErrGameInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResp{Error: msg})
}

// ---- Player identity ----

type playerKey struct{}

// playerID reads X-Player-ID, minting a UUID when the request has none.
func playerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(PlayerHeader)
		if id == "" {
			id = uuid.NewString()
		} else if _, err := uuid.Parse(id); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid " + PlayerHeader})
			return
		}
		w.Header().Set(PlayerHeader, id)
		next.ServeHTTP(w, r.WithContext(contextWithPlayer(r, id)))
	})
}

// ---- Puzzle / Schedule ----

// puzzleResp is the public view of a puzzle: the answer and key stay on
// the server.
type puzzleResp struct {
	Ciphertext     string            `json:"ciphertext"`
	Type           domain.CipherType `json:"type"`
	Length         int               `json:"length"`
	Description    string            `json:"description"`
	DecryptionTips string            `json:"decryptionTips"`
	BeginnerGuide  string            `json:"beginnerGuide"`
	Date           string            `json:"date"`
	Weekday        int               `json:"weekday"`
	Locale         string            `json:"locale,omitempty"`
}

func (h *Handler) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := h.UC.Today(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, puzzleResp{
		Ciphertext:     p.Ciphertext,
		Type:           p.Type,
		Length:         len(p.Answer),
		Description:    p.Description,
		DecryptionTips: p.DecryptionTips,
		BeginnerGuide:  p.BeginnerGuide,
		Date:           p.Date,
		Weekday:        p.Weekday,
		Locale:         p.Locale,
	})
}

type scheduleResp struct {
	Days []schedule.Day `json:"days"`
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scheduleResp{Days: h.UC.Schedule()})
}

// ---- Session ----

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.Session(r.Context(), playerFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ---- Guess ----

type guessReq struct {
	Guess string `json:"guess"`
}

func (h *Handler) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, err := h.UC.Guess(r.Context(), playerFrom(r), req.Guess)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Hint / Second chance / Share ----

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	hh, err := h.UC.Hint(r.Context(), playerFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hh)
}

func (h *Handler) handleSecondChance(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.SecondChance(r.Context(), playerFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

type shareResp struct {
	Text string `json:"text"`
}

func (h *Handler) handleShare(w http.ResponseWriter, r *http.Request) {
	text, err := h.UC.Share(r.Context(), playerFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResp{Text: text})
}
