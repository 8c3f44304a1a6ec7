// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /suggest: guess history in, next guess + candidate count out.
//   - POST /simulate: batch solver evaluation (admin JWT required).
//   - GET /results/summary: aggregated round distribution from the store.
//
// Notes:
//   - The service never renders a UI and never fetches a daily answer;
//     it only exposes the solving engine.
//   - Simulation runs inline in the request; callers bound it with the
//     limit parameter.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/TheLionCoder/wordle-solver/internal/game"
	"github.com/TheLionCoder/wordle-solver/internal/sim"
	"github.com/TheLionCoder/wordle-solver/internal/solver"
	"github.com/TheLionCoder/wordle-solver/internal/store"
	"github.com/TheLionCoder/wordle-solver/internal/words"
)

// Server bundles router, dictionary, solver, and results store.
type Server struct {
	r      *chi.Mux
	dict   *words.Dictionary
	solver *solver.Solver
	store  store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict *words.Dictionary, sv *solver.Solver, st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), dict: dict, solver: sv, store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /suggest","POST /simulate","/results/summary"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len()})
	})

	s.r.Post("/suggest", s.handleSuggest)
	s.r.Get("/results/summary", s.handleSummary)

	// Batch evaluation mutates the results store; admin only.
	s.r.With(requireAdmin).Post("/simulate", s.handleSimulate)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SUGGEST ------------------------------------

// guessDTO is a played guess on the wire: the word and its five per-letter
// marks ("correct" | "misplaced" | "wrong").
type guessDTO struct {
	Word string   `json:"word"`
	Mask []string `json:"mask"`
}

type suggestReq struct {
	History []guessDTO `json:"history"`
}

type suggestRes struct {
	Guess      string `json:"guess"`
	Candidates int    `json:"candidates"`
}

// handleSuggest decodes the guess history and returns the solver's next
// guess plus the size of the consistent candidate set.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	history, err := s.decodeHistory(req.History)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	guess, candidates, err := s.solver.Suggest(history)
	if err != nil {
		// Only reachable with a history no dictionary word satisfies.
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{Guess: string(guess), Candidates: candidates})
}

// decodeHistory validates wire records into game.Guess values.
func (s *Server) decodeHistory(dtos []guessDTO) ([]game.Guess, error) {
	history := make([]game.Guess, 0, len(dtos))
	for _, d := range dtos {
		word, err := words.Parse(d.Word)
		if err != nil {
			return nil, err
		}
		if !s.dict.Contains(word) {
			return nil, game.ErrIllegalGuess
		}
		if len(d.Mask) != words.Length {
			return nil, game.ErrBadMask
		}
		var mask game.Mask
		for i, m := range d.Mask {
			c, err := game.ParseCorrectness(m)
			if err != nil {
				return nil, err
			}
			mask[i] = c
		}
		history = append(history, game.Guess{Word: word, Mask: mask})
	}
	return history, nil
}

// ----------------------------- SIMULATE ------------------------------------

type simulateReq struct {
	Limit   int `json:"limit"`   // number of top-ranked answers to play; 0 = all
	Workers int `json:"workers"` // parallel games; 0 = 1
}

// handleSimulate plays the top Limit dictionary words against the solver,
// persists every result, and returns the batch summary.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	ranked := s.dict.Ranked()
	limit := req.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	answers := make([]words.Word, 0, limit)
	for _, e := range ranked[:limit] {
		answers = append(answers, e.Word)
	}

	runner := sim.NewRunner(s.dict, func() game.Guesser { return s.solver }, req.Workers)
	runner.Store = s.store
	summary, err := runner.Run(r.Context(), answers)
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		writeErr(w, http.StatusInternalServerError, "simulation failed")
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// ------------------------------ RESULTS ------------------------------------

// handleSummary reports the aggregated round distribution.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.store.Summarize(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("summarize failed")
		writeErr(w, http.StatusInternalServerError, "summarize failed")
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// writeErr writes a JSON error payload with the given status.
func writeErr(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
