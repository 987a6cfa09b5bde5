// Package server wires the router: middleware, game endpoints, the raw
// solver endpoint, and the score board.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
	"github.com/katalvlaran/wordladder/wordlist"
)

// Server bundles router, session store, word lists, and the optional
// score history.
type Server struct {
	r     *chi.Mux
	store Store
	hist  *History // nil disables /scores and result recording
	lists map[game.Mode][]string
}

// DefaultLists returns the embedded default word list per mode.
func DefaultLists() map[game.Mode][]string {
	return map[game.Mode][]string{
		game.ModeBeginner:  wordlist.Default(3),
		game.ModeChallenge: wordlist.Default(4),
		game.ModeAdvanced:  wordlist.Default(5),
	}
}

// New constructs a Server, installs middleware, and registers routes.
// Pass hist == nil to run without score persistence.
func New(st Store, hist *History, lists map[game.Mode][]string) *Server {
	if lists == nil {
		lists = DefaultLists()
	}
	s := &Server{r: chi.NewRouter(), store: st, hist: hist, lists: lists}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordladder",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/move", "GET /game/{id}/hint", "GET /game/{id}/compare", "POST /solve", "GET /scores"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/move", s.handleMove)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Get("/game/{id}/hint", s.handleHint)
	s.r.Get("/game/{id}/compare", s.handleCompare)

	// --- raw solver ---
	s.r.Post("/solve", s.handleSolve)

	// --- score board ---
	s.r.Get("/scores", s.handleScores)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not_found: "+r.URL.Path)
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

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Mode   string `json:"mode"`
	Start  string `json:"start"`  // optional fixed start (testing)
	Target string `json:"target"` // optional fixed target (testing)
}

// sessionState is the wire form of a session.
type sessionState struct {
	SessionID  string   `json:"sessionId"`
	Mode       string   `json:"mode"`
	Start      string   `json:"start"`
	Target     string   `json:"target"`
	Current    string   `json:"current"`
	Moves      []string `json:"moves"`
	MovesLeft  int      `json:"movesLeft"`
	Score      int      `json:"score"`
	Won        bool     `json:"won"`
	Over       bool     `json:"over"`
	Banned     []string `json:"banned,omitempty"`
	Restricted []string `json:"restricted,omitempty"`
}

func stateOf(sess *game.Session) sessionState {
	st := sessionState{
		SessionID: sess.ID,
		Mode:      string(sess.Mode),
		Start:     sess.Start,
		Target:    sess.Target,
		Current:   sess.Current,
		Moves:     sess.Moves,
		MovesLeft: sess.MovesLeft(),
		Score:     sess.Score,
		Won:       sess.Won(),
		Over:      sess.Over(),
		Banned:    sess.BannedWords(),
	}
	for _, r := range sess.RestrictedLetters() {
		st.Restricted = append(st.Restricted, string(r))
	}

	return st
}

// handleNewGame creates a session in the requested mode and stores it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	var opts []game.SessionOption
	if req.Start != "" || req.Target != "" {
		opts = append(opts, game.WithPair(req.Start, req.Target))
	}
	sess, err := game.NewSession(mode, s.lists[mode], opts...)
	if err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("session", sess.ID).Str("mode", string(mode)).
		Str("start", sess.Start).Str("target", sess.Target).Msg("new game")
	writeJSON(w, http.StatusOK, stateOf(sess))
}

type moveReq struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

// handleMove applies one player move and records the outcome once the
// session finishes.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		writeErr(w, http.StatusNotFound, "session_not_found")
		return
	}
	if err := sess.Play(req.Word); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if sess.Over() && s.hist != nil {
		if err := s.hist.Record(r.Context(), sess); err != nil {
			// Score board is best effort; the move itself succeeded.
			log.Error().Err(err).Str("session", sess.ID).Msg("record result")
		}
	}
	writeJSON(w, http.StatusOK, stateOf(sess))
}

// handleGetGame returns the session state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "session_not_found")
		return
	}
	writeJSON(w, http.StatusOK, stateOf(sess))
}

// handleHint suggests the next word via ?strategy= (default A*).
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "session_not_found")
		return
	}
	strat := search.AStar
	if name := r.URL.Query().Get("strategy"); name != "" {
		if strat, err = search.ParseStrategy(name); err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	hint, err := sess.Hint(strat, search.WithContext(r.Context()))
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			writeErr(w, http.StatusNotFound, "no_path")
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"hint":     hint,
		"strategy": strat.String(),
	})
}

// handleCompare runs all three strategies on the current position.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "session_not_found")
		return
	}
	stats, err := sess.Compare(search.WithContext(r.Context()))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	type row struct {
		Strategy   string   `json:"strategy"`
		Found      bool     `json:"found"`
		Cost       float64  `json:"cost"`
		Moves      int      `json:"moves"`
		Expansions int      `json:"expansions"`
		ElapsedUs  int64    `json:"elapsedUs"`
		Ladder     []string `json:"ladder,omitempty"`
	}
	out := make([]row, 0, len(stats))
	for _, c := range stats {
		out = append(out, row{
			Strategy:   c.Strategy.String(),
			Found:      c.Found,
			Cost:       c.Cost,
			Moves:      c.Moves,
			Expansions: c.Expansions,
			ElapsedUs:  c.Elapsed.Microseconds(),
			Ladder:     c.Ladder,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------ SOLVE --------------------------------------

type solveReq struct {
	Words         []string `json:"words"` // explicit dictionary; wins over mode
	Mode          string   `json:"mode"`  // fall back to the mode's word list
	Start         string   `json:"start"`
	Target        string   `json:"target"`
	Strategy      string   `json:"strategy"`
	RareWords     []string `json:"rareWords"`
	MaxExpansions int      `json:"maxExpansions"`
}

type solveRes struct {
	Ladder     []string `json:"ladder"`
	Cost       float64  `json:"cost"`
	Moves      int      `json:"moves"`
	Expansions int      `json:"expansions"`
}

// handleSolve runs one standalone search over an explicit word list or a
// mode's default list. ErrNoPath maps to 404, ErrExhausted to 422, invalid
// input to 400.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	words := req.Words
	if len(words) == 0 {
		mode, err := game.ParseMode(req.Mode)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		words = s.lists[mode]
	}
	strat := search.BFS
	if req.Strategy != "" {
		var err error
		if strat, err = search.ParseStrategy(req.Strategy); err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	dict, err := wordgraph.NewDictionary(words, wordgraph.WithIndex())
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := []search.Option{search.WithContext(r.Context())}
	if len(req.RareWords) > 0 {
		opts = append(opts, search.WithRareWords(req.RareWords...))
	}
	if req.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(req.MaxExpansions))
	}

	res, err := search.Solve(dict, req.Start, req.Target, strat, opts...)
	switch {
	case errors.Is(err, search.ErrNoPath):
		writeErr(w, http.StatusNotFound, "no_path")
		return
	case errors.Is(err, search.ErrExhausted):
		writeErr(w, http.StatusUnprocessableEntity, "exhausted")
		return
	case err != nil:
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, solveRes{
		Ladder:     res.Ladder,
		Cost:       res.Cost,
		Moves:      res.Moves(),
		Expansions: res.Expansions,
	})
}

// ------------------------------ SCORES -------------------------------------

// handleScores returns the winning-games score board.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		writeErr(w, http.StatusNotFound, "scores_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := s.hist.TopScores(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("query scores")
		writeErr(w, http.StatusInternalServerError, "query_failed")
		return
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
