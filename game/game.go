package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Session is one word-ladder puzzle in progress. It is not safe for
// concurrent use; the design assumes one player interaction at a time.
type Session struct {
	// ID uniquely identifies the session.
	ID string

	// Mode is the difficulty the session was created with.
	Mode Mode

	// Start and Target are the fixed endpoints of the puzzle.
	Start  string
	Target string

	// Current is the word the player stands on.
	Current string

	// Moves lists the accepted moves in order, Start excluded.
	Moves []string

	// Score starts at StartScore and drops MovePenalty per move.
	Score int

	// MaxMoves caps the number of moves, per mode.
	MaxMoves int

	dict       *wordgraph.Dictionary
	banned     map[string]struct{}
	restricted []rune
}

// SessionOption configures NewSession.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	rng          *rand.Rand
	start, trget string
}

// WithRand supplies a deterministic random source, mainly for tests.
func WithRand(rng *rand.Rand) SessionOption {
	return func(o *sessionOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithPair pins the start and target words instead of drawing them
// randomly. The pair is still validated for connectivity.
func WithPair(start, target string) SessionOption {
	return func(o *sessionOptions) {
		o.start = strings.ToLower(strings.TrimSpace(start))
		o.trget = strings.ToLower(strings.TrimSpace(target))
	}
}

// NewSession starts a puzzle in the given mode over the given word list.
// Words must all have the mode's fixed length. Challenge mode samples
// bannedCount banned words and restrictedCount restricted letters before
// the dictionary is built. The start/target pair is drawn at random with a
// reachability check, retried up to pairAttempts times (ErrNoPair on
// failure); WithPair skips the draw but keeps the check.
func NewSession(mode Mode, words []string, opts ...SessionOption) (*Session, error) {
	cfg, err := mode.Config()
	if err != nil {
		return nil, err
	}
	o := sessionOptions{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		ID:       uuid.NewString(),
		Mode:     mode,
		Score:    StartScore,
		MaxMoves: cfg.MaxMoves,
		banned:   map[string]struct{}{},
	}

	dictOpts := []wordgraph.Option{wordgraph.WithIndex()}
	if cfg.Obstacles {
		if len(words) <= bannedCount+1 {
			return nil, fmt.Errorf("%w: %d words, obstacles need more than %d",
				ErrTooFewWords, len(words), bannedCount+1)
		}
		for _, i := range o.rng.Perm(len(words))[:bannedCount] {
			s.banned[strings.ToLower(words[i])] = struct{}{}
		}
		for _, i := range o.rng.Perm(len(wordgraph.Alphabet))[:restrictedCount] {
			s.restricted = append(s.restricted, rune(wordgraph.Alphabet[i]))
		}
		sort.Slice(s.restricted, func(i, j int) bool { return s.restricted[i] < s.restricted[j] })
		dictOpts = append(dictOpts,
			wordgraph.WithBannedWords(s.BannedWords()...),
			wordgraph.WithRestrictedLetters(s.restricted...),
		)
	}

	s.dict, err = wordgraph.NewDictionary(words, dictOpts...)
	if err != nil {
		return nil, err
	}
	if s.dict.WordLength() != cfg.WordLength {
		return nil, fmt.Errorf("%w: %s mode needs %d-letter words, got %d",
			ErrWrongLength, mode, cfg.WordLength, s.dict.WordLength())
	}

	if o.start != "" || o.trget != "" {
		s.Start, s.Target = o.start, o.trget
		ok, perr := search.PathExists(s.dict, s.Start, s.Target)
		if perr != nil {
			return nil, perr
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s → %s", ErrNoPair, s.Start, s.Target)
		}
	} else if err := s.drawPair(o.rng); err != nil {
		return nil, err
	}
	s.Current = s.Start

	return s, nil
}

// drawPair picks a random connected start/target pair.
func (s *Session) drawPair(rng *rand.Rand) error {
	candidates := s.dict.Words()
	if len(candidates) < 2 {
		return fmt.Errorf("%w: %d words", ErrTooFewWords, len(candidates))
	}
	s.Start = candidates[rng.Intn(len(candidates))]
	for attempt := 0; attempt < pairAttempts; attempt++ {
		target := candidates[rng.Intn(len(candidates))]
		if target == s.Start {
			continue
		}
		ok, err := search.PathExists(s.dict, s.Start, target)
		if err != nil {
			return err
		}
		if ok {
			s.Target = target
			return nil
		}
	}

	return ErrNoPair
}

// Play validates and applies one move. Rule order matches play intuition:
// the session must be live, the word known, not banned, exactly one letter
// away, and the letter written must not be restricted. An accepted move
// costs MovePenalty points.
func (s *Session) Play(word string) error {
	if s.Over() {
		return ErrSessionOver
	}
	w := strings.ToLower(strings.TrimSpace(word))
	if _, banned := s.banned[w]; banned {
		return fmt.Errorf("%w: %q", ErrBannedWord, w)
	}
	if !s.dict.Contains(w) && w != s.Target {
		return fmt.Errorf("%w: %q", ErrNotInDictionary, w)
	}
	if d := search.Hamming(s.Current, w); d != 1 {
		return fmt.Errorf("%w: %q → %q changes %d", ErrNotOneLetter, s.Current, w, d)
	}
	if !s.dict.Adjacent(s.Current, w) {
		// One letter changed but the dictionary cut the edge: the letter
		// written is restricted.
		return fmt.Errorf("%w: %q → %q", ErrRestrictedLetter, s.Current, w)
	}

	s.Moves = append(s.Moves, w)
	s.Current = w
	s.Score -= MovePenalty

	return nil
}

// Won reports whether the player reached the target.
func (s *Session) Won() bool { return s.Current == s.Target }

// Over reports whether the session finished: target reached or moves spent.
func (s *Session) Over() bool { return s.Won() || len(s.Moves) >= s.MaxMoves }

// MovesLeft reports the remaining move budget.
func (s *Session) MovesLeft() int {
	left := s.MaxMoves - len(s.Moves)
	if left < 0 {
		return 0
	}

	return left
}

// BannedWords returns the session's banned words in ascending order.
func (s *Session) BannedWords() []string {
	out := make([]string, 0, len(s.banned))
	for w := range s.banned {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// RestrictedLetters returns the session's restricted letters in ascending
// order.
func (s *Session) RestrictedLetters() []rune {
	out := make([]rune, len(s.restricted))
	copy(out, s.restricted)

	return out
}

// Dictionary exposes the session's dictionary for read-only queries.
func (s *Session) Dictionary() *wordgraph.Dictionary { return s.dict }

// Solution solves the remaining ladder from the current word with the given
// strategy. ErrNoPath propagates unchanged.
func (s *Session) Solution(strategy search.Strategy, opts ...search.Option) (*search.Result, error) {
	return search.Solve(s.dict, s.Current, s.Target, strategy, opts...)
}

// Hint suggests the next word along the strategy's ladder: the second
// element of the found path. On a solved session the hint is the current
// word itself.
func (s *Session) Hint(strategy search.Strategy, opts ...search.Option) (string, error) {
	res, err := s.Solution(strategy, opts...)
	if err != nil {
		return "", err
	}
	if len(res.Ladder) < 2 {
		return s.Current, nil
	}

	return res.Ladder[1], nil
}

// Comparison reports one strategy's run in a Compare sweep.
type Comparison struct {
	Strategy   search.Strategy
	Found      bool
	Cost       float64
	Moves      int
	Expansions int
	Elapsed    time.Duration
	Ladder     []string
}

// Compare runs BFS, UCS, and A* on the current position and collects
// per-strategy statistics. A missing ladder is recorded (Found=false), any
// other failure aborts the sweep.
func (s *Session) Compare(opts ...search.Option) ([]Comparison, error) {
	out := make([]Comparison, 0, 3)
	for _, strat := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		began := time.Now()
		res, err := s.Solution(strat, opts...)
		elapsed := time.Since(began)
		if err != nil {
			if errors.Is(err, search.ErrNoPath) || errors.Is(err, search.ErrExhausted) {
				out = append(out, Comparison{Strategy: strat, Elapsed: elapsed})
				continue
			}

			return nil, err
		}
		out = append(out, Comparison{
			Strategy:   strat,
			Found:      true,
			Cost:       res.Cost,
			Moves:      res.Moves(),
			Expansions: res.Expansions,
			Elapsed:    elapsed,
			Ladder:     res.Ladder,
		})
	}

	return out, nil
}
