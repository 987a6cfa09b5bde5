// Package search defines strategies, configuration options, cost models,
// and error definitions for word-ladder pathfinding.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Strategy selects the frontier ordering used by Solve.
type Strategy int

const (
	// BFS explores in FIFO order and minimizes the number of moves.
	BFS Strategy = iota

	// UCS explores in order of accumulated cost and minimizes total cost.
	UCS

	// AStar explores in order of cost plus the Hamming estimate to the goal.
	AStar
)

// String returns the conventional short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "BFS"
	case UCS:
		return "UCS"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a short name ("bfs", "ucs", "a*", "astar", any case)
// back to its Strategy. Returns ErrUnknownStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch {
	case strings.EqualFold(name, "bfs"):
		return BFS, nil
	case strings.EqualFold(name, "ucs"):
		return UCS, nil
	case strings.EqualFold(name, "a*"), strings.EqualFold(name, "astar"):
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Sentinel errors. The first group marks invalid input, detected before any
// exploration; the second marks ordinary search outcomes.
var (
	// ErrNilDictionary is returned when a nil *wordgraph.Dictionary is passed.
	ErrNilDictionary = errors.New("search: dictionary is nil")

	// ErrEmptyWord is returned when start or goal is empty.
	ErrEmptyWord = errors.New("search: start and goal must be non-empty")

	// ErrLengthMismatch is returned when start, goal, and the dictionary's
	// fixed word length disagree.
	ErrLengthMismatch = errors.New("search: word length mismatch")

	// ErrUnknownStrategy is returned for a Strategy value outside BFS/UCS/AStar.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNonPositiveCost is returned when the cost model yields a value ≤ 0;
	// UCS and A* correctness depends on strictly positive edge weights.
	ErrNonPositiveCost = errors.New("search: edge cost must be positive")

	// ErrNoPath signals that the frontier drained without reaching the goal.
	// No ladder exists; this is a normal outcome, not a fault.
	ErrNoPath = errors.New("search: no ladder exists")

	// ErrExhausted signals that the expansion budget (WithMaxExpansions)
	// stopped the search early. Distinct from ErrNoPath: a ladder might
	// still exist beyond the budget.
	ErrExhausted = errors.New("search: expansion budget exhausted")
)

// DefaultRarePenalty is the edge cost of stepping onto a rare word when no
// explicit penalty is configured.
const DefaultRarePenalty = 5.0

// CostFunc assigns the cost of traversing the edge from → to.
// Implementations must return strictly positive values.
type CostFunc func(from, to string) float64

// UniformCost charges 1.0 for every substitution. BFS implicitly assumes it.
func UniformCost(_, _ string) float64 { return 1.0 }

// RareWordCost charges penalty for stepping onto any word in rare and 1.0
// otherwise. The penalty applies to the destination word only.
func RareWordCost(rare map[string]struct{}, penalty float64) CostFunc {
	return func(_, to string) float64 {
		if _, ok := rare[to]; ok {
			return penalty
		}

		return 1.0
	}
}

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters customizing a single Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Cost overrides the edge cost model. Ignored by BFS, which tracks
	// unit depth by definition.
	Cost CostFunc

	// RareWords marks destination words charged RarePenalty instead of 1.0.
	// Ignored when Cost is set explicitly.
	RareWords map[string]struct{}

	// RarePenalty is the cost of stepping onto a rare word.
	RarePenalty float64

	// MaxExpansions caps the number of node expansions.
	// A value of 0 explicitly disables the budget.
	MaxExpansions int

	// NoHeuristic makes AStar order its frontier by g alone, degrading to
	// UCS. Useful when rare-word penalties void the heuristic's
	// admissibility and strict optimality is required.
	NoHeuristic bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - uniform 1.0 edge costs, no rare words
//   - no expansion budget (MaxExpansions == 0)
//   - heuristic enabled for AStar.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Cost:        nil,
		RareWords:   nil,
		RarePenalty: DefaultRarePenalty,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost replaces the edge cost model entirely. The function must return
// strictly positive values; violations surface as ErrNonPositiveCost during
// the search.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithRareWords flags words whose traversal costs RarePenalty instead of 1.0
// under UCS and A*. Words are matched exactly as given.
func WithRareWords(words ...string) Option {
	return func(o *Options) {
		if o.RareWords == nil {
			o.RareWords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.RareWords[w] = struct{}{}
		}
	}
}

// WithRarePenalty sets the cost of stepping onto a rare word.
//
//	p > 0: use p
//	p ≤ 0: invalid option → ErrOptionViolation
func WithRarePenalty(p float64) Option {
	return func(o *Options) {
		if p <= 0 {
			o.err = fmt.Errorf("%w: RarePenalty must be positive (%v)", ErrOptionViolation, p)
			return
		}
		o.RarePenalty = p
	}
}

// WithMaxExpansions caps node expansions at n. Hitting the cap yields
// ErrExhausted, never ErrNoPath.
//
//	n > 0: budget of n expansions
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutHeuristic disables the Hamming estimate, making AStar order its
// frontier by accumulated cost alone (UCS behavior).
func WithoutHeuristic() Option {
	return func(o *Options) { o.NoHeuristic = true }
}

// costFunc resolves the effective cost model for this call.
func (o *Options) costFunc() CostFunc {
	if o.Cost != nil {
		return o.Cost
	}
	if len(o.RareWords) > 0 {
		return RareWordCost(o.RareWords, o.RarePenalty)
	}

	return UniformCost
}

// Result is the immutable outcome of one successful Solve call.
type Result struct {
	// Ladder is the full transformation chain, start and goal inclusive.
	Ladder []string

	// Cost is the total path cost: the sum of edge costs for UCS and A*,
	// the move count for BFS.
	Cost float64

	// Expansions counts the nodes the engine expanded before stopping.
	Expansions int
}

// Moves reports the number of transformations in the ladder.
func (r *Result) Moves() int {
	if len(r.Ladder) == 0 {
		return 0
	}

	return len(r.Ladder) - 1
}
