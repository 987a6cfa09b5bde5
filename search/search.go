// Package search implements the shared ladder-search engine behind BFS,
// UCS, and A*.
//
// One skeleton drives all three strategies: seed the frontier with the start
// word, pop per the strategy's ordering rule, expand neighbors through the
// dictionary's substitution graph, and track parent links for ladder
// reconstruction. BFS goal-tests on generation (a generated neighbor equal
// to the goal short-circuits immediately); UCS and A* goal-test on pop so
// the popped cost is final. UCS and A* use lazy decrease-key: a relaxation
// pushes a duplicate heap entry, and stale entries are skipped once the word
// is settled.
package search

import (
	"container/heap"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// Solve finds a ladder from start to goal over dict using the given strategy,
// applying any number of functional Options.
//
// Validation happens before any exploration, in order:
//  1. dict must be non-nil (ErrNilDictionary).
//  2. Options must be well-formed (ErrOptionViolation).
//  3. start and goal must be non-empty (ErrEmptyWord).
//  4. start, goal, and dict.WordLength() must agree (ErrLengthMismatch).
//  5. strategy must be BFS, UCS, or AStar (ErrUnknownStrategy).
//
// Neither start nor goal needs to be a dictionary member: both remain valid
// endpoints, and the engine connects an out-of-dictionary goal to any word
// one substitution away. If start equals goal the ladder is [start] with
// cost 0 and no expansions.
//
// Search outcomes: a *Result on success; ErrNoPath when the frontier drains;
// ErrExhausted when WithMaxExpansions stops the search early; the context's
// error on cancellation; ErrNonPositiveCost if the cost model misbehaves.
func Solve(dict *wordgraph.Dictionary, start, goal string, strategy Strategy, opts ...Option) (*Result, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start = strings.ToLower(strings.TrimSpace(start))
	goal = strings.ToLower(strings.TrimSpace(goal))
	if start == "" || goal == "" {
		return nil, ErrEmptyWord
	}
	if len(start) != len(goal) {
		return nil, fmt.Errorf("%w: start %q has length %d, goal %q has length %d",
			ErrLengthMismatch, start, len(start), goal, len(goal))
	}
	if len(start) != dict.WordLength() {
		return nil, fmt.Errorf("%w: endpoints have length %d, dictionary is fixed at %d",
			ErrLengthMismatch, len(start), dict.WordLength())
	}
	if strategy != BFS && strategy != UCS && strategy != AStar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	// Zero-transformation ladder.
	if start == goal {
		return &Result{Ladder: []string{start}, Cost: 0, Expansions: 0}, nil
	}

	e := &engine{
		dict:      dict,
		goal:      goal,
		opts:      o,
		cost:      o.costFunc(),
		heuristic: strategy == AStar && !o.NoHeuristic,
		gBest:     make(map[string]float64, dict.Len()),
		parent:    make(map[string]string, dict.Len()),
		settled:   make(map[string]bool, dict.Len()),
	}
	if strategy == BFS {
		return e.runBFS(start)
	}

	return e.runWeighted(start, strategy == AStar)
}

// PathExists reports whether any ladder connects a and b over dict.
// It runs an unbounded BFS; ErrNoPath maps to (false, nil), every other
// failure is surfaced as-is.
func PathExists(dict *wordgraph.Dictionary, a, b string, opts ...Option) (bool, error) {
	if _, err := Solve(dict, a, b, BFS, opts...); err != nil {
		if errors.Is(err, ErrNoPath) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// node is one frontier entry: a word, its accumulated cost g, and its
// Hamming estimate h to the goal (0 unless A* with the heuristic enabled).
// Nodes live entirely inside one Solve call and are discarded after
// reconstruction.
type node struct {
	word string
	g    float64
	h    int
}

// engine holds the mutable state of a single Solve call.
type engine struct {
	dict       *wordgraph.Dictionary
	goal       string
	opts       Options
	cost       CostFunc
	heuristic  bool               // A* with Hamming estimate active
	gBest      map[string]float64 // word → best known accumulated cost
	parent     map[string]string  // word → predecessor on its best path
	settled    map[string]bool    // finalized (UCS/A*) or enqueued (BFS)
	expansions int
}

// runBFS explores in FIFO order with the goal test on generation.
func (e *engine) runBFS(start string) (*Result, error) {
	frontier := []*node{{word: start}}
	e.settled[start] = true
	for len(frontier) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		n := frontier[0]
		frontier = frontier[1:]
		if err := e.spend(); err != nil {
			return nil, err
		}
		for _, nbr := range e.neighbors(n.word) {
			if nbr == e.goal {
				e.parent[nbr] = n.word
				return e.finish(n.g + 1)
			}
			if e.settled[nbr] {
				continue
			}
			e.settled[nbr] = true
			e.parent[nbr] = n.word
			frontier = append(frontier, &node{word: nbr, g: n.g + 1})
		}
	}

	return nil, ErrNoPath
}

// runWeighted explores in priority order: g for UCS, f = g + h for A*
// (ties broken by lower h). Goal test on pop, standard relaxation on a
// strictly lower g, lazy decrease-key via duplicate heap entries.
func (e *engine) runWeighted(start string, astar bool) (*Result, error) {
	pq := &nodePQ{astar: astar}
	heap.Init(pq)
	e.gBest[start] = 0
	heap.Push(pq, &node{word: start, h: e.estimate(start)})

	for pq.Len() > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		n := heap.Pop(pq).(*node)
		// stale lazy-decrease-key entry
		if e.settled[n.word] {
			continue
		}
		if n.word == e.goal {
			return e.finish(n.g)
		}
		e.settled[n.word] = true
		if err := e.spend(); err != nil {
			return nil, err
		}

		for _, nbr := range e.neighbors(n.word) {
			if e.settled[nbr] {
				continue
			}
			w := e.cost(n.word, nbr)
			if w <= 0 {
				return nil, fmt.Errorf("%w: %s→%s cost=%v", ErrNonPositiveCost, n.word, nbr, w)
			}
			ng := n.g + w
			if best, seen := e.gBest[nbr]; seen && ng >= best {
				continue
			}
			e.gBest[nbr] = ng
			e.parent[nbr] = n.word
			heap.Push(pq, &node{word: nbr, g: ng, h: e.estimate(nbr)})
		}
	}

	return nil, ErrNoPath
}

// neighbors yields the dictionary neighbors of w, plus the goal word when it
// is absent from the dictionary but one substitution away.
func (e *engine) neighbors(w string) []string {
	nbrs := e.dict.Neighbors(w)
	if !e.dict.Contains(e.goal) && e.dict.Adjacent(w, e.goal) {
		nbrs = append(nbrs, e.goal)
	}

	return nbrs
}

// estimate returns the Hamming distance to the goal when the heuristic is
// active, 0 otherwise.
func (e *engine) estimate(w string) int {
	if !e.heuristic {
		return 0
	}

	return Hamming(w, e.goal)
}

// spend charges one expansion against the budget. Exceeding the budget is
// reported as ErrExhausted, never ErrNoPath.
func (e *engine) spend() error {
	if e.opts.MaxExpansions > 0 && e.expansions >= e.opts.MaxExpansions {
		return ErrExhausted
	}
	e.expansions++

	return nil
}

// finish walks parent links from the goal back to the start (no parent) and
// reverses the chain into the final ladder.
func (e *engine) finish(cost float64) (*Result, error) {
	ladder := []string{}
	for cur := e.goal; ; {
		ladder = append(ladder, cur)
		prev, ok := e.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(ladder)-1; i < j; i, j = i+1, j-1 {
		ladder[i], ladder[j] = ladder[j], ladder[i]
	}

	return &Result{Ladder: ladder, Cost: cost, Expansions: e.expansions}, nil
}

// nodePQ is a min-heap of *node. UCS orders by g; A* orders by f = g + h
// with ties broken by lower h. Duplicate entries per word are expected
// (lazy decrease-key) and filtered via engine.settled when popped.
type nodePQ struct {
	items []*node
	astar bool
}

// Len returns the number of items in the heap.
func (pq *nodePQ) Len() int { return len(pq.items) }

// Less defines the comparison per strategy ordering rule.
func (pq *nodePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if !pq.astar {
		return a.g < b.g
	}
	fa, fb := a.g+float64(a.h), b.g+float64(b.h)
	if fa != fb {
		return fa < fb
	}

	return a.h < b.h
}

// Swap swaps two elements in the heap.
func (pq *nodePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap; x must be of type *node.
func (pq *nodePQ) Push(x interface{}) { pq.items = append(pq.items, x.(*node)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
