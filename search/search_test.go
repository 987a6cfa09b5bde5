package search_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ladderDict is the canonical fixture: hit → cog has exactly one shortest
// ladder of length 5 (hit is deliberately NOT a member — endpoints outside
// the dictionary must still work).
func ladderDict(t *testing.T, opts ...wordgraph.Option) *wordgraph.Dictionary {
	t.Helper()
	d, err := wordgraph.NewDictionary([]string{"hot", "dot", "dog", "lot", "log", "cog"}, opts...)
	if err != nil {
		t.Fatalf("fixture dictionary: %v", err)
	}
	return d
}

// assertLadderSteps verifies every consecutive pair differs in exactly one
// letter position.
func assertLadderSteps(t *testing.T, ladder []string) {
	t.Helper()
	for i := 1; i < len(ladder); i++ {
		if d := search.Hamming(ladder[i-1], ladder[i]); d != 1 {
			t.Errorf("step %q→%q differs in %d positions; want 1", ladder[i-1], ladder[i], d)
		}
	}
}

// TestSolve_InvalidInput verifies that precondition violations are rejected
// before any exploration, for every strategy.
func TestSolve_InvalidInput(t *testing.T) {
	d := ladderDict(t)

	// nil dictionary
	if _, err := search.Solve(nil, "hit", "cog", search.BFS); !errors.Is(err, search.ErrNilDictionary) {
		t.Errorf("nil dictionary: want ErrNilDictionary, got %v", err)
	}
	// empty endpoint
	if _, err := search.Solve(d, "", "cog", search.BFS); !errors.Is(err, search.ErrEmptyWord) {
		t.Errorf("empty start: want ErrEmptyWord, got %v", err)
	}
	// start/goal length mismatch, regardless of strategy
	for _, s := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		if _, err := search.Solve(d, "cat", "dogs", s); !errors.Is(err, search.ErrLengthMismatch) {
			t.Errorf("%s cat vs dogs: want ErrLengthMismatch, got %v", s, err)
		}
	}
	// endpoints disagree with the dictionary's fixed length
	if _, err := search.Solve(d, "stone", "scale", search.BFS); !errors.Is(err, search.ErrLengthMismatch) {
		t.Errorf("5-letter endpoints on 3-letter dict: want ErrLengthMismatch, got %v", err)
	}
	// unknown strategy
	if _, err := search.Solve(d, "hit", "cog", search.Strategy(99)); !errors.Is(err, search.ErrUnknownStrategy) {
		t.Errorf("strategy 99: want ErrUnknownStrategy, got %v", err)
	}
	// invalid options
	if _, err := search.Solve(d, "hit", "cog", search.BFS, search.WithMaxExpansions(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("negative budget: want ErrOptionViolation, got %v", err)
	}
	if _, err := search.Solve(d, "hit", "cog", search.UCS, search.WithRarePenalty(0)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("zero penalty: want ErrOptionViolation, got %v", err)
	}
}

// TestSolve_StartEqualsGoal covers the zero-transformation ladder.
func TestSolve_StartEqualsGoal(t *testing.T) {
	d := ladderDict(t)
	for _, s := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		res, err := search.Solve(d, "dog", "dog", s)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
		if want := []string{"dog"}; !reflect.DeepEqual(res.Ladder, want) {
			t.Errorf("%s: Ladder = %v; want %v", s, res.Ladder, want)
		}
		if res.Cost != 0 || res.Expansions != 0 || res.Moves() != 0 {
			t.Errorf("%s: cost=%v expansions=%d moves=%d; want all zero", s, res.Cost, res.Expansions, res.Moves())
		}
	}
}

// TestSolve_CanonicalLadder checks the hit→cog example for all strategies:
// BFS must return the exact 5-word ladder, UCS and A* must agree on cost 4.
func TestSolve_CanonicalLadder(t *testing.T) {
	d := ladderDict(t)

	res, err := search.Solve(d, "hit", "cog", search.BFS)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []string{"hit", "hot", "dot", "dog", "cog"}; !reflect.DeepEqual(res.Ladder, want) {
		t.Errorf("BFS Ladder = %v; want %v", res.Ladder, want)
	}
	if res.Cost != 4 {
		t.Errorf("BFS cost = %v; want 4", res.Cost)
	}
	assertLadderSteps(t, res.Ladder)

	ucs, err := search.Solve(d, "hit", "cog", search.UCS)
	if err != nil {
		t.Fatalf("UCS: %v", err)
	}
	astar, err := search.Solve(d, "hit", "cog", search.AStar)
	if err != nil {
		t.Fatalf("A*: %v", err)
	}
	if ucs.Cost != 4 || astar.Cost != ucs.Cost {
		t.Errorf("UCS cost = %v, A* cost = %v; want both 4", ucs.Cost, astar.Cost)
	}
	if len(ucs.Ladder) != 5 || len(astar.Ladder) != 5 {
		t.Errorf("UCS len = %d, A* len = %d; want both 5", len(ucs.Ladder), len(astar.Ladder))
	}
	assertLadderSteps(t, ucs.Ladder)
	assertLadderSteps(t, astar.Ladder)

	// A* guided by an admissible heuristic must not expand more nodes than UCS.
	if astar.Expansions > ucs.Expansions {
		t.Errorf("A* expanded %d nodes, UCS %d; heuristic should not hurt", astar.Expansions, ucs.Expansions)
	}
}

// TestSolve_NoPath covers a disconnected pair for every strategy.
func TestSolve_NoPath(t *testing.T) {
	d, err := wordgraph.NewDictionary([]string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		if _, err := search.Solve(d, "cat", "dog", s); !errors.Is(err, search.ErrNoPath) {
			t.Errorf("%s: want ErrNoPath, got %v", s, err)
		}
	}
}

// TestSolve_Exhausted verifies the expansion budget yields ErrExhausted,
// which stays distinct from ErrNoPath.
func TestSolve_Exhausted(t *testing.T) {
	d := ladderDict(t)
	for _, s := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		_, err := search.Solve(d, "hit", "cog", s, search.WithMaxExpansions(1))
		if !errors.Is(err, search.ErrExhausted) {
			t.Errorf("%s: want ErrExhausted, got %v", s, err)
		}
		if errors.Is(err, search.ErrNoPath) {
			t.Errorf("%s: ErrExhausted must not match ErrNoPath", s)
		}
	}
	// A generous budget must not trigger.
	if _, err := search.Solve(d, "hit", "cog", search.BFS, search.WithMaxExpansions(100)); err != nil {
		t.Errorf("budget 100: unexpected error: %v", err)
	}
}

// TestSolve_RareWordPenalty routes UCS around a penalized word even though
// the penalized route has the same move count.
func TestSolve_RareWordPenalty(t *testing.T) {
	d := ladderDict(t)

	// Both hit→cog ladders have 4 moves; penalizing "dot" makes the
	// lot/log route strictly cheaper (4 vs 8).
	res, err := search.Solve(d, "hit", "cog", search.UCS, search.WithRareWords("dot"))
	if err != nil {
		t.Fatalf("UCS: %v", err)
	}
	if want := []string{"hit", "hot", "lot", "log", "cog"}; !reflect.DeepEqual(res.Ladder, want) {
		t.Errorf("UCS Ladder = %v; want %v", res.Ladder, want)
	}
	if res.Cost != 4 {
		t.Errorf("UCS cost = %v; want 4", res.Cost)
	}

	// A* without the heuristic degrades to UCS ordering and keeps optimality
	// even under penalties.
	deg, err := search.Solve(d, "hit", "cog", search.AStar,
		search.WithRareWords("dot"), search.WithoutHeuristic())
	if err != nil {
		t.Fatalf("A* without heuristic: %v", err)
	}
	if deg.Cost != res.Cost {
		t.Errorf("degraded A* cost = %v; want %v", deg.Cost, res.Cost)
	}

	// A custom penalty is honored when the rare word is unavoidable.
	forced, err := search.Solve(d, "dot", "dog", search.UCS,
		search.WithRareWords("dog"), search.WithRarePenalty(7))
	if err != nil {
		t.Fatalf("forced rare step: %v", err)
	}
	if forced.Cost != 7 {
		t.Errorf("forced rare cost = %v; want 7", forced.Cost)
	}
}

// TestSolve_NonPositiveCost verifies the engine defends against a broken
// cost model.
func TestSolve_NonPositiveCost(t *testing.T) {
	d := ladderDict(t)
	_, err := search.Solve(d, "hit", "cog", search.UCS,
		search.WithCost(func(_, _ string) float64 { return 0 }))
	if !errors.Is(err, search.ErrNonPositiveCost) {
		t.Errorf("zero-cost model: want ErrNonPositiveCost, got %v", err)
	}
}

// TestSolve_BannedAndRestricted exercises difficulty obstacles end to end:
// banned words vanish from the node set, restricted letters cut edges.
func TestSolve_BannedAndRestricted(t *testing.T) {
	// Banning "dot" leaves only the lot/log route.
	banned, err := wordgraph.NewDictionary(
		[]string{"hot", "dot", "dog", "lot", "log", "cog"},
		wordgraph.WithBannedWords("dot"),
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := search.Solve(banned, "hit", "cog", search.BFS)
	if err != nil {
		t.Fatalf("banned: %v", err)
	}
	if want := []string{"hit", "hot", "lot", "log", "cog"}; !reflect.DeepEqual(res.Ladder, want) {
		t.Errorf("banned Ladder = %v; want %v", res.Ladder, want)
	}

	// Restricting 'l' and 'd' cuts every route out of "hot".
	cut, err := wordgraph.NewDictionary(
		[]string{"hot", "dot", "dog", "lot", "log", "cog"},
		wordgraph.WithRestrictedLetters('l', 'd'),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := search.Solve(cut, "hit", "cog", search.BFS); !errors.Is(err, search.ErrNoPath) {
		t.Errorf("restricted: want ErrNoPath, got %v", err)
	}
}

// TestSolve_Cancellation verifies the context is honored per expansion.
func TestSolve_Cancellation(t *testing.T) {
	d := ladderDict(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := search.Solve(d, "hit", "cog", search.AStar, search.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}

// TestPathExists covers the reachability helper.
func TestPathExists(t *testing.T) {
	d := ladderDict(t)
	if ok, err := search.PathExists(d, "hit", "cog"); err != nil || !ok {
		t.Errorf("hit→cog: want (true, nil), got (%v, %v)", ok, err)
	}
	disc, err := wordgraph.NewDictionary([]string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := search.PathExists(disc, "cat", "dog"); err != nil || ok {
		t.Errorf("cat→dog: want (false, nil), got (%v, %v)", ok, err)
	}
	if _, err := search.PathExists(nil, "cat", "dog"); !errors.Is(err, search.ErrNilDictionary) {
		t.Errorf("nil dict: want ErrNilDictionary, got %v", err)
	}
}

// TestHamming pins the heuristic on same-length and mixed-length input.
func TestHamming(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"hit", "hit", 0},
		{"hit", "hot", 1},
		{"hit", "cog", 3},
		{"dog", "dot", 1},
		{"cat", "dogs", 4}, // 3 differing positions + 1 length delta
		{"", "", 0},
	}
	for _, c := range cases {
		if got := search.Hamming(c.a, c.b); got != c.want {
			t.Errorf("Hamming(%q, %q) = %d; want %d", c.a, c.b, got, c.want)
		}
	}
}

// TestParseStrategy round-trips the strategy names.
func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]search.Strategy{
		"bfs": search.BFS, "BFS": search.BFS,
		"ucs": search.UCS, "A*": search.AStar, "astar": search.AStar,
	} {
		got, err := search.ParseStrategy(name)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = (%v, %v); want (%v, nil)", name, got, err, want)
		}
	}
	if _, err := search.ParseStrategy("dfs"); !errors.Is(err, search.ErrUnknownStrategy) {
		t.Errorf("dfs: want ErrUnknownStrategy, got %v", err)
	}
}
