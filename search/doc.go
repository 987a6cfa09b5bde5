// Package search finds word ladders: shortest transformation chains between
// two words where every step substitutes exactly one letter and lands on a
// dictionary word.
//
// Three interchangeable strategies share one engine skeleton (frontier,
// best-cost map, parent links) and differ only in frontier ordering and cost
// accounting:
//
//	BFS   — FIFO frontier, unit depth, goal test on generation.
//	        Minimizes move count.
//	UCS   — min-heap on accumulated cost g, goal test on pop.
//	        Minimizes total edge cost.
//	AStar — min-heap on f = g + h with the Hamming heuristic, ties broken
//	        by lower h, goal test on pop. Matches UCS cost whenever the
//	        heuristic is admissible.
//
// Edge costs default to 1.0 per substitution; WithRareWords raises the cost
// of stepping onto flagged words, steering UCS and A* around them. Under
// penalties the Hamming heuristic may overestimate and A* loses its
// optimality guarantee (it stays complete); WithoutHeuristic degrades A* to
// UCS ordering when strict optimality matters more than speed.
//
// Outcomes are errors-as-values: ErrNoPath when the frontier drains without
// reaching the goal (a normal result, not a fault), ErrExhausted when a
// caller-imposed expansion budget stops the search early, and invalid-input
// sentinels detected before any exploration begins.
//
// Complexity, V = words within reach, E = substitution edges among them:
//
//	– Time:  O(V + E) for BFS; O((V + E) log V) for UCS and A*.
//	– Space: O(V) for the best-cost and parent maps, O(E) worst case in the
//	  heap under lazy decrease-key.
package search
