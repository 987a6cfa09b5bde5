// Package wordladder turns one word into another, one letter at a time —
// a dictionary-backed ladder solver, hint engine, and playable game.
//
// 🚀 What is wordladder?
//
//	A small, focused library plus game surfaces that bring together:
//		• Word graph: one-letter-substitution adjacency over a fixed-length
//		  dictionary, naive or wildcard-indexed ("_og" → bog, cog, dog…)
//		• Three search strategies: BFS (fewest moves), UCS (cheapest path),
//		  A* with a Hamming-distance heuristic
//		• Cost models: uniform 1.0 steps or rare-word penalties
//		• Play sessions: difficulty modes, move validation, scoring, hints
//		• Challenge obstacles: banned words and restricted letters
//
// ✨ Why choose wordladder?
//
//   - Classic-correct – hit → hot → dot → dog → cog, exactly as expected
//   - Honest outcomes – "no ladder", "budget exhausted", and bad input are
//     distinct, inspectable errors, never panics
//   - One engine, three strategies – identical edge-case handling across
//     BFS, UCS, and A* by construction
//   - Batteries included – sectioned word-list loading, an HTTP server,
//     and a CLI ride on top of the core
//
// Everything is organized under a handful of packages:
//
//	wordgraph/       — Dictionary, neighbor queries, obstacles
//	search/          — Solve, strategies, cost model, heuristic
//	wordlist/        — word-list files & embedded defaults
//	game/            — modes, sessions, scoring, hints, comparisons
//	server/          — chi HTTP API, session store, sqlite score board
//	cmd/wordladder/  — solve / hint / compare / serve
//
// Quick taste:
//
//	dict, _ := wordgraph.NewDictionary(words)
//	res, err := search.Solve(dict, "hit", "cog", search.AStar)
//	// res.Ladder == [hit hot dot dog cog]
//
//	go get github.com/katalvlaran/wordladder
package wordladder
