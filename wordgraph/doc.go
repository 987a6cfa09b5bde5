// Package wordgraph models the implicit word graph used by word-ladder
// searches: nodes are fixed-length dictionary words, and an edge joins two
// words exactly when they differ in a single letter position.
//
// The graph is never materialized. A Dictionary answers neighbor queries on
// demand, either by naive candidate enumeration (O(L·|Σ|) membership probes
// per query, L = word length, Σ = alphabet) or through an optional
// precomputed wildcard-pattern index ("_og" → {bog, cog, dog, ...}) that
// brings lookup close to O(1) per word at the price of O(N·L) build time and
// memory. Both strategies produce identical neighbor sets.
//
// Difficulty obstacles are first-class: banned words are removed from the
// node set entirely, and restricted letters suppress any substitution that
// would introduce them.
//
// What lives here:
//
//	Dictionary  — validated, deduplicated set of equal-length words.
//	Neighbors   — one-substitution adjacency query (pure, deterministic).
//	Adjacent    — predicate form, usable for endpoints outside the dictionary.
//
// See the search package for the strategies that consume these queries.
package wordgraph
