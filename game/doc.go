// Package game runs word-ladder play sessions on top of wordgraph and
// search.
//
// A Session owns one ladder puzzle: a difficulty mode fixes the word length
// and move budget, a connected start/target pair is drawn at random (or
// pinned by the caller), and the player substitutes one letter per move
// until the target is reached or the moves run out. Scoring starts at 100
// and drops 5 per move.
//
// Challenge mode adds obstacles on top: five randomly banned words are
// removed from the dictionary and three randomly restricted letters cut any
// substitution that would introduce them.
//
// Hints and full solutions come from the search strategies; Compare runs
// all three on the current position and reports cost, ladder length,
// expansions, and wall time per strategy.
package game
