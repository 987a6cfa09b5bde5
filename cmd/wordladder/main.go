// Command wordladder solves and serves word-ladder puzzles.
//
// Usage:
//
//	wordladder solve hit cog --strategy astar
//	wordladder hint word worm --mode Challenge
//	wordladder compare stone scale --mode Advanced --dict ./dictionary.txt
//	wordladder serve --addr :8080 --db ./data/ladder.db
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordladder exited")
	}
}
