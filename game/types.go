// Package game defines modes, difficulty configuration, and error
// definitions for play sessions.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Mode names a difficulty level.
type Mode string

// Difficulty modes, mirroring the classic Beginner/Challenge/Advanced split.
const (
	ModeBeginner  Mode = "Beginner"
	ModeChallenge Mode = "Challenge"
	ModeAdvanced  Mode = "Advanced"
)

// Config fixes the rules of one mode.
type Config struct {
	// WordLength is the fixed ladder length for the mode.
	WordLength int

	// MaxMoves caps the number of player moves per session.
	MaxMoves int

	// Obstacles enables banned words and restricted letters.
	Obstacles bool
}

// configs maps each mode to its rules.
var configs = map[Mode]Config{
	ModeBeginner:  {WordLength: 3, MaxMoves: 10, Obstacles: false},
	ModeChallenge: {WordLength: 4, MaxMoves: 12, Obstacles: true},
	ModeAdvanced:  {WordLength: 5, MaxMoves: 15, Obstacles: false},
}

// Config returns the rules of the mode, or ErrUnknownMode.
func (m Mode) Config() (Config, error) {
	cfg, ok := configs[m]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}

	return cfg, nil
}

// ParseMode maps a mode name (any case) to its Mode.
func ParseMode(name string) (Mode, error) {
	for m := range configs {
		if strings.EqualFold(name, string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Scoring and obstacle constants.
const (
	// StartScore is the score a fresh session begins with.
	StartScore = 100

	// MovePenalty is subtracted from the score on every accepted move.
	MovePenalty = 5

	// bannedCount is how many words Challenge mode bans per session.
	bannedCount = 5

	// restrictedCount is how many letters Challenge mode restricts per session.
	restrictedCount = 3

	// pairAttempts bounds the random start/target retry loop.
	pairAttempts = 100
)

// Sentinel errors.
var (
	// ErrUnknownMode is returned for a mode outside Beginner/Challenge/Advanced.
	ErrUnknownMode = errors.New("game: unknown mode")

	// ErrTooFewWords is returned when the word list cannot seed a session.
	ErrTooFewWords = errors.New("game: not enough valid words")

	// ErrWrongLength is returned when the word list's length disagrees with
	// the mode's fixed word length.
	ErrWrongLength = errors.New("game: word list length does not match mode")

	// ErrNoPair is returned when no connected start/target pair was found
	// within the attempt budget.
	ErrNoPair = errors.New("game: could not find a connected word pair")

	// ErrSessionOver rejects moves after the session has finished.
	ErrSessionOver = errors.New("game: session is over")

	// ErrNotInDictionary rejects a move onto an unknown word.
	ErrNotInDictionary = errors.New("game: word is not in the dictionary")

	// ErrBannedWord rejects a move onto a banned word.
	ErrBannedWord = errors.New("game: word is banned")

	// ErrNotOneLetter rejects a move that does not change exactly one letter.
	ErrNotOneLetter = errors.New("game: exactly one letter must change")

	// ErrRestrictedLetter rejects a move introducing a restricted letter.
	ErrRestrictedLetter = errors.New("game: letter is restricted")
)
