// Package wordgraph defines the Dictionary type, its configuration options,
// and the sentinel errors shared by all constructors and queries.
package wordgraph

import "errors"

// Alphabet is the candidate letter set used for neighbor enumeration.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Sentinel errors for Dictionary construction.
var (
	// ErrEmptyDictionary is returned when no usable words remain after
	// normalization and banned-word removal.
	ErrEmptyDictionary = errors.New("wordgraph: dictionary is empty")

	// ErrMixedLengths is returned when the supplied words do not all share
	// one length.
	ErrMixedLengths = errors.New("wordgraph: words must share a single length")

	// ErrInvalidWord is returned for words outside the lowercase alphabet
	// (after normalization), including the empty string.
	ErrInvalidWord = errors.New("wordgraph: word contains non-letter characters")
)

// Option configures Dictionary construction via functional arguments.
type Option func(*options)

// options holds construction-time configuration.
type options struct {
	indexed    bool
	banned     map[string]struct{}
	restricted map[byte]struct{}
}

// defaultOptions returns the zero configuration: naive neighbor scans,
// no banned words, no restricted letters.
func defaultOptions() options {
	return options{
		indexed:    false,
		banned:     map[string]struct{}{},
		restricted: map[byte]struct{}{},
	}
}

// WithIndex precomputes the wildcard-pattern index during construction.
// Neighbor queries then cost O(degree) instead of O(L·|Σ|) membership
// probes. The index changes performance only; neighbor sets are identical
// to the naive scan.
func WithIndex() Option {
	return func(o *options) { o.indexed = true }
}

// WithBannedWords removes the given words from the node set entirely.
// A banned word is neither a node nor a neighbor of anything.
func WithBannedWords(words ...string) Option {
	return func(o *options) {
		for _, w := range words {
			o.banned[normalize(w)] = struct{}{}
		}
	}
}

// WithRestrictedLetters suppresses every substitution that would introduce
// one of the given letters. A word already containing a restricted letter
// remains a node; only edges created by writing the letter are cut.
func WithRestrictedLetters(letters ...rune) Option {
	return func(o *options) {
		for _, r := range letters {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			if r >= 'a' && r <= 'z' {
				o.restricted[byte(r)] = struct{}{}
			}
		}
	}
}
