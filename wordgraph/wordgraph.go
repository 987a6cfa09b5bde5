// Package wordgraph implements the Dictionary: a validated set of
// equal-length words exposing one-letter-substitution adjacency queries.
package wordgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Dictionary is an immutable set of equal-length lowercase words.
// It answers neighbor queries against the implicit substitution graph.
// Safe for concurrent readers; never mutated after construction.
type Dictionary struct {
	length     int
	words      map[string]struct{}
	sorted     []string            // cached ascending word list
	index      map[string][]string // wildcard pattern → member words; nil without WithIndex
	restricted map[byte]struct{}
}

// NewDictionary builds a Dictionary from words, applying any Options.
// Words are lowercased and deduplicated; banned words are dropped before
// validation. Returns ErrInvalidWord for non-letter content, ErrMixedLengths
// when lengths disagree, and ErrEmptyDictionary when nothing remains.
//
// Complexity: O(N·L) time and space without WithIndex, where N = |words|
// and L = word length; WithIndex adds another O(N·L) pass for the pattern
// buckets.
func NewDictionary(words []string, opts ...Option) (*Dictionary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	set := make(map[string]struct{}, len(words))
	length := -1
	for _, raw := range words {
		w := normalize(raw)
		if _, drop := o.banned[w]; drop {
			continue
		}
		if !alphabetic(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, raw)
		}
		if length == -1 {
			length = len(w)
		}
		if len(w) != length {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrMixedLengths, w, len(w), length)
		}
		set[w] = struct{}{}
	}
	if len(set) == 0 {
		return nil, ErrEmptyDictionary
	}

	d := &Dictionary{
		length:     length,
		words:      set,
		sorted:     make([]string, 0, len(set)),
		restricted: o.restricted,
	}
	for w := range set {
		d.sorted = append(d.sorted, w)
	}
	sort.Strings(d.sorted)

	if o.indexed {
		d.buildIndex()
	}

	return d, nil
}

// WordLength reports the fixed length shared by every word.
func (d *Dictionary) WordLength() int { return d.length }

// Len reports the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether word (after lowercasing) is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[normalize(word)]
	return ok
}

// Restricted reports whether letter substitutions introducing r are cut.
func (d *Dictionary) Restricted(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	_, ok := d.restricted[byte(r)]
	return ok
}

// Words returns the full word list in ascending order.
// The returned slice is a copy; callers may mutate it freely.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.sorted))
	copy(out, d.sorted)

	return out
}

// Neighbors returns every dictionary word differing from word in exactly one
// letter position, in ascending order. The probe word itself need not belong
// to the dictionary. A length mismatch yields an empty result, not an error:
// callers pre-filter the dictionary to the ladder's fixed length.
//
// Complexity: O(L·|Σ|) membership probes naively, O(L + degree) with the
// wildcard index. Both paths return identical sets.
func (d *Dictionary) Neighbors(word string) []string {
	w := normalize(word)
	if len(w) != d.length {
		return nil
	}
	var out []string
	if d.index != nil {
		out = d.indexedNeighbors(w)
	} else {
		out = d.scanNeighbors(w)
	}
	sort.Strings(out)

	return out
}

// Adjacent reports whether a and b share length and differ in exactly one
// position. Restricted letters apply to the letter written in b, so the
// relation is directional under obstacles. Neither word needs to be a
// dictionary member; the search engine relies on this to connect endpoints
// that are absent from the supplied word list.
func (d *Dictionary) Adjacent(a, b string) bool {
	x, y := normalize(a), normalize(b)
	if len(x) != len(y) {
		return false
	}
	diff := -1
	for i := 0; i < len(x); i++ {
		if x[i] == y[i] {
			continue
		}
		if diff >= 0 {
			return false
		}
		diff = i
	}
	if diff < 0 {
		return false
	}
	if _, cut := d.restricted[y[diff]]; cut {
		return false
	}

	return true
}

// scanNeighbors enumerates all single-letter substitutions of w and keeps
// the ones present in the dictionary.
func (d *Dictionary) scanNeighbors(w string) []string {
	var out []string
	buf := []byte(w)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for j := 0; j < len(Alphabet); j++ {
			c := Alphabet[j]
			if c == orig {
				continue
			}
			if _, cut := d.restricted[c]; cut {
				continue
			}
			buf[i] = c
			if _, ok := d.words[string(buf)]; ok {
				out = append(out, string(buf))
			}
		}
		buf[i] = orig
	}

	return out
}

// indexedNeighbors looks up each wildcard pattern of w and filters bucket
// members by the restricted-letter rule.
func (d *Dictionary) indexedNeighbors(w string) []string {
	// A candidate differing from w in exactly one position occurs in exactly
	// one bucket, so no dedup is required.
	var out []string
	for i := 0; i < len(w); i++ {
		pattern := w[:i] + "_" + w[i+1:]
		for _, cand := range d.index[pattern] {
			if cand == w {
				continue
			}
			if _, cut := d.restricted[cand[i]]; cut {
				continue
			}
			out = append(out, cand)
		}
	}

	return out
}

// buildIndex populates the wildcard-pattern buckets ("_og", "d_g", "do_").
func (d *Dictionary) buildIndex() {
	d.index = make(map[string][]string, len(d.words)*d.length)
	for _, w := range d.sorted {
		for i := 0; i < len(w); i++ {
			pattern := w[:i] + "_" + w[i+1:]
			d.index[pattern] = append(d.index[pattern], w)
		}
	}
}

// normalize lowercases and trims a raw word.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// alphabetic reports whether w is non-empty and entirely a–z.
func alphabetic(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}

	return true
}
