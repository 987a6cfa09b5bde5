// Package wordlist loads sectioned word-list files and ships embedded
// default word sets.
//
// The file format groups lowercase words under length headers:
//
//	# 3-letter words
//	cat
//	bat
//	# 4-letter words
//	word
//	ward
//
// Header lines start with '#' and name a length as "<N>-letter"; every
// non-blank line below belongs to the most recent header. Lines before the
// first header, and lines whose length disagrees with their section, are
// skipped — the word sets handed to wordgraph.NewDictionary must be clean.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrNoWords is returned when parsing finds no usable words at all.
var ErrNoWords = errors.New("wordlist: no words found")

// headerRe matches length headers such as "# 3-letter words".
var headerRe = regexp.MustCompile(`(\d+)-letter`)

//go:embed default_words.txt
var embeddedDefaults string

var (
	defaultsOnce sync.Once
	defaults     map[int][]string
)

// Parse reads a sectioned word list from r and returns words grouped by
// length, each group sorted ascending and deduplicated.
func Parse(r io.Reader) (map[int][]string, error) {
	seen := map[int]map[string]struct{}{}
	length := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if m := headerRe.FindStringSubmatch(line); m != nil {
				length, _ = strconv.Atoi(m[1])
			} else {
				length = 0 // unrecognized header closes the section
			}
		case length > 0 && len(line) == length:
			if seen[length] == nil {
				seen[length] = map[string]struct{}{}
			}
			seen[length][line] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	if len(seen) == 0 {
		return nil, ErrNoWords
	}

	out := make(map[int][]string, len(seen))
	for n, set := range seen {
		words := make([]string, 0, len(set))
		for w := range set {
			words = append(words, w)
		}
		sort.Strings(words)
		out[n] = words
	}

	return out, nil
}

// Load reads a sectioned word list from the file at path.
func Load(path string) (map[int][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Default returns the embedded default word set for the given length
// (3, 4, and 5 are shipped), or nil when none exists. The returned slice
// is a copy.
func Default(length int) []string {
	defaultsOnce.Do(func() {
		parsed, err := Parse(strings.NewReader(embeddedDefaults))
		if err != nil {
			// The embedded file is part of the build; a parse failure is a
			// programming error, not a runtime condition.
			panic(fmt.Sprintf("wordlist: embedded defaults: %v", err))
		}
		defaults = parsed
	})
	src, ok := defaults[length]
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)

	return out
}
