package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/wordlist"
)

var (
	dictPath string
	modeName string
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Word-ladder solver and game server",
		Long: `wordladder transforms one word into another through a chain of dictionary
words, each step substituting exactly one letter. Three search strategies are
available (BFS, UCS, A*) for solving, hinting, and benchmarking ladders, and
a small HTTP server hosts full play sessions.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&dictPath, "dict", "",
		"sectioned word-list file (# 3-letter / # 4-letter / # 5-letter headers); embedded defaults when empty")
	root.PersistentFlags().StringVar(&modeName, "mode", string(game.ModeBeginner),
		"difficulty mode: Beginner, Challenge, Advanced")

	root.AddCommand(newSolveCmd(), newHintCmd(), newCompareCmd(), newServeCmd())

	return root
}

// loadWords resolves the word list for the active mode: the --dict file's
// matching section, or the embedded defaults.
func loadWords() ([]string, error) {
	mode, err := game.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	cfg, err := mode.Config()
	if err != nil {
		return nil, err
	}
	if dictPath == "" {
		return wordlist.Default(cfg.WordLength), nil
	}
	groups, err := wordlist.Load(dictPath)
	if err != nil {
		return nil, err
	}
	words, ok := groups[cfg.WordLength]
	if !ok {
		return nil, fmt.Errorf("%s has no %d-letter section for %s mode", dictPath, cfg.WordLength, mode)
	}

	return words, nil
}
