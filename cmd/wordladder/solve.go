package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

var (
	strategyName  string
	rareWords     []string
	rarePenalty   float64
	maxExpansions int
)

// addSearchFlags registers the solver tuning flags shared by solve and hint.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "astar", "search strategy: bfs, ucs, astar")
	cmd.Flags().StringSliceVar(&rareWords, "rare", nil, "words penalized by the cost model")
	cmd.Flags().Float64Var(&rarePenalty, "penalty", search.DefaultRarePenalty, "cost of stepping onto a rare word")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "node expansion budget, 0 = unlimited")
}

// buildDict loads the active word list into an indexed dictionary.
func buildDict() (*wordgraph.Dictionary, error) {
	words, err := loadWords()
	if err != nil {
		return nil, err
	}

	return wordgraph.NewDictionary(words, wordgraph.WithIndex())
}

// searchOpts assembles the search options from the shared flags.
func searchOpts(cmd *cobra.Command) []search.Option {
	opts := []search.Option{search.WithContext(cmd.Context())}
	if len(rareWords) > 0 {
		opts = append(opts, search.WithRareWords(rareWords...), search.WithRarePenalty(rarePenalty))
	}
	if maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(maxExpansions))
	}

	return opts
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <start> <target>",
		Short: "Find a ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := search.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			dict, err := buildDict()
			if err != nil {
				return err
			}
			res, err := search.Solve(dict, args[0], args[1], strat, searchOpts(cmd)...)
			if err != nil {
				if errors.Is(err, search.ErrNoPath) {
					fmt.Fprintf(cmd.OutOrStdout(), "no ladder connects %s and %s\n", args[0], args[1])
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Ladder, " → "))
			fmt.Fprintf(cmd.OutOrStdout(), "%d moves, cost %.1f, %d expansions (%s)\n",
				res.Moves(), res.Cost, res.Expansions, strat)

			return nil
		},
	}
	addSearchFlags(cmd)

	return cmd
}

func newHintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint <current> <target>",
		Short: "Suggest the next word toward the target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := search.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			dict, err := buildDict()
			if err != nil {
				return err
			}
			res, err := search.Solve(dict, args[0], args[1], strat, searchOpts(cmd)...)
			if err != nil {
				if errors.Is(err, search.ErrNoPath) {
					fmt.Fprintf(cmd.OutOrStdout(), "no ladder connects %s and %s\n", args[0], args[1])
					return nil
				}
				return err
			}
			if res.Moves() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "already there")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "try: %s\n", res.Ladder[1])

			return nil
		},
	}
	addSearchFlags(cmd)

	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <start> <target>",
		Short: "Run all three strategies and tabulate their statistics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := buildDict()
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Strategy", "Cost", "Moves", "Expansions", "Time", "Ladder"})
			for _, strat := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
				began := time.Now()
				res, err := search.Solve(dict, args[0], args[1], strat, searchOpts(cmd)...)
				elapsed := time.Since(began).Round(time.Microsecond)
				switch {
				case errors.Is(err, search.ErrNoPath):
					tw.AppendRow(table.Row{strat, "-", "-", "-", elapsed, "no ladder"})
				case errors.Is(err, search.ErrExhausted):
					tw.AppendRow(table.Row{strat, "-", "-", "-", elapsed, "budget exhausted"})
				case err != nil:
					return err
				default:
					tw.AppendRow(table.Row{
						strat, fmt.Sprintf("%.1f", res.Cost), res.Moves(),
						res.Expansions, elapsed, strings.Join(res.Ladder, " → "),
					})
				}
			}
			tw.Render()

			return nil
		},
	}
	addSearchFlags(cmd)

	return cmd
}
