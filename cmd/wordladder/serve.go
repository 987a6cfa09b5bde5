package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/server"
	"github.com/katalvlaran/wordladder/wordlist"
)

func newServeCmd() *cobra.Command {
	var (
		addr string
		dbp  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the word-ladder HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			if addr == "" {
				addr = ":" + getEnv("PORT", "8080")
			}

			lists, err := loadLists()
			if err != nil {
				return err
			}

			var hist *server.History
			if dbp != "" {
				if hist, err = server.OpenHistory(dbp); err != nil {
					return err
				}
				defer hist.Close()
			}

			srv := server.New(server.NewMemoryStore(), hist, lists)
			log.Info().Str("addr", addr).Bool("scores", hist != nil).Msg("starting wordladder server")

			return srv.Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to :$PORT or :8080)")
	cmd.Flags().StringVar(&dbp, "db", "./data/ladder.db", "sqlite score-history path; empty disables the score board")

	return cmd
}

// loadLists resolves a word list for every mode: the --dict file's sections
// when given, the embedded defaults otherwise.
func loadLists() (map[game.Mode][]string, error) {
	if dictPath == "" {
		return server.DefaultLists(), nil
	}
	groups, err := wordlist.Load(dictPath)
	if err != nil {
		return nil, err
	}
	lists := server.DefaultLists()
	for mode, words := range lists {
		cfg, cfgErr := mode.Config()
		if cfgErr != nil {
			return nil, cfgErr
		}
		if loaded, ok := groups[cfg.WordLength]; ok {
			lists[mode] = loaded
		} else {
			log.Warn().Str("mode", string(mode)).Int("length", cfg.WordLength).
				Msg("word list has no matching section, using embedded defaults")
			lists[mode] = words
		}
	}

	return lists, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
