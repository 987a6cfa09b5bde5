package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordlist"
)

// beginnerSession pins hit→... on the classic ladder words so move
// sequences are reproducible.
func beginnerSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.ModeBeginner,
		[]string{"hot", "dot", "dog", "lot", "log", "cog", "hit"},
		game.WithPair("hit", "cog"),
	)
	require.NoError(t, err)

	return s
}

func TestModeConfigs(t *testing.T) {
	for mode, wantLen := range map[game.Mode]int{
		game.ModeBeginner:  3,
		game.ModeChallenge: 4,
		game.ModeAdvanced:  5,
	} {
		cfg, err := mode.Config()
		require.NoError(t, err)
		assert.Equal(t, wantLen, cfg.WordLength, mode)
	}
	cfg, err := game.ModeChallenge.Config()
	require.NoError(t, err)
	assert.True(t, cfg.Obstacles)
	assert.Equal(t, 12, cfg.MaxMoves)

	_, err = game.Mode("Nightmare").Config()
	require.ErrorIs(t, err, game.ErrUnknownMode)

	m, err := game.ParseMode("challenge")
	require.NoError(t, err)
	assert.Equal(t, game.ModeChallenge, m)
}

func TestNewSession_RandomPair(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, err := game.NewSession(game.ModeBeginner, wordlist.Default(3), game.WithRand(rng))
	require.NoError(t, err)

	assert.NotEqual(t, s.Start, s.Target)
	assert.Equal(t, s.Start, s.Current)
	assert.Equal(t, game.StartScore, s.Score)
	assert.NotEmpty(t, s.ID)

	ok, err := search.PathExists(s.Dictionary(), s.Start, s.Target)
	require.NoError(t, err)
	assert.True(t, ok, "drawn pair must be connected")
}

func TestNewSession_Errors(t *testing.T) {
	_, err := game.NewSession(game.Mode("bogus"), wordlist.Default(3))
	require.ErrorIs(t, err, game.ErrUnknownMode)

	// Advanced mode expects 5-letter words.
	_, err = game.NewSession(game.ModeAdvanced, wordlist.Default(3))
	require.ErrorIs(t, err, game.ErrWrongLength)

	// Disconnected pinned pair.
	_, err = game.NewSession(game.ModeBeginner, []string{"cat", "dog"},
		game.WithPair("cat", "dog"))
	require.ErrorIs(t, err, game.ErrNoPair)

	// Challenge obstacles need headroom beyond the banned sample.
	_, err = game.NewSession(game.ModeChallenge, []string{"word", "ward", "warm"})
	require.ErrorIs(t, err, game.ErrTooFewWords)
}

func TestSession_PlayAndScore(t *testing.T) {
	s := beginnerSession(t)

	require.ErrorIs(t, s.Play("hip"), game.ErrNotInDictionary)
	require.ErrorIs(t, s.Play("dog"), game.ErrNotOneLetter)

	for _, w := range []string{"hot", "dot", "dog", "cog"} {
		require.NoError(t, s.Play(w))
	}
	assert.True(t, s.Won())
	assert.True(t, s.Over())
	assert.Equal(t, game.StartScore-4*game.MovePenalty, s.Score)
	assert.Equal(t, []string{"hot", "dot", "dog", "cog"}, s.Moves)

	require.ErrorIs(t, s.Play("dog"), game.ErrSessionOver)
}

func TestSession_MoveLimit(t *testing.T) {
	s := beginnerSession(t)

	// Shuffle between two words until the budget runs out.
	pair := []string{"hot", "hit"}
	for i := 0; i < s.MaxMoves; i++ {
		require.NoError(t, s.Play(pair[i%2]))
	}
	assert.True(t, s.Over())
	assert.False(t, s.Won())
	assert.Equal(t, 0, s.MovesLeft())
	require.ErrorIs(t, s.Play("hot"), game.ErrSessionOver)
}

func TestSession_ChallengeObstacles(t *testing.T) {
	// A dense synthetic 4-letter list ({a,b}^4, a hypercube) keeps the
	// dictionary connected even after banning five words. Obstacle sampling
	// can still draw an unlucky cut, so retry a few seeds; any single
	// success exercises the whole path.
	words := make([]string, 0, 16)
	for i := 0; i < 16; i++ {
		w := make([]byte, 4)
		for bit := 0; bit < 4; bit++ {
			w[bit] = 'a' + byte(i>>bit&1)
		}
		words = append(words, string(w))
	}

	var s *game.Session
	var err error
	for seed := int64(0); seed < 100; seed++ {
		s, err = game.NewSession(game.ModeChallenge, words,
			game.WithRand(rand.New(rand.NewSource(seed))))
		if err == nil {
			break
		}
		require.ErrorIs(t, err, game.ErrNoPair, "seed %d", seed)
	}
	require.NoError(t, err)

	banned := s.BannedWords()
	require.Len(t, banned, 5)
	require.Len(t, s.RestrictedLetters(), 3)

	for _, w := range banned {
		assert.False(t, s.Dictionary().Contains(w), "banned %q must leave the node set", w)
		assert.ErrorIs(t, s.Play(w), game.ErrBannedWord)
	}
}

func TestSession_HintAndSolution(t *testing.T) {
	s := beginnerSession(t)

	hint, err := s.Hint(search.AStar)
	require.NoError(t, err)
	assert.Equal(t, "hot", hint, "only one word is adjacent to hit")

	res, err := s.Solution(search.BFS)
	require.NoError(t, err)
	assert.Equal(t, []string{"hit", "hot", "dot", "dog", "cog"}, res.Ladder)

	// After winning, the hint degenerates to the current word.
	for _, w := range []string{"hot", "dot", "dog", "cog"} {
		require.NoError(t, s.Play(w))
	}
	hint, err = s.Hint(search.BFS)
	require.NoError(t, err)
	assert.Equal(t, "cog", hint)
}

func TestSession_Compare(t *testing.T) {
	s := beginnerSession(t)

	stats, err := s.Compare()
	require.NoError(t, err)
	require.Len(t, stats, 3)

	for _, c := range stats {
		assert.True(t, c.Found, c.Strategy)
		assert.Equal(t, 4, c.Moves, c.Strategy)
		assert.Positive(t, c.Expansions, c.Strategy)
	}
	// BFS, UCS, A* agree on optimal cost under uniform weights.
	assert.Equal(t, stats[0].Cost, stats[1].Cost)
	assert.Equal(t, stats[1].Cost, stats[2].Cost)
}
