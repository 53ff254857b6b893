package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(raw ...string) []Word {
	out := make([]Word, len(raw))
	for i, r := range raw {
		out[i] = MustWord(r)
	}
	return out
}

func TestScoreGuess_AlertScenario(t *testing.T) {
	pool := words("WRITE", "WHITE", "QUITE", "STARE", "LATER")
	guess := MustWord("ALERT")

	groups := Groups(guess, pool)
	want := map[string][]string{
		"00111": {"WRITE"},
		"00101": {"WHITE", "QUITE"},
		"10121": {"STARE"},
		"11111": {"LATER"},
	}
	require.Len(t, groups, len(want))
	for fb, members := range groups {
		names := make([]string, len(members))
		for i, w := range members {
			names[i] = w.String()
		}
		assert.Equal(t, want[fb.String()], names, "group %s", fb)
	}

	// Group sizes {2,1,1,1}: average (4+1+1+1)/5, worst 2.
	score := ScoreGuess(guess, pool)
	assert.InDelta(t, 1.4, score.Average, 1e-9)
	assert.Equal(t, 2, score.Worst)
}

func TestScoreGuess_EmptyPool(t *testing.T) {
	score := ScoreGuess(MustWord("CRANE"), nil)
	assert.Zero(t, score.Average)
	assert.Zero(t, score.Worst)
}

func TestScoreGuess_SingletonPool(t *testing.T) {
	score := ScoreGuess(MustWord("CRANE"), words("SLATE"))
	assert.InDelta(t, 1.0, score.Average, 1e-9)
	assert.Equal(t, 1, score.Worst)
}

func TestScoreGuess_GroupingIdentity(t *testing.T) {
	pool := words("WRITE", "WHITE", "QUITE", "STARE", "LATER", "SPEED", "ERASE", "DRESS", "LLAMA", "QUEUE")

	for _, guess := range pool {
		groups := Groups(guess, pool)

		total, sumSquares, worst := 0, 0, 0
		for _, members := range groups {
			n := len(members)
			total += n
			sumSquares += n * n
			if n > worst {
				worst = n
			}
		}
		require.Equal(t, len(pool), total, "guess %s drops or double-counts answers", guess)

		score := ScoreGuess(guess, pool)
		assert.InDelta(t, float64(sumSquares)/float64(len(pool)), score.Average, 1e-9, "guess %s", guess)
		assert.Equal(t, worst, score.Worst, "guess %s", guess)
	}
}

func TestScoreGuess_PerfectSplitter(t *testing.T) {
	// CRANE produces a distinct pattern for each of these, so every group
	// is a singleton.
	pool := words("CRANE", "TRACE", "BLIMP", "CLEAN")
	score := ScoreGuess(MustWord("CRANE"), pool)
	assert.InDelta(t, 1.0, score.Average, 1e-9)
	assert.Equal(t, 1, score.Worst)
}
