package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Basic(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   string
	}{
		{"no overlap", "QUILT", "ROAMS", "00000"},
		{"exact match", "CRANE", "CRANE", "22222"},
		{"anagram all present", "ALERT", "LATER", "11111"},
		{"mixed marks", "RAISE", "ABOVE", "01002"},
		{"single correct", "ALERT", "STARE", "10121"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(MustWord(tt.guess), MustWord(tt.answer))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEvaluate_DuplicateLetters(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   string
	}{
		// Guess repeats E twice, answer ERASE holds two, both earn marks.
		{"double in guess double in answer", "SPEED", "ERASE", "10110"},
		// Answer DRESS holds one E, consumed by the exact match; the
		// second guess E must come out Absent.
		{"green consumes the pool", "SPEED", "DRESS", "10201"},
		{"reverse direction", "ERASE", "SPEED", "10011"},
		// Three guess Es against two answer Es, both placed exactly.
		{"triple letter guess", "GEESE", "THEME", "00202"},
		// LEVER holds one L; the second guess L gets nothing.
		{"double against single", "LLAMA", "LEVER", "20000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess, answer := MustWord(tt.guess), MustWord(tt.answer)
			got := Evaluate(guess, answer)
			assert.Equal(t, tt.want, got.String())

			// Marks per letter never exceed that letter's count in the
			// answer.
			var awarded, held [26]int
			for i := 0; i < WordLength; i++ {
				held[letterIndex(answer[i])]++
				if got[i] != Absent {
					awarded[letterIndex(guess[i])]++
				}
			}
			for c := 0; c < 26; c++ {
				assert.LessOrEqual(t, awarded[c], held[c])
			}
		})
	}
}

func TestEvaluate_SelfIsAllCorrect(t *testing.T) {
	for _, raw := range []string{"CRANE", "SPEED", "LLAMA", "QUEUE", "AAAAA"} {
		w := MustWord(raw)
		fb := Evaluate(w, w)
		assert.True(t, fb.Solved(), "evaluate(%s, %s) = %s", w, w, fb)
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"uppercase", "CRANE", "CRANE", false},
		{"lowercase folded", "crane", "CRANE", false},
		{"mixed case", "CrAnE", "CRANE", false},
		{"too short", "CRAN", "", true},
		{"too long", "CRANES", "", true},
		{"digit", "CRAN3", "", true},
		{"unicode", "CRANÉ", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedGuess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all absent", "00000", false},
		{"mixed", "01002", false},
		{"solved", "22222", false},
		{"too short", "0100", true},
		{"too long", "010020", true},
		{"digit out of range", "01003", true},
		{"letters", "gyzzy", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := ParseFeedback(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedFeedback)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, fb.String())
		})
	}
}

func TestFeedback_Index(t *testing.T) {
	assert.Equal(t, 0, Feedback{}.Index())
	assert.Equal(t, PatternCount-1, AllCorrect.Index())

	// Base-3 place values, most significant first.
	fb, err := ParseFeedback("01002")
	require.NoError(t, err)
	assert.Equal(t, 1*27+2, fb.Index())

	// Index is injective over all patterns.
	seen := make(map[int]bool)
	var walk func(fb Feedback, pos int)
	walk = func(fb Feedback, pos int) {
		if pos == WordLength {
			idx := fb.Index()
			assert.False(t, seen[idx], "index collision at %s", fb)
			seen[idx] = true
			return
		}
		for _, m := range []Mark{Absent, Present, Correct} {
			fb[pos] = m
			walk(fb, pos+1)
		}
	}
	walk(Feedback{}, 0)
	assert.Len(t, seen, PatternCount)
}
