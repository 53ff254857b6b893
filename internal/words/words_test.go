package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexro/wordlehint/internal/solver"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []string
		wantDropped int
	}{
		{
			name:  "newline separated",
			input: "crane\nslate\nabide\n",
			want:  []string{"CRANE", "SLATE", "ABIDE"},
		},
		{
			name:  "mixed whitespace",
			input: "crane  slate\t\nabide   ",
			want:  []string{"CRANE", "SLATE", "ABIDE"},
		},
		{
			name:  "case folded",
			input: "CRANE Slate aBiDe",
			want:  []string{"CRANE", "SLATE", "ABIDE"},
		},
		{
			name:        "malformed dropped not fatal",
			input:       "crane slat caravan sl4te slate",
			want:        []string{"CRANE", "SLATE"},
			wantDropped: 3,
		},
		{
			name:        "empty input",
			input:       "",
			want:        nil,
			wantDropped: 0,
		},
		{
			name:        "only malformed",
			input:       "ab 123456 !!!!!",
			want:        nil,
			wantDropped: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Parse(strings.NewReader(tt.input), "test")
			require.NoError(t, err)

			var got []string
			for _, w := range list.Words {
				got = append(got, w.String())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDropped, list.Dropped)
			assert.Equal(t, "test", list.Source)
		})
	}
}

func TestParse_KeepsOrderAndDuplicates(t *testing.T) {
	list, err := Parse(strings.NewReader("slate crane slate"), "test")
	require.NoError(t, err)
	assert.Equal(t, []solver.Word{
		solver.MustWord("SLATE"),
		solver.MustWord("CRANE"),
		solver.MustWord("SLATE"),
	}, list.Words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane slate\nnope1\n"), 0o644))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 1, list.Dropped)
	assert.Equal(t, path, list.Source)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	list := Default()
	assert.Equal(t, EmbeddedSource, list.Source)
	assert.Zero(t, list.Dropped, "embedded list must be fully valid")
	assert.Greater(t, list.Len(), 500)
}

func TestResolve(t *testing.T) {
	list, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, list.Source)

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane"), 0o644))
	list, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, list.Source)
	assert.Equal(t, 1, list.Len())
}
