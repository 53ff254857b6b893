package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lexro/wordlehint/internal/solver"
)

// EmbeddedSource is the Source value of the built-in list.
const EmbeddedSource = "embedded"

//go:embed defaults.txt
var defaultList []byte

// List is a loaded word list. Tokens that were not 5-letter alphabetic
// words are dropped during parsing, not reported as errors.
type List struct {
	Words   []solver.Word
	Source  string
	Dropped int
}

// Len returns the number of usable words.
func (l List) Len() int {
	return len(l.Words)
}

// Parse reads whitespace-separated tokens from r, folding them to
// uppercase. Malformed tokens are counted and skipped. source is recorded
// for diagnostics only.
func Parse(r io.Reader, source string) (List, error) {
	list := List{Source: source}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w, err := solver.ParseWord(sc.Text())
		if err != nil {
			list.Dropped++
			continue
		}
		list.Words = append(list.Words, w)
	}
	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("reading word list %s: %w", source, err)
	}

	log.Debug().
		Str("source", source).
		Int("words", len(list.Words)).
		Int("dropped", list.Dropped).
		Msg("word list parsed")
	return list, nil
}

// Load reads a word list from path.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Default returns the embedded list.
func Default() List {
	list, err := Parse(bytes.NewReader(defaultList), EmbeddedSource)
	if err != nil {
		// A bytes.Reader cannot fail mid-scan.
		panic(err)
	}
	return list
}

// Resolve loads path when given, the embedded list otherwise.
func Resolve(path string) (List, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
