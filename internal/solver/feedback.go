package solver

import (
	"errors"
	"fmt"
)

// Mark is the verdict for a single letter of a guess
type Mark uint8

const (
	// Absent means the letter has no unconsumed occurrence in the answer.
	Absent Mark = iota
	// Present means the letter occurs in the answer at another position.
	Present
	// Correct means the letter matches the answer at this position.
	Correct
)

func (m Mark) String() string {
	switch m {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// ErrMalformedFeedback reports a feedback string that is not 5 digits over 0-2.
var ErrMalformedFeedback = errors.New("malformed feedback")

// Feedback is the position-aligned pattern a puzzle returns for one guess.
// Its wire form is a 5-digit string over {0,1,2}: 0 absent, 1 present,
// 2 correct. Feedback is comparable and usable as a map key.
type Feedback [WordLength]Mark

// AllCorrect is the pattern of a winning guess.
var AllCorrect = Feedback{Correct, Correct, Correct, Correct, Correct}

// PatternCount is the number of distinct feedback patterns (3^WordLength).
const PatternCount = 243

// ParseFeedback decodes the digit form. It returns ErrMalformedFeedback
// when raw is not exactly WordLength characters of {0,1,2}.
func ParseFeedback(raw string) (Feedback, error) {
	var fb Feedback
	if len(raw) != WordLength {
		return fb, fmt.Errorf("%w: %q is not %d digits", ErrMalformedFeedback, raw, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		c := raw[i]
		if c < '0' || c > '2' {
			return fb, fmt.Errorf("%w: %q has symbol %q outside 0-2", ErrMalformedFeedback, raw, string(c))
		}
		fb[i] = Mark(c - '0')
	}
	return fb, nil
}

// String renders the 5-digit wire form.
func (fb Feedback) String() string {
	var b [WordLength]byte
	for i, m := range fb {
		b[i] = '0' + byte(m)
	}
	return string(b[:])
}

// Index packs fb into base 3, a dense key in [0, PatternCount).
func (fb Feedback) Index() int {
	n := 0
	for _, m := range fb {
		n = n*3 + int(m)
	}
	return n
}

// Solved reports whether every position is Correct.
func (fb Feedback) Solved() bool {
	return fb == AllCorrect
}
