package solver

import (
	"errors"
	"fmt"
)

// ErrNoCandidates reports a round whose feedback contradicts the rounds
// before it: no word in the pool could have produced it. Distinct from the
// solved state, which is exactly one candidate remaining.
var ErrNoCandidates = errors.New("no candidates match")

// Round records one applied guess and the feedback the puzzle returned.
type Round struct {
	Guess    Word
	Feedback Feedback
}

// Session tracks one puzzle from first guess to solution. It owns the full
// word list for its lifetime and the pool of candidates still consistent
// with every recorded round. A Session is not safe for concurrent use.
type Session struct {
	words    []Word
	possible []Word
	history  []Round
}

// NewSession starts a session over words with no rounds recorded. The list
// is copied, so later changes to words do not leak in.
func NewSession(words []Word) *Session {
	s := &Session{words: make([]Word, len(words))}
	copy(s.words, words)
	s.possible = make([]Word, len(words))
	copy(s.possible, words)
	return s
}

// Apply records one round, shrinking the pool to the words that reproduce
// fb for guess. Rounds are atomic: a contradictory round returns
// ErrNoCandidates and leaves the session exactly as it was.
func (s *Session) Apply(guess Word, fb Feedback) error {
	next := Filter(s.possible, guess, fb)
	if len(next) == 0 {
		return fmt.Errorf("%w: guess %s with feedback %s rules out every candidate", ErrNoCandidates, guess, fb)
	}
	s.possible = next
	s.history = append(s.history, Round{Guess: guess, Feedback: fb})
	return nil
}

// ApplyRaw parses guess and feedback wire forms and applies them as a
// round. Parse failures reject the round before any state changes.
func (s *Session) ApplyRaw(guess, feedback string) error {
	w, err := ParseWord(guess)
	if err != nil {
		return err
	}
	fb, err := ParseFeedback(feedback)
	if err != nil {
		return err
	}
	return s.Apply(w, fb)
}

// Possible returns the current candidate pool. Callers must not modify it.
func (s *Session) Possible() []Word {
	return s.possible
}

// History returns the rounds applied so far, oldest first.
func (s *Session) History() []Round {
	return s.history
}

// Words returns the full list the session started from.
func (s *Session) Words() []Word {
	return s.words
}

// Remaining reports the size of the candidate pool.
func (s *Session) Remaining() int {
	return len(s.possible)
}

// Solved reports whether exactly one candidate remains.
func (s *Session) Solved() bool {
	return len(s.possible) == 1
}

// Summary returns the advisory constraint digest of the recorded rounds.
func (s *Session) Summary() ConstraintState {
	return Summarize(s.history)
}

// Reset discards every round and restores the full candidate pool.
func (s *Session) Reset() {
	s.possible = make([]Word, len(s.words))
	copy(s.possible, s.words)
	s.history = nil
}
