package solver

import "math/bits"

// LetterSet is a set of uppercase letters packed into a 26-bit mask.
type LetterSet uint32

// Add inserts c, which must be A-Z.
func (s *LetterSet) Add(c byte) {
	*s |= 1 << letterIndex(c)
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	return s&(1<<letterIndex(c)) != 0
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s LetterSet) String() string {
	return string(s.Letters())
}

// ConstraintState is a human-readable digest of what the recorded rounds
// reveal. It exists for display only; candidate narrowing always goes
// through Filter, never through this summary.
type ConstraintState struct {
	// Fixed holds the letter pinned at each position, zero where unknown.
	Fixed [WordLength]byte
	// Present holds letters known to be in the answer but not pinned to a
	// position yet.
	Present LetterSet
	// Excluded holds letters every round marked Absent.
	Excluded LetterSet
}

// Summarize reduces history to per-letter constraints. Later rounds win
// conflicting position claims. A letter marked Absent in one round but
// Present or Correct in another (possible with repeated letters) is never
// excluded.
func Summarize(history []Round) ConstraintState {
	var st ConstraintState
	var seen, favorable LetterSet

	for _, r := range history {
		for i := 0; i < WordLength; i++ {
			c := r.Guess[i]
			seen.Add(c)
			switch r.Feedback[i] {
			case Correct:
				st.Fixed[i] = c
				favorable.Add(c)
			case Present:
				st.Present.Add(c)
				favorable.Add(c)
			}
		}
	}

	var fixed LetterSet
	for _, c := range st.Fixed {
		if c != 0 {
			fixed.Add(c)
		}
	}
	st.Present &^= fixed
	st.Excluded = seen &^ favorable
	return st
}
