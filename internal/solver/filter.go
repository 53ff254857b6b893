package solver

// Filter returns the words in possible that would have produced fb had they
// been the answer to guess. Survival is decided by Evaluate alone, so
// duplicate letters follow the same consumption rules as scoring.
func Filter(possible []Word, guess Word, fb Feedback) []Word {
	var kept []Word
	for _, w := range possible {
		if Evaluate(guess, w) == fb {
			kept = append(kept, w)
		}
	}
	return kept
}
