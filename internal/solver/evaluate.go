package solver

// Evaluate computes the feedback guess would receive if answer were the
// hidden word, using the standard two-pass rules.
//
// Pass 1 marks exact matches Correct and counts the answer letters they do
// not consume. Pass 2 marks a remaining guess letter Present only while its
// count lasts, so a letter never earns more Correct+Present marks than the
// answer holds copies of it.
func Evaluate(guess, answer Word) Feedback {
	var fb Feedback
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			fb[i] = Correct
		} else {
			counts[letterIndex(answer[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if fb[i] == Correct {
			continue
		}
		if j := letterIndex(guess[i]); counts[j] > 0 {
			fb[i] = Present
			counts[j]--
		}
	}
	return fb
}
