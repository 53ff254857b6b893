package solver

// Score summarizes how a guess splits a pool of possible answers.
type Score struct {
	// Average is the expected number of candidates left after playing the
	// guess, with the answer drawn uniformly from the pool.
	Average float64
	// Worst is the size of the largest surviving group.
	Worst int
}

// ScoreGuess evaluates guess against every word in possible and reduces the
// feedback groups to their average and worst-case sizes. An empty pool
// scores zero.
func ScoreGuess(guess Word, possible []Word) Score {
	if len(possible) == 0 {
		return Score{}
	}

	var sizes [PatternCount]int
	for _, answer := range possible {
		sizes[Evaluate(guess, answer).Index()]++
	}

	sum, worst := 0, 0
	for _, n := range sizes {
		sum += n * n
		if n > worst {
			worst = n
		}
	}
	return Score{
		Average: float64(sum) / float64(len(possible)),
		Worst:   worst,
	}
}

// Groups splits possible by the feedback each word would produce for guess.
// Group members keep the pool's order.
func Groups(guess Word, possible []Word) map[Feedback][]Word {
	groups := make(map[Feedback][]Word)
	for _, answer := range possible {
		fb := Evaluate(guess, answer)
		groups[fb] = append(groups[fb], answer)
	}
	return groups
}
