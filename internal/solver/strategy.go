package solver

import "bytes"

// Strategy defines one ranking order over scored candidates
type Strategy interface {
	// Name returns the unique identifier for this strategy
	Name() string

	// Description returns a human-readable description
	Description() string

	// Less reports whether a outranks b. The order is total: every tie
	// breaks down to word order, so identical inputs always rank
	// identically.
	Less(a, b CandidateScore) bool
}

// StrategyAverage ranks by expected remaining candidates, the best guess
// on average. StrategyMinimax ranks by the largest group a guess can leave,
// the safest guess when the answer is adversarial.
var (
	StrategyAverage Strategy = averageStrategy{}
	StrategyMinimax Strategy = minimaxStrategy{}
)

// Strategies returns the built-in strategies in report order.
func Strategies() []Strategy {
	return []Strategy{StrategyAverage, StrategyMinimax}
}

// StrategyByName returns the strategy registered under name, or nil.
func StrategyByName(name string) Strategy {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

type averageStrategy struct{}

func (averageStrategy) Name() string { return "average" }

func (averageStrategy) Description() string {
	return "minimize the expected number of remaining candidates"
}

func (averageStrategy) Less(a, b CandidateScore) bool {
	if a.Average != b.Average {
		return a.Average < b.Average
	}
	if a.Worst != b.Worst {
		return a.Worst < b.Worst
	}
	return bytes.Compare(a.Word[:], b.Word[:]) < 0
}

type minimaxStrategy struct{}

func (minimaxStrategy) Name() string { return "minimax" }

func (minimaxStrategy) Description() string {
	return "minimize the worst-case number of remaining candidates"
}

func (minimaxStrategy) Less(a, b CandidateScore) bool {
	if a.Worst != b.Worst {
		return a.Worst < b.Worst
	}
	if a.Average != b.Average {
		return a.Average < b.Average
	}
	return bytes.Compare(a.Word[:], b.Word[:]) < 0
}
