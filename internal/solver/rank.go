package solver

import (
	"runtime"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CandidateScore pairs a candidate guess with its score against the pool.
type CandidateScore struct {
	Word    Word
	Average float64
	Worst   int
}

// Ranking holds the top candidates under each built-in strategy, derived
// from a single scoring pass over the candidate list.
type Ranking struct {
	// ByAverage is ordered by StrategyAverage, ByMinimax by StrategyMinimax.
	ByAverage []CandidateScore
	ByMinimax []CandidateScore

	// Scored is the number of candidates evaluated.
	Scored int
}

// Best returns the top entry under the given strategy.
func (r Ranking) Best(s Strategy) (CandidateScore, bool) {
	var list []CandidateScore
	switch s {
	case StrategyMinimax:
		list = r.ByMinimax
	default:
		list = r.ByAverage
	}
	if len(list) == 0 {
		return CandidateScore{}, false
	}
	return list[0], true
}

// RankOption adjusts a Rank call.
type RankOption func(*rankOptions)

type rankOptions struct {
	workers  int
	progress func(done, total int)
}

// WithWorkers caps the goroutines scoring candidates. Values below 1 fall
// back to GOMAXPROCS.
func WithWorkers(n int) RankOption {
	return func(o *rankOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithProgress registers a callback invoked once per scored candidate.
// Calls arrive from scoring goroutines; fn must be safe for concurrent use.
func WithProgress(fn func(done, total int)) RankOption {
	return func(o *rankOptions) {
		o.progress = fn
	}
}

// Rank scores every candidate against possible and returns the top topK
// under each strategy. Scoring fans out across workers but each result
// lands at its candidate's index, so the outcome never depends on
// scheduling: identical inputs rank byte-identically.
func Rank(candidates, possible []Word, topK int, opts ...RankOption) Ranking {
	o := rankOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if topK < 1 {
		topK = 1
	}

	scores := make([]CandidateScore, len(candidates))
	var done atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(o.workers)
	for i, w := range candidates {
		g.Go(func() error {
			s := ScoreGuess(w, possible)
			scores[i] = CandidateScore{Word: w, Average: s.Average, Worst: s.Worst}
			if o.progress != nil {
				o.progress(int(done.Add(1)), len(candidates))
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return Ranking{
		ByAverage: top(scores, StrategyAverage, topK),
		ByMinimax: top(scores, StrategyMinimax, topK),
		Scored:    len(scores),
	}
}

func top(scores []CandidateScore, s Strategy, k int) []CandidateScore {
	ordered := make([]CandidateScore, len(scores))
	copy(ordered, scores)
	sort.Slice(ordered, func(i, j int) bool {
		return s.Less(ordered[i], ordered[j])
	})
	if len(ordered) > k {
		ordered = ordered[:k]
	}
	return ordered
}
