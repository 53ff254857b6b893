package reporter

import (
	"github.com/lexro/wordlehint/internal/solver"
)

// Reporter defines the interface for outputting suggestion results
type Reporter interface {
	// Report outputs one run's results
	Report(rep Report) error
}

// Report carries everything a reporter needs to render one run.
type Report struct {
	// Source and ListSize describe the word list in use.
	Source   string
	ListSize int

	// Remaining is the candidate pool size after the recorded rounds.
	Remaining int

	// Pool names the candidate selection that was scored ("possible" or
	// "all"); Scored is how many candidates that was. Zero Scored means
	// no ranking was requested.
	Pool   string
	Scored int

	History     []solver.Round
	Constraints solver.ConstraintState

	ByAverage []solver.CandidateScore
	ByMinimax []solver.CandidateScore

	// Answer holds the solution once the pool is down to one word.
	Answer solver.Word

	// Possible lists remaining candidates for display; nil when the
	// caller does not want them printed. May be capped, in which case
	// Truncated reports how many were cut.
	Possible  []solver.Word
	Truncated int
}

// Solved reports whether the pool has narrowed to a single answer.
func (r Report) Solved() bool {
	return r.Remaining == 1
}

// Agreement returns the word both strategies rank first, if they agree.
func Agreement(rep Report) (solver.Word, bool) {
	if len(rep.ByAverage) == 0 || len(rep.ByMinimax) == 0 {
		return solver.Word{}, false
	}
	if rep.ByAverage[0].Word != rep.ByMinimax[0].Word {
		return solver.Word{}, false
	}
	return rep.ByAverage[0].Word, true
}
