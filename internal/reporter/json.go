package reporter

import (
	"encoding/json"
	"io"

	"github.com/lexro/wordlehint/internal/solver"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Source      string           `json:"source"`
	ListSize    int              `json:"listSize"`
	Remaining   int              `json:"remaining"`
	Solved      bool             `json:"solved"`
	Answer      string           `json:"answer,omitempty"`
	Pool        string           `json:"pool,omitempty"`
	Scored      int              `json:"scored,omitempty"`
	Rounds      []JSONRound      `json:"rounds,omitempty"`
	Constraints *JSONConstraints `json:"constraints,omitempty"`
	Average     []JSONSuggestion `json:"average,omitempty"`
	Minimax     []JSONSuggestion `json:"minimax,omitempty"`
	Possible    []string         `json:"possible,omitempty"`
	Truncated   int              `json:"truncated,omitempty"`
}

// JSONRound represents one applied round in JSON format
type JSONRound struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

// JSONConstraints represents the constraint summary in JSON format
type JSONConstraints struct {
	// Fixed has one entry per position, empty where unknown.
	Fixed    []string `json:"fixed"`
	Present  []string `json:"present,omitempty"`
	Excluded []string `json:"excluded,omitempty"`
}

// JSONSuggestion represents a scored candidate in JSON format
type JSONSuggestion struct {
	Word    string  `json:"word"`
	Average float64 `json:"average"`
	Worst   int     `json:"worst"`
}

// Report outputs the run as JSON
func (r *JSONReporter) Report(rep Report) error {
	output := JSONOutput{
		Source:    rep.Source,
		ListSize:  rep.ListSize,
		Remaining: rep.Remaining,
		Solved:    rep.Solved(),
		Pool:      rep.Pool,
		Scored:    rep.Scored,
		Average:   suggestions(rep.ByAverage),
		Minimax:   suggestions(rep.ByMinimax),
		Truncated: rep.Truncated,
	}

	if rep.Solved() {
		output.Answer = rep.Answer.String()
	}
	for _, round := range rep.History {
		output.Rounds = append(output.Rounds, JSONRound{
			Guess:    round.Guess.String(),
			Feedback: round.Feedback.String(),
		})
	}
	if len(rep.History) > 0 {
		output.Constraints = constraints(rep.Constraints)
	}
	for _, w := range rep.Possible {
		output.Possible = append(output.Possible, w.String())
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func suggestions(scores []solver.CandidateScore) []JSONSuggestion {
	out := make([]JSONSuggestion, 0, len(scores))
	for _, cs := range scores {
		out = append(out, JSONSuggestion{
			Word:    cs.Word.String(),
			Average: cs.Average,
			Worst:   cs.Worst,
		})
	}
	return out
}

func constraints(st solver.ConstraintState) *JSONConstraints {
	jc := &JSONConstraints{
		Fixed: make([]string, solver.WordLength),
	}
	for i, c := range st.Fixed {
		if c != 0 {
			jc.Fixed[i] = string(c)
		}
	}
	for _, c := range st.Present.Letters() {
		jc.Present = append(jc.Present, string(c))
	}
	for _, c := range st.Excluded.Letters() {
		jc.Excluded = append(jc.Excluded, string(c))
	}
	return jc
}
