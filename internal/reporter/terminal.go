package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lexro/wordlehint/internal/solver"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// Report outputs the run to the terminal
func (r *TerminalReporter) Report(rep Report) error {
	color.New(color.FgHiBlack).Fprintf(r.w, "Word list: %s (%d words)\n", rep.Source, rep.ListSize)

	if len(rep.History) > 0 {
		r.printRounds(rep)
		r.printConstraints(rep.Constraints)
	}

	fmt.Fprintln(r.w)
	if rep.Solved() {
		color.New(color.FgGreen, color.Bold).Fprintf(r.w, "✓ Solved: %s\n", rep.Answer)
		return nil
	}
	fmt.Fprintf(r.w, "Remaining candidates: %d\n", rep.Remaining)

	if rep.Scored > 0 {
		color.New(color.FgHiBlack).Fprintf(r.w, "Scored %d candidates from the %s pool\n", rep.Scored, rep.Pool)
		r.printRanking("Best by average", rep.ByAverage)
		r.printRanking("Best by worst case", rep.ByMinimax)

		if w, ok := Agreement(rep); ok {
			fmt.Fprintln(r.w)
			color.New(color.FgGreen).Fprintf(r.w, "Both strategies agree: %s\n", w)
		}
	}

	if rep.Possible != nil {
		r.printPossible(rep)
	}

	return nil
}

func (r *TerminalReporter) printRounds(rep Report) {
	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintln(r.w, "Rounds")
	for i, round := range rep.History {
		fmt.Fprintf(r.w, "  %d. ", i+1)
		r.printMarks(round.Guess, round.Feedback)
		fmt.Fprintln(r.w)
	}
}

// printMarks writes the guess with one color per letter's mark.
func (r *TerminalReporter) printMarks(guess solver.Word, fb solver.Feedback) {
	for i := 0; i < solver.WordLength; i++ {
		letter := string(guess[i])
		switch fb[i] {
		case solver.Correct:
			color.New(color.FgGreen, color.Bold).Fprint(r.w, letter)
		case solver.Present:
			color.New(color.FgYellow).Fprint(r.w, letter)
		default:
			color.New(color.FgHiBlack).Fprint(r.w, letter)
		}
	}
	color.New(color.FgHiBlack).Fprintf(r.w, "  %s", fb)
}

func (r *TerminalReporter) printConstraints(st solver.ConstraintState) {
	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintln(r.w, "Constraints")

	cells := make([]string, solver.WordLength)
	for i, c := range st.Fixed {
		if c == 0 {
			cells[i] = "_"
		} else {
			cells[i] = string(c)
		}
	}
	fmt.Fprint(r.w, "  Positions: ")
	color.New(color.FgGreen).Fprintln(r.w, strings.Join(cells, " "))

	if st.Present.Len() > 0 {
		fmt.Fprint(r.w, "  In the word: ")
		color.New(color.FgYellow).Fprintln(r.w, spaced(st.Present))
	}
	if st.Excluded.Len() > 0 {
		fmt.Fprint(r.w, "  Ruled out: ")
		color.New(color.FgHiBlack).Fprintln(r.w, spaced(st.Excluded))
	}
}

func (r *TerminalReporter) printRanking(title string, scores []solver.CandidateScore) {
	if len(scores) == 0 {
		return
	}

	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintln(r.w, title)
	for i, cs := range scores {
		fmt.Fprintf(r.w, "  %d. ", i+1)
		color.New(color.FgCyan, color.Bold).Fprint(r.w, cs.Word)
		fmt.Fprintf(r.w, "  average %.2f, worst %d\n", cs.Average, cs.Worst)
	}
}

func (r *TerminalReporter) printPossible(rep Report) {
	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintln(r.w, "Candidates")

	// Ten words per row keeps long pools readable.
	for i := 0; i < len(rep.Possible); i += 10 {
		end := i + 10
		if end > len(rep.Possible) {
			end = len(rep.Possible)
		}
		row := make([]string, 0, 10)
		for _, w := range rep.Possible[i:end] {
			row = append(row, w.String())
		}
		fmt.Fprintf(r.w, "  %s\n", strings.Join(row, " "))
	}
	if rep.Truncated > 0 {
		color.New(color.FgHiBlack).Fprintf(r.w, "  ... and %d more\n", rep.Truncated)
	}
}

func spaced(s solver.LetterSet) string {
	letters := s.Letters()
	parts := make([]string, len(letters))
	for i, c := range letters {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
