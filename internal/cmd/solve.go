package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexro/wordlehint/internal/config"
	"github.com/lexro/wordlehint/internal/solver"
	"github.com/lexro/wordlehint/internal/ui"
	"github.com/lexro/wordlehint/internal/words"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle interactively",
	Long: `Walk through a puzzle round by round. After each guess, enter the
feedback the puzzle showed you as five digits (0 absent, 1 wrong
position, 2 right position) and the candidate pool narrows until the
answer is known.

Commands inside the shell:
  show         list the remaining candidates
  reset        start over with the full word list
  quit, exit   leave the shell

Examples:
  wordlehint solve
  wordlehint solve --pool all --top 5
  wordlehint solve --words ./answers.txt`,
	Args:         cobra.NoArgs,
	RunE:         runSolve,
	SilenceUsage: true,
}

func init() {
	solveCmd.Flags().StringVar(&pool, "pool", config.PoolPossible, "Candidate pool to score (possible, all)")
	solveCmd.Flags().IntVarP(&topK, "top", "t", 3, "Suggestions shown per strategy")
	solveCmd.Flags().IntVar(&workers, "workers", 0, "Scoring goroutines (0 = one per CPU)")
	RootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	mergeRankFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	u := GetUI()
	if u.IsJSON() {
		return fmt.Errorf("solve is interactive; use suggest or filter with --format json")
	}

	list, err := words.Resolve(cfg.Words)
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		return fmt.Errorf("word list %s has no usable words", list.Source)
	}

	sh := &shell{
		ui:      u,
		list:    list,
		session: solver.NewSession(list.Words),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
	return sh.run()
}

// shell is one interactive solving session.
type shell struct {
	ui      *ui.UI
	list    words.List
	session *solver.Session
	in      *bufio.Scanner
	out     io.Writer
}

type shellAction int

const (
	actionContinue shellAction = iota
	actionSolved
	actionQuit
)

func (sh *shell) run() error {
	sh.banner()
	for {
		sh.status()
		if sh.session.Solved() {
			st := sh.ui.Styles
			fmt.Fprintf(sh.out, "%s\n", st.Success.Render(
				fmt.Sprintf("%s The answer is %s. Play it to confirm.", st.IconSolved, sh.session.Possible()[0])))
		} else {
			sh.suggest()
		}
		switch sh.round() {
		case actionQuit:
			return nil
		case actionSolved:
			if !sh.again() {
				return nil
			}
		}
	}
}

func (sh *shell) banner() {
	st := sh.ui.Styles
	fmt.Fprintf(sh.out, "%s\n", st.Header.Render("wordlehint"))
	fmt.Fprintf(sh.out, "Word list: %s (%d words)\n\n", sh.list.Source, sh.list.Len())
	fmt.Fprintln(sh.out, "After each guess, enter the feedback as five digits:")
	fmt.Fprintf(sh.out, "  %s not in the word, %s wrong position, %s right position\n",
		st.Absent.Render(" 0 "), st.Present.Render(" 1 "), st.Correct.Render(" 2 "))
	fmt.Fprintln(sh.out, "Type show, reset, or quit at the guess prompt.")
}

func (sh *shell) status() {
	st := sh.ui.Styles
	fmt.Fprintln(sh.out)
	history := sh.session.History()
	for i, rd := range history {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, st.Tiles(rd.Guess, rd.Feedback))
	}
	if len(history) > 0 {
		sh.constraints()
	}
	label := "candidates remain"
	if sh.session.Remaining() == 1 {
		label = "candidate remains"
	}
	fmt.Fprintf(sh.out, "%s\n", st.Subheader.Render(fmt.Sprintf("%d %s", sh.session.Remaining(), label)))
}

func (sh *shell) constraints() {
	sum := sh.session.Summary()
	cells := make([]string, 0, solver.WordLength)
	for _, c := range sum.Fixed {
		if c == 0 {
			c = '_'
		}
		cells = append(cells, string(c))
	}
	line := "positions " + strings.Join(cells, " ")
	if sum.Present.Len() > 0 {
		line += "  in the word " + sum.Present.String()
	}
	if sum.Excluded.Len() > 0 {
		line += "  ruled out " + sum.Excluded.String()
	}
	fmt.Fprintf(sh.out, "  %s\n", sh.ui.Styles.Hint.Render(line))
}

func (sh *shell) suggest() {
	st := sh.ui.Styles

	candidates := sh.session.Possible()
	if cfg.Pool == config.PoolAll {
		candidates = sh.session.Words()
	}

	progress := sh.ui.StartProgress()
	progress.StartScoring(len(candidates))

	start := time.Now()
	ranking := solver.Rank(candidates, sh.session.Possible(), cfg.TopK,
		solver.WithWorkers(workers),
		solver.WithProgress(func(done, total int) {
			progress.CandidateDone()
		}),
	)

	progress.Done(nil)
	log.Debug().
		Int("candidates", len(candidates)).
		Int("possible", sh.session.Remaining()).
		Dur("elapsed", time.Since(start)).
		Msg("candidates scored")

	fmt.Fprintf(sh.out, "\n%s\n", st.Header.Render("Suggestions"))
	if sameRanking(ranking.ByAverage, ranking.ByMinimax) {
		sh.printRanking("both strategies", ranking.ByAverage)
	} else {
		sh.printRanking("average", ranking.ByAverage)
		sh.printRanking("worst case", ranking.ByMinimax)
	}
	if best, ok := ranking.Best(solver.StrategyByName(cfg.Strategy)); ok {
		fmt.Fprintf(sh.out, "  try %s\n", st.Word.Render(best.Word.String()))
	}
}

func (sh *shell) printRanking(title string, scores []solver.CandidateScore) {
	st := sh.ui.Styles
	if len(scores) == 0 {
		return
	}
	fmt.Fprintf(sh.out, "  best by %s\n", title)
	for i, cs := range scores {
		fmt.Fprintf(sh.out, "    %d. %s  average %.2f, worst %d\n",
			i+1, st.Word.Render(cs.Word.String()), cs.Average, cs.Worst)
	}
}

func sameRanking(a, b []solver.CandidateScore) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Word != b[i].Word {
			return false
		}
	}
	return true
}

func (sh *shell) round() shellAction {
	st := sh.ui.Styles
	for {
		line, ok := sh.readLine("guess> ")
		if !ok {
			return actionQuit
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return actionQuit
		case "reset":
			sh.session.Reset()
			fmt.Fprintln(sh.out, "Starting over with the full list.")
			return actionContinue
		case "show":
			sh.show()
			continue
		}

		guess, err := solver.ParseWord(line)
		if err != nil {
			sh.fail(err)
			continue
		}

		fbLine, ok := sh.readLine("feedback> ")
		if !ok {
			return actionQuit
		}
		fb, err := solver.ParseFeedback(fbLine)
		if err != nil {
			sh.fail(err)
			continue
		}

		if fb.Solved() {
			fmt.Fprintf(sh.out, "\n%s\n", st.Success.Render(fmt.Sprintf("%s Solved: %s", st.IconSolved, guess)))
			return actionSolved
		}

		if err := sh.session.Apply(guess, fb); err != nil {
			if errors.Is(err, solver.ErrNoCandidates) {
				log.Debug().
					Str("guess", guess.String()).
					Str("feedback", fb.String()).
					Msg("contradictory feedback rejected")
				sh.contradiction()
			} else {
				sh.fail(err)
			}
			continue
		}
		log.Debug().
			Str("guess", guess.String()).
			Str("feedback", fb.String()).
			Int("remaining", sh.session.Remaining()).
			Msg("round applied")
		return actionContinue
	}
}

// show lists the remaining candidates, previewing large pools.
func (sh *shell) show() {
	const (
		showAll     = 50
		showPreview = 20
		wordsPerRow = 10
	)

	possible := sh.session.Possible()
	shown := possible
	if len(possible) > showAll {
		shown = possible[:showPreview]
	}
	for i := 0; i < len(shown); i += wordsPerRow {
		end := i + wordsPerRow
		if end > len(shown) {
			end = len(shown)
		}
		row := make([]string, 0, wordsPerRow)
		for _, w := range shown[i:end] {
			row = append(row, w.String())
		}
		fmt.Fprintf(sh.out, "  %s\n", strings.Join(row, " "))
	}
	if len(shown) < len(possible) {
		fmt.Fprintf(sh.out, "  %s\n", sh.ui.Styles.Subheader.Render(
			fmt.Sprintf("... and %d more", len(possible)-len(shown))))
	}
}

func (sh *shell) again() bool {
	line, ok := sh.readLine("play again? (y/N) ")
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		sh.session.Reset()
		return true
	}
	return false
}

func (sh *shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(sh.out, sh.ui.Styles.Prompt.Render(prompt))
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *shell) fail(err error) {
	st := sh.ui.Styles
	fmt.Fprintf(sh.out, "%s\n", st.Error.Render(fmt.Sprintf("%s %v", st.IconError, err)))
}

func (sh *shell) contradiction() {
	st := sh.ui.Styles
	fmt.Fprintf(sh.out, "%s\n", st.Error.Render(fmt.Sprintf("%s No words match that feedback.", st.IconError)))
	fmt.Fprintf(sh.out, "%s\n", st.Hint.Render("The round was not applied. Check the digits for a typo, or type reset to start over."))
}
