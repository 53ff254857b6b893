package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexro/wordlehint/internal/config"
	"github.com/lexro/wordlehint/internal/reporter"
	"github.com/lexro/wordlehint/internal/solver"
	"github.com/lexro/wordlehint/internal/ui"
	"github.com/lexro/wordlehint/internal/words"
)

var (
	pool    string
	topK    int
	workers int
)

// possiblePreview is the largest pool printed alongside suggestions.
const possiblePreview = 20

var suggestCmd = &cobra.Command{
	Use:   "suggest [GUESS FEEDBACK]...",
	Short: "Rank the best next guesses",
	Long: `Replay recorded rounds and rank candidate guesses against the words
that could still be the answer.

Each candidate is scored by how its feedback patterns would split the
remaining words. The average strategy minimizes the expected number of
candidates left after the guess, the minimax strategy minimizes the
worst case. Both rankings are reported.

Examples:
  wordlehint suggest
  wordlehint suggest RAISE 01002
  wordlehint suggest RAISE 01002 CLOUT 00010
  wordlehint suggest --pool all --top 5 RAISE 01002
  wordlehint suggest --format json RAISE 01002 > report.json`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runSuggest,
	SilenceUsage: true,
}

func init() {
	suggestCmd.Flags().StringVar(&pool, "pool", config.PoolPossible, "Candidate pool to score (possible, all)")
	suggestCmd.Flags().IntVarP(&topK, "top", "t", 3, "Suggestions shown per strategy")
	suggestCmd.Flags().IntVar(&workers, "workers", 0, "Scoring goroutines (0 = one per CPU)")
	RootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	mergeRankFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rounds, err := parseRounds(args)
	if err != nil {
		return err
	}

	u := GetUI()

	// Start progress tracking if in interactive mode
	progress := u.StartProgress()
	defer func() {
		progress.Done(nil)
	}()

	progress.SetStage(ui.StageLoadWords)

	list, err := words.Resolve(cfg.Words)
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		return fmt.Errorf("word list %s has no usable words", list.Source)
	}

	progress.SetStage(ui.StageReplayRounds)

	session := solver.NewSession(list.Words)
	if err := replay(session, rounds); err != nil {
		return err
	}

	rep := reporter.Report{
		Source:      list.Source,
		ListSize:    list.Len(),
		Remaining:   session.Remaining(),
		History:     session.History(),
		Constraints: session.Summary(),
	}

	if session.Solved() {
		rep.Answer = session.Possible()[0]
		rep.Possible = session.Possible()
	} else {
		candidates := session.Possible()
		if cfg.Pool == config.PoolAll {
			candidates = session.Words()
		}

		progress.StartScoring(len(candidates))

		start := time.Now()
		ranking := solver.Rank(candidates, session.Possible(), cfg.TopK,
			solver.WithWorkers(workers),
			solver.WithProgress(func(done, total int) {
				progress.CandidateDone()
			}),
		)
		log.Debug().
			Int("candidates", len(candidates)).
			Int("possible", session.Remaining()).
			Dur("elapsed", time.Since(start)).
			Msg("candidates scored")

		rep.Pool = cfg.Pool
		rep.Scored = ranking.Scored
		rep.ByAverage = ranking.ByAverage
		rep.ByMinimax = ranking.ByMinimax

		if session.Remaining() <= possiblePreview {
			rep.Possible = session.Possible()
		}
	}

	// Stop progress before reporting
	progress.Done(nil)
	progress = nil // prevent double-done in defer

	return report(rep)
}

// parseRounds parses alternating GUESS FEEDBACK arguments.
func parseRounds(args []string) ([]solver.Round, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("arguments must be GUESS FEEDBACK pairs, got %d values", len(args))
	}
	rounds := make([]solver.Round, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		guess, err := solver.ParseWord(args[i])
		if err != nil {
			return nil, err
		}
		fb, err := solver.ParseFeedback(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("feedback for %s: %w", guess, err)
		}
		rounds = append(rounds, solver.Round{Guess: guess, Feedback: fb})
	}
	return rounds, nil
}

// replay applies recorded rounds to a fresh session.
func replay(session *solver.Session, rounds []solver.Round) error {
	for _, rd := range rounds {
		if err := session.Apply(rd.Guess, rd.Feedback); err != nil {
			return err
		}
		log.Debug().
			Str("guess", rd.Guess.String()).
			Str("feedback", rd.Feedback.String()).
			Int("remaining", session.Remaining()).
			Msg("round applied")
	}
	return nil
}

// mergeRankFlags folds explicitly set ranking flags into cfg.
func mergeRankFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("pool") {
		cfg.Pool = pool
	}
	if cmd.Flags().Changed("top") {
		cfg.TopK = topK
	}
}

// report renders rep with the reporter the merged format selects.
func report(rep reporter.Report) error {
	switch cfg.Format {
	case config.FormatJSON:
		return reporter.NewJSONReporter(os.Stdout).Report(rep)
	default:
		return reporter.NewTerminalReporter(os.Stdout).Report(rep)
	}
}
