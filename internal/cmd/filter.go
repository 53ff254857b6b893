package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexro/wordlehint/internal/reporter"
	"github.com/lexro/wordlehint/internal/solver"
	"github.com/lexro/wordlehint/internal/words"
)

var filterLimit int

var filterCmd = &cobra.Command{
	Use:   "filter [GUESS FEEDBACK]...",
	Short: "List the words still consistent with the recorded rounds",
	Long: `Replay recorded rounds and print every word that could still be the
answer. A word survives a round only if guessing it would have produced
exactly the recorded feedback.

Examples:
  wordlehint filter RAISE 01002
  wordlehint filter RAISE 01002 CLOUT 00010
  wordlehint filter --limit 0 RAISE 01002
  wordlehint filter --format json RAISE 01002 > remaining.json`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runFilter,
	SilenceUsage: true,
}

func init() {
	filterCmd.Flags().IntVarP(&filterLimit, "limit", "l", 50, "Words listed at most (0 = no limit)")
	RootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	rounds, err := parseRounds(args)
	if err != nil {
		return err
	}

	list, err := words.Resolve(cfg.Words)
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		return fmt.Errorf("word list %s has no usable words", list.Source)
	}

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
		Possible:    session.Possible(),
	}
	if session.Solved() {
		rep.Answer = session.Possible()[0]
	}
	if filterLimit > 0 && len(rep.Possible) > filterLimit {
		rep.Truncated = len(rep.Possible) - filterLimit
		rep.Possible = rep.Possible[:filterLimit]
	}

	return report(rep)
}
