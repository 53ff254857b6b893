package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexro/wordlehint/internal/config"
	"github.com/lexro/wordlehint/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list diagnostics",
	Long: `Show where the active word list comes from and how many usable words
it holds. Tokens that are not five-letter alphabetic words are dropped
at load time and counted here.

Examples:
  wordlehint words
  wordlehint words --words ./answers.txt
  wordlehint words --format json`,
	RunE:         runWords,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	list, err := words.Resolve(cfg.Words)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Source  string `json:"source"`
			Words   int    `json:"words"`
			Dropped int    `json:"dropped,omitempty"`
		}{list.Source, list.Len(), list.Dropped})
	}

	fmt.Printf("Source:  %s\n", list.Source)
	fmt.Printf("Words:   %d\n", list.Len())
	if list.Dropped > 0 {
		fmt.Printf("Dropped: %d\n", list.Dropped)
	}
	return nil
}
