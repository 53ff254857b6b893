package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lexro/wordlehint/internal/config"
	"github.com/lexro/wordlehint/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	wordsPath  string
	configPath string
)

// cfg holds the merged configuration: defaults, then config file, then
// environment, then flags. Populated before any command runs.
var cfg config.Config

var RootCmd = &cobra.Command{
	Use:   "wordlehint",
	Short: "A solver for five-letter word guessing puzzles",
	Long: `wordlehint tracks a word guessing puzzle round by round, narrows the
word list to the candidates consistent with every piece of feedback,
and ranks the best next guesses two ways: by lowest average remaining
candidates and by lowest worst-case remaining candidates.

Feedback is written as five digits, one per letter of the guess:
0 means the letter is not in the word, 1 means it is in the word but
in another position, 2 means it is in the right position.`,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	// A .env file is optional.
	_ = godotenv.Load()

	level := "warn"
	if verbose {
		level = "debug"
	}
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", level)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	c.ApplyEnv()
	if cmd.Flags().Changed("format") {
		c.Format = format
	}
	if cmd.Flags().Changed("words") {
		c.Words = wordsPath
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// GetUI returns a UI for the merged output format.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, cfg.Format)
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", config.FormatTerminal, "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&wordsPath, "words", "w", "", "Word list file (default: embedded list)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
