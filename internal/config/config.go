package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Candidate pool selections for ranking.
const (
	// PoolPossible scores only words still consistent with the recorded
	// rounds. PoolAll scores the whole word list, which can surface
	// information-rich guesses that cannot themselves be the answer.
	PoolPossible = "possible"
	PoolAll      = "all"
)

// Output formats.
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	// Words is a word list path; empty selects the embedded list.
	Words string `yaml:"words"`

	// Pool selects the candidate pool: "possible" or "all".
	Pool string `yaml:"pool"`

	// TopK is the number of suggestions shown per strategy.
	TopK int `yaml:"top_k"`

	// Strategy is the ordering used when a single suggestion is wanted:
	// "average" or "minimax".
	Strategy string `yaml:"strategy"`

	// Format selects report output: "terminal" or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Pool:     PoolPossible,
		TopK:     3,
		Strategy: "average",
		Format:   FormatTerminal,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays WORDLEHINT_* environment variables onto cfg.
func (c *Config) ApplyEnv() {
	c.Words = getEnv("WORDLEHINT_WORDS", c.Words)
	c.Pool = getEnv("WORDLEHINT_POOL", c.Pool)
	c.Strategy = getEnv("WORDLEHINT_STRATEGY", c.Strategy)
	c.Format = getEnv("WORDLEHINT_FORMAT", c.Format)
	if v := os.Getenv("WORDLEHINT_TOPK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopK = n
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Pool {
	case PoolPossible, PoolAll:
	default:
		return fmt.Errorf("invalid pool %q (want %q or %q)", c.Pool, PoolPossible, PoolAll)
	}
	switch c.Strategy {
	case "average", "minimax":
	default:
		return fmt.Errorf("invalid strategy %q (want \"average\" or \"minimax\")", c.Strategy)
	}
	switch c.Format {
	case FormatTerminal, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (want %q or %q)", c.Format, FormatTerminal, FormatJSON)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", c.TopK)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
