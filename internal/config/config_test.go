package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, PoolPossible, cfg.Pool)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "average", cfg.Strategy)
	assert.Equal(t, FormatTerminal, cfg.Format)
	assert.Empty(t, cfg.Words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool: all\ntop_k: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PoolAll, cfg.Pool)
	assert.Equal(t, 5, cfg.TopK)
	// Untouched keys keep their defaults.
	assert.Equal(t, "average", cfg.Strategy)
	assert.Equal(t, FormatTerminal, cfg.Format)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool: [broken"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WORDLEHINT_WORDS", "/tmp/list.txt")
	t.Setenv("WORDLEHINT_POOL", "all")
	t.Setenv("WORDLEHINT_STRATEGY", "minimax")
	t.Setenv("WORDLEHINT_FORMAT", "json")
	t.Setenv("WORDLEHINT_TOPK", "7")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "/tmp/list.txt", cfg.Words)
	assert.Equal(t, PoolAll, cfg.Pool)
	assert.Equal(t, "minimax", cfg.Strategy)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 7, cfg.TopK)
}

func TestApplyEnv_IgnoresUnsetAndBadNumbers(t *testing.T) {
	t.Setenv("WORDLEHINT_TOPK", "many")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"valid all pool", func(c *Config) { c.Pool = PoolAll }, ""},
		{"bad pool", func(c *Config) { c.Pool = "everything" }, "invalid pool"},
		{"bad strategy", func(c *Config) { c.Strategy = "entropy" }, "invalid strategy"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "invalid format"},
		{"zero topk", func(c *Config) { c.TopK = 0 }, "top_k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
