package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("wordfreq", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Sort:     SortAlpha,
		MinCount: 1,
		Log:      LogConfig{Level: "info"},
	}, cfg)
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := LoadConfig(newFlags(t, "--sort=count", "--top=10", "--prefix=te", "--min-count=2", "--log-level=debug"))
	require.NoError(t, err)

	assert.Equal(t, SortCount, cfg.Sort)
	assert.Equal(t, 10, cfg.Top)
	assert.Equal(t, "te", cfg.Prefix)
	assert.Equal(t, uint32(2), cfg.MinCount)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfreq.yaml")
	data := []byte("sort: count\ntop: 3\nlog:\n  level: warn\n  json: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(newFlags(t, "--config", path, "--top=5"))
	require.NoError(t, err)

	assert.Equal(t, SortCount, cfg.Sort)
	assert.Equal(t, 5, cfg.Top, "flags win over the config file")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("WORDFREQ_PREFIX", "ab")

	cfg, err := LoadConfig(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "ab", cfg.Prefix)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{Sort: SortAlpha, Log: LogConfig{Level: "info"}}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(c *Config){
		"sort":   func(c *Config) { c.Sort = "random" },
		"top":    func(c *Config) { c.Top = -1 },
		"prefix": func(c *Config) { c.Prefix = "Ab" },
		"level":  func(c *Config) { c.Log.Level = "loud" },
	} {
		mutate := mutate

		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
