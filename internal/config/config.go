package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WORDFREQ"

// Sort orders
const (
	SortAlpha = "alpha"
	SortCount = "count"
)

// Config holds all configuration for the wordfreq tool
type Config struct {
	Prefix   string    `mapstructure:"prefix"`
	Sort     string    `mapstructure:"sort"`
	Top      int       `mapstructure:"top"`
	MinCount uint32    `mapstructure:"min_count"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Flags registers the command line flags overriding the configuration.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file")
	fs.String("prefix", "", "Only count words starting with the prefix")
	fs.String("sort", SortAlpha, "Output order: alpha or count")
	fs.Int("top", 0, "Print at most N words (0 means all)")
	fs.Uint32("min-count", 1, "Skip words counted less than N times")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.Bool("log-json", false, "Log in JSON instead of console format")
}

// LoadConfig loads configuration from defaults, an optional config file,
// environment variables and the parsed flags (in increasing priority).
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("prefix", "")
	v.SetDefault("sort", SortAlpha)
	v.SetDefault("top", 0)
	v.SetDefault("min_count", 1)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// bindFlags maps flag names onto configuration keys
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"config":    "config",
		"prefix":    "prefix",
		"sort":      "sort",
		"top":       "top",
		"min_count": "min-count",
		"log.level": "log-level",
		"log.json":  "log-json",
	} {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sort != SortAlpha && c.Sort != SortCount {
		return fmt.Errorf("invalid sort order: %q", c.Sort)
	}
	if c.Top < 0 {
		return fmt.Errorf("invalid top: %d", c.Top)
	}
	for i := 0; i < len(c.Prefix); i++ {
		if ch := c.Prefix[i]; ch < 'a' || ch > 'z' {
			return fmt.Errorf("invalid prefix: %q", c.Prefix)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	return nil
}
