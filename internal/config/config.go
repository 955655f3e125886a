// Package config loads the settings of the gildedrose command from flags,
// GILDEDROSE_* environment variables and an optional config file, in that
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DaysFlag       = "days"
	FixtureFlag    = "fixture"
	MetricsOutFlag = "metrics-out"
	ConfigFlag     = "config"

	// DefaultDays matches the number of days printed by the texttest fixture.
	DefaultDays = 2

	envPrefix = "GILDEDROSE"
)

// Config holds the settings of a single simulation run.
type Config struct {
	// Days is the number of days to advance the inventory.
	Days int

	// FixturePath points at a YAML inventory; empty means the built-in fixture.
	FixturePath string

	// MetricsPath is where the Prometheus text output is written; empty disables it.
	MetricsPath string
}

// BindFlags registers the run flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int(DaysFlag, DefaultDays, "Number of days to advance the inventory.")
	fs.String(FixtureFlag, "", "Path to a YAML inventory fixture. Uses the built-in fixture when empty.")
	fs.String(MetricsOutFlag, "", "Write Prometheus metrics in text format to this file after the run.")
	fs.String(ConfigFlag, "", "Optional config file (YAML, JSON or TOML) with the same keys as the flags.")
}

// Load resolves the Config from the parsed flags in fs, the environment and the
// config file named by --config.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString(ConfigFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := Config{
		Days:        v.GetInt(DaysFlag),
		FixturePath: v.GetString(FixtureFlag),
		MetricsPath: v.GetString(MetricsOutFlag),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("days must be >= 0, got %d", c.Days)
	}
	return nil
}
