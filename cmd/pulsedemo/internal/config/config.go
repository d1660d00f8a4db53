// Package config loads pulsedemo's settings from flags, environment
// variables, and a .env file, in that order of precedence (flags win). No
// config file is read.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings pulsedemo's scenarios read at startup.
type Config struct {
	// Scenario selects which built-in demo graph to run (counter, diamond,
	// dynamic, batch, listener, cycle).
	Scenario string

	// TraceCapacity bounds how many nodes the instrumentation trace ring
	// keeps event history for. Zero disables tracing.
	TraceCapacity int

	// Debug enables structured slog logging of compute, effect and
	// listener errors; other kernel hooks are not logged.
	Debug bool
}

// Load reads .env (if present, silently ignored otherwise), then layers
// environment variables (PULSE_ prefix) and bound flags on top via Viper,
// flags taking precedence over everything else.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("pulse")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("scenario", "counter")
	v.SetDefault("trace-capacity", 256)
	v.SetDefault("debug", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("pulsedemo: bind flags: %w", err)
		}
	}

	return &Config{
		Scenario:      v.GetString("scenario"),
		TraceCapacity: v.GetInt("trace-capacity"),
		Debug:         v.GetBool("debug"),
	}, nil
}
