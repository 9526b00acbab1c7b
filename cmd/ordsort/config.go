package main

import (
	"fmt"
	"log/slog"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/pflag"
)

// Config holds everything ordsort can be told, from the environment first
// and then from flags.
type Config struct {
	Input     string `envconfig:"ORDSORT_INPUT"`
	Map       bool   `envconfig:"ORDSORT_MAP"`
	Natural   bool   `envconfig:"ORDSORT_NATURAL"`
	Separator string `envconfig:"ORDSORT_SEPARATOR"`
	LogLevel  string `envconfig:"ORDSORT_LOG_LEVEL"`
	LogJSON   bool   `envconfig:"ORDSORT_LOG_JSON"`
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Separator: ",",
		LogLevel:  "warn",
	}
}

// loadConfig applies environment variables found through lookup on top of
// the defaults. Unset variables keep their default.
func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	conf := NewConfig()

	if err := envconfig.Process("", &conf, lookup); err != nil {
		return conf, fmt.Errorf("reading environment: %w", err)
	}

	return conf, nil
}

// flagSet binds flags to conf; the current values of conf become the flag
// defaults, so flags override the environment.
func flagSet(conf *Config) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false

	flags.StringVarP(&conf.Input, "input", "i", conf.Input, "YAML file to read (default: stdin)")
	flags.BoolVarP(&conf.Map, "map", "m", conf.Map, "read key/value entries and print an ordered map")
	flags.BoolVarP(&conf.Natural, "natural", "n", conf.Natural, "order strings naturally (file2 before file10)")
	flags.StringVarP(&conf.Separator, "separator", "s", conf.Separator, "separator between sequence elements")
	flags.StringVar(&conf.LogLevel, "log-level", conf.LogLevel, "minimum log level (debug, info, warn, error)")
	flags.BoolVar(&conf.LogJSON, "log-json", conf.LogJSON, "log in JSON instead of text")

	return flags
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
