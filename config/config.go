// Package config holds settings shared by the ntseq subcommands. Values
// are layered: built-in defaults, then an optional config file, then
// NTSEQ_* environment variables, then explicitly set command line
// flags.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ntseq/ntseq/nt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the merged result of all configuration layers.
type Config struct {
	// sequence kind for text input: "dna" or "rna"
	Kind string `mapstructure:"kind"`

	// what mask/cover do with operands of different length:
	// "strict" or "truncate"
	LengthPolicy string `mapstructure:"length-policy"`

	// match-mapping goroutines, 0 means one per CPU
	Workers int `mapstructure:"workers"`

	// FASTA output line width
	LineWidth int `mapstructure:"line-width"`

	LogLevel string `mapstructure:"log-level"`
}

var defaults = map[string]interface{}{
	"kind":          "dna",
	"length-policy": "strict",
	"workers":       0,
	"line-width":    60,
	"log-level":     "info",
}

// Load merges the configuration layers. path may be empty. Any flag
// in flags (which may be nil) that was set explicitly and has the
// same name as a config key overrides the other layers.
func Load(path string, flags *flag.FlagSet) (Config, error) {
	var c Config
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("NTSEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if flags != nil {
		flags.Visit(func(f *flag.Flag) {
			if _, ok := defaults[f.Name]; ok {
				v.Set(f.Name, f.Value.String())
			}
		})
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if c.Workers < 0 {
		return c, fmt.Errorf("workers must not be negative (got %d)", c.Workers)
	}
	return c, nil
}

// SeqKind returns the configured sequence kind.
func (c Config) SeqKind() (nt.Kind, error) {
	switch strings.ToLower(c.Kind) {
	case "dna", "":
		return nt.DNA, nil
	case "rna":
		return nt.RNA, nil
	default:
		return nt.DNA, fmt.Errorf("unknown sequence kind %q", c.Kind)
	}
}

func (c Config) Policy() (nt.LengthPolicy, error) {
	return nt.ParseLengthPolicy(c.LengthPolicy)
}

func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
