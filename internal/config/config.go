// Package config loads and validates patscan configuration.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults
//  2. A .patscan.yaml file, if present
//  3. PATSCAN_* environment variables
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patscan/patscan/internal/errors"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".patscan.yaml"

// Known algorithm identifiers.
const (
	AlgorithmKMP         = "kmp"
	AlgorithmBoyerMoore  = "boyer-moore"
	AlgorithmAhoCorasick = "aho-corasick"
)

// Config represents the complete patscan configuration.
type Config struct {
	Search SearchConfig `yaml:"search" json:"search"`
	Bench  BenchConfig  `yaml:"bench" json:"bench"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// SearchConfig configures scan execution.
type SearchConfig struct {
	// Workers is the worker count for parallel scans.
	// Zero or negative means the platform's available parallelism.
	Workers int `yaml:"workers" json:"workers"`

	// Algorithms are the engines to run when none is named explicitly.
	Algorithms []string `yaml:"algorithms" json:"algorithms"`
}

// BenchConfig configures the benchmark driver.
type BenchConfig struct {
	// TextSizes are the generated text lengths to benchmark, in bytes.
	TextSizes []int `yaml:"text_sizes" json:"text_sizes"`

	// PatternLength is the length of the planted pattern.
	PatternLength int `yaml:"pattern_length" json:"pattern_length"`

	// PatternCount is how many patterns the multi-pattern engine gets.
	PatternCount int `yaml:"pattern_count" json:"pattern_count"`

	// WorkerCounts are the parallel worker counts to compare.
	WorkerCounts []int `yaml:"worker_counts" json:"worker_counts"`

	// Seed drives the deterministic text generator.
	Seed int64 `yaml:"seed" json:"seed"`

	// Alphabet is the symbol set texts are drawn from.
	Alphabet string `yaml:"alphabet" json:"alphabet"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format" json:"format"`

	// NoColor disables styled output even on a TTY.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Workers:    0, // auto
			Algorithms: []string{AlgorithmKMP, AlgorithmBoyerMoore, AlgorithmAhoCorasick},
		},
		Bench: BenchConfig{
			TextSizes:     []int{1 << 16, 1 << 20, 1 << 22},
			PatternLength: 8,
			PatternCount:  4,
			WorkerCounts:  []int{1, 2, 4, runtime.NumCPU()},
			Seed:          1,
			Alphabet:      "ABCD",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads configuration from path, layering it over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
		return nil, errors.Wrap(errors.ErrCodeFileRead, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("parsing %s", path), err)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// applyEnv overrides configuration from PATSCAN_* environment variables.
// Malformed values are ignored; env overrides are a convenience, not a
// validation surface.
func (c *Config) applyEnv() {
	if v := os.Getenv("PATSCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.Workers = n
		}
	}
	if v := os.Getenv("PATSCAN_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Bench.Seed = n
		}
	}
	if v := os.Getenv("PATSCAN_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("PATSCAN_NO_COLOR"); v != "" {
		c.Output.NoColor = v != "0" && !strings.EqualFold(v, "false")
	}
}

// Validate checks configuration consistency. A negative or zero worker
// count is valid (it selects auto) and is deliberately not rejected.
func (c *Config) Validate() error {
	for _, alg := range c.Search.Algorithms {
		if !KnownAlgorithm(alg) {
			return errors.New(errors.ErrCodeUnknownAlgorithm,
				fmt.Sprintf("unknown algorithm %q", alg), nil).
				WithSuggestion(fmt.Sprintf("valid algorithms: %s", strings.Join(Algorithms(), ", ")))
		}
	}
	for _, size := range c.Bench.TextSizes {
		if size < 1 {
			return errors.ConfigError(fmt.Sprintf("bench text size %d must be positive", size), nil)
		}
	}
	if c.Bench.PatternLength < 1 {
		return errors.ConfigError("bench pattern length must be at least 1", nil)
	}
	if c.Bench.PatternCount < 1 {
		return errors.ConfigError("bench pattern count must be at least 1", nil)
	}
	if len(c.Bench.Alphabet) == 0 {
		return errors.ConfigError("bench alphabet must not be empty", nil)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.ConfigError(fmt.Sprintf("unknown output format %q", c.Output.Format), nil)
	}
	return nil
}

// KnownAlgorithm reports whether name is a recognized engine identifier.
func KnownAlgorithm(name string) bool {
	switch name {
	case AlgorithmKMP, AlgorithmBoyerMoore, AlgorithmAhoCorasick:
		return true
	}
	return false
}

// Algorithms returns every recognized engine identifier.
func Algorithms() []string {
	return []string{AlgorithmKMP, AlgorithmBoyerMoore, AlgorithmAhoCorasick}
}
