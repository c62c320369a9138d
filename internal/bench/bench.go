// Package bench drives comparative benchmarks of the matching engines:
// sequential versus parallel scans across configured text sizes and
// worker counts, with every parallel result validated against its
// sequential baseline.
package bench

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/patscan/patscan/internal/config"
	"github.com/patscan/patscan/internal/errors"
	"github.com/patscan/patscan/internal/gen"
	"github.com/patscan/patscan/pkg/match"
)

// DefaultEngineCacheSize bounds the number of prebuilt engines kept
// across benchmark iterations. Engines are immutable once built, so
// sharing them between runs is safe.
const DefaultEngineCacheSize = 64

// Row is one benchmark measurement.
type Row struct {
	Algorithm string        `json:"algorithm"`
	TextSize  int           `json:"text_size"`
	Parallel  bool          `json:"parallel"`
	Workers   int           `json:"workers"`
	Matches   int           `json:"matches"`
	Elapsed   time.Duration `json:"elapsed"`

	// Verified is true when a parallel row's match set equals the
	// sequential baseline. Sequential rows are trivially verified.
	Verified bool `json:"verified"`
}

// Runner executes benchmark runs, reusing prebuilt engines via an LRU
// cache keyed by algorithm and pattern set.
type Runner struct {
	engines *lru.Cache[string, match.Engine]
}

// NewRunner creates a benchmark runner. cacheSize <= 0 selects
// DefaultEngineCacheSize.
func NewRunner(cacheSize int) *Runner {
	if cacheSize <= 0 {
		cacheSize = DefaultEngineCacheSize
	}
	cache, _ := lru.New[string, match.Engine](cacheSize)
	return &Runner{engines: cache}
}

// Run benchmarks the named algorithms under the given bench settings
// and returns one row per (algorithm, text size, mode, worker count).
func (r *Runner) Run(cfg config.BenchConfig, algorithms []string) ([]Row, error) {
	g := gen.New(cfg.Seed, cfg.Alphabet)
	var rows []Row

	for _, size := range cfg.TextSizes {
		if cfg.PatternLength > size {
			return nil, errors.ValidationError(
				fmt.Sprintf("pattern length %d exceeds text size %d", cfg.PatternLength, size), nil)
		}
		text := g.Text(size)
		patterns := r.derivePatterns(g, text, cfg)

		slog.Info("bench_text_ready",
			slog.Int("size", size),
			slog.Int("patterns", len(patterns)))

		for _, alg := range algorithms {
			eng, err := r.engineFor(alg, patterns)
			if err != nil {
				return nil, err
			}

			seq := eng.Search(text)
			rows = append(rows, Row{
				Algorithm: alg,
				TextSize:  size,
				Parallel:  false,
				Workers:   1,
				Matches:   len(seq.Positions),
				Elapsed:   seq.Elapsed,
				Verified:  true,
			})

			for _, workers := range cfg.WorkerCounts {
				par := eng.SearchParallel(text, workers)
				verified := seq.Equal(par)
				if !verified {
					slog.Error("bench_verification_failed",
						slog.String("algorithm", alg),
						slog.Int("workers", par.Workers),
						slog.Int("text_size", size))
				}
				rows = append(rows, Row{
					Algorithm: alg,
					TextSize:  size,
					Parallel:  true,
					Workers:   par.Workers,
					Matches:   len(par.Positions),
					Elapsed:   par.Elapsed,
					Verified:  verified,
				})
			}
		}
	}

	return rows, nil
}

// derivePatterns cuts the pattern set out of the text itself so every
// benchmark scan has guaranteed occurrences to find.
func (r *Runner) derivePatterns(g *gen.Generator, text []byte, cfg config.BenchConfig) [][]byte {
	patterns := make([][]byte, 0, cfg.PatternCount)
	for i := 0; i < cfg.PatternCount; i++ {
		if w := g.Window(text, cfg.PatternLength); w != nil {
			patterns = append(patterns, w)
		}
	}
	return patterns
}

// engineFor returns a prebuilt engine for the algorithm and pattern
// set, constructing and caching one on miss. Single-pattern engines use
// the first pattern; the multi-pattern automaton gets them all.
func (r *Runner) engineFor(algorithm string, patterns [][]byte) (match.Engine, error) {
	if len(patterns) == 0 {
		return nil, errors.PatternError("no patterns derived for benchmark", nil)
	}

	key := engineKey(algorithm, patterns)
	if eng, ok := r.engines.Get(key); ok {
		return eng, nil
	}

	eng, err := BuildEngine(algorithm, patterns)
	if err != nil {
		return nil, err
	}

	r.engines.Add(key, eng)
	return eng, nil
}

// BuildEngine constructs a frozen engine for the algorithm and pattern
// set. Single-pattern engines use the first pattern; the multi-pattern
// automaton registers them all and is built immediately.
func BuildEngine(algorithm string, patterns [][]byte) (match.Engine, error) {
	if len(patterns) == 0 {
		return nil, errors.PatternError("at least one pattern is required", nil)
	}

	var (
		eng match.Engine
		err error
	)
	switch algorithm {
	case config.AlgorithmKMP:
		eng, err = match.NewKMP(patterns[0])
	case config.AlgorithmBoyerMoore:
		eng, err = match.NewBoyerMoore(patterns[0])
	case config.AlgorithmAhoCorasick:
		ac := match.NewAhoCorasick()
		for _, p := range patterns {
			if err := ac.AddPattern(p); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err)
			}
		}
		ac.Build()
		eng = ac
	default:
		return nil, errors.New(errors.ErrCodeUnknownAlgorithm,
			fmt.Sprintf("unknown algorithm %q", algorithm), nil)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err)
	}
	return eng, nil
}

// engineKey hashes the algorithm and pattern set into a fixed-length
// cache key.
func engineKey(algorithm string, patterns [][]byte) string {
	h := sha256.New()
	h.Write([]byte(algorithm))
	for _, p := range patterns {
		h.Write([]byte{0})
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
