package cmd

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/patscan/patscan/internal/bench"
	"github.com/patscan/patscan/internal/ui"
)

// benchOptions holds CLI flags for bench.
type benchOptions struct {
	sizes      []int
	workers    []int
	seed       int64
	patternLen int
	patterns   int
	jsonOut    bool
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare sequential and parallel engine performance",
		Long: `Benchmark every engine over generated texts, comparing the
sequential single-pass scan against chunked parallel scans at each
configured worker count. Every parallel run is verified against the
sequential match set.

Examples:
  patscan bench
  patscan bench --size 65536 --size 1048576 --workers 1 --workers 8
  patscan bench --seed 7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "size", nil, "Text size in bytes (repeatable; default from config)")
	cmd.Flags().IntSliceVarP(&opts.workers, "workers", "w", nil, "Parallel worker count (repeatable; default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", -1, "Generator seed (default from config)")
	cmd.Flags().IntVar(&opts.patternLen, "pattern-length", 0, "Planted pattern length (default from config)")
	cmd.Flags().IntVar(&opts.patterns, "pattern-count", 0, "Pattern count for aho-corasick (default from config)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit rows as JSON")

	return cmd
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	benchCfg := cfg.Bench
	if len(opts.sizes) > 0 {
		benchCfg.TextSizes = opts.sizes
	}
	if len(opts.workers) > 0 {
		benchCfg.WorkerCounts = opts.workers
	}
	if opts.seed >= 0 {
		benchCfg.Seed = opts.seed
	}
	if opts.patternLen > 0 {
		benchCfg.PatternLength = opts.patternLen
	}
	if opts.patterns > 0 {
		benchCfg.PatternCount = opts.patterns
	}

	slog.Info("bench_started",
		slog.Any("text_sizes", benchCfg.TextSizes),
		slog.Any("worker_counts", benchCfg.WorkerCounts),
		slog.Int64("seed", benchCfg.Seed))

	rows, err := bench.NewRunner(0).Run(benchCfg, cfg.Search.Algorithms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOut || cfg.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	styles := ui.StylesFor(out, cfg.Output.NoColor)
	_, err = out.Write([]byte(ui.RenderBenchTable(rows, styles)))
	return err
}
