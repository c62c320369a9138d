package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/patscan/patscan/internal/bench"
	"github.com/patscan/patscan/internal/config"
	"github.com/patscan/patscan/internal/errors"
	"github.com/patscan/patscan/internal/ui"
	"github.com/patscan/patscan/pkg/match"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	file       string
	text       string
	algorithm  string
	workers    int
	sequential bool
	format     string
	limit      int
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <pattern> [pattern...]",
		Short: "Find every occurrence of the pattern(s) in a text",
		Long: `Search a text for exact pattern occurrences.

The text comes from --file, --text, or stdin. Additional pattern
arguments are only meaningful for aho-corasick; the single-pattern
engines use the first pattern.

Examples:
  patscan search ABABCABAB --file big.txt
  patscan search needle --text "needle in a haystack" --algorithm kmp
  cat big.txt | patscan search he she hers --algorithm aho-corasick
  patscan search AA --text AAAA --workers 8 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the text from this file")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Use this literal text")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "all", "Engine: kmp, boyer-moore, aho-corasick, or all")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Worker count for parallel scans (0 = auto)")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "Run the single-pass sequential scan instead")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text, json (default from config)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "Maximum offsets to print in text output")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts searchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.format == "" {
		opts.format = cfg.Output.Format
	}
	if !cmd.Flags().Changed("workers") {
		opts.workers = cfg.Search.Workers
	}

	text, err := readText(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}

	patterns := make([][]byte, 0, len(args))
	for _, a := range args {
		patterns = append(patterns, []byte(a))
	}

	algorithms, err := resolveAlgorithms(opts.algorithm)
	if err != nil {
		return err
	}

	slog.Info("search_started",
		slog.Int("text_bytes", len(text)),
		slog.Int("patterns", len(patterns)),
		slog.String("algorithm", opts.algorithm))

	results := make([]*match.Result, 0, len(algorithms))
	for _, alg := range algorithms {
		eng, err := bench.BuildEngine(alg, patterns)
		if err != nil {
			return err
		}
		var res *match.Result
		if opts.sequential {
			res = eng.Search(text)
		} else {
			res = eng.SearchParallel(text, opts.workers)
		}
		results = append(results, res)
	}

	return writeResults(cmd.OutOrStdout(), results, opts, cfg.Output.NoColor)
}

// readText resolves the scan text: --file wins, then --text, then
// stdin.
func readText(stdin io.Reader, opts searchOptions) ([]byte, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err)
			}
			return nil, errors.Wrap(errors.ErrCodeFileRead, err)
		}
		return data, nil
	}
	if opts.text != "" {
		return []byte(opts.text), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileRead, err)
	}
	return data, nil
}

func resolveAlgorithms(name string) ([]string, error) {
	if name == "all" {
		return config.Algorithms(), nil
	}
	if !config.KnownAlgorithm(name) {
		return nil, errors.New(errors.ErrCodeUnknownAlgorithm,
			fmt.Sprintf("unknown algorithm %q", name), nil).
			WithSuggestion("use kmp, boyer-moore, aho-corasick, or all")
	}
	return []string{name}, nil
}

func writeResults(out io.Writer, results []*match.Result, opts searchOptions, noColor bool) error {
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	styles := ui.StylesFor(out, noColor)
	for _, res := range results {
		mode := "parallel"
		if !res.Parallel {
			mode = "sequential"
		}
		fmt.Fprintf(out, "%s (%s, %d worker(s), %s):\n  %s\n",
			res.Algorithm, mode, res.Workers, res.Elapsed,
			ui.RenderPositions(res.Positions, opts.limit, styles))
	}
	return nil
}
