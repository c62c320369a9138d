// Package cmd provides the CLI commands for patscan.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patscan/patscan/internal/config"
	"github.com/patscan/patscan/internal/logging"
	"github.com/patscan/patscan/pkg/version"
)

var (
	debugMode      bool
	configPath     string
	loggingCleanup func()
)

// NewRootCmd creates the root command for the patscan CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patscan",
		Short: "Exact pattern matching with sequential and parallel engines",
		Long: `patscan locates every occurrence of one or more patterns in a text
using Knuth-Morris-Pratt, Boyer-Moore, and Aho-Corasick engines, each
available as a single-pass sequential scan or a chunked parallel scan.

Run 'patscan search' for one-off scans, 'patscan bench' to compare the
engines, or 'patscan menu' for an interactive session.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("patscan version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.patscan/logs/")
	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "Path to config file")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !debugMode {
			return nil
		}
		cleanup, err := logging.SetupDefault(true)
		if err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}
		loggingCleanup = cleanup
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if loggingCleanup != nil {
			loggingCleanup()
			loggingCleanup = nil
		}
	}

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newMenuCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig reads the configured file, falling back to defaults when
// it is absent.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
