package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/patscan/patscan/internal/errors"
	"github.com/patscan/patscan/internal/ui"
)

func newMenuCmd() *cobra.Command {
	var file string
	var text string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive scanning session",
		Long: `Open an interactive menu over a text: pick an algorithm, type a
pattern (comma-separated patterns for aho-corasick), and see the match
offsets. The text comes from --file or --text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ui.IsTTY(os.Stdout) {
				return errors.ValidationError("menu requires an interactive terminal", nil).
					WithSuggestion("use 'patscan search' for non-interactive scans")
			}

			if file == "" && text == "" {
				// Stdin is the terminal here, so there is no text to
				// fall back to.
				return errors.ValidationError("no text supplied", nil).
					WithSuggestion("pass --file or --text")
			}
			buf, err := readText(cmd.InOrStdin(), searchOptions{file: file, text: text})
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return ui.RunMenu(buf, cfg.Search.Workers, ui.StylesFor(os.Stdout, cfg.Output.NoColor))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from this file")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Use this literal text")

	return cmd
}
