// Package ui renders patscan output: styled tables for benchmark
// reports and an interactive terminal menu for one-off scans.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette. A single accent color keeps output legible on both
// dark and light terminals.
const (
	ColorAccent   = "81"  // cyan-blue accent
	ColorWhite    = "255" // headers, important text
	ColorGray     = "245" // secondary text, labels
	ColorDarkGray = "238" // borders, separators
	ColorRed      = "196" // errors, failed verification
	ColorGreen    = "78"  // verified results
)

// Styles holds the lipgloss styles used by the renderers.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Label  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Dim    lipgloss.Style
	Accent lipgloss.Style
	Border lipgloss.Style
	Cursor lipgloss.Style
}

// DefaultStyles returns the styled palette.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Bad:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	}
}

// NoColorStyles returns unstyled equivalents for pipes and CI.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header: plain, Cell: plain, Label: plain, Good: plain,
		Bad: plain, Dim: plain, Accent: plain, Border: plain, Cursor: plain,
	}
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StylesFor picks styled or plain rendering for the writer, honoring
// an explicit no-color override.
func StylesFor(w io.Writer, noColor bool) Styles {
	if noColor || !IsTTY(w) {
		return NoColorStyles()
	}
	return DefaultStyles()
}
