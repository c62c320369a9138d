package ui

import (
	"fmt"
	"strings"

	"github.com/patscan/patscan/internal/bench"
)

// RenderBenchTable formats benchmark rows as an aligned table. Styling
// follows the Styles passed in; use NoColorStyles for pipes.
func RenderBenchTable(rows []bench.Row, styles Styles) string {
	if len(rows) == 0 {
		return styles.Dim.Render("no benchmark rows") + "\n"
	}

	headers := []string{"ALGORITHM", "TEXT", "MODE", "WORKERS", "MATCHES", "ELAPSED", "OK"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		mode := "sequential"
		if r.Parallel {
			mode = "parallel"
		}
		ok := "yes"
		if !r.Verified {
			ok = "MISMATCH"
		}
		cells = append(cells, []string{
			r.Algorithm,
			humanBytes(r.TextSize),
			mode,
			fmt.Sprintf("%d", r.Workers),
			fmt.Sprintf("%d", r.Matches),
			r.Elapsed.String(),
			ok,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(styles.Header.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')

	for ri, row := range cells {
		for i, c := range row {
			style := styles.Cell
			if i == len(row)-1 {
				style = styles.Good
				if !rows[ri].Verified {
					style = styles.Bad
				}
			}
			b.WriteString(style.Render(pad(c, widths[i])))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPositions formats a match offset list for terminal output,
// eliding long lists.
func RenderPositions(positions []int, limit int, styles Styles) string {
	if len(positions) == 0 {
		return styles.Dim.Render("no matches")
	}
	if limit <= 0 || limit > len(positions) {
		limit = len(positions)
	}
	parts := make([]string, 0, limit+1)
	for _, p := range positions[:limit] {
		parts = append(parts, fmt.Sprintf("%d", p))
	}
	if limit < len(positions) {
		parts = append(parts, fmt.Sprintf("... +%d more", len(positions)-limit))
	}
	return styles.Accent.Render(fmt.Sprintf("%d match(es)", len(positions))) +
		styles.Cell.Render(" at "+strings.Join(parts, ", "))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// humanBytes renders a byte count compactly (1024 -> "1.0KiB").
func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
