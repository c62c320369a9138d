package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/patscan/patscan/internal/bench"
	"github.com/patscan/patscan/internal/config"
	"github.com/patscan/patscan/pkg/match"
)

// menuState tracks which screen the interactive menu is on.
type menuState int

const (
	statePickAlgorithm menuState = iota
	stateEnterPattern
	stateShowResult
)

// MenuModel is the bubbletea model for interactive scanning: pick an
// algorithm, type one or more patterns, see the match offsets.
type MenuModel struct {
	text    []byte
	workers int
	styles  Styles

	state      menuState
	cursor     int
	algorithms []string
	input      textinput.Model

	result *match.Result
	err    error
}

// NewMenu creates the interactive menu over a fixed text buffer.
// workers <= 0 selects auto parallelism.
func NewMenu(text []byte, workers int, styles Styles) MenuModel {
	input := textinput.New()
	input.Placeholder = "pattern (comma-separated for aho-corasick)"
	input.CharLimit = 256
	input.Width = 48

	return MenuModel{
		text:       text,
		workers:    workers,
		styles:     styles,
		algorithms: config.Algorithms(),
		input:      input,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		if m.state != stateEnterPattern || keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "esc":
		m.state = statePickAlgorithm
		m.err = nil
		m.result = nil
		return m, nil
	}

	switch m.state {
	case statePickAlgorithm:
		switch keyMsg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.algorithms)-1 {
				m.cursor++
			}
		case "enter":
			m.state = stateEnterPattern
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case stateEnterPattern:
		if keyMsg.String() == "enter" {
			m.result, m.err = m.runScan()
			m.state = stateShowResult
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stateShowResult:
		if keyMsg.String() == "enter" {
			m.state = statePickAlgorithm
			m.err = nil
			m.result = nil
		}
		return m, nil
	}
	return m, nil
}

// runScan builds the selected engine from the typed pattern(s) and runs
// a parallel scan over the menu's text.
func (m MenuModel) runScan() (*match.Result, error) {
	algorithm := m.algorithms[m.cursor]

	var patterns [][]byte
	for _, part := range strings.Split(m.input.Value(), ",") {
		if p := strings.TrimSpace(part); p != "" {
			patterns = append(patterns, []byte(p))
		}
	}

	eng, err := bench.BuildEngine(algorithm, patterns)
	if err != nil {
		return nil, err
	}
	return eng.SearchParallel(m.text, m.workers), nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("patscan"))
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("  text: %d bytes\n\n", len(m.text))))

	switch m.state {
	case statePickAlgorithm:
		b.WriteString(m.styles.Label.Render("Choose an algorithm:") + "\n")
		for i, alg := range m.algorithms {
			cursor := "  "
			style := m.styles.Cell
			if i == m.cursor {
				cursor = "> "
				style = m.styles.Cursor
			}
			b.WriteString(cursor + style.Render(alg) + "\n")
		}
		b.WriteString("\n" + m.styles.Dim.Render("↑/↓ move · enter select · q quit") + "\n")

	case stateEnterPattern:
		b.WriteString(m.styles.Label.Render(m.algorithms[m.cursor]+" pattern:") + "\n")
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(m.styles.Dim.Render("enter scan · esc back") + "\n")

	case stateShowResult:
		if m.err != nil {
			b.WriteString(m.styles.Bad.Render("error: "+m.err.Error()) + "\n\n")
		} else {
			b.WriteString(RenderPositions(m.result.Positions, 20, m.styles) + "\n")
			b.WriteString(m.styles.Dim.Render(fmt.Sprintf("%s · %d workers · %s\n\n",
				m.result.Algorithm, m.result.Workers, m.result.Elapsed)))
		}
		b.WriteString(m.styles.Dim.Render("enter again · q quit") + "\n")
	}
	return b.String()
}

// RunMenu starts the interactive menu and blocks until the user quits.
func RunMenu(text []byte, workers int, styles Styles) error {
	_, err := tea.NewProgram(NewMenu(text, workers, styles)).Run()
	return err
}
