// Package tui is a terminal front-end for calcpro built on Bubble Tea.
//
// Input is a line of whitespace-separated tokens ("12 + 3 =", "45 sin",
// "hex FF not") typed into a prompt and delivered to the calculator on
// Enter. Failed calculations show their message until the error window
// expires; the expiry is a tea.Tick message carrying the error token, so
// input typed in the meantime is never clobbered.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gophersatwork/calcpro"
)

// historyRows is how many history entries the view lists.
const historyRows = 5

// errorExpiredMsg closes the error window identified by token.
type errorExpiredMsg struct {
	token uint64
}

// Model is the Bubble Tea model wrapping a calculator.
type Model struct {
	calc         *calcpro.Calculator
	input        textinput.Model
	errorDisplay time.Duration
	out          calcpro.Output
	notice       string
	quitting     bool
}

// New creates a model driving calc. errorDisplay is how long error messages stay up.
func New(calc *calcpro.Calculator, errorDisplay time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "2 + 3 * 4 ="
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	if errorDisplay <= 0 {
		errorDisplay = calcpro.DefaultErrorDisplay
	}

	return Model{
		calc:         calc,
		input:        ti,
		errorDisplay: errorDisplay,
		out:          calc.Output(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			cmd := m.submit(line)
			return m, cmd
		}

	case errorExpiredMsg:
		if m.calc.ResolveError(msg.token) {
			m.out = m.calc.Output()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit delivers every token of line. Processing stops at the first
// failed calculation, which schedules the end of its error window.
func (m *Model) submit(line string) tea.Cmd {
	if line == "" {
		return nil
	}
	events, err := calcpro.ParseEvents(line)
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	m.notice = ""

	for _, evt := range events {
		out, err := m.calc.Apply(evt)
		m.out = out
		if err != nil {
			return m.expireError(out.ErrorToken)
		}
	}
	return nil
}

func (m Model) expireError(token uint64) tea.Cmd {
	return tea.Tick(m.errorDisplay, func(time.Time) tea.Msg {
		return errorExpiredMsg{token: token}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := palettes[m.out.Theme]

	var b strings.Builder
	b.WriteString(m.flags(p))
	b.WriteString("\n")
	b.WriteString(p.expression.Render(m.out.Expression))
	b.WriteString("\n")
	if m.out.Error != "" {
		b.WriteString(p.errorText.Render(m.out.Error))
	} else {
		b.WriteString(p.display.Render(m.out.Display))
	}

	if m.out.Mode == calcpro.ModeProgrammer {
		pv := m.out.Programmer
		b.WriteString("\n\n")
		for _, row := range [][2]string{{"HEX", pv.Hex}, {"DEC", pv.Dec}, {"OCT", pv.Oct}, {"BIN", pv.Bin}} {
			b.WriteString(p.label.Render(row[0]) + " " + row[1] + "\n")
		}
	}

	panel := p.frame.Render(b.String())

	var hist strings.Builder
	entries := m.calc.History().Entries()
	for i, e := range entries {
		if i == historyRows {
			break
		}
		fmt.Fprintf(&hist, "h%d  %s = %s\n", i, e.Expression, calcpro.GroupThousands(formatEntry(e.Result)))
	}

	parts := []string{panel}
	if hist.Len() > 0 {
		parts = append(parts, p.history.Render(strings.TrimRight(hist.String(), "\n")))
	}
	if m.notice != "" {
		parts = append(parts, p.notice.Render(m.notice))
	}
	parts = append(parts, m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) flags(p palette) string {
	flag := func(on bool, s string) string {
		if on {
			return p.flagOn.Render(s)
		}
		return p.flag.Render(s)
	}
	return strings.Join([]string{
		p.label.Render(m.out.Angle.String()),
		p.label.Render(m.out.Mode.String()),
		flag(m.out.Mode == calcpro.ModeProgrammer, strings.ToUpper(m.out.Base.String())),
		flag(m.out.HasMemory, "M"),
		flag(m.out.Shift, "2nd"),
	}, " ")
}

func formatEntry(v float64) string {
	s, err := calcpro.FormatResult(v)
	if err != nil {
		return "NaN"
	}
	return s
}
