// Package playground is an interactive terminal page with one money input
// per demo case. Every keystroke runs through the input engine; tab or enter
// commits, up and down step the value.
package playground

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	currencyinput "github.com/goliatone/go-currency-input"
	"github.com/goliatone/go-currency-input/cases"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7D7D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7D7D")).
			MarginTop(1)
)

type field struct {
	spec    cases.Case
	input   *currencyinput.Input
	text    textinput.Model
	message string
}

// Model is the bubbletea model of the playground.
type Model struct {
	fields []*field
	focus  int
}

// New builds a model with one field per case. extra options apply to every field.
func New(table []cases.Case, extra ...currencyinput.Option) (Model, error) {
	if len(table) == 0 {
		return Model{}, errors.New("playground: no cases")
	}

	m := Model{}
	for _, c := range table {
		in, err := c.NewInput(extra...)
		if err != nil {
			return Model{}, fmt.Errorf("playground: case %q: %w", c.ID, err)
		}
		text := textinput.New()
		text.Prompt = "> "
		text.Placeholder = c.Props.CurrencySymbol + "0"
		m.fields = append(m.fields, &field{spec: c, input: in, text: text})
	}
	m.fields[0].text.Focus()
	return m, nil
}

// Run starts the playground on the terminal.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		current := m.fields[m.focus]
		current.text, cmd = current.text.Update(msg)
		return m, cmd
	}

	current := m.fields[m.focus]
	if key.Paste {
		values, err := current.input.Paste(string(key.Runes))
		current.show(values, err)
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		current.show(current.input.Commit(), nil)
		return m, nil
	case "tab":
		cmd := m.move(1)
		return m, cmd
	case "shift+tab":
		cmd := m.move(-1)
		return m, cmd
	case "up":
		current.show(current.input.Step(1), nil)
		return m, nil
	case "down":
		current.show(current.input.Step(-1), nil)
		return m, nil
	}

	var cmd tea.Cmd
	before := current.text.Value()
	current.text, cmd = current.text.Update(msg)
	if candidate := current.text.Value(); candidate != before {
		values, err := current.input.Edit(candidate)
		current.show(values, err)
	}
	return m, cmd
}

// move commits the focused field and focuses the next one.
func (m *Model) move(delta int) tea.Cmd {
	current := m.fields[m.focus]
	current.show(current.input.Commit(), nil)
	current.text.Blur()

	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	next := m.fields[m.focus]
	next.show(next.input.Focus(), nil)
	return next.text.Focus()
}

func (f *field) show(values currencyinput.Values, err error) {
	f.message = ""
	if err != nil {
		f.message = strings.TrimPrefix(err.Error(), "currencyinput: ")
	}
	f.text.SetValue(values.Formatted)
	f.text.CursorEnd()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Money input playground"))
	b.WriteString("\n")

	for i, f := range m.fields {
		label := f.spec.Title
		if i == m.focus {
			label = "▸ " + label
		} else {
			label = "  " + label
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(infoStyle.Render(f.spec.Description))
		b.WriteString("\n")
		b.WriteString(f.text.View())
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(describe(f.input.Values(), f.input.Pending())))
		b.WriteString("\n")
		if f.message != "" {
			b.WriteString(errorStyle.Render(f.message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: commit • ↑/↓: step • esc: quit"))
	return b.String()
}

// Values returns the state of the field for case id.
func (m Model) Values(id string) (currencyinput.Values, bool) {
	for _, f := range m.fields {
		if f.spec.ID == id {
			return f.input.Values(), true
		}
	}
	return currencyinput.Values{}, false
}

// Focused returns the id of the focused case.
func (m Model) Focused() string {
	return m.fields[m.focus].spec.ID
}

func describe(values currencyinput.Values, pending bool) string {
	float := "null"
	if f, ok := values.FloatValue(); ok {
		float = fmt.Sprintf("%g", f)
	}
	line := fmt.Sprintf("value=%q float=%s", values.Value, float)
	if pending {
		line += " (pending)"
	}
	return line
}
