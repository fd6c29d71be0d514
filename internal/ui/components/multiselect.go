package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/ui/theme"
)

// MultiSelect is a checkbox list capped at Max selections. Space toggles,
// enter confirms the current set.
type MultiSelect struct {
	Prompt    string
	Options   []string
	Max       int
	Cursor    int
	Checked   map[int]bool
	OnConfirm func(indices []int) tea.Cmd
}

// NewMultiSelect creates a capped checkbox list over the option labels.
func NewMultiSelect(prompt string, options []string, max int, onConfirm func(indices []int) tea.Cmd) MultiSelect {
	if max <= 0 {
		max = len(options)
	}
	return MultiSelect{
		Prompt:    prompt,
		Options:   options,
		Max:       max,
		Checked:   make(map[int]bool),
		OnConfirm: onConfirm,
	}
}

// Preselect checks a set of previously chosen options.
func (m MultiSelect) Preselect(indices []int) MultiSelect {
	for _, i := range indices {
		if i >= 0 && i < len(m.Options) && m.countChecked() < m.Max {
			m.Checked[i] = true
		}
	}
	return m
}

// Selected returns the checked indices in option order.
func (m MultiSelect) Selected() []int {
	var out []int
	for i := range m.Options {
		if m.Checked[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m MultiSelect) countChecked() int {
	n := 0
	for _, v := range m.Checked {
		if v {
			n++
		}
	}
	return n
}

// Update handles navigation, toggling, and confirmation.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		if m.Checked[m.Cursor] {
			delete(m.Checked, m.Cursor)
		} else if m.countChecked() < m.Max {
			m.Checked[m.Cursor] = true
		}
	case "enter":
		if m.countChecked() > 0 && m.OnConfirm != nil {
			return m, m.OnConfirm(m.Selected())
		}
	}

	return m, nil
}

// View renders the prompt, the cap hint, and the checkbox list.
func (m MultiSelect) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n"
	s += theme.Hint.Render(fmt.Sprintf("pick up to %d — space toggles, enter confirms", m.Max)) + "\n\n"

	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[✓]"
		}
		line := fmt.Sprintf("  %s %c)  %s", box, 'a'+i, opt)
		if i == m.Cursor {
			s += theme.Selected.Render("▸"+line[1:]) + "\n"
		} else if m.Checked[i] {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
