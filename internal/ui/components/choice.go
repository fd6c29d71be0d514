package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/ui/theme"
)

// Choice is a single-select option list. There is no right answer; the
// cursor selection is confirmed with enter.
type Choice struct {
	Prompt   string
	Options  []string
	Cursor   int
	Chosen   int // -1 until confirmed
	OnChoose func(index int) tea.Cmd
}

// NewChoice creates a single-select list over the given option labels.
func NewChoice(prompt string, options []string, onChoose func(index int) tea.Cmd) Choice {
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Chosen:   -1,
		OnChoose: onChoose,
	}
}

// Preselect moves the cursor to a previously chosen option, for
// revisiting answered questions.
func (c Choice) Preselect(index int) Choice {
	if index >= 0 && index < len(c.Options) {
		c.Cursor = index
		c.Chosen = index
	}
	return c
}

// Update handles keyboard navigation and confirmation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		c.Chosen = c.Cursor
		if c.OnChoose != nil {
			return c, c.OnChoose(c.Cursor)
		}
	}

	return c, nil
}

// View renders the prompt and option list.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		line := fmt.Sprintf("  %c)  %s", 'a'+i, opt)
		switch {
		case i == c.Cursor:
			s += theme.Selected.Render("▸"+line[1:]) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
