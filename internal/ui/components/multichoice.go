package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// Choice is one selectable option.
type Choice struct {
	ID    string
	Label string
}

// MultiChoice is a single-answer selector. With a CorrectID set it marks
// the right and wrong options once submitted; without one (ratings) it
// only highlights the pick.
type MultiChoice struct {
	Question  string
	Choices   []Choice
	CorrectID string
	Selected  int
	Submitted bool
	ChosenID  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, choices []Choice, correctID string) MultiChoice {
	return MultiChoice{
		Question:  question,
		Choices:   choices,
		CorrectID: correctID,
	}
}

// Update handles keyboard navigation and selection. Digits 1-9 jump to and
// submit the matching option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.submit()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Choices) {
				m.Selected = i
				m.submit()
			}
		}
	}

	return m, nil
}

func (m *MultiChoice) submit() {
	if len(m.Choices) == 0 {
		return
	}
	m.Submitted = true
	m.ChosenID = m.Choices[m.Selected].ID
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, c := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, c.Label)

		var style lipgloss.Style
		switch {
		case m.Submitted && m.CorrectID != "" && c.ID == m.CorrectID:
			style = theme.Correct
		case m.Submitted && c.ID == m.ChosenID:
			if m.CorrectID == "" {
				style = theme.Selected
			} else {
				style = theme.Incorrect
			}
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.CorrectID != "" && m.ChosenID == m.CorrectID
}
