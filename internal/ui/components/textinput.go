package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for numeric fields. Non-digit runes
// are dropped; a single decimal point is kept when Decimal is set.
type NumberInput struct {
	Model   textinput.Model
	Label   string
	Decimal bool
	Err     string
}

// NewNumberInput creates an unfocused numeric input.
func NewNumberInput(label, placeholder string, decimal bool) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 6
	return NumberInput{
		Model:   ti,
		Label:   label,
		Decimal: decimal,
	}
}

// Focus gives the input the cursor.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes the cursor.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Update handles messages.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !n.accepts(key[0]) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

func (n NumberInput) accepts(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return n.Decimal && (c == '.' || c == ',') && !strings.ContainsAny(n.Model.Value(), ".,")
}

// View renders the label, the input and any validation error.
func (n NumberInput) View() string {
	label := theme.Body.Render(n.Label)
	if n.Model.Focused() {
		label = theme.Selected.Render(n.Label)
	}
	view := label + "\n" + n.Model.View()
	if n.Err != "" {
		view += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render(n.Err)
	}
	return view
}

// Value returns the current input value.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// Int parses the value as an integer.
func (n NumberInput) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(n.Model.Value()))
}

// Float parses the value, accepting a comma as the decimal separator.
func (n NumberInput) Float() (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(n.Model.Value()), ",", ".")
	return strconv.ParseFloat(v, 64)
}
