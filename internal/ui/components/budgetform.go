package components

import (
	"errors"

	tea "charm.land/bubbletea/v2"
)

// ErrBudgetInvalid is returned by BudgetForm.Values when a field is not a
// positive number. The offending field carries the message.
var ErrBudgetInvalid = errors.New("invalid budget")

// BudgetForm is the two-field weeks/hours form.
type BudgetForm struct {
	Weeks   NumberInput
	Hours   NumberInput
	focused int
	invalid string
}

// NewBudgetForm builds the form with prefilled values. invalid is the
// message shown next to a field that fails to parse.
func NewBudgetForm(weeksLabel, hoursLabel, invalid, weeks, hours string) BudgetForm {
	f := BudgetForm{
		Weeks:   NewNumberInput(weeksLabel, "12", false),
		Hours:   NewNumberInput(hoursLabel, "10", true),
		invalid: invalid,
	}
	f.Weeks.Model.SetValue(weeks)
	f.Hours.Model.SetValue(hours)
	return f
}

// Focus puts the cursor on the first field.
func (f *BudgetForm) Focus() tea.Cmd {
	f.focused = 0
	f.Hours.Blur()
	return f.Weeks.Focus()
}

// Next moves focus to the other field.
func (f *BudgetForm) Next() tea.Cmd {
	if f.focused == 0 {
		f.focused = 1
		f.Weeks.Blur()
		return f.Hours.Focus()
	}
	return f.Focus()
}

// OnLast reports whether the hours field has focus.
func (f BudgetForm) OnLast() bool { return f.focused == 1 }

// Update forwards input to the focused field.
func (f BudgetForm) Update(msg tea.Msg) (BudgetForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focused == 0 {
		f.Weeks, cmd = f.Weeks.Update(msg)
	} else {
		f.Hours, cmd = f.Hours.Update(msg)
	}
	return f, cmd
}

// Values parses both fields, flagging the ones that are not positive.
func (f *BudgetForm) Values() (weeks int, hours float64, err error) {
	f.Weeks.Err, f.Hours.Err = "", ""
	weeks, werr := f.Weeks.Int()
	if werr != nil || weeks <= 0 {
		f.Weeks.Err = f.invalid
		err = ErrBudgetInvalid
	}
	hours, herr := f.Hours.Float()
	if herr != nil || hours <= 0 {
		f.Hours.Err = f.invalid
		err = ErrBudgetInvalid
	}
	return weeks, hours, err
}

// View renders both fields.
func (f BudgetForm) View() string {
	return f.Weeks.View() + "\n\n" + f.Hours.View()
}
