package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func choices() []Choice {
	return []Choice{{"a", "Alpha"}, {"b", "Beta"}, {"c", "Gamma"}}
}

func TestMultiChoice_NavigateAndSubmit(t *testing.T) {
	mc := NewMultiChoice("Pick one", choices(), "b")
	mc, _ = mc.Update(key("down"))
	mc, _ = mc.Update(key("enter"))

	assert.True(t, mc.Submitted)
	assert.Equal(t, "b", mc.ChosenID)
	assert.True(t, mc.IsCorrect())

	// Submitted choices ignore further input.
	mc, _ = mc.Update(key("down"))
	assert.Equal(t, 1, mc.Selected)
}

func TestMultiChoice_DigitShortcut(t *testing.T) {
	mc := NewMultiChoice("Rate", choices(), "")
	mc, _ = mc.Update(key("3"))

	require.True(t, mc.Submitted)
	assert.Equal(t, "c", mc.ChosenID)
	assert.False(t, mc.IsCorrect(), "ratings have no correct answer")

	out := NewMultiChoice("Rate", choices(), "")
	out, _ = out.Update(key("9"))
	assert.False(t, out.Submitted, "out of range digit")
}

func TestMultiChoice_View(t *testing.T) {
	v := NewMultiChoice("Pick one", choices(), "a").View()
	for _, want := range []string{"Pick one", "1)  Alpha", "3)  Gamma", "▸"} {
		assert.Contains(t, v, want)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var fired string
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { fired = "one"; return nil }},
		{Label: "Two", Action: func() tea.Cmd { fired = "two"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("up"))
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	assert.Equal(t, "two", fired)
}

func TestMenu_NumberShortcut(t *testing.T) {
	var fired string
	m := NewMenu([]MenuItem{
		{Label: "One", Hint: "first", Action: func() tea.Cmd { fired = "one"; return nil }},
		{Label: "Off", Disabled: true, Action: func() tea.Cmd { fired = "off"; return nil }},
		{Label: "Three", Action: func() tea.Cmd { fired = "three"; return nil }},
	})

	m, _ = m.Update(key("2"))
	assert.Empty(t, fired, "disabled items ignore shortcuts")
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(key("3"))
	assert.Equal(t, "three", fired)
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(key("9"))
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_ViewShowsHintOfSelected(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Start", Hint: "about five minutes"},
		{Label: "Quit", Hint: "bye"},
	})
	v := ansi.Strip(m.View())
	assert.Contains(t, v, "▸ 1. Start")
	assert.Contains(t, v, "about five minutes")
	assert.NotContains(t, v, "bye")
}

func TestNumberInput_FiltersRunes(t *testing.T) {
	n := NewNumberInput("Hours", "10", true)
	n.Focus()
	for _, s := range []string{"1", "x", "2", ",", "5", "."} {
		n, _ = n.Update(key(s))
	}
	assert.Equal(t, "12,5", n.Value())

	f, err := n.Float()
	require.NoError(t, err)
	assert.InDelta(t, 12.5, f, 1e-9)

	w := NewNumberInput("Weeks", "12", false)
	w.Focus()
	for _, s := range []string{"1", ".", "6"} {
		w, _ = w.Update(key(s))
	}
	got, err := w.Int()
	require.NoError(t, err)
	assert.Equal(t, 16, got)
}

func TestProgressBar_Width(t *testing.T) {
	p := NewProgressBar("Math", 0.5, 40)
	p.LabelWidth = 8
	v := p.View()
	assert.True(t, strings.HasPrefix(ansi.Strip(v), "Math    "), v)
	assert.Contains(t, v, " 50%")
}

func TestBudgetForm_Values(t *testing.T) {
	f := NewBudgetForm("Weeks", "Hours", "bad", "8", "")
	f.Focus()
	f.Next()
	assert.True(t, f.OnLast())

	_, _, err := f.Values()
	assert.ErrorIs(t, err, ErrBudgetInvalid)
	assert.Empty(t, f.Weeks.Err)
	assert.Equal(t, "bad", f.Hours.Err)

	f, _ = f.Update(key("6"))
	weeks, hours, err := f.Values()
	require.NoError(t, err)
	assert.Equal(t, 8, weeks)
	assert.InDelta(t, 6.0, hours, 1e-9)
	assert.Empty(t, f.Hours.Err)
}
