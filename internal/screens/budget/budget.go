// Package budget asks for weeks and weekly hours after a finished quiz,
// then stores the assessment and its roadmap.
package budget

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/results"
	"github.com/abhisek/prepcoach/internal/ui/components"
	"github.com/abhisek/prepcoach/internal/ui/layout"
	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// completedMsg carries the stored outcome back to the screen.
type completedMsg struct {
	outcome *prep.Outcome
	err     error
}

// BudgetScreen collects the study budget for a finished quiz.
type BudgetScreen struct {
	env     *env.Env
	answers []assessment.Answer
	form    components.BudgetForm
	saving  bool
	err     error
}

var _ screen.Screen = (*BudgetScreen)(nil)
var _ screen.KeyHintProvider = (*BudgetScreen)(nil)
var _ screen.TextCapturer = (*BudgetScreen)(nil)

// New creates the form, prefilled from e.Budget.
func New(e *env.Env, answers []assessment.Answer) *BudgetScreen {
	return &BudgetScreen{
		env:     e,
		answers: answers,
		form:    e.BudgetForm(e.Budget),
	}
}

func (s *BudgetScreen) Init() tea.Cmd {
	return s.form.Focus()
}

func (s *BudgetScreen) Title() string {
	return s.env.T("ui.budget.title")
}

func (s *BudgetScreen) CapturesText() bool { return !s.saving }

func (s *BudgetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: s.env.T("ui.key.next")},
		{Key: "Enter", Description: s.env.T("ui.key.select")},
		{Key: "Ctrl+S", Description: s.env.T("ui.budget.skip")},
	}
}

func (s *BudgetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completedMsg:
		s.saving = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		o := msg.outcome
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(s.env, o.Assessment, o.Roadmap, o.RoadmapErr)}
		}

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "shift+tab", "down", "up":
			return s, s.form.Next()
		case "ctrl+s":
			return s, s.complete(nil)
		case "enter":
			if !s.form.OnLast() {
				return s, s.form.Next()
			}
			weeks, hours, err := s.form.Values()
			if err != nil {
				return s, nil
			}
			return s, s.complete(&prep.Budget{WeeksToExam: weeks, HoursPerWeek: hours})
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

// complete stores the answers off the UI goroutine. The coach note is
// requested by the results screen, not here.
func (s *BudgetScreen) complete(b *prep.Budget) tea.Cmd {
	s.saving = true
	s.err = nil
	in := prep.CompleteInput{
		Answers: s.answers,
		Locale:  s.env.Locale,
		Budget:  b,
	}
	svc := s.env.Prep
	return func() tea.Msg {
		out, err := svc.Complete(context.Background(), in)
		return completedMsg{outcome: out, err: err}
	}
}

func (s *BudgetScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.env.T("ui.budget.intro")))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	switch {
	case s.saving:
		b.WriteString(theme.Hint.Render(s.env.T("ui.loading")))
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render(s.err.Error()))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(min(width-4, 60)).Render(b.String()))
}
