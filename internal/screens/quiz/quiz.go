// Package quiz is the self-assessment screen. It walks an assessment.Flow
// one step at a time and hands the answers to the budget screen.
package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/budget"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/ui/components"
	"github.com/abhisek/prepcoach/internal/ui/layout"
	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// QuizScreen runs one assessment.
type QuizScreen struct {
	env      *env.Env
	flow     *assessment.Flow
	question assessment.Question
	choice   components.MultiChoice
	shownAt  time.Time
	// feedback is set after a micro-check until the user moves on.
	feedback *bool
	err      error
	now      func() time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over e.Bank.
func New(e *env.Env) *QuizScreen {
	s := &QuizScreen{
		env:  e,
		flow: assessment.NewFlow(e.Bank),
		now:  time.Now,
	}
	s.load()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.env.T("ui.quiz.title")
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return []layout.KeyHint{{Key: "Enter", Description: s.env.T("ui.quiz.next")}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: ""},
		{Key: "1-5", Description: s.env.T("ui.key.select")},
		{Key: "Esc", Description: s.env.T("ui.key.back")},
	}
}

// load prepares the component for the flow's current step.
func (s *QuizScreen) load() {
	q, err := s.flow.Current()
	if err != nil {
		s.err = err
		return
	}
	s.question = q

	choices := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = components.Choice{ID: o.ID, Label: s.env.T(o.TextKey)}
	}
	correct := ""
	if q.Type == assessment.AnswerMicroCheck {
		correct = q.CorrectID
	}
	s.choice = components.NewMultiChoice(q.Prompt(s.env.Locale), choices, correct)
	s.shownAt = s.now()
	s.feedback = nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.err != nil {
		return s, nil
	}

	if s.feedback != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, s.advance()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	elapsed := s.now().Sub(s.shownAt)
	switch s.question.Type {
	case assessment.AnswerSelfAssessment:
		opt, _ := s.question.Option(s.choice.ChosenID)
		if err := s.flow.AnswerSelfAssessment(opt.Score, elapsed); err != nil {
			s.err = err
			return s, nil
		}
		return s, s.advance()
	default:
		correct, err := s.flow.AnswerMicroCheck(s.choice.ChosenID, elapsed)
		if err != nil {
			s.err = err
			return s, nil
		}
		s.feedback = &correct
		return s, nil
	}
}

// advance loads the next step or hands over to the budget screen.
func (s *QuizScreen) advance() tea.Cmd {
	if !s.flow.Done() {
		s.load()
		return nil
	}
	answers := s.flow.Answers()
	if s.env.Log != nil {
		s.env.Log.Debug("quiz finished", zap.Int("answers", len(answers)))
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: budget.New(s.env, answers)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.err != nil {
		return theme.Incorrect.Render(s.err.Error())
	}

	cw := min(width-4, 76)
	var b strings.Builder

	pos := s.flow.Position() + 1
	if s.feedback != nil {
		pos = s.flow.Position()
	}
	b.WriteString(theme.Subtitle.Render(s.env.T("ui.quiz.progress", pos, s.flow.Total())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(pos-1)/float64(s.flow.Total()), cw).View())
	b.WriteString("\n\n")

	domain := s.env.T("domain." + string(s.question.Domain))
	if s.question.Type == assessment.AnswerMicroCheck {
		domain = fmt.Sprintf("%s · %s", domain, s.env.T("ui.quiz.check"))
	}
	b.WriteString(theme.Title.Render(domain))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.choice.View()))

	if s.feedback != nil {
		b.WriteString("\n")
		if *s.feedback {
			b.WriteString(theme.Correct.Render(s.env.T("ui.quiz.correct")))
		} else {
			b.WriteString(theme.Incorrect.Render(s.env.T("ui.quiz.wrong")))
		}
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render(s.env.T("ui.quiz.next")))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
