// Package results shows domain scores, the generated roadmaps and the
// coach note for one stored assessment.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/roadmap"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/ui/components"
	"github.com/abhisek/prepcoach/internal/ui/layout"
	"github.com/abhisek/prepcoach/internal/ui/theme"
)

const notePollInterval = 250 * time.Millisecond

type notePollMsg struct{}

type regeneratedMsg struct {
	outcome *prep.Outcome
	err     error
}

// ResultsScreen renders one assessment and its latest roadmap.
type ResultsScreen struct {
	env        *env.Env
	assessment *store.AssessmentRecord
	roadmap    *store.RoadmapRecord
	roadmapErr error
	strategy   int

	note        *coach.Note
	noteErr     error
	noteWaiting bool

	editing bool
	form    components.BudgetForm
	busy    bool
	err     error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.TextCapturer = (*ResultsScreen)(nil)

// New creates the screen. rm may be nil when no plan was requested or
// planning failed with roadmapErr.
func New(e *env.Env, a *store.AssessmentRecord, rm *store.RoadmapRecord, roadmapErr error) *ResultsScreen {
	return &ResultsScreen{
		env:        e,
		assessment: a,
		roadmap:    rm,
		roadmapErr: roadmapErr,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return s.requestNote()
}

func (s *ResultsScreen) Title() string {
	return s.env.T("ui.results.title")
}

func (s *ResultsScreen) CapturesText() bool { return s.editing }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Tab", Description: s.env.T("ui.key.next")},
			{Key: "Enter", Description: s.env.T("ui.key.select")},
			{Key: "Esc", Description: s.env.T("ui.key.back")},
		}
	}
	hints := []layout.KeyHint{{Key: "b", Description: s.env.T("ui.key.budget")}}
	if s.roadmap != nil && len(s.roadmap.Result.Roadmaps) > 1 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: s.env.T("ui.key.strategy")})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: s.env.T("ui.key.back")})
}

// requestNote starts the coach in the background for the priority plan.
func (s *ResultsScreen) requestNote() tea.Cmd {
	if s.roadmap == nil || !s.env.CoachEnabled() {
		return nil
	}
	s.note, s.noteErr, s.noteWaiting = nil, nil, true
	s.env.Coach.RequestNote(context.Background(), coach.Input{
		Results:      s.assessment.Results,
		Roadmap:      &s.roadmap.Result.Roadmaps[0],
		WeeksToExam:  s.roadmap.WeeksToExam,
		HoursPerWeek: s.roadmap.HoursPerWeek,
		Locale:       s.locale(),
	})
	return pollNote()
}

func pollNote() tea.Cmd {
	return tea.Tick(notePollInterval, func(time.Time) tea.Msg { return notePollMsg{} })
}

func (s *ResultsScreen) locale() i18n.Locale {
	l, _ := i18n.ParseLocale(s.assessment.Locale)
	return l
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case notePollMsg:
		if !s.noteWaiting {
			return s, nil
		}
		res, ok := s.env.Coach.ConsumeNote()
		if !ok {
			return s, pollNote()
		}
		s.noteWaiting = false
		s.note, s.noteErr = res.Note, res.Err
		return s, nil

	case regeneratedMsg:
		s.busy = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.editing = false
		s.err = nil
		s.strategy = 0
		s.roadmap, s.roadmapErr = msg.outcome.Roadmap, msg.outcome.RoadmapErr
		return s, s.requestNote()

	case tea.KeyMsg:
		if s.editing {
			return s.updateForm(msg)
		}
		switch msg.String() {
		case "tab":
			if s.roadmap != nil && len(s.roadmap.Result.Roadmaps) > 0 {
				s.strategy = (s.strategy + 1) % len(s.roadmap.Result.Roadmaps)
			}
		case "b":
			b := s.env.Budget
			if s.roadmap != nil {
				b = prep.Budget{WeeksToExam: s.roadmap.WeeksToExam, HoursPerWeek: s.roadmap.HoursPerWeek}
			}
			s.form = s.env.BudgetForm(b)
			s.editing = true
			return s, s.form.Focus()
		}
	}
	return s, nil
}

func (s *ResultsScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "tab", "shift+tab", "down", "up":
		return s, s.form.Next()
	case "enter":
		if !s.form.OnLast() {
			return s, s.form.Next()
		}
		weeks, hours, err := s.form.Values()
		if err != nil {
			return s, nil
		}
		s.busy = true
		svc, id := s.env.Prep, s.assessment.ID
		b := prep.Budget{WeeksToExam: weeks, HoursPerWeek: hours}
		return s, func() tea.Msg {
			out, err := svc.Regenerate(context.Background(), id, b, false)
			return regeneratedMsg{outcome: out, err: err}
		}
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	cw := min(width-4, 96)
	sections := []string{s.viewScores(cw)}

	if s.editing {
		form := s.form.View()
		if s.busy {
			form += "\n\n" + theme.Hint.Render(s.env.T("ui.loading"))
		}
		sections = append(sections, theme.Card.Width(min(cw, 60)).Render(form))
	} else {
		sections = append(sections, s.viewRoadmap(cw, height))
		if note := s.viewNote(cw); note != "" {
			sections = append(sections, note)
		}
	}
	if s.err != nil {
		sections = append(sections, theme.Incorrect.Render(s.err.Error()))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (s *ResultsScreen) viewScores(cw int) string {
	var b strings.Builder
	labelWidth := 0
	for _, r := range s.assessment.Results {
		labelWidth = max(labelWidth, lipgloss.Width(s.env.T("domain."+string(r.Domain))))
	}

	for _, r := range s.assessment.Results {
		bar := components.NewProgressBar(s.env.T("domain."+string(r.Domain)), float64(r.Score)/100, cw)
		bar.LabelWidth = labelWidth
		bar.Fill = theme.LevelColor(r.Level)
		bar.Suffix = fmt.Sprintf("%3d  %s", r.Score, s.env.T("level."+string(r.Level)))
		if r.Imputed {
			bar.Suffix += " (" + s.env.T("ui.results.imputed") + ")"
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	var weak []string
	for _, r := range assessment.WeakestDomains(s.assessment.Results, 2) {
		if r.Level == assessment.LevelStrong {
			continue
		}
		weak = append(weak, s.env.T("domain."+string(r.Domain)))
	}
	if len(weak) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(s.env.T("ui.results.weak", strings.Join(weak, ", "))))
	}
	return b.String()
}

func (s *ResultsScreen) viewRoadmap(cw, height int) string {
	if s.roadmap == nil {
		if s.roadmapErr != nil {
			return theme.Incorrect.Render(s.env.T("ui.results.noplan", s.roadmapErr.Error()))
		}
		return theme.Hint.Render(s.env.T("ui.key.budget") + ": b")
	}
	rms := s.roadmap.Result.Roadmaps
	if len(rms) == 0 {
		return ""
	}
	rm := rms[s.strategy%len(rms)]

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.env.T("ui.results.plan", len(rm.Sprints), s.roadmap.WeeksToExam)))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(s.env.T("ui.results.strat", s.env.T("strategy."+string(rm.Strategy)))))
	b.WriteString("\n")
	b.WriteString(theme.FeasibilityStyle(rm.Snapshot.FeasibleLabel).Render(rm.Snapshot.Summary))
	b.WriteString("\n\n")

	// Each sprint takes two lines; keep room for scores and the note.
	limit := max((height-24)/2, 3)
	for i, sp := range rm.Sprints {
		if i == limit {
			b.WriteString(theme.Hint.Render(s.env.T("ui.results.more", len(rm.Sprints)-limit)))
			b.WriteString("\n")
			break
		}
		b.WriteString(renderSprint(s.env, sp, cw))
	}
	if n := len(rm.Unscheduled); n > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.env.T("ui.results.unsched", n)))
	}
	return b.String()
}

func renderSprint(e *env.Env, sp roadmap.Sprint, cw int) string {
	head := theme.Body.Bold(true).Render(e.T("ui.results.sprint", sp.Number, sp.WeekStart, sp.WeekEnd)) +
		"  " + theme.Subtitle.Render(e.T("phase."+string(sp.Phase))) +
		"  " + theme.WorkloadStyle(sp.Workload).Render(e.T("workload."+string(sp.Workload))) +
		"  " + theme.Subtitle.Render(e.T("ui.results.minutes", sp.AssignedMinutes, sp.CapacityMinutes))

	goal := "   " + sp.Goal
	if sp.Checkpoint != nil {
		goal += " · " + sp.Checkpoint.Label
	}
	return head + "\n" + lipgloss.NewStyle().MaxWidth(cw).Foreground(theme.TextDim).Render(goal) + "\n"
}

func (s *ResultsScreen) viewNote(cw int) string {
	var body string
	switch {
	case s.noteWaiting:
		body = theme.Hint.Render(s.env.T("ui.coach.waiting"))
	case s.noteErr != nil:
		body = theme.Hint.Render(s.env.T("ui.coach.failed"))
	case s.note != nil:
		var b strings.Builder
		b.WriteString(theme.Body.Render(s.note.Summary))
		for _, tip := range s.note.FocusTips {
			b.WriteString("\n• " + tip)
		}
		if s.note.Warning != "" {
			b.WriteString("\n\n" + theme.Warning.Render(s.note.Warning))
		}
		body = b.String()
	default:
		return ""
	}
	title := theme.Title.Render(s.env.T("ui.coach.title"))
	return theme.Card.Width(cw).Render(title + "\n" + body)
}
