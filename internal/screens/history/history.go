// Package history lists stored assessments and reopens their results.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/results"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/ui/layout"
	"github.com/abhisek/prepcoach/internal/ui/theme"
)

const listLimit = 50

type entry struct {
	rec      store.AssessmentRecord
	roadmaps []store.RoadmapRecord
}

type historyLoadedMsg struct {
	entries []entry
	err     error
}

// HistoryScreen displays past assessments with their roadmaps.
type HistoryScreen struct {
	env      *env.Env
	entries  []entry
	selected int
	expanded map[int]bool
	loaded   bool
	err      error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(e *env.Env) *HistoryScreen {
	return &HistoryScreen{env: e, expanded: make(map[int]bool)}
}

func (s *HistoryScreen) Init() tea.Cmd {
	e := s.env
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := e.Assessments.List(ctx, store.QueryOpts{Limit: listLimit})
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		entries := make([]entry, len(recs))
		for i, rec := range recs {
			entries[i].rec = rec
			if e.Prep == nil {
				continue
			}
			rms, err := e.Prep.Roadmaps(ctx, rec.ID)
			if err != nil {
				return historyLoadedMsg{err: err}
			}
			entries[i].roadmaps = rms
		}
		return historyLoadedMsg{entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return s.env.T("ui.history.title")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T("ui.key.open")},
		{Key: "Space", Description: s.env.T("ui.key.details")},
		{Key: "↑↓", Description: s.env.T("ui.key.select")},
		{Key: "Esc", Description: s.env.T("ui.key.back")},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.entries, s.err = msg.entries, msg.err
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "space", " ":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "enter":
			if s.selected < len(s.entries) {
				return s, s.open(s.entries[s.selected])
			}
		}
	}
	return s, nil
}

// open shows the results of en with its newest roadmap.
func (s *HistoryScreen) open(en entry) tea.Cmd {
	e := s.env
	rec := en.rec
	var rm *store.RoadmapRecord
	if len(en.roadmaps) > 0 {
		rm = &en.roadmaps[0]
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(e, &rec, rm, nil)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.err != nil:
		return center.Foreground(theme.Error).Render("\n\nError: " + s.err.Error())
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\n" + s.env.T("ui.loading"))
	case len(s.entries) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n" + s.env.T("ui.history.empty"))
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, en := range s.entries {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%s  %s", prefix,
			en.rec.CreatedAt.Local().Format("2006-01-02 15:04"), s.planSummary(en))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, r := range en.rec.Results {
				row := fmt.Sprintf("    %-28s %3d", s.env.T("domain."+string(r.Domain)), r.Score)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.LevelColor(r.Level).Render(row)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// planSummary names the weakest domain and the roadmap count.
func (s *HistoryScreen) planSummary(en entry) string {
	var parts []string
	if weak := assessment.WeakestDomains(en.rec.Results, 1); len(weak) > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", s.env.T("domain."+string(weak[0].Domain)), weak[0].Score))
	}
	if len(en.roadmaps) == 0 {
		parts = append(parts, s.env.T("ui.history.noplan"))
	} else {
		last := en.roadmaps[0]
		parts = append(parts, s.env.T("ui.history.plans", len(en.roadmaps), last.WeeksToExam, last.HoursPerWeek))
	}
	return strings.Join(parts, " · ")
}
