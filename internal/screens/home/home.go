// Package home is the start screen: take the assessment, reopen the
// latest results or browse past ones.
package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/history"
	"github.com/abhisek/prepcoach/internal/screens/quiz"
	"github.com/abhisek/prepcoach/internal/screens/results"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/ui/components"
	"github.com/abhisek/prepcoach/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	env    *env.Env
	menu   components.Menu
	latest *store.AssessmentRecord
	err    error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, looking up the latest stored assessment.
func New(e *env.Env) *HomeScreen {
	h := &HomeScreen{env: e}

	if e.Assessments != nil {
		rec, err := e.Assessments.Latest(context.Background())
		switch {
		case err == nil:
			h.latest = rec
		case !errors.Is(err, store.ErrNotFound):
			h.err = err
			if e.Log != nil {
				e.Log.Warn("loading latest assessment", zap.Error(err))
			}
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: e.T("ui.home.start"), Hint: e.T("ui.home.starthint", assessment.NewFlow(e.Bank).Total()), Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: quiz.New(e)} }
		}},
		{Label: e.T("ui.home.latest"), Disabled: h.latest == nil, Action: h.openLatest},
		{Label: e.T("ui.home.history"), Hint: e.T("ui.home.histhint"), Disabled: h.latest == nil, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(e)} }
		}},
		{Label: e.T("ui.home.quit"), Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

// openLatest loads the newest roadmap of the latest assessment.
func (h *HomeScreen) openLatest() tea.Cmd {
	e, rec := h.env, h.latest
	return func() tea.Msg {
		var rm *store.RoadmapRecord
		if e.Prep != nil {
			if list, err := e.Prep.Roadmaps(context.Background(), rec.ID); err == nil && len(list) > 0 {
				rm = &list[0]
			}
		}
		return router.PushScreenMsg{Screen: results.New(e, rec, rm, nil)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("PrepCoach"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(h.env.T("ui.home.tagline")))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	if h.latest != nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(h.env.T("ui.home.last", h.latest.CreatedAt.Local().Format("2006-01-02 15:04"))))
	}
	if h.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(h.err.Error()))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(min(width-4, 64)).Render(b.String()))
}

func (h *HomeScreen) Title() string {
	return h.env.T("ui.home.title")
}
