// Package app is the root Bubble Tea model of the interactive assessment.
package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screen"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/home"
	"github.com/abhisek/prepcoach/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *env.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(e *env.Env) AppModel {
	return AppModel{
		env:    e,
		router: router.New(home.New(e)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if tc, ok := m.router.Active().(screen.TextCapturer); ok && tc.CapturesText() {
			break
		}
		switch msg.String() {
		case "q":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) status() string {
	coach := m.env.T("ui.coach.off")
	if m.env.CoachEnabled() {
		coach = m.env.T("ui.coach.on")
	}
	return strings.ToUpper(string(m.env.Locale)) + " · " + coach
}

func (m AppModel) footerHints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: m.env.T("ui.key.quit")})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.env.T("ui.key.back")},
			{Key: "Ctrl+C", Description: m.env.T("ui.key.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: ""},
		{Key: "Enter", Description: m.env.T("ui.key.select")},
		{Key: "q", Description: m.env.T("ui.key.quit")},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(
			m.env.T("ui.toosmall", layout.MinWidth, layout.MinHeight, m.width, m.height), m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(e *env.Env) error {
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	e.Log.Info("tui started", zap.String("locale", string(e.Locale)), zap.Bool("coach", e.CoachEnabled()))

	p := tea.NewProgram(newAppModel(e))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
