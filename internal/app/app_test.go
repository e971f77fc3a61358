package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/quiz"
)

func newModel() AppModel {
	return newAppModel(&env.Env{Bank: assessment.DefaultBank(), Locale: i18n.LocaleIT})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := newModel()
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); !isQuit(cmd) {
		t.Error("q on home should quit")
	}
}

func TestAppModel_EscPopsPushedScreen(t *testing.T) {
	m := newModel()
	m.router.Push(quiz.New(m.env))

	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); isQuit(cmd) {
		t.Error("q inside a pushed screen must not quit")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("esc produced %T", cmd())
	}
}

func TestAppModel_TracksWindowSize(t *testing.T) {
	m := newModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
}

func TestAppModel_Status(t *testing.T) {
	if got := newModel().status(); got != "IT · Coach disattivato" {
		t.Errorf("status = %q", got)
	}
}
