package budget

import (
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/roadmap"
	"github.com/abhisek/prepcoach/internal/router"
	"github.com/abhisek/prepcoach/internal/screens/env"
	"github.com/abhisek/prepcoach/internal/screens/results"
	"github.com/abhisek/prepcoach/internal/store"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func newEnv(t *testing.T, b prep.Budget) (*env.Env, *store.Store) {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := prep.NewService(prep.Deps{
		Assessments: st.AssessmentRepo(),
		Roadmaps:    st.RoadmapRepo(),
		Planning:    roadmap.DefaultConfig(),
	})
	return &env.Env{
		Prep:        svc,
		Assessments: st.AssessmentRepo(),
		Bank:        assessment.DefaultBank(),
		Locale:      i18n.LocaleEN,
		Budget:      b,
	}, st
}

func quizAnswers(t *testing.T) []assessment.Answer {
	t.Helper()
	f := assessment.NewFlow(assessment.DefaultBank())
	for !f.Done() {
		q, err := f.Current()
		require.NoError(t, err)
		if q.Type == assessment.AnswerSelfAssessment {
			require.NoError(t, f.AnswerSelfAssessment(2, time.Second))
			continue
		}
		_, err = f.AnswerMicroCheck(q.CorrectID, time.Second)
		require.NoError(t, err)
	}
	return f.Answers()
}

// run executes cmd and feeds its message back until a router message
// comes out.
func run(t *testing.T, s *BudgetScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if _, ok := msg.(completedMsg); ok {
		_, next := s.Update(msg)
		require.NotNil(t, next)
		return next()
	}
	return msg
}

func TestBudgetScreen_CompletesWithPlan(t *testing.T) {
	e, st := newEnv(t, prep.Budget{WeeksToExam: 8})
	s := New(e, quizAnswers(t))
	s.Init()
	assert.True(t, s.CapturesText())

	// Weeks is prefilled; enter moves to hours.
	s.Update(key("enter"))
	require.True(t, s.form.OnLast())

	s.Update(key("6"))
	_, cmd := s.Update(key("enter"))
	msg := run(t, s, cmd)

	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "got %T", msg)
	assert.IsType(t, &results.ResultsScreen{}, replace.Screen)

	rec, err := st.AssessmentRepo().Latest(t.Context())
	require.NoError(t, err)
	list, err := st.RoadmapRepo().ListForAssessment(t.Context(), rec.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 8, list[0].WeeksToExam)
	assert.InDelta(t, 6.0, list[0].HoursPerWeek, 1e-9)
}

func TestBudgetScreen_InvalidInputStays(t *testing.T) {
	e, _ := newEnv(t, prep.Budget{})
	s := New(e, quizAnswers(t))
	s.Init()

	s.Update(key("tab"))
	_, cmd := s.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, s.saving)
	assert.Contains(t, s.View(100, 30), "enter a positive number")
}

func TestBudgetScreen_SkipStoresWithoutPlan(t *testing.T) {
	e, st := newEnv(t, prep.Budget{})
	s := New(e, quizAnswers(t))
	s.Init()

	_, cmd := s.Update(key("ctrl+s"))
	msg := run(t, s, cmd)
	require.IsType(t, router.ReplaceScreenMsg{}, msg)

	rec, err := st.AssessmentRepo().Latest(t.Context())
	require.NoError(t, err)
	list, err := st.RoadmapRepo().ListForAssessment(t.Context(), rec.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBudgetScreen_EscPops(t *testing.T) {
	e, _ := newEnv(t, prep.Budget{})
	s := New(e, nil)
	_, cmd := s.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestBudgetScreen_StoreErrorShown(t *testing.T) {
	e, _ := newEnv(t, prep.Budget{})
	s := New(e, nil)
	s.saving = true
	s.Update(completedMsg{err: fmt.Errorf("disk full")})
	assert.False(t, s.saving)
	assert.Contains(t, s.View(100, 30), "disk full")
}
