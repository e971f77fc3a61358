package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/prep"
)

type stubCoach struct{ on bool }

func (s stubCoach) Enabled() bool                          { return s.on }
func (stubCoach) RequestNote(context.Context, coach.Input) {}
func (stubCoach) ConsumeNote() (coach.Result, bool)        { return coach.Result{}, false }

func TestCoachEnabled(t *testing.T) {
	assert.False(t, (&Env{}).CoachEnabled())
	assert.False(t, (&Env{Coach: stubCoach{}}).CoachEnabled())
	assert.True(t, (&Env{Coach: stubCoach{on: true}}).CoachEnabled())

	var svc *coach.Service
	assert.False(t, (&Env{Coach: svc}).CoachEnabled(), "nil service")
}

func TestBudgetForm_Prefill(t *testing.T) {
	e := &Env{Locale: i18n.LocaleIT}
	f := e.BudgetForm(prep.Budget{WeeksToExam: 10, HoursPerWeek: 7.5})
	assert.Equal(t, "10", f.Weeks.Value())
	assert.Equal(t, "7.5", f.Hours.Value())
	assert.Equal(t, "Settimane all'esame", f.Weeks.Label)

	empty := e.BudgetForm(prep.Budget{})
	assert.Empty(t, empty.Weeks.Value())
}
