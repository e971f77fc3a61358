// Package env carries the services every TUI screen may reach.
package env

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/ui/components"
)

// Coach is the background note API of coach.Service.
type Coach interface {
	Enabled() bool
	RequestNote(ctx context.Context, in coach.Input)
	ConsumeNote() (coach.Result, bool)
}

// Env is shared, read-only screen wiring.
type Env struct {
	Prep        *prep.Service
	Assessments store.AssessmentRepo
	Coach       Coach
	Bank        *assessment.Bank
	Locale      i18n.Locale
	// Budget prefills the budget form.
	Budget prep.Budget
	Log    *zap.Logger
}

// T translates key in the screen locale.
func (e *Env) T(key string, args ...any) string {
	return i18n.T(e.Locale, key, args...)
}

// CoachEnabled reports whether a coach is wired and configured.
func (e *Env) CoachEnabled() bool {
	return e.Coach != nil && e.Coach.Enabled()
}

// BudgetForm builds a weeks/hours form in the screen locale, prefilled
// with b when set.
func (e *Env) BudgetForm(b prep.Budget) components.BudgetForm {
	var weeks, hours string
	if b.WeeksToExam > 0 {
		weeks = fmt.Sprint(b.WeeksToExam)
	}
	if b.HoursPerWeek > 0 {
		hours = fmt.Sprint(b.HoursPerWeek)
	}
	return components.NewBudgetForm(e.T("ui.budget.weeks"), e.T("ui.budget.hours"),
		e.T("ui.budget.invalid"), weeks, hours)
}
