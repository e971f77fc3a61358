// Package coach turns a scored assessment and its roadmap into a short
// study note written by an LLM.
package coach

import (
	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

// Note is the coach's advice on one roadmap.
type Note struct {
	Summary   string   `json:"summary"`
	FocusTips []string `json:"focus_tips"`
	// Warning is set when the plan looks unrealistic.
	Warning string `json:"warning,omitempty"`
}

// Input is everything the coach sees.
type Input struct {
	Results      []assessment.DomainResult
	Roadmap      *roadmap.Roadmap
	WeeksToExam  int
	HoursPerWeek float64
	Locale       i18n.Locale
}
