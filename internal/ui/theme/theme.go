// Package theme holds the colors and lipgloss styles shared by every screen.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

// Color palette
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// LevelColor is the bar color for a mastery level.
func LevelColor(l assessment.Level) lipgloss.Style {
	switch l {
	case assessment.LevelWeak:
		return lipgloss.NewStyle().Foreground(Error)
	case assessment.LevelStrong:
		return lipgloss.NewStyle().Foreground(Success)
	}
	return lipgloss.NewStyle().Foreground(Accent)
}

// WorkloadStyle colors a sprint's workload label.
func WorkloadStyle(w roadmap.Workload) lipgloss.Style {
	switch w {
	case roadmap.WorkloadHigh:
		return lipgloss.NewStyle().Foreground(Error)
	case roadmap.WorkloadLow:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
	return lipgloss.NewStyle().Foreground(Secondary)
}

// FeasibilityStyle colors the roadmap's feasibility summary.
func FeasibilityStyle(l roadmap.FeasibleLabel) lipgloss.Style {
	switch l {
	case roadmap.FeasibleInfeasible:
		return Incorrect
	case roadmap.FeasibleTight:
		return Warning
	}
	return Correct
}
