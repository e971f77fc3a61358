// Package roadmap expands a curriculum into a sprint-based study plan fitted
// to a weekly time budget. Generation is pure: the same Input and Config
// always produce the same Result.
package roadmap

import (
	"errors"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/curriculum"
	"github.com/abhisek/prepcoach/internal/i18n"
)

// ErrInvalidInput is wrapped by every rejection of a roadmap request.
var ErrInvalidInput = errors.New("invalid roadmap input")

// Strategy is the ordering policy used to fill sprints.
type Strategy string

const (
	// StrategyPriority schedules weaker sections first.
	StrategyPriority Strategy = "priority"
	// StrategyCurriculum follows the curriculum's stated order.
	StrategyCurriculum Strategy = "curriculum"
)

// Workload classifies assigned minutes against sprint capacity.
type Workload string

const (
	WorkloadLow    Workload = "low"
	WorkloadMedium Workload = "medium"
	WorkloadHigh   Workload = "high"
)

// Phase is a named band of contiguous sprints.
type Phase string

const (
	PhaseFoundation Phase = "foundation"
	PhasePractice   Phase = "practice"
	PhaseReview     Phase = "review"
)

// FeasibleLabel summarizes whether the budget covers the curriculum.
type FeasibleLabel string

const (
	FeasibleEmpty       FeasibleLabel = "empty"
	FeasibleComfortable FeasibleLabel = "comfortable"
	FeasibleTight       FeasibleLabel = "tight"
	FeasibleInfeasible  FeasibleLabel = "infeasible"
)

// CheckpointKind is the kind of assessment placed at a sprint boundary.
type CheckpointKind string

const (
	CheckpointPractice  CheckpointKind = "practice_set"
	CheckpointTimedTest CheckpointKind = "timed_test"
)

// UnscheduledReason explains why a submodule is not in any sprint.
type UnscheduledReason string

const (
	// ReasonTooLarge: the submodule exceeds every sprint's ceiling.
	ReasonTooLarge UnscheduledReason = "exceeds_sprint_capacity"
	// ReasonOutOfTime: the budget ran out before the submodule was reached.
	ReasonOutOfTime UnscheduledReason = "out_of_time"
)

// Upper bounds on a study budget: ten years, every hour of the week.
const (
	MaxWeeksToExam  = 520
	MaxHoursPerWeek = 168
)

// Input is a roadmap request.
type Input struct {
	WeeksToExam  int
	HoursPerWeek float64
	// LevelsBySection gives each curriculum section a mastery level.
	// Sections absent from the map are treated as moderate.
	LevelsBySection map[string]assessment.Level
	Curriculum      *curriculum.Overview
	Locale          i18n.Locale
}

// Assignment places one submodule in a sprint.
type Assignment struct {
	Section         string           `json:"section"`
	SubmoduleID     string           `json:"submodule_id"`
	SubmoduleName   string           `json:"submodule_name,omitempty"`
	Level           assessment.Level `json:"level"`
	Minutes         int              `json:"minutes"`
	UniqueQuestions int              `json:"unique_questions"`
	RetakeQuestions int              `json:"retake_questions"`
}

// Checkpoint is a practice set or timed mock test closing a sprint.
type Checkpoint struct {
	Kind      CheckpointKind `json:"kind"`
	Questions int            `json:"questions"`
	Label     string         `json:"label"`
}

// Sprint is a contiguous block of weeks with its assigned content.
type Sprint struct {
	Number          int          `json:"number"`
	WeekStart       int          `json:"week_start"`
	WeekEnd         int          `json:"week_end"`
	Phase           Phase        `json:"phase"`
	Items           []Assignment `json:"items"`
	AssignedMinutes int          `json:"assigned_minutes"`
	CapacityMinutes int          `json:"capacity_minutes"`
	Workload        Workload     `json:"workload"`
	Goal            string       `json:"goal"`
	Checkpoint      *Checkpoint  `json:"checkpoint,omitempty"`
}

// Weeks is the number of weeks the sprint spans.
func (s Sprint) Weeks() int { return s.WeekEnd - s.WeekStart + 1 }

// PhaseRange groups contiguous sprints under one phase.
type PhaseRange struct {
	Phase       Phase  `json:"phase"`
	Label       string `json:"label"`
	FirstSprint int    `json:"first_sprint"`
	LastSprint  int    `json:"last_sprint"`
}

// Unscheduled is curriculum content that did not fit the budget.
type Unscheduled struct {
	Section     string            `json:"section"`
	SubmoduleID string            `json:"submodule_id"`
	Minutes     int               `json:"minutes"`
	Reason      UnscheduledReason `json:"reason"`
}

// Snapshot summarizes feasibility of a roadmap.
type Snapshot struct {
	TotalMinutes     int           `json:"total_minutes"`
	ScheduledMinutes int           `json:"scheduled_minutes"`
	AvailableMinutes int           `json:"available_minutes"`
	Utilization      float64       `json:"utilization"`
	Feasible         bool          `json:"feasible"`
	FeasibleLabel    FeasibleLabel `json:"feasible_label"`
	Summary          string        `json:"summary"`
	SubmoduleCount   int           `json:"submodule_count"`
	UnscheduledCount int           `json:"unscheduled_count"`
}

// Roadmap is one generated plan.
type Roadmap struct {
	Strategy    Strategy      `json:"strategy"`
	Sprints     []Sprint      `json:"sprints"`
	Phases      []PhaseRange  `json:"phases"`
	Unscheduled []Unscheduled `json:"unscheduled"`
	Snapshot    Snapshot      `json:"snapshot"`
}

// Result holds one roadmap per configured strategy. Roadmaps[0] is always
// the priority plan.
type Result struct {
	Roadmaps []Roadmap `json:"roadmaps"`
}

// Roadmap returns the plan built with strategy s.
func (r *Result) Roadmap(s Strategy) (*Roadmap, bool) {
	for i := range r.Roadmaps {
		if r.Roadmaps[i].Strategy == s {
			return &r.Roadmaps[i], true
		}
	}
	return nil, false
}
