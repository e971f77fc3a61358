package store

import (
	"context"
	"time"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only
}

// AssessmentRecord is a completed quiz with its scores.
type AssessmentRecord struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	Locale    string
	Answers   []assessment.Answer
	Results   []assessment.DomainResult
}

// RoadmapRecord is a generated roadmap result tied to an assessment.
type RoadmapRecord struct {
	ID                string
	AssessmentID      string
	Sequence          int64
	CreatedAt         time.Time
	WeeksToExam       int
	HoursPerWeek      float64
	CurriculumVersion string
	// FeasibleLabel mirrors the priority plan's snapshot for listing
	// without decoding the document.
	FeasibleLabel string
	Result        roadmap.Result
}

// AssessmentRepo persists assessments.
type AssessmentRepo interface {
	// Save stores rec, assigning ID (when empty), Sequence and CreatedAt.
	Save(ctx context.Context, rec *AssessmentRecord) error

	// Get returns the assessment with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*AssessmentRecord, error)

	// Latest returns the most recent assessment or ErrNotFound.
	Latest(ctx context.Context) (*AssessmentRecord, error)

	// List returns assessments newest first.
	List(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error)
}

// RoadmapRepo persists generated roadmaps.
type RoadmapRepo interface {
	Save(ctx context.Context, rec *RoadmapRecord) error
	Get(ctx context.Context, id string) (*RoadmapRecord, error)

	// ListForAssessment returns the roadmaps built from one assessment,
	// newest first.
	ListForAssessment(ctx context.Context, assessmentID string) ([]RoadmapRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates LLM usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
