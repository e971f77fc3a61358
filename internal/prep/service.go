// Package prep is the call site tying the quiz to the planner: it scores a
// finished assessment, stores it, derives section levels and builds the
// roadmap, optionally asking the coach for a note.
package prep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/curriculum"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/roadmap"
	"github.com/abhisek/prepcoach/internal/store"
)

// Budget is the time the candidate has before the exam.
type Budget struct {
	WeeksToExam  int
	HoursPerWeek float64
}

// Coach is the subset of coach.Service the service uses.
type Coach interface {
	Enabled() bool
	Note(ctx context.Context, in coach.Input) (*coach.Note, error)
}

// Deps wires a Service. Curriculum defaults to the embedded one and
// Sections to assessment.DefaultSectionMap.
type Deps struct {
	Assessments store.AssessmentRepo
	Roadmaps    store.RoadmapRepo
	Coach       Coach
	Curriculum  *curriculum.Overview
	Sections    assessment.SectionMap
	Scoring     assessment.ScoringConfig
	Planning    roadmap.Config
	// CoachTimeout bounds one note request; zero means no extra bound.
	CoachTimeout time.Duration
	Log          *zap.Logger
}

// Service runs the assessment-to-roadmap pipeline.
type Service struct {
	d Deps
}

func NewService(d Deps) *Service {
	if d.Curriculum == nil {
		d.Curriculum = curriculum.Default()
	}
	if d.Sections == nil {
		d.Sections = assessment.DefaultSectionMap
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Service{d: d}
}

// Curriculum returns the curriculum plans are built from.
func (s *Service) Curriculum() *curriculum.Overview { return s.d.Curriculum }

// CompleteInput is a finished quiz.
type CompleteInput struct {
	Answers []assessment.Answer
	Locale  i18n.Locale
	// Budget nil stores the assessment without planning.
	Budget    *Budget
	WithCoach bool
}

// Outcome is what Complete and Regenerate produce. RoadmapErr and NoteErr
// are soft failures: the stored assessment stays valid.
type Outcome struct {
	Assessment *store.AssessmentRecord
	Roadmap    *store.RoadmapRecord
	RoadmapErr error
	Note       *coach.Note
	NoteErr    error
}

// Complete scores and stores the answers, then plans when a budget is
// given. Invalid answers abort; an invalid budget is reported in
// Outcome.RoadmapErr.
func (s *Service) Complete(ctx context.Context, in CompleteInput) (*Outcome, error) {
	results, err := assessment.ComputeDomainResults(in.Answers, s.d.Scoring)
	if err != nil {
		return nil, err
	}

	rec := &store.AssessmentRecord{
		Locale:  string(in.Locale),
		Answers: in.Answers,
		Results: results,
	}
	if err := s.d.Assessments.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	s.d.Log.Info("assessment stored",
		zap.String("assessment_id", rec.ID),
		zap.Int("answers", len(in.Answers)),
		zap.Strings("weakest", domainsOf(assessment.WeakestDomains(results, 2))))

	out := &Outcome{Assessment: rec}
	if in.Budget == nil {
		return out, nil
	}
	if err := s.plan(ctx, out, *in.Budget, in.Locale, in.WithCoach); err != nil {
		return nil, err
	}
	return out, nil
}

// Regenerate builds and stores a new roadmap for a stored assessment.
func (s *Service) Regenerate(ctx context.Context, assessmentID string, b Budget, withCoach bool) (*Outcome, error) {
	rec, err := s.d.Assessments.Get(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load assessment %s: %w", assessmentID, err)
	}
	out := &Outcome{Assessment: rec}
	locale, _ := i18n.ParseLocale(rec.Locale)
	if err := s.plan(ctx, out, b, locale, withCoach); err != nil {
		return nil, err
	}
	return out, nil
}

// Roadmaps lists the stored roadmaps of an assessment, newest first.
func (s *Service) Roadmaps(ctx context.Context, assessmentID string) ([]store.RoadmapRecord, error) {
	return s.d.Roadmaps.ListForAssessment(ctx, assessmentID)
}

// Plan generates roadmaps for results without touching the store.
func (s *Service) Plan(results []assessment.DomainResult, b Budget, locale i18n.Locale) (*roadmap.Result, error) {
	return roadmap.Generate(roadmap.Input{
		WeeksToExam:     b.WeeksToExam,
		HoursPerWeek:    b.HoursPerWeek,
		LevelsBySection: s.d.Sections.Levels(results, s.d.Curriculum.SectionNames(), assessment.DefaultSectionLevel),
		Curriculum:      s.d.Curriculum,
		Locale:          locale,
	}, s.d.Planning)
}

// plan fills out.Roadmap (or out.RoadmapErr) and the optional note. Only
// storage failures are returned.
func (s *Service) plan(ctx context.Context, out *Outcome, b Budget, locale i18n.Locale, withCoach bool) error {
	res, err := s.Plan(out.Assessment.Results, b, locale)
	if err != nil {
		if !errors.Is(err, roadmap.ErrInvalidInput) {
			return err
		}
		s.d.Log.Warn("roadmap not generated",
			zap.String("assessment_id", out.Assessment.ID),
			zap.Error(err))
		out.RoadmapErr = err
		return nil
	}

	rm := &store.RoadmapRecord{
		AssessmentID:      out.Assessment.ID,
		WeeksToExam:       b.WeeksToExam,
		HoursPerWeek:      b.HoursPerWeek,
		CurriculumVersion: s.d.Curriculum.Version,
		Result:            *res,
	}
	if err := s.d.Roadmaps.Save(ctx, rm); err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	out.Roadmap = rm

	priority := &res.Roadmaps[0]
	s.d.Log.Info("roadmap stored",
		zap.String("roadmap_id", rm.ID),
		zap.Int("sprints", len(priority.Sprints)),
		zap.String("feasibility", string(priority.Snapshot.FeasibleLabel)),
		zap.Int("unscheduled", len(priority.Unscheduled)))

	if withCoach && s.d.Coach != nil && s.d.Coach.Enabled() {
		out.Note, out.NoteErr = s.note(ctx, out.Assessment.Results, priority, b, locale)
		if out.NoteErr != nil {
			s.d.Log.Warn("coach note failed", zap.Error(out.NoteErr))
		}
	}
	return nil
}

func (s *Service) note(ctx context.Context, results []assessment.DomainResult, rm *roadmap.Roadmap, b Budget, locale i18n.Locale) (*coach.Note, error) {
	if s.d.CoachTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.d.CoachTimeout)
		defer cancel()
	}
	return s.d.Coach.Note(ctx, coach.Input{
		Results:      results,
		Roadmap:      rm,
		WeeksToExam:  b.WeeksToExam,
		HoursPerWeek: b.HoursPerWeek,
		Locale:       locale,
	})
}

func domainsOf(results []assessment.DomainResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = string(r.Domain)
	}
	return out
}
