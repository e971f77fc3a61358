package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/prepcoach/internal/roadmap"
)

const roadmapsTable = "roadmaps"

var roadmapColumns = []string{
	"id", "assessment_id", "sequence", "created_at", "weeks_to_exam",
	"hours_per_week", "curriculum_version", "feasible_label", "document",
}

// roadmapRepo implements RoadmapRepo.
type roadmapRepo struct {
	s *Store
}

func (r *roadmapRepo) Save(ctx context.Context, rec *RoadmapRecord) error {
	doc, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal roadmap: %w", err)
	}

	seq, err := r.s.seq.Next(ctx)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rm, ok := rec.Result.Roadmap(roadmap.StrategyPriority); ok {
		rec.FeasibleLabel = string(rm.Snapshot.FeasibleLabel)
	}
	rec.Sequence = seq
	rec.CreatedAt = time.Now().UTC()

	q, args := builder().Insert(roadmapsTable).
		Columns(roadmapColumns...).
		Values(rec.ID, rec.AssessmentID, rec.Sequence, toMillis(rec.CreatedAt), rec.WeeksToExam,
			rec.HoursPerWeek, rec.CurriculumVersion, rec.FeasibleLabel, string(doc)).
		Query()
	if _, err := r.s.exec(ctx, q, args); err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	return nil
}

func (r *roadmapRepo) Get(ctx context.Context, id string) (*RoadmapRecord, error) {
	recs, err := r.list(ctx, builder().Select(roadmapColumns...).
		From(entsql.Table(roadmapsTable)).
		Where(entsql.EQ("id", id)))
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("roadmap %q: %w", id, ErrNotFound)
	}
	return &recs[0], nil
}

func (r *roadmapRepo) ListForAssessment(ctx context.Context, assessmentID string) ([]RoadmapRecord, error) {
	return r.list(ctx, builder().Select(roadmapColumns...).
		From(entsql.Table(roadmapsTable)).
		Where(entsql.EQ("assessment_id", assessmentID)).
		OrderBy(entsql.Desc("sequence")))
}

func (r *roadmapRepo) list(ctx context.Context, sel *entsql.Selector) ([]RoadmapRecord, error) {
	q, args := sel.Query()
	var out []RoadmapRecord
	err := r.s.query(ctx, q, args, func(rows *entsql.Rows) error {
		var (
			rec     RoadmapRecord
			created int64
			doc     string
		)
		if err := rows.Scan(&rec.ID, &rec.AssessmentID, &rec.Sequence, &created, &rec.WeeksToExam,
			&rec.HoursPerWeek, &rec.CurriculumVersion, &rec.FeasibleLabel, &doc); err != nil {
			return err
		}
		rec.CreatedAt = fromMillis(created)
		if err := json.Unmarshal([]byte(doc), &rec.Result); err != nil {
			return fmt.Errorf("decode roadmap %s: %w", rec.ID, err)
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query roadmaps: %w", err)
	}
	return out, nil
}
