package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const assessmentsTable = "assessments"

var assessmentColumns = []string{"id", "sequence", "created_at", "locale", "answers", "results"}

// assessmentRepo implements AssessmentRepo.
type assessmentRepo struct {
	s *Store
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	results, err := json.Marshal(rec.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	seq, err := r.s.seq.Next(ctx)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Locale == "" {
		rec.Locale = "en"
	}
	rec.Sequence = seq
	rec.CreatedAt = time.Now().UTC()

	q, args := builder().Insert(assessmentsTable).
		Columns(assessmentColumns...).
		Values(rec.ID, rec.Sequence, toMillis(rec.CreatedAt), rec.Locale, string(answers), string(results)).
		Query()
	if _, err := r.s.exec(ctx, q, args); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*AssessmentRecord, error) {
	sel := builder().Select(assessmentColumns...).
		From(entsql.Table(assessmentsTable)).
		Where(entsql.EQ("id", id))
	return r.one(ctx, sel, fmt.Sprintf("assessment %q", id))
}

func (r *assessmentRepo) Latest(ctx context.Context) (*AssessmentRecord, error) {
	sel := builder().Select(assessmentColumns...).
		From(entsql.Table(assessmentsTable)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1)
	return r.one(ctx, sel, "latest assessment")
}

func (r *assessmentRepo) List(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	sel := builder().Select(assessmentColumns...).
		From(entsql.Table(assessmentsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)
	return r.list(ctx, sel)
}

func (r *assessmentRepo) one(ctx context.Context, sel *entsql.Selector, what string) (*AssessmentRecord, error) {
	recs, err := r.list(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return &recs[0], nil
}

func (r *assessmentRepo) list(ctx context.Context, sel *entsql.Selector) ([]AssessmentRecord, error) {
	q, args := sel.Query()
	var out []AssessmentRecord
	err := r.s.query(ctx, q, args, func(rows *entsql.Rows) error {
		var (
			rec              AssessmentRecord
			created          int64
			answers, results string
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &created, &rec.Locale, &answers, &results); err != nil {
			return err
		}
		rec.CreatedAt = fromMillis(created)
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return fmt.Errorf("decode answers of %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(results), &rec.Results); err != nil {
			return fmt.Errorf("decode results of %s: %w", rec.ID, err)
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	return out, nil
}

// applyOpts adds the sequence/time window and limit of opts to sel.
func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", toMillis(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", toMillis(opts.To)))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
