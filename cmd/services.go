package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/curriculum"
	"github.com/abhisek/prepcoach/internal/llm"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/store"
)

// loadCurriculum returns path's curriculum, the configured one, or the
// embedded default, in that order.
func loadCurriculum(path string) (*curriculum.Overview, error) {
	if path == "" {
		path = rt.cfg.Curriculum
	}
	if path == "" {
		return curriculum.Default(), nil
	}
	return curriculum.Load(path)
}

// newCoach builds the coach from the LLM config. A disabled or broken
// provider yields a coach that reports itself disabled.
func newCoach(ctx context.Context, events store.EventRepo) *coach.Service {
	provider, err := llm.NewProvider(ctx, rt.cfg.LLM, events, rt.log)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return coach.NewService(nil, rt.cfg.Coach, rt.log)
	case err != nil:
		rt.log.Warn("LLM provider not configured; coach unavailable", zap.Error(err))
		return coach.NewService(nil, rt.cfg.Coach, rt.log)
	}
	return coach.NewService(provider, rt.cfg.Coach, rt.log)
}

// newPrep wires the prep service over st.
func newPrep(st *store.Store, cur *curriculum.Overview, c prep.Coach) *prep.Service {
	return prep.NewService(prep.Deps{
		Assessments:  st.AssessmentRepo(),
		Roadmaps:     st.RoadmapRepo(),
		Coach:        c,
		Curriculum:   cur,
		Scoring:      rt.cfg.Scoring,
		Planning:     rt.cfg.Roadmap,
		CoachTimeout: rt.cfg.LLM.Timeout,
		Log:          rt.log,
	})
}

// readAnswers decodes a JSON array of answers from path, or stdin for "-".
func readAnswers(path string, stdin io.Reader) ([]assessment.Answer, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}
	var answers []assessment.Answer
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&answers); err != nil {
		return nil, fmt.Errorf("decode answers %s: %w", path, err)
	}
	return answers, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
