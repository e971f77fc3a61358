package prep

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/roadmap"
	"github.com/abhisek/prepcoach/internal/store"
)

type fakeCoach struct {
	enabled bool
	note    *coach.Note
	err     error
	calls   []coach.Input
}

func (f *fakeCoach) Enabled() bool { return f.enabled }

func (f *fakeCoach) Note(_ context.Context, in coach.Input) (*coach.Note, error) {
	f.calls = append(f.calls, in)
	return f.note, f.err
}

func newTestService(t *testing.T, c Coach) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(Deps{
		Assessments: st.AssessmentRepo(),
		Roadmaps:    st.RoadmapRepo(),
		Coach:       c,
		Scoring:     assessment.DefaultScoringConfig(),
		Planning:    roadmap.DefaultConfig(),
	})
	return svc, st
}

// answers completes the bundled quiz rating weak domains 1 and failing
// their micro-checks; every other domain is rated 4 and passes.
func answers(t *testing.T, weak ...assessment.Domain) []assessment.Answer {
	t.Helper()
	isWeak := map[assessment.Domain]bool{}
	for _, d := range weak {
		isWeak[d] = true
	}
	f := assessment.NewFlow(assessment.DefaultBank())
	for !f.Done() {
		q, err := f.Current()
		require.NoError(t, err)
		if q.Type == assessment.AnswerSelfAssessment {
			score := 4
			if isWeak[q.Domain] {
				score = 1
			}
			require.NoError(t, f.AnswerSelfAssessment(score, time.Second))
			continue
		}
		pick := q.CorrectID
		if isWeak[q.Domain] {
			for _, o := range q.Options {
				if o.ID != q.CorrectID {
					pick = o.ID
					break
				}
			}
		}
		_, err = f.AnswerMicroCheck(pick, time.Second)
		require.NoError(t, err)
	}
	return f.Answers()
}

func TestComplete_StoresAssessmentAndRoadmap(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := t.Context()

	out, err := svc.Complete(ctx, CompleteInput{
		Answers: answers(t, assessment.DomainMath),
		Locale:  i18n.LocaleEN,
		Budget:  &Budget{WeeksToExam: 12, HoursPerWeek: 6},
	})
	require.NoError(t, err)
	require.NoError(t, out.RoadmapErr)
	require.NotNil(t, out.Roadmap)
	assert.Nil(t, out.Note)

	latest, err := st.AssessmentRepo().Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.Assessment.ID, latest.ID)
	assert.Len(t, latest.Results, len(assessment.Domains()))

	got, err := st.RoadmapRepo().Get(ctx, out.Roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Assessment.ID, got.AssessmentID)
	assert.Equal(t, "v1.2.0", got.CurriculumVersion)

	priority, ok := got.Result.Roadmap(roadmap.StrategyPriority)
	require.True(t, ok)
	require.NotEmpty(t, priority.Sprints)
	assert.Equal(t, "Mathematics", priority.Sprints[0].Items[0].Section, "weak mathematics leads the plan")
	assert.Equal(t, string(priority.Snapshot.FeasibleLabel), got.FeasibleLabel)
}

func TestComplete_InvalidAnswersAbort(t *testing.T) {
	svc, st := newTestService(t, nil)

	bad := answers(t)
	bad[0].SelfAssessmentScore = assessment.IntPtr(9)
	_, err := svc.Complete(t.Context(), CompleteInput{Answers: bad, Budget: &Budget{WeeksToExam: 4, HoursPerWeek: 5}})
	require.ErrorIs(t, err, assessment.ErrInvalidAnswers)

	_, err = st.AssessmentRepo().Latest(t.Context())
	require.ErrorIs(t, err, store.ErrNotFound, "nothing is stored for rejected answers")
}

func TestComplete_InvalidBudgetKeepsScores(t *testing.T) {
	c := &fakeCoach{enabled: true, note: &coach.Note{Summary: "x"}}
	svc, st := newTestService(t, c)

	out, err := svc.Complete(t.Context(), CompleteInput{
		Answers:   answers(t),
		Budget:    &Budget{WeeksToExam: 0, HoursPerWeek: 5},
		WithCoach: true,
	})
	require.NoError(t, err)
	require.ErrorIs(t, out.RoadmapErr, roadmap.ErrInvalidInput)
	assert.Nil(t, out.Roadmap)
	assert.Empty(t, c.calls, "no coach without a roadmap")

	list, err := st.RoadmapRepo().ListForAssessment(t.Context(), out.Assessment.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestComplete_NoBudget(t *testing.T) {
	svc, _ := newTestService(t, nil)
	out, err := svc.Complete(t.Context(), CompleteInput{Answers: answers(t)})
	require.NoError(t, err)
	assert.Nil(t, out.Roadmap)
	assert.NoError(t, out.RoadmapErr)
}

func TestComplete_Coach(t *testing.T) {
	t.Run("note attached", func(t *testing.T) {
		c := &fakeCoach{enabled: true, note: &coach.Note{Summary: "Start with physics."}}
		svc, _ := newTestService(t, c)

		out, err := svc.Complete(t.Context(), CompleteInput{
			Answers:   answers(t, assessment.DomainPhysics),
			Locale:    i18n.LocaleIT,
			Budget:    &Budget{WeeksToExam: 8, HoursPerWeek: 10},
			WithCoach: true,
		})
		require.NoError(t, err)
		require.NotNil(t, out.Note)
		assert.Equal(t, "Start with physics.", out.Note.Summary)

		require.Len(t, c.calls, 1)
		in := c.calls[0]
		assert.Equal(t, roadmap.StrategyPriority, in.Roadmap.Strategy)
		assert.Equal(t, i18n.LocaleIT, in.Locale)
		assert.Equal(t, 8, in.WeeksToExam)
	})

	t.Run("not requested", func(t *testing.T) {
		c := &fakeCoach{enabled: true}
		svc, _ := newTestService(t, c)
		_, err := svc.Complete(t.Context(), CompleteInput{Answers: answers(t), Budget: &Budget{WeeksToExam: 8, HoursPerWeek: 10}})
		require.NoError(t, err)
		assert.Empty(t, c.calls)
	})

	t.Run("failure is soft", func(t *testing.T) {
		c := &fakeCoach{enabled: true, err: errors.New("provider down")}
		svc, _ := newTestService(t, c)
		out, err := svc.Complete(t.Context(), CompleteInput{
			Answers:   answers(t),
			Budget:    &Budget{WeeksToExam: 8, HoursPerWeek: 10},
			WithCoach: true,
		})
		require.NoError(t, err)
		assert.NotNil(t, out.Roadmap)
		assert.EqualError(t, out.NoteErr, "provider down")
	})
}

func TestRegenerate(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := t.Context()

	first, err := svc.Complete(ctx, CompleteInput{
		Answers: answers(t, assessment.DomainLogic),
		Locale:  i18n.LocaleIT,
		Budget:  &Budget{WeeksToExam: 4, HoursPerWeek: 2},
	})
	require.NoError(t, err)

	again, err := svc.Regenerate(ctx, first.Assessment.ID, Budget{WeeksToExam: 16, HoursPerWeek: 10}, false)
	require.NoError(t, err)
	require.NotNil(t, again.Roadmap)
	assert.NotEqual(t, first.Roadmap.ID, again.Roadmap.ID)
	assert.Equal(t, 16, again.Roadmap.WeeksToExam)

	// Goals follow the locale stored with the assessment.
	goal := again.Roadmap.Result.Roadmaps[0].Sprints[0].Goal
	assert.Contains(t, goal, "Costruisci le basi")

	list, err := svc.Roadmaps(ctx, first.Assessment.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, again.Roadmap.ID, list[0].ID, "newest first")

	_, err = svc.Regenerate(ctx, "missing", Budget{WeeksToExam: 4, HoursPerWeek: 4}, false)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlan_DoesNotStore(t *testing.T) {
	svc, st := newTestService(t, nil)
	results, err := assessment.ComputeDomainResults(answers(t), assessment.ScoringConfig{})
	require.NoError(t, err)

	res, err := svc.Plan(results, Budget{WeeksToExam: 6, HoursPerWeek: 8}, i18n.LocaleEN)
	require.NoError(t, err)
	assert.Len(t, res.Roadmaps, 2)

	_, err = st.AssessmentRepo().Latest(t.Context())
	require.ErrorIs(t, err, store.ErrNotFound)
}
