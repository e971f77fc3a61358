package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultSelfScore is the rating assumed for a domain whose
	// self-assessment answer is missing. Product has not signed off on this
	// value; it is carried in ScoringConfig so it can be changed without a
	// code edit.
	DefaultSelfScore = 3

	// DefaultWeakBelow is the score under which a domain is weak.
	DefaultWeakBelow = 40

	// DefaultStrongFrom is the score from which a domain is strong.
	DefaultStrongFrom = 70

	// baselineStep converts a 1–5 rating to a 0–100 baseline.
	baselineStep = 25
)

// checkDelta is the score nudge for one micro-check, keyed by tier and
// correctness. A correct hard check is worth the most; a missed easy check
// costs the most.
var checkDelta = map[Difficulty]struct{ correct, incorrect int }{
	DifficultyEasy:   {correct: 10, incorrect: -20},
	DifficultyMedium: {correct: 15, incorrect: -15},
	DifficultyHard:   {correct: 20, incorrect: -10},
}

// ScoringConfig holds the tunable scoring parameters.
type ScoringConfig struct {
	DefaultSelfScore int `mapstructure:"default_self_score" validate:"min=1,max=5"`
	WeakBelow        int `mapstructure:"weak_below" validate:"min=1,max=100"`
	StrongFrom       int `mapstructure:"strong_from" validate:"min=1,max=100,gtfield=WeakBelow"`
}

// DefaultScoringConfig returns the documented default thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		DefaultSelfScore: DefaultSelfScore,
		WeakBelow:        DefaultWeakBelow,
		StrongFrom:       DefaultStrongFrom,
	}
}

// LevelFor maps a score to its level. Monotonic in score.
func (c ScoringConfig) LevelFor(score int) Level {
	switch {
	case score < c.WeakBelow:
		return LevelWeak
	case score < c.StrongFrom:
		return LevelModerate
	default:
		return LevelStrong
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type domainAnswers struct {
	self   *Answer
	checks []Answer
}

// ComputeDomainResults scores a completed answer set. It returns one result
// per domain in Domains() order. Each domain's score depends only on that
// domain's answers.
//
// Malformed input is rejected with an error wrapping ErrInvalidAnswers and
// listing every problem found. A domain without a self-assessment is scored
// from cfg.DefaultSelfScore and marked Imputed.
func ComputeDomainResults(answers []Answer, cfg ScoringConfig) ([]DomainResult, error) {
	if cfg == (ScoringConfig{}) {
		cfg = DefaultScoringConfig()
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}

	byDomain, errs := groupAnswers(answers)

	results := make([]DomainResult, 0, len(domainOrder))
	for _, d := range domainOrder {
		da := byDomain[d]
		r := DomainResult{Domain: d, SelfScore: cfg.DefaultSelfScore, Imputed: true}
		if da.self != nil {
			r.SelfScore = *da.self.SelfAssessmentScore
			r.Imputed = false
		}

		want := DifficultyForScore(r.SelfScore)
		score := (r.SelfScore - 1) * baselineStep
		for _, c := range da.checks {
			if c.MicroCheckDifficulty != want {
				errs = append(errs, fmt.Sprintf("%s: micro-check %q drawn at %s, self-rating %d implies %s",
					d, c.QuestionID, c.MicroCheckDifficulty, r.SelfScore, want))
				continue
			}
			delta := checkDelta[c.MicroCheckDifficulty]
			r.ChecksTotal++
			if *c.MicroCheckCorrect {
				r.ChecksCorrect++
				score += delta.correct
			} else {
				score += delta.incorrect
			}
		}

		r.Score = clamp(score, 0, 100)
		r.Level = cfg.LevelFor(r.Score)
		results = append(results, r)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w:\n  %s", ErrInvalidAnswers, strings.Join(errs, "\n  "))
	}
	return results, nil
}

// groupAnswers validates each answer and buckets it by domain.
func groupAnswers(answers []Answer) (map[Domain]domainAnswers, []string) {
	var errs []string
	byDomain := make(map[Domain]domainAnswers, len(domainOrder))

	for i := range answers {
		a := answers[i]
		if err := validate.Struct(a); err != nil {
			errs = append(errs, fmt.Sprintf("answer %d (%q): %s", i, a.QuestionID, describe(err)))
			continue
		}
		da := byDomain[a.Domain]
		switch a.Type {
		case AnswerSelfAssessment:
			if a.SelfAssessmentScore == nil {
				errs = append(errs, fmt.Sprintf("answer %d (%q): self-assessment without a score", i, a.QuestionID))
				continue
			}
			if da.self != nil {
				errs = append(errs, fmt.Sprintf("%s: more than one self-assessment", a.Domain))
				continue
			}
			da.self = &a
		case AnswerMicroCheck:
			if a.MicroCheckCorrect == nil {
				errs = append(errs, fmt.Sprintf("answer %d (%q): micro-check without correctness", i, a.QuestionID))
				continue
			}
			if a.MicroCheckDifficulty == "" {
				errs = append(errs, fmt.Sprintf("answer %d (%q): micro-check without difficulty", i, a.QuestionID))
				continue
			}
			da.checks = append(da.checks, a)
		}
		byDomain[a.Domain] = da
	}
	return byDomain, errs
}

// describe flattens validator errors to "field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
