package assessment

import "errors"

// Domain is one of the fixed exam subject areas covered by the quiz.
type Domain string

const (
	DomainReading    Domain = "reading"
	DomainLogic      Domain = "logic"
	DomainSpatial    Domain = "spatial"
	DomainMath       Domain = "math"
	DomainPhysics    Domain = "physics"
	DomainHumanities Domain = "humanities"
)

var domainOrder = []Domain{
	DomainReading,
	DomainLogic,
	DomainSpatial,
	DomainMath,
	DomainPhysics,
	DomainHumanities,
}

// Domains returns the fixed domain set in quiz order. The order is also the
// tie-break used by every sort in this package.
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// Valid reports whether d belongs to the fixed domain set.
func (d Domain) Valid() bool {
	return d.index() >= 0
}

func (d Domain) index() int {
	for i, x := range domainOrder {
		if x == d {
			return i
		}
	}
	return -1
}

// Difficulty is the tier a micro-check is drawn at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AnswerType distinguishes the two kinds of quiz items.
type AnswerType string

const (
	AnswerSelfAssessment AnswerType = "self_assessment"
	AnswerMicroCheck     AnswerType = "micro_check"
)

// Level is the qualitative mastery tier derived from a domain score.
type Level string

const (
	LevelWeak     Level = "weak"
	LevelModerate Level = "moderate"
	LevelStrong   Level = "strong"
)

// Rank orders levels from weakest (0) to strongest (2). Unknown levels rank
// as moderate.
func (l Level) Rank() int {
	switch l {
	case LevelWeak:
		return 0
	case LevelStrong:
		return 2
	default:
		return 1
	}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l == LevelWeak || l == LevelModerate || l == LevelStrong
}

// Answer is one response to one quiz item. The type-specific fields are
// pointers so that "not answered" is distinguishable from a zero value.
type Answer struct {
	QuestionID           string     `json:"question_id" validate:"required"`
	Domain               Domain     `json:"domain" validate:"required,oneof=reading logic spatial math physics humanities"`
	SelectedOptionID     string     `json:"selected_option_id"`
	Type                 AnswerType `json:"type" validate:"required,oneof=self_assessment micro_check"`
	TimeMs               int64      `json:"time_ms" validate:"gte=0"`
	SelfAssessmentScore  *int       `json:"self_assessment_score,omitempty" validate:"omitempty,min=1,max=5"`
	MicroCheckCorrect    *bool      `json:"micro_check_correct,omitempty"`
	MicroCheckDifficulty Difficulty `json:"micro_check_difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// DomainResult is the scorer output for one domain.
type DomainResult struct {
	Domain        Domain `json:"domain"`
	Score         int    `json:"score"`
	Level         Level  `json:"level"`
	SelfScore     int    `json:"self_score"`
	ChecksCorrect int    `json:"checks_correct"`
	ChecksTotal   int    `json:"checks_total"`
	// Imputed is set when the domain had no self-assessment answer and
	// SelfScore was filled from ScoringConfig.DefaultSelfScore.
	Imputed bool `json:"imputed,omitempty"`
}

var (
	// ErrInvalidAnswers is wrapped by every rejection of a malformed answer set.
	ErrInvalidAnswers = errors.New("invalid answers")

	// ErrQuizComplete is returned when a finished quiz is asked for more input.
	ErrQuizComplete = errors.New("quiz already complete")

	// ErrWrongStep is returned when an answer does not match the current step type.
	ErrWrongStep = errors.New("answer does not match current quiz step")
)

// IntPtr and BoolPtr are small helpers for building answers in code.
func IntPtr(v int) *int    { return &v }
func BoolPtr(v bool) *bool { return &v }
