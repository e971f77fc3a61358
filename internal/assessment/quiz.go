package assessment

import (
	"fmt"
	"time"
)

// Flow walks the fixed-length quiz: for each domain a self-assessment, then
// the micro-check picked by SelectMicroCheck from that rating. The rating is
// recorded first and the next question is derived from it, so there is no
// shared "current difficulty" state.
type Flow struct {
	bank       *Bank
	step       int
	selfScores map[Domain]int
	answers    []Answer
}

// NewFlow starts a quiz over bank.
func NewFlow(bank *Bank) *Flow {
	return &Flow{
		bank:       bank,
		selfScores: make(map[Domain]int, len(domainOrder)),
	}
}

// Total is the number of steps in the quiz.
func (f *Flow) Total() int { return 2 * len(domainOrder) }

// Position is the zero-based index of the current step.
func (f *Flow) Position() int { return f.step }

// Done reports whether every step has been answered.
func (f *Flow) Done() bool { return f.step >= f.Total() }

// Current returns the question for the current step.
func (f *Flow) Current() (Question, error) {
	if f.Done() {
		return Question{}, ErrQuizComplete
	}
	d := domainOrder[f.step/2]
	if f.step%2 == 0 {
		q, ok := f.bank.SelfAssessment(d)
		if !ok {
			return Question{}, fmt.Errorf("no self-assessment question for domain %q", d)
		}
		return q, nil
	}
	return SelectMicroCheck(f.bank, d, f.selfScores[d])
}

// AnswerSelfAssessment records a 1–5 confidence rating for the current step.
func (f *Flow) AnswerSelfAssessment(score int, elapsed time.Duration) error {
	q, err := f.Current()
	if err != nil {
		return err
	}
	if q.Type != AnswerSelfAssessment {
		return fmt.Errorf("%w: expected %s", ErrWrongStep, q.Type)
	}
	if score < 1 || score > 5 {
		return fmt.Errorf("self-assessment score %d out of range 1-5", score)
	}

	f.selfScores[q.Domain] = score
	f.answers = append(f.answers, Answer{
		QuestionID:          q.ID,
		Domain:              q.Domain,
		SelectedOptionID:    fmt.Sprint(score),
		Type:                AnswerSelfAssessment,
		TimeMs:              elapsed.Milliseconds(),
		SelfAssessmentScore: IntPtr(score),
	})
	f.step++
	return nil
}

// AnswerMicroCheck records the option picked for the current micro-check
// and reports whether it was correct.
func (f *Flow) AnswerMicroCheck(optionID string, elapsed time.Duration) (bool, error) {
	q, err := f.Current()
	if err != nil {
		return false, err
	}
	if q.Type != AnswerMicroCheck {
		return false, fmt.Errorf("%w: expected %s", ErrWrongStep, q.Type)
	}
	if _, ok := q.Option(optionID); !ok {
		return false, fmt.Errorf("question %q has no option %q", q.ID, optionID)
	}

	correct := optionID == q.CorrectID
	f.answers = append(f.answers, Answer{
		QuestionID:           q.ID,
		Domain:               q.Domain,
		SelectedOptionID:     optionID,
		Type:                 AnswerMicroCheck,
		TimeMs:               elapsed.Milliseconds(),
		MicroCheckCorrect:    BoolPtr(correct),
		MicroCheckDifficulty: q.Difficulty,
	})
	f.step++
	return correct, nil
}

// Answers returns a deep copy of the answers recorded so far.
func (f *Flow) Answers() []Answer {
	out := make([]Answer, len(f.answers))
	for i, a := range f.answers {
		if a.SelfAssessmentScore != nil {
			a.SelfAssessmentScore = IntPtr(*a.SelfAssessmentScore)
		}
		if a.MicroCheckCorrect != nil {
			a.MicroCheckCorrect = BoolPtr(*a.MicroCheckCorrect)
		}
		out[i] = a
	}
	return out
}
