package assessment

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/prepcoach/internal/i18n"
)

func TestDefaultBank_Validates(t *testing.T) {
	if err := DefaultBank().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSelectMicroCheck_UsesDifficultyForScore(t *testing.T) {
	b := DefaultBank()
	for _, d := range Domains() {
		for s := 1; s <= 5; s++ {
			q, err := SelectMicroCheck(b, d, s)
			if err != nil {
				t.Fatalf("SelectMicroCheck(%s, %d): %v", d, s, err)
			}
			if q.Difficulty != DifficultyForScore(s) {
				t.Errorf("%s/%d: difficulty %s, want %s", d, s, q.Difficulty, DifficultyForScore(s))
			}
		}
	}
	if _, err := SelectMicroCheck(b, DomainMath, 0); err == nil {
		t.Error("expected error for score 0")
	}
}

func TestFlow_FullRun(t *testing.T) {
	f := NewFlow(DefaultBank())
	if f.Total() != 12 {
		t.Fatalf("Total = %d, want 12", f.Total())
	}

	for i, d := range Domains() {
		q, err := f.Current()
		if err != nil {
			t.Fatal(err)
		}
		if q.Type != AnswerSelfAssessment || q.Domain != d {
			t.Fatalf("step %d = %s/%s, want self_assessment/%s", f.Position(), q.Type, q.Domain, d)
		}
		score := i%5 + 1
		if err := f.AnswerSelfAssessment(score, 1500*time.Millisecond); err != nil {
			t.Fatal(err)
		}

		q, err = f.Current()
		if err != nil {
			t.Fatal(err)
		}
		if q.Difficulty != DifficultyForScore(score) {
			t.Errorf("%s: presented %s, want %s", d, q.Difficulty, DifficultyForScore(score))
		}
		correct, err := f.AnswerMicroCheck(q.CorrectID, time.Second)
		if err != nil {
			t.Fatal(err)
		}
		if !correct {
			t.Errorf("%s: correct option reported wrong", d)
		}
	}

	if !f.Done() {
		t.Fatal("flow not done after 12 answers")
	}
	answers := f.Answers()
	if len(answers) != 12 {
		t.Fatalf("len(Answers) = %d, want 12", len(answers))
	}
	if answers[0].TimeMs != 1500 {
		t.Errorf("TimeMs = %d, want 1500", answers[0].TimeMs)
	}
	if _, err := ComputeDomainResults(answers, DefaultScoringConfig()); err != nil {
		t.Errorf("quiz answers rejected by scorer: %v", err)
	}
}

func TestFlow_ImmutableAfterCompletion(t *testing.T) {
	f := NewFlow(DefaultBank())
	for !f.Done() {
		q, _ := f.Current()
		if q.Type == AnswerSelfAssessment {
			_ = f.AnswerSelfAssessment(3, 0)
		} else {
			_, _ = f.AnswerMicroCheck("a", 0)
		}
	}

	if err := f.AnswerSelfAssessment(3, 0); !errors.Is(err, ErrQuizComplete) {
		t.Errorf("AnswerSelfAssessment after done: err = %v, want ErrQuizComplete", err)
	}
	if _, err := f.AnswerMicroCheck("a", 0); !errors.Is(err, ErrQuizComplete) {
		t.Errorf("AnswerMicroCheck after done: err = %v, want ErrQuizComplete", err)
	}

	answers := f.Answers()
	answers[0].Domain = DomainMath
	if f.Answers()[0].Domain != DomainReading {
		t.Error("Answers returned a shared slice")
	}

	*answers[0].SelfAssessmentScore = 5
	*answers[1].MicroCheckCorrect = !*answers[1].MicroCheckCorrect
	again := f.Answers()
	if got := *again[0].SelfAssessmentScore; got != 3 {
		t.Errorf("self score = %d after caller edit, want 3", got)
	}
	if *again[1].MicroCheckCorrect == *answers[1].MicroCheckCorrect {
		t.Error("Answers shares micro-check result with the caller")
	}
}

func TestFlow_WrongStep(t *testing.T) {
	f := NewFlow(DefaultBank())
	if _, err := f.AnswerMicroCheck("a", 0); !errors.Is(err, ErrWrongStep) {
		t.Errorf("err = %v, want ErrWrongStep", err)
	}
	if err := f.AnswerSelfAssessment(9, 0); err == nil {
		t.Error("expected error for score 9")
	}
	if err := f.AnswerSelfAssessment(2, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AnswerMicroCheck("z", 0); err == nil {
		t.Error("expected error for unknown option")
	}
	if f.Position() != 1 {
		t.Errorf("Position = %d, want 1", f.Position())
	}
}

func TestQuestion_PromptIsLocalized(t *testing.T) {
	q, _ := DefaultBank().SelfAssessment(DomainMath)
	en := q.Prompt(i18n.LocaleEN)
	it := q.Prompt(i18n.LocaleIT)
	if en != "How confident do you feel about Mathematics?" {
		t.Errorf("en prompt = %q", en)
	}
	if it == en || it == q.PromptKey {
		t.Errorf("it prompt not localized: %q", it)
	}
}
