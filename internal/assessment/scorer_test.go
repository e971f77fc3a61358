package assessment

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// takeQuiz runs the bundled quiz, answering each domain with the given
// rating and micro-check outcome. Domains absent from self default to 3 and
// absent from correct default to true.
func takeQuiz(t *testing.T, self map[Domain]int, correct map[Domain]bool) []Answer {
	t.Helper()
	f := NewFlow(DefaultBank())
	for !f.Done() {
		q, err := f.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		switch q.Type {
		case AnswerSelfAssessment:
			s, ok := self[q.Domain]
			if !ok {
				s = 3
			}
			if err := f.AnswerSelfAssessment(s, time.Second); err != nil {
				t.Fatalf("AnswerSelfAssessment: %v", err)
			}
		case AnswerMicroCheck:
			want, ok := correct[q.Domain]
			if !ok {
				want = true
			}
			pick := q.CorrectID
			if !want {
				for _, o := range q.Options {
					if o.ID != q.CorrectID {
						pick = o.ID
						break
					}
				}
			}
			if _, err := f.AnswerMicroCheck(pick, 2*time.Second); err != nil {
				t.Fatalf("AnswerMicroCheck: %v", err)
			}
		}
	}
	return f.Answers()
}

func resultFor(results []DomainResult, d Domain) DomainResult {
	for _, r := range results {
		if r.Domain == d {
			return r
		}
	}
	return DomainResult{}
}

func TestDifficultyForScore(t *testing.T) {
	cases := map[int]Difficulty{
		1: DifficultyEasy,
		2: DifficultyEasy,
		3: DifficultyMedium,
		4: DifficultyHard,
		5: DifficultyHard,
	}
	for score, want := range cases {
		if got := DifficultyForScore(score); got != want {
			t.Errorf("DifficultyForScore(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestComputeDomainResults_AllMediumCorrect(t *testing.T) {
	answers := takeQuiz(t, nil, nil)
	results, err := ComputeDomainResults(answers, DefaultScoringConfig())
	if err != nil {
		t.Fatalf("ComputeDomainResults: %v", err)
	}
	if len(results) != len(Domains()) {
		t.Fatalf("got %d results, want %d", len(results), len(Domains()))
	}
	for i, r := range results {
		if r.Domain != Domains()[i] {
			t.Errorf("results[%d].Domain = %s, want %s", i, r.Domain, Domains()[i])
		}
		// (3-1)*25 + 15
		if r.Score != 65 {
			t.Errorf("%s score = %d, want 65", r.Domain, r.Score)
		}
		if r.Level != LevelModerate {
			t.Errorf("%s level = %s, want moderate", r.Domain, r.Level)
		}
		if r.ChecksCorrect != 1 || r.ChecksTotal != 1 {
			t.Errorf("%s checks = %d/%d, want 1/1", r.Domain, r.ChecksCorrect, r.ChecksTotal)
		}
	}
}

func TestComputeDomainResults_OneWeakDomain(t *testing.T) {
	self := map[Domain]int{}
	correct := map[Domain]bool{}
	for _, d := range Domains() {
		self[d] = 5
		correct[d] = true
	}
	self[DomainMath] = 1
	correct[DomainMath] = false

	results, err := ComputeDomainResults(takeQuiz(t, self, correct), DefaultScoringConfig())
	if err != nil {
		t.Fatalf("ComputeDomainResults: %v", err)
	}

	math := resultFor(results, DomainMath)
	if math.Score != 0 || math.Level != LevelWeak {
		t.Errorf("math = %d/%s, want 0/weak", math.Score, math.Level)
	}
	physics := resultFor(results, DomainPhysics)
	if physics.Score != 100 || physics.Level != LevelStrong {
		t.Errorf("physics = %d/%s, want 100/strong", physics.Score, physics.Level)
	}

	weakest := WeakestDomains(results, 1)
	if len(weakest) != 1 || weakest[0].Domain != DomainMath {
		t.Errorf("WeakestDomains = %+v, want math first", weakest)
	}
}

func TestComputeDomainResults_Deltas(t *testing.T) {
	tests := []struct {
		self    int
		correct bool
		want    int
	}{
		{1, true, 10},
		{1, false, 0},
		{2, true, 35},
		{2, false, 5},
		{3, true, 65},
		{3, false, 35},
		{4, true, 95},
		{4, false, 65},
		{5, true, 100},
		{5, false, 90},
	}
	for _, tt := range tests {
		answers := takeQuiz(t, map[Domain]int{DomainLogic: tt.self}, map[Domain]bool{DomainLogic: tt.correct})
		results, err := ComputeDomainResults(answers, DefaultScoringConfig())
		if err != nil {
			t.Fatalf("self=%d correct=%v: %v", tt.self, tt.correct, err)
		}
		if got := resultFor(results, DomainLogic).Score; got != tt.want {
			t.Errorf("self=%d correct=%v: score = %d, want %d", tt.self, tt.correct, got, tt.want)
		}
	}
}

func TestComputeDomainResults_Deterministic(t *testing.T) {
	answers := takeQuiz(t, map[Domain]int{DomainReading: 2, DomainSpatial: 4}, map[Domain]bool{DomainSpatial: false})
	a, err := ComputeDomainResults(answers, DefaultScoringConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeDomainResults(answers, DefaultScoringConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ between calls:\n%+v\n%+v", a, b)
	}
}

func TestComputeDomainResults_NoCrossDomainLeakage(t *testing.T) {
	base, err := ComputeDomainResults(takeQuiz(t, nil, nil), DefaultScoringConfig())
	if err != nil {
		t.Fatal(err)
	}
	changed, err := ComputeDomainResults(
		takeQuiz(t, map[Domain]int{DomainPhysics: 1}, map[Domain]bool{DomainPhysics: false}),
		DefaultScoringConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range base {
		if base[i].Domain == DomainPhysics {
			continue
		}
		if base[i] != changed[i] {
			t.Errorf("%s changed from %+v to %+v", base[i].Domain, base[i], changed[i])
		}
	}
}

func TestComputeDomainResults_ScoreBoundsAndMonotonicLevel(t *testing.T) {
	cfg := DefaultScoringConfig()
	for s := 1; s <= 5; s++ {
		for _, c := range []bool{true, false} {
			results, err := ComputeDomainResults(
				takeQuiz(t, map[Domain]int{DomainMath: s}, map[Domain]bool{DomainMath: c}), cfg)
			if err != nil {
				t.Fatal(err)
			}
			for _, r := range results {
				if r.Score < 0 || r.Score > 100 {
					t.Errorf("%s score %d outside [0,100]", r.Domain, r.Score)
				}
			}
		}
	}

	prev := LevelWeak
	for score := 0; score <= 100; score++ {
		lvl := cfg.LevelFor(score)
		if lvl.Rank() < prev.Rank() {
			t.Fatalf("LevelFor(%d) = %s, lower than %s at %d", score, lvl, prev, score-1)
		}
		prev = lvl
	}
}

func TestComputeDomainResults_MissingSelfAssessmentIsImputed(t *testing.T) {
	var answers []Answer
	for _, a := range takeQuiz(t, nil, nil) {
		if a.Domain == DomainHumanities && a.Type == AnswerSelfAssessment {
			continue
		}
		answers = append(answers, a)
	}

	results, err := ComputeDomainResults(answers, DefaultScoringConfig())
	if err != nil {
		t.Fatalf("ComputeDomainResults: %v", err)
	}
	h := resultFor(results, DomainHumanities)
	if !h.Imputed {
		t.Error("humanities not marked imputed")
	}
	if h.SelfScore != DefaultSelfScore {
		t.Errorf("SelfScore = %d, want %d", h.SelfScore, DefaultSelfScore)
	}
	if h.Score != 65 {
		t.Errorf("Score = %d, want 65", h.Score)
	}
}

func TestComputeDomainResults_ConfigurableDefaultSelfScore(t *testing.T) {
	cfg := DefaultScoringConfig()
	cfg.DefaultSelfScore = 1

	results, err := ComputeDomainResults(nil, cfg)
	if err != nil {
		t.Fatalf("ComputeDomainResults: %v", err)
	}
	for _, r := range results {
		if r.Score != 0 || !r.Imputed || r.ChecksTotal != 0 {
			t.Errorf("%s = %+v, want imputed score 0 with no checks", r.Domain, r)
		}
	}
}

func TestComputeDomainResults_RejectsMalformed(t *testing.T) {
	good := takeQuiz(t, nil, nil)

	tests := []struct {
		name   string
		mutate func([]Answer) []Answer
	}{
		{"unknown domain", func(a []Answer) []Answer {
			a[0].Domain = "chemistry"
			return a
		}},
		{"unknown type", func(a []Answer) []Answer {
			a[0].Type = "essay"
			return a
		}},
		{"self score out of range", func(a []Answer) []Answer {
			a[0].SelfAssessmentScore = IntPtr(6)
			return a
		}},
		{"self-assessment without score", func(a []Answer) []Answer {
			a[0].SelfAssessmentScore = nil
			return a
		}},
		{"micro-check without correctness", func(a []Answer) []Answer {
			a[1].MicroCheckCorrect = nil
			return a
		}},
		{"duplicate self-assessment", func(a []Answer) []Answer {
			return append(a, a[0])
		}},
		{"difficulty mismatch", func(a []Answer) []Answer {
			a[1].MicroCheckDifficulty = DifficultyHard
			return a
		}},
		{"missing question id", func(a []Answer) []Answer {
			a[2].QuestionID = ""
			return a
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]Answer, len(good))
			copy(answers, good)
			_, err := ComputeDomainResults(tt.mutate(answers), DefaultScoringConfig())
			if !errors.Is(err, ErrInvalidAnswers) {
				t.Errorf("err = %v, want ErrInvalidAnswers", err)
			}
		})
	}
}

func TestComputeDomainResults_RejectsBadConfig(t *testing.T) {
	cfg := ScoringConfig{DefaultSelfScore: 3, WeakBelow: 70, StrongFrom: 40}
	if _, err := ComputeDomainResults(nil, cfg); err == nil {
		t.Error("expected error for inverted thresholds")
	}
}
