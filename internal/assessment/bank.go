package assessment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/prepcoach/internal/i18n"
)

// Option is one selectable choice. Score is set on self-assessment options.
type Option struct {
	ID      string `json:"id"`
	TextKey string `json:"text_key"`
	Score   int    `json:"score,omitempty"`
}

// Question is a quiz item. Display text lives in the i18n catalog and is
// referenced by key only.
type Question struct {
	ID         string     `json:"id"`
	Domain     Domain     `json:"domain"`
	Type       AnswerType `json:"type"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	PromptKey  string     `json:"prompt_key"`
	Options    []Option   `json:"options"`
	CorrectID  string     `json:"-"`
}

// Prompt renders the question prompt in locale.
func (q Question) Prompt(locale i18n.Locale) string {
	if q.Type == AnswerSelfAssessment {
		return i18n.T(locale, q.PromptKey, i18n.T(locale, "domain."+string(q.Domain)))
	}
	return i18n.T(locale, q.PromptKey)
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Bank holds one self-assessment question per domain and one micro-check
// per domain and difficulty.
type Bank struct {
	self   map[Domain]Question
	checks map[Domain]map[Difficulty]Question
}

// correctOption is the answer key of the bundled micro-checks.
var correctOption = map[Domain]map[Difficulty]string{
	DomainReading:    {DifficultyEasy: "b", DifficultyMedium: "c", DifficultyHard: "a"},
	DomainLogic:      {DifficultyEasy: "d", DifficultyMedium: "b", DifficultyHard: "c"},
	DomainSpatial:    {DifficultyEasy: "a", DifficultyMedium: "d", DifficultyHard: "b"},
	DomainMath:       {DifficultyEasy: "a", DifficultyMedium: "c", DifficultyHard: "d"},
	DomainPhysics:    {DifficultyEasy: "a", DifficultyMedium: "b", DifficultyHard: "c"},
	DomainHumanities: {DifficultyEasy: "b", DifficultyMedium: "a", DifficultyHard: "d"},
}

// DefaultBank builds the bundled question bank.
func DefaultBank() *Bank {
	b := &Bank{
		self:   make(map[Domain]Question, len(domainOrder)),
		checks: make(map[Domain]map[Difficulty]Question, len(domainOrder)),
	}
	for _, d := range domainOrder {
		self := Question{
			ID:        "self-" + string(d),
			Domain:    d,
			Type:      AnswerSelfAssessment,
			PromptKey: "self.prompt",
		}
		for s := 1; s <= 5; s++ {
			id := strconv.Itoa(s)
			self.Options = append(self.Options, Option{ID: id, TextKey: "self.option." + id, Score: s})
		}
		b.self[d] = self

		b.checks[d] = make(map[Difficulty]Question, 3)
		for _, diff := range Difficulties() {
			prefix := fmt.Sprintf("check.%s.%s", d, diff)
			q := Question{
				ID:         fmt.Sprintf("check-%s-%s", d, diff),
				Domain:     d,
				Type:       AnswerMicroCheck,
				Difficulty: diff,
				PromptKey:  prefix + ".prompt",
				CorrectID:  correctOption[d][diff],
			}
			for _, id := range []string{"a", "b", "c", "d"} {
				q.Options = append(q.Options, Option{ID: id, TextKey: prefix + "." + id})
			}
			b.checks[d][diff] = q
		}
	}
	return b
}

// SelfAssessment returns the confidence question for d.
func (b *Bank) SelfAssessment(d Domain) (Question, bool) {
	q, ok := b.self[d]
	return q, ok
}

// MicroCheck returns the micro-check for d at the given tier.
func (b *Bank) MicroCheck(d Domain, diff Difficulty) (Question, bool) {
	q, ok := b.checks[d][diff]
	return q, ok
}

// SelectMicroCheck picks the micro-check variant to present after the
// respondent rated themselves selfScore in d.
func SelectMicroCheck(b *Bank, d Domain, selfScore int) (Question, error) {
	if selfScore < 1 || selfScore > 5 {
		return Question{}, fmt.Errorf("self-assessment score %d out of range 1-5", selfScore)
	}
	diff := DifficultyForScore(selfScore)
	q, ok := b.MicroCheck(d, diff)
	if !ok {
		return Question{}, fmt.Errorf("no %s micro-check for domain %q", diff, d)
	}
	return q, nil
}

// Validate checks that every domain has a complete question set with
// resolvable text keys and answer keys.
func (b *Bank) Validate() error {
	var errs []string
	checkKeys := func(q Question) {
		if !i18n.Has(q.PromptKey) {
			errs = append(errs, fmt.Sprintf("question %q: unknown prompt key %q", q.ID, q.PromptKey))
		}
		for _, o := range q.Options {
			if !i18n.Has(o.TextKey) {
				errs = append(errs, fmt.Sprintf("question %q: unknown option key %q", q.ID, o.TextKey))
			}
		}
	}

	for _, d := range domainOrder {
		q, ok := b.self[d]
		if !ok {
			errs = append(errs, fmt.Sprintf("domain %q has no self-assessment question", d))
		} else {
			checkKeys(q)
		}
		for _, diff := range Difficulties() {
			q, ok := b.checks[d][diff]
			if !ok {
				errs = append(errs, fmt.Sprintf("domain %q has no %s micro-check", d, diff))
				continue
			}
			checkKeys(q)
			if _, ok := q.Option(q.CorrectID); !ok {
				errs = append(errs, fmt.Sprintf("question %q: correct option %q not among options", q.ID, q.CorrectID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
