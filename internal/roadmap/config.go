package roadmap

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the tunable planning parameters.
type Config struct {
	// SprintWeeks is the nominal sprint length. The last sprint absorbs any
	// remainder, so it may be longer.
	SprintWeeks int `mapstructure:"sprint_weeks" validate:"min=1"`

	// CheckpointEvery places a practice set after every N-th sprint.
	CheckpointEvery int `mapstructure:"checkpoint_every" validate:"min=1"`

	// MockTestQuestions sizes the timed mock test closing the final sprint.
	MockTestQuestions int `mapstructure:"mock_test_questions" validate:"min=1"`

	// OverloadCeiling caps any sprint at capacity × ceiling.
	OverloadCeiling float64 `mapstructure:"overload_ceiling" validate:"gte=1,lte=2"`

	// LowBelow and HighAbove bound the medium workload band, as a ratio of
	// assigned minutes to capacity.
	LowBelow  float64 `mapstructure:"low_below" validate:"gt=0,lt=1"`
	HighAbove float64 `mapstructure:"high_above" validate:"gtfield=LowBelow"`

	// ComfortableUpTo is the utilization at or under which a plan is
	// comfortable. Above it, up to FeasibleTolerance, it is tight.
	ComfortableUpTo   float64 `mapstructure:"comfortable_up_to" validate:"gt=0,lte=1"`
	FeasibleTolerance float64 `mapstructure:"feasible_tolerance" validate:"gtefield=ComfortableUpTo"`

	Strategies []Strategy `mapstructure:"strategies" validate:"dive,oneof=priority curriculum"`
}

// DefaultConfig returns the documented planning defaults.
func DefaultConfig() Config {
	return Config{
		SprintWeeks:       2,
		CheckpointEvery:   2,
		MockTestQuestions: 60,
		OverloadCeiling:   1.10,
		LowBelow:          0.60,
		HighAbove:         1.00,
		ComfortableUpTo:   0.80,
		FeasibleTolerance: 1.10,
		Strategies:        []Strategy{StrategyPriority, StrategyCurriculum},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalize fills zero fields from DefaultConfig and validates the result.
// The priority strategy is always present and always first.
func (c Config) normalize() (Config, error) {
	d := DefaultConfig()
	if c.SprintWeeks == 0 {
		c.SprintWeeks = d.SprintWeeks
	}
	if c.CheckpointEvery == 0 {
		c.CheckpointEvery = d.CheckpointEvery
	}
	if c.MockTestQuestions == 0 {
		c.MockTestQuestions = d.MockTestQuestions
	}
	if c.OverloadCeiling == 0 {
		c.OverloadCeiling = d.OverloadCeiling
	}
	if c.LowBelow == 0 {
		c.LowBelow = d.LowBelow
	}
	if c.HighAbove == 0 {
		c.HighAbove = d.HighAbove
	}
	if c.ComfortableUpTo == 0 {
		c.ComfortableUpTo = d.ComfortableUpTo
	}
	if c.FeasibleTolerance == 0 {
		c.FeasibleTolerance = d.FeasibleTolerance
	}

	strategies := []Strategy{StrategyPriority}
	for _, s := range c.Strategies {
		if s != StrategyPriority {
			strategies = append(strategies, s)
		}
	}
	if len(c.Strategies) == 0 {
		strategies = d.Strategies
	}
	c.Strategies = dedupe(strategies)

	if err := validate.Struct(c); err != nil {
		return c, fmt.Errorf("roadmap config: %w", err)
	}
	return c, nil
}

func dedupe(in []Strategy) []Strategy {
	seen := make(map[Strategy]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
