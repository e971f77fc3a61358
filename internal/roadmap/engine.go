package roadmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/curriculum"
	"github.com/abhisek/prepcoach/internal/i18n"
)

// levelWeight: weaker sections weigh more and are scheduled earlier.
var levelWeight = map[assessment.Level]int{
	assessment.LevelWeak:     3,
	assessment.LevelModerate: 2,
	assessment.LevelStrong:   1,
}

// retakeFactor is the share of a submodule's questions planned again as
// retake practice, by level.
var retakeFactor = map[assessment.Level]float64{
	assessment.LevelWeak:     0.5,
	assessment.LevelModerate: 0.25,
	assessment.LevelStrong:   0.1,
}

// workItem is one flattened submodule.
type workItem struct {
	section    string
	sectionIdx int
	subIdx     int
	sub        curriculum.Submodule
	minutes    int
	level      assessment.Level
}

// Generate builds one roadmap per configured strategy.
func Generate(in Input, cfg Config) (*Result, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if in.Locale == "" {
		in.Locale = i18n.DefaultLocale
	}

	items := flatten(in)
	res := &Result{Roadmaps: make([]Roadmap, 0, len(cfg.Strategies))}
	for _, s := range cfg.Strategies {
		res.Roadmaps = append(res.Roadmaps, build(in, cfg, s, order(items, s)))
	}
	return res, nil
}

func checkInput(in Input) error {
	if in.WeeksToExam <= 0 || in.WeeksToExam > MaxWeeksToExam {
		return fmt.Errorf("%w: weeks to exam must be between 1 and %d, got %d", ErrInvalidInput, MaxWeeksToExam, in.WeeksToExam)
	}
	if !(in.HoursPerWeek > 0 && in.HoursPerWeek <= MaxHoursPerWeek) {
		return fmt.Errorf("%w: hours per week must be in (0, %d], got %v", ErrInvalidInput, MaxHoursPerWeek, in.HoursPerWeek)
	}
	if in.Curriculum == nil {
		return fmt.Errorf("%w: curriculum is required", ErrInvalidInput)
	}
	if err := curriculum.Validate(in.Curriculum); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for section, lvl := range in.LevelsBySection {
		if !lvl.Valid() {
			return fmt.Errorf("%w: section %q has unknown level %q", ErrInvalidInput, section, lvl)
		}
	}
	return nil
}

// flatten walks the curriculum in stated order. Sections without
// submodules contribute nothing.
func flatten(in Input) []workItem {
	var items []workItem
	for si, sec := range in.Curriculum.Sections {
		lvl, ok := in.LevelsBySection[sec.Name]
		if !ok {
			lvl = assessment.DefaultSectionLevel
		}
		for mi, sub := range sec.Submodules {
			items = append(items, workItem{
				section:    sec.Name,
				sectionIdx: si,
				subIdx:     mi,
				sub:        sub,
				minutes:    sub.Stats.Minutes(),
				level:      lvl,
			})
		}
	}
	return items
}

// order returns the worklist for strategy s. With every section at the same
// level, priority order equals curriculum order.
func order(items []workItem, s Strategy) []workItem {
	out := make([]workItem, len(items))
	copy(out, items)
	if s != StrategyPriority {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := levelWeight[out[i].level], levelWeight[out[j].level]
		if wi != wj {
			return wi > wj
		}
		if out[i].sectionIdx != out[j].sectionIdx {
			return out[i].sectionIdx < out[j].sectionIdx
		}
		return out[i].subIdx < out[j].subIdx
	})
	return out
}

func build(in Input, cfg Config, strategy Strategy, items []workItem) Roadmap {
	rm := Roadmap{
		Strategy:    strategy,
		Sprints:     []Sprint{},
		Phases:      []PhaseRange{},
		Unscheduled: []Unscheduled{},
	}
	if len(items) > 0 {
		rm.Sprints = layoutSprints(in, cfg)
		rm.Unscheduled = pack(rm.Sprints, items, in.WeeksToExam, cfg)
		rm.Phases = assignPhases(rm.Sprints, in.Locale)
		for i := range rm.Sprints {
			sp := &rm.Sprints[i]
			sp.Workload = classifyWorkload(sp.AssignedMinutes, sp.CapacityMinutes, cfg)
			sp.Goal = goalFor(*sp, in.Locale)
		}
		placeCheckpoints(rm.Sprints, cfg, in.Locale)
	}
	rm.Snapshot = snapshot(in, cfg, rm, len(items))
	return rm
}

// layoutSprints splits [1, weeks] into sprints of cfg.SprintWeeks. The
// last sprint takes whatever weeks remain, so spans are contiguous and
// cover every week exactly once.
func layoutSprints(in Input, cfg Config) []Sprint {
	n := max(1, in.WeeksToExam/cfg.SprintWeeks)
	sprints := make([]Sprint, n)
	week := 1
	for i := range sprints {
		end := week + cfg.SprintWeeks - 1
		if i == n-1 {
			end = in.WeeksToExam
		}
		sprints[i] = Sprint{
			Number:          i + 1,
			WeekStart:       week,
			WeekEnd:         end,
			Items:           []Assignment{},
			CapacityMinutes: int(math.Round(float64(end-week+1) * in.HoursPerWeek * 60)),
		}
		week = end + 1
	}
	return sprints
}

func assignment(it workItem) Assignment {
	q := it.sub.Stats.QuestionsTotal
	return Assignment{
		Section:         it.section,
		SubmoduleID:     it.sub.ID,
		SubmoduleName:   it.sub.Name,
		Level:           it.level,
		Minutes:         it.minutes,
		UniqueQuestions: q,
		RetakeQuestions: int(math.Round(float64(q) * retakeFactor[it.level])),
	}
}
