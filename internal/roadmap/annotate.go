package roadmap

import (
	"math"
	"strings"

	"github.com/abhisek/prepcoach/internal/i18n"
)

// classifyWorkload maps assigned/capacity to a tier: below LowBelow is low,
// up to HighAbove is medium, above is high.
func classifyWorkload(assigned, capacity int, cfg Config) Workload {
	if capacity <= 0 {
		if assigned > 0 {
			return WorkloadHigh
		}
		return WorkloadLow
	}
	ratio := float64(assigned) / float64(capacity)
	switch {
	case ratio < cfg.LowBelow:
		return WorkloadLow
	case ratio <= cfg.HighAbove:
		return WorkloadMedium
	default:
		return WorkloadHigh
	}
}

// phaseCounts splits n sprints into foundation (about 40%), review (about
// 20%, at least one sprint once there are two) and practice (the rest).
func phaseCounts(n int) (foundation, practice, review int) {
	if n <= 0 {
		return 0, 0, 0
	}
	foundation = max(1, int(math.Round(float64(n)*0.4)))
	switch {
	case n >= 3:
		review = max(1, int(math.Round(float64(n)*0.2)))
	case n == 2:
		review = 1
	}
	if foundation+review > n {
		foundation = n - review
	}
	practice = n - foundation - review
	return foundation, practice, review
}

// assignPhases labels each sprint and returns the non-empty phase ranges.
// It never moves content.
func assignPhases(sprints []Sprint, locale i18n.Locale) []PhaseRange {
	f, p, r := phaseCounts(len(sprints))
	var ranges []PhaseRange
	start := 0
	for _, band := range []struct {
		phase Phase
		count int
	}{{PhaseFoundation, f}, {PhasePractice, p}, {PhaseReview, r}} {
		if band.count == 0 {
			continue
		}
		for i := start; i < start+band.count; i++ {
			sprints[i].Phase = band.phase
		}
		ranges = append(ranges, PhaseRange{
			Phase:       band.phase,
			Label:       i18n.T(locale, "phase."+string(band.phase)),
			FirstSprint: sprints[start].Number,
			LastSprint:  sprints[start+band.count-1].Number,
		})
		start += band.count
	}
	return ranges
}

// goalFor builds the sprint goal from its phase and the (at most two)
// sections holding most of its minutes.
func goalFor(sp Sprint, locale i18n.Locale) string {
	sections := dominantSections(sp.Items, 2)
	if len(sections) == 0 {
		return i18n.T(locale, "goal.open")
	}
	return i18n.T(locale, "goal."+string(sp.Phase), strings.Join(sections, i18n.T(locale, "goal.and")))
}

func dominantSections(items []Assignment, n int) []string {
	minutes := make(map[string]int)
	var seen []string
	for _, it := range items {
		if _, ok := minutes[it.Section]; !ok {
			seen = append(seen, it.Section)
		}
		minutes[it.Section] += it.Minutes
	}

	// Stable selection: most minutes first, first appearance breaks ties.
	var out []string
	used := make(map[string]bool)
	for len(out) < n && len(out) < len(seen) {
		best := ""
		for _, s := range seen {
			if used[s] {
				continue
			}
			if best == "" || minutes[s] > minutes[best] {
				best = s
			}
		}
		used[best] = true
		out = append(out, best)
	}
	return out
}

// placeCheckpoints adds a practice set after every cfg.CheckpointEvery-th
// sprint, sized from the unique questions covered since the previous
// checkpoint, and closes the final sprint with a timed mock test.
func placeCheckpoints(sprints []Sprint, cfg Config, locale i18n.Locale) {
	since := 0
	for i := range sprints {
		sp := &sprints[i]
		for _, it := range sp.Items {
			since += it.UniqueQuestions
		}

		if i == len(sprints)-1 {
			sp.Checkpoint = &Checkpoint{
				Kind:      CheckpointTimedTest,
				Questions: cfg.MockTestQuestions,
				Label:     i18n.T(locale, "checkpoint.timed_test"),
			}
			return
		}
		if sp.Number%cfg.CheckpointEvery == 0 && since > 0 {
			sp.Checkpoint = &Checkpoint{
				Kind:      CheckpointPractice,
				Questions: since,
				Label:     i18n.T(locale, "checkpoint.practice", since),
			}
			since = 0
		}
	}
}

// snapshot summarizes feasibility. Any unscheduled content makes the plan
// infeasible regardless of utilization.
func snapshot(in Input, cfg Config, rm Roadmap, submodules int) Snapshot {
	s := Snapshot{
		TotalMinutes:     in.Curriculum.TotalMinutes(),
		AvailableMinutes: int(math.Round(float64(in.WeeksToExam) * in.HoursPerWeek * 60)),
		SubmoduleCount:   submodules,
		UnscheduledCount: len(rm.Unscheduled),
	}
	for _, sp := range rm.Sprints {
		s.ScheduledMinutes += sp.AssignedMinutes
	}
	if s.AvailableMinutes > 0 {
		s.Utilization = math.Round(float64(s.TotalMinutes)/float64(s.AvailableMinutes)*1000) / 1000
	}

	switch {
	case submodules == 0:
		s.FeasibleLabel = FeasibleEmpty
	case s.UnscheduledCount > 0 || s.AvailableMinutes == 0 || s.Utilization > cfg.FeasibleTolerance:
		s.FeasibleLabel = FeasibleInfeasible
	case s.Utilization <= cfg.ComfortableUpTo:
		s.FeasibleLabel = FeasibleComfortable
	default:
		s.FeasibleLabel = FeasibleTight
	}
	s.Feasible = s.FeasibleLabel != FeasibleInfeasible
	s.Summary = i18n.T(in.Locale, "feasibility."+string(s.FeasibleLabel))
	return s
}
