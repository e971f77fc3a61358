package roadmap

import "math"

// ceilingFor is the hard cap on assigned minutes for a sprint.
func ceilingFor(capacity int, cfg Config) int {
	return int(math.Floor(float64(capacity)*cfg.OverloadCeiling + 1e-9))
}

// pack assigns items to sprints in worklist order and returns what could
// not be placed. Submodules are never split.
//
// Each sprint but the last is filled until it reaches its pacing target:
// the remaining work spread evenly over the remaining weeks, capped at the
// sprint's capacity. An item that would push the sprint past its ceiling
// waits for the next sprint while smaller items behind it are still tried.
// The last sprint takes everything that still fits under its ceiling.
// Leftovers then go first-fit into any earlier sprint with room under its
// ceiling; only what fits nowhere is reported as out of time.
func pack(sprints []Sprint, items []workItem, weeks int, cfg Config) []Unscheduled {
	unscheduled := []Unscheduled{}

	maxCeiling := 0
	for _, sp := range sprints {
		maxCeiling = max(maxCeiling, ceilingFor(sp.CapacityMinutes, cfg))
	}

	queue := make([]workItem, 0, len(items))
	remaining := 0
	for _, it := range items {
		if it.minutes > maxCeiling {
			unscheduled = append(unscheduled, unscheduledItem(it, ReasonTooLarge))
			continue
		}
		queue = append(queue, it)
		remaining += it.minutes
	}

	for i := range sprints {
		sp := &sprints[i]
		ceiling := ceilingFor(sp.CapacityMinutes, cfg)

		target := ceiling
		if i < len(sprints)-1 {
			remainingWeeks := weeks - sp.WeekStart + 1
			share := int(math.Ceil(float64(remaining*sp.Weeks()) / float64(remainingWeeks)))
			target = min(sp.CapacityMinutes, share)
		}

		waiting := queue[:0:0]
		for j, it := range queue {
			if sp.AssignedMinutes >= target {
				waiting = append(waiting, queue[j:]...)
				break
			}
			if sp.AssignedMinutes+it.minutes > ceiling {
				waiting = append(waiting, it)
				continue
			}
			place(sp, it)
			remaining -= it.minutes
		}
		queue = waiting
	}

	for _, it := range queue {
		if !backfill(sprints, it, cfg) {
			unscheduled = append(unscheduled, unscheduledItem(it, ReasonOutOfTime))
		}
	}
	return unscheduled
}

// backfill places it in the first sprint with room under its ceiling.
func backfill(sprints []Sprint, it workItem, cfg Config) bool {
	for i := range sprints {
		sp := &sprints[i]
		if sp.AssignedMinutes+it.minutes <= ceilingFor(sp.CapacityMinutes, cfg) {
			place(sp, it)
			return true
		}
	}
	return false
}

func place(sp *Sprint, it workItem) {
	sp.Items = append(sp.Items, assignment(it))
	sp.AssignedMinutes += it.minutes
}

func unscheduledItem(it workItem, reason UnscheduledReason) Unscheduled {
	return Unscheduled{
		Section:     it.section,
		SubmoduleID: it.sub.ID,
		Minutes:     it.minutes,
		Reason:      reason,
	}
}
