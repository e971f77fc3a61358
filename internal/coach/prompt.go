package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

const systemPrompt = `You are a calm, practical study coach for candidates preparing for a university admission test (architecture and design programmes). You receive self-assessment scores and a generated study roadmap. You never change the roadmap; you explain it and give focused advice.`

var languageNames = map[i18n.Locale]string{
	i18n.LocaleEN: "English",
	i18n.LocaleIT: "Italian",
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Time to exam: %d weeks at %.1f hours per week\n", in.WeeksToExam, in.HoursPerWeek)

	b.WriteString("\nSelf-assessment (0-100):\n")
	for _, r := range in.Results {
		line := fmt.Sprintf("- %s: %d (%s)", r.Domain, r.Score, r.Level)
		if r.ChecksTotal > 0 {
			line += fmt.Sprintf(", micro-checks %d/%d", r.ChecksCorrect, r.ChecksTotal)
		}
		if r.Imputed {
			line += ", not assessed"
		}
		b.WriteString(line + "\n")
	}

	if rm := in.Roadmap; rm != nil {
		s := rm.Snapshot
		fmt.Fprintf(&b, "\nRoadmap (%s order): %d sprints, %d of %d minutes scheduled, utilization %.0f%%, %s\n",
			rm.Strategy, len(rm.Sprints), s.ScheduledMinutes, s.TotalMinutes, s.Utilization*100, s.FeasibleLabel)
		for _, sp := range rm.Sprints {
			fmt.Fprintf(&b, "- Sprint %d (weeks %d-%d, %s, %s load): %s\n",
				sp.Number, sp.WeekStart, sp.WeekEnd, sp.Phase, sp.Workload, sp.Goal)
		}
		if len(rm.Unscheduled) > 0 {
			b.WriteString("Not scheduled:\n")
			for _, u := range rm.Unscheduled {
				fmt.Fprintf(&b, "- %s / %s (%d min, %s)\n", u.Section, u.SubmoduleID, u.Minutes, u.Reason)
			}
		}
	}

	lang := languageNames[in.Locale]
	if lang == "" {
		lang = languageNames[i18n.DefaultLocale]
	}
	fmt.Fprintf(&b, `
Instructions:
1. Summarise in 2-4 sentences where the candidate stands and why the first sprints focus where they do.
2. Give concrete tips for the weakest areas first. Refer to sections by name.
3. If the plan is tight or infeasible, or content is not scheduled, say so plainly in "warning" and suggest more hours or weeks. Otherwise leave "warning" empty.
4. Write in %s. Plain text only, no markdown.`, lang)

	return b.String()
}

// needsWarning reports whether the plan alone justifies a warning, used
// when the model leaves it empty on a plan that cannot be completed.
func needsWarning(rm *roadmap.Roadmap) bool {
	return rm != nil && (!rm.Snapshot.Feasible || len(rm.Unscheduled) > 0)
}
