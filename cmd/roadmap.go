package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/prep"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a study roadmap from answers or a stored assessment",
	Long: `Roadmap fits the curriculum into the given weeks and weekly hours.

With --answers the answers are scored and stored first; with --assessment
or --latest a new roadmap is added to a stored assessment.`,
	RunE: runRoadmap,
}

func init() {
	f := roadmapCmd.Flags()
	f.String("answers", "", "Answers JSON file, or - for stdin")
	f.String("assessment", "", "ID of a stored assessment")
	f.Bool("latest", false, "Use the most recent stored assessment")
	f.Int("weeks", 0, "Weeks until the exam (required)")
	f.Float64("hours", 0, "Study hours per week (required)")
	f.String("curriculum", "", "Curriculum file (.yaml or .json) replacing the built-in one")
	f.String("strategy", "", "Print only this plan: priority or curriculum")
	f.Bool("json", false, "Print the roadmap as JSON")
	f.Bool("coach", false, "Ask the LLM coach for a note on the plan")
	roadmapCmd.MarkFlagsMutuallyExclusive("answers", "assessment", "latest")
	roadmapCmd.MarkFlagsOneRequired("answers", "assessment", "latest")
	_ = roadmapCmd.MarkFlagRequired("weeks")
	_ = roadmapCmd.MarkFlagRequired("hours")
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()
	answersPath, _ := f.GetString("answers")
	assessmentID, _ := f.GetString("assessment")
	latest, _ := f.GetBool("latest")
	weeks, _ := f.GetInt("weeks")
	hours, _ := f.GetFloat64("hours")
	curPath, _ := f.GetString("curriculum")
	strategy, _ := f.GetString("strategy")
	asJSON, _ := f.GetBool("json")
	withCoach, _ := f.GetBool("coach")

	cur, err := loadCurriculum(curPath)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var c *coach.Service
	if withCoach {
		c = newCoach(ctx, st.EventRepo())
		if !c.Enabled() {
			rt.log.Warn("coach requested but no LLM provider is configured")
		}
	}
	svc := newPrep(st, cur, c)
	budget := prep.Budget{WeeksToExam: weeks, HoursPerWeek: hours}

	var out *prep.Outcome
	switch {
	case answersPath != "":
		answers, err := readAnswers(answersPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
		out, err = svc.Complete(ctx, prep.CompleteInput{
			Answers:   answers,
			Locale:    rt.locale,
			Budget:    &budget,
			WithCoach: withCoach,
		})
		if err != nil {
			return err
		}
	default:
		if latest {
			rec, err := st.AssessmentRepo().Latest(ctx)
			if err != nil {
				return fmt.Errorf("latest assessment: %w", err)
			}
			assessmentID = rec.ID
		}
		out, err = svc.Regenerate(ctx, assessmentID, budget, withCoach)
		if err != nil {
			return err
		}
	}

	if out.RoadmapErr != nil {
		return out.RoadmapErr
	}

	rms := out.Roadmap.Result.Roadmaps
	if strategy != "" {
		rm, ok := out.Roadmap.Result.Roadmap(roadmap.Strategy(strategy))
		if !ok {
			return fmt.Errorf("no %q plan was generated (configured strategies: %v)", strategy, rt.cfg.Roadmap.Strategies)
		}
		rms = []roadmap.Roadmap{*rm}
	}

	w := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(w, struct {
			AssessmentID string            `json:"assessment_id"`
			RoadmapID    string            `json:"roadmap_id"`
			Roadmaps     []roadmap.Roadmap `json:"roadmaps"`
			Note         *coach.Note       `json:"coach_note,omitempty"`
		}{out.Assessment.ID, out.Roadmap.ID, rms, out.Note})
	}

	locale := rt.locale
	printResults(w, out.Assessment.Results, locale)
	for _, rm := range rms {
		fmt.Fprintln(w)
		printRoadmap(w, rm, weeks, locale)
	}
	if out.Note != nil {
		fmt.Fprintln(w)
		printNote(w, out.Note, locale)
	} else if withCoach && out.NoteErr != nil && !errors.Is(out.NoteErr, coach.ErrNoProvider) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, i18n.T(locale, "ui.coach.failed"))
	}
	fmt.Fprintf(w, "\nassessment %s · roadmap %s\n", out.Assessment.ID, out.Roadmap.ID)
	return nil
}

func printRoadmap(w io.Writer, rm roadmap.Roadmap, weeks int, locale i18n.Locale) {
	title := i18n.T(locale, "ui.results.plan", len(rm.Sprints), weeks) + " · " +
		i18n.T(locale, "ui.results.strat", i18n.T(locale, "strategy."+string(rm.Strategy)))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%s (%.0f%%)\n\n", rm.Snapshot.Summary, rm.Snapshot.Utilization*100)

	for _, ph := range rm.Phases {
		fmt.Fprintf(w, "%s: sprints %d-%d\n", ph.Label, ph.FirstSprint, ph.LastSprint)
	}
	if len(rm.Phases) > 0 {
		fmt.Fprintln(w)
	}

	for _, sp := range rm.Sprints {
		fmt.Fprintf(w, "%s  %-9s %s\n",
			i18n.T(locale, "ui.results.sprint", sp.Number, sp.WeekStart, sp.WeekEnd),
			i18n.T(locale, "workload."+string(sp.Workload)),
			i18n.T(locale, "ui.results.minutes", sp.AssignedMinutes, sp.CapacityMinutes))
		fmt.Fprintf(w, "   %s\n", sp.Goal)
		for _, it := range sp.Items {
			name := it.SubmoduleName
			if name == "" {
				name = it.SubmoduleID
			}
			fmt.Fprintf(w, "   - %s / %s  %d min\n", it.Section, name, it.Minutes)
		}
		if sp.Checkpoint != nil {
			fmt.Fprintf(w, "   > %s\n", sp.Checkpoint.Label)
		}
	}

	if len(rm.Unscheduled) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, i18n.T(locale, "ui.results.unsched", len(rm.Unscheduled)))
		for _, u := range rm.Unscheduled {
			fmt.Fprintf(w, "   - %s / %s  %d min (%s)\n", u.Section, u.SubmoduleID, u.Minutes, u.Reason)
		}
	}
}

func printNote(w io.Writer, n *coach.Note, locale i18n.Locale) {
	fmt.Fprintln(w, i18n.T(locale, "ui.coach.title"))
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintln(w, n.Summary)
	for _, tip := range n.FocusTips {
		fmt.Fprintln(w, "• "+tip)
	}
	if n.Warning != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "! "+n.Warning)
	}
}
