package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored assessments and their roadmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		export, _ := cmd.Flags().GetString("export")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		w := cmd.OutOrStdout()
		if export != "" {
			rec, err := st.AssessmentRepo().Get(ctx, export)
			if err != nil {
				return err
			}
			return writeJSON(w, rec.Answers)
		}

		recs, err := st.AssessmentRepo().List(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		if len(recs) == 0 {
			fmt.Fprintln(w, "No assessments stored yet. Run: prepcoach assess")
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-16s  %-2s  %-32s  %s\n", "ID", "Taken", "", "Weakest", "Roadmaps")
		fmt.Fprintln(w, strings.Repeat("─", 110))
		for _, rec := range recs {
			locale, _ := i18n.ParseLocale(rec.Locale)
			var weak []string
			for _, r := range assessment.WeakestDomains(rec.Results, 2) {
				weak = append(weak, fmt.Sprintf("%s %d", r.Domain, r.Score))
			}

			roadmaps, err := st.RoadmapRepo().ListForAssessment(ctx, rec.ID)
			if err != nil {
				return fmt.Errorf("list roadmaps for %s: %w", rec.ID, err)
			}
			plans := "-"
			if len(roadmaps) > 0 {
				last := roadmaps[0]
				plans = fmt.Sprintf("%d (last: %dw × %gh, %s)", len(roadmaps), last.WeeksToExam, last.HoursPerWeek,
					i18n.T(locale, "feasibility."+last.FeasibleLabel))
			}

			fmt.Fprintf(w, "%-36s  %-16s  %-2s  %-32s  %s\n",
				rec.ID,
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				locale,
				strings.Join(weak, ", "),
				plans)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyCmd.Flags().String("export", "", "Print the answers of the assessment with this ID as JSON")
}
