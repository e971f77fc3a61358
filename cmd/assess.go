package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/prepcoach/internal/app"
	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/prep"
	screenenv "github.com/abhisek/prepcoach/internal/screens/env"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the self-assessment and build a roadmap interactively",
	RunE:  runAssess,
}

func init() {
	assessCmd.Flags().Int("weeks", 0, "Prefill weeks to the exam")
	assessCmd.Flags().Float64("hours", 0, "Prefill study hours per week")
}

// runAssess opens the store, builds dependencies, and launches the TUI.
func runAssess(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cur, err := loadCurriculum("")
	if err != nil {
		return err
	}
	c := newCoach(cmd.Context(), st.EventRepo())

	var b prep.Budget
	if cmd.Flags().Lookup("weeks") != nil {
		b.WeeksToExam, _ = cmd.Flags().GetInt("weeks")
		b.HoursPerWeek, _ = cmd.Flags().GetFloat64("hours")
	}

	return app.Run(&screenenv.Env{
		Prep:        newPrep(st, cur, c),
		Assessments: st.AssessmentRepo(),
		Coach:       c,
		Bank:        assessment.DefaultBank(),
		Locale:      rt.locale,
		Budget:      b,
		Log:         rt.log,
	})
}
