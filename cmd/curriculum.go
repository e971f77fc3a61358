package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/curriculum"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Inspect and validate curriculum files",
}

var curriculumShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the sections and workload of a curriculum",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		o, err := loadCurriculum(path)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if format != "" {
			data, err := curriculum.Marshal(o, curriculum.Format(format))
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}

		mapped := map[string]string{}
		for d, section := range assessment.DefaultSectionMap {
			mapped[section] = string(d)
		}

		fmt.Fprintf(w, "%s  (version %s)\n", o.Name, o.Version)
		fmt.Fprintln(w, strings.Repeat("─", 72))
		fmt.Fprintf(w, "%-28s  %-11s  %10s  %8s\n", "Section", "Domain", "Submodules", "Minutes")
		for _, s := range o.Sections {
			minutes := 0
			for _, m := range s.Submodules {
				minutes += m.Stats.Minutes()
			}
			domain := mapped[s.Name]
			if domain == "" {
				domain = "-"
			}
			fmt.Fprintf(w, "%-28s  %-11s  %10d  %8d\n", truncate(s.Name, 28), domain, len(s.Submodules), minutes)
		}
		fmt.Fprintln(w, strings.Repeat("─", 72))
		fmt.Fprintf(w, "%-28s  %-11s  %10d  %8d  (%.1f h)\n", "TOTAL", "", o.SubmoduleCount(), o.TotalMinutes(),
			float64(o.TotalMinutes())/60)
		return nil
	},
}

var curriculumValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a curriculum file against the schema and semantic rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := curriculum.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d sections, %d submodules, %d minutes)\n",
			args[0], len(o.Sections), o.SubmoduleCount(), o.TotalMinutes())
		return nil
	},
}

func init() {
	curriculumShowCmd.Flags().String("format", "", "Dump the document as yaml or json instead of a summary")

	curriculumCmd.AddCommand(curriculumShowCmd)
	curriculumCmd.AddCommand(curriculumValidateCmd)
}
