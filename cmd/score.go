package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/i18n"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answers file without storing it",
	Long: `Score reads a JSON array of answers (snake_case fields, as written by
"prepcoach history --export") and prints the per-domain scores and levels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		answers, err := readAnswers(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		results, err := assessment.ComputeDomainResults(answers, rt.cfg.Scoring)
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), results)
		}
		printResults(cmd.OutOrStdout(), results, rt.locale)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "Answers JSON file, or - for stdin (required)")
	_ = scoreCmd.MarkFlagRequired("answers")
	scoreCmd.Flags().Bool("json", false, "Print results as JSON")
}

func printResults(w io.Writer, results []assessment.DomainResult, locale i18n.Locale) {
	fmt.Fprintf(w, "%-30s  %5s  %-14s  %4s  %s\n", "Domain", "Score", "Level", "Self", "Checks")
	fmt.Fprintln(w, strings.Repeat("─", 70))
	for _, r := range results {
		self := fmt.Sprint(r.SelfScore)
		if r.Imputed {
			self += "*"
		}
		fmt.Fprintf(w, "%-30s  %5d  %-14s  %4s  %d/%d\n",
			truncate(i18n.T(locale, "domain."+string(r.Domain)), 30),
			r.Score,
			i18n.T(locale, "level."+string(r.Level)),
			self,
			r.ChecksCorrect, r.ChecksTotal)
	}

	var weak []string
	for _, r := range assessment.WeakestDomains(results, 2) {
		if r.Level != assessment.LevelStrong {
			weak = append(weak, i18n.T(locale, "domain."+string(r.Domain)))
		}
	}
	if len(weak) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, i18n.T(locale, "ui.results.weak", strings.Join(weak, ", ")))
	}
	for _, r := range results {
		if r.Imputed {
			fmt.Fprintln(w, "* "+i18n.T(locale, "ui.results.imputed"))
			break
		}
	}
}

// truncate cuts s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
