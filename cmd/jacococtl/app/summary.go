package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jvmtools/jacococtl/internal/report"
)

// NewSummaryCommand creates the "summary" subcommand.
func NewSummaryCommand() *cobra.Command {
	var (
		minInstruction float64
		minBranch      float64
		minLine        float64
		minMethod      float64
	)

	cmd := &cobra.Command{
		Use:   "summary [<report.xml>]",
		Short: "Print coverage totals from a generated XML report.",
		Long: `Print per-counter coverage totals from a generated JaCoCo XML report.

With one or more --min-* flags the command acts as a coverage gate and
exits non-zero when a counter falls below its required percentage.

Examples:
  jacococtl summary
  jacococtl summary build/reports/jacoco/test/jacocoTestReport.xml
  jacococtl summary --min-instruction 80 --min-branch 60`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				proj, _, err := loadProject()
				if err != nil {
					return err
				}
				path = filepath.Join(proj.BuildDirectory(),
					"reports", "jacoco", "test", "jacocoTestReport.xml")
			}

			r, err := report.Load(path)
			if err != nil {
				return err
			}

			if !quietFlag {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s\n", r.Name)
				fmt.Fprintf(out, "%-12s %8s %8s %8s\n", "COUNTER", "COVERED", "MISSED", "PERCENT")
				for _, counterType := range []string{
					report.CounterInstruction, report.CounterBranch, report.CounterLine,
					report.CounterComplexity, report.CounterMethod, report.CounterClass,
				} {
					c, ok := r.Counter(counterType)
					if !ok {
						continue
					}
					fmt.Fprintf(out, "%-12s %8d %8d %7.1f%%\n",
						c.Type, c.Covered, c.Missed, c.Percent())
				}
			}

			minimums := map[string]float64{}
			if cmd.Flags().Changed("min-instruction") {
				minimums[report.CounterInstruction] = minInstruction
			}
			if cmd.Flags().Changed("min-branch") {
				minimums[report.CounterBranch] = minBranch
			}
			if cmd.Flags().Changed("min-line") {
				minimums[report.CounterLine] = minLine
			}
			if cmd.Flags().Changed("min-method") {
				minimums[report.CounterMethod] = minMethod
			}

			violations := r.Check(minimums)
			if len(violations) > 0 {
				for _, v := range violations {
					fmt.Fprintln(cmd.ErrOrStderr(), v.String())
				}
				return fmt.Errorf("coverage below required minimum for %d counter(s)", len(violations))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minInstruction, "min-instruction", 0, "Required instruction coverage percentage")
	cmd.Flags().Float64Var(&minBranch, "min-branch", 0, "Required branch coverage percentage")
	cmd.Flags().Float64Var(&minLine, "min-line", 0, "Required line coverage percentage")
	cmd.Flags().Float64Var(&minMethod, "min-method", 0, "Required method coverage percentage")

	return cmd
}
