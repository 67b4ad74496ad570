package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chazu/hingesim/pkg/app"
	"github.com/chazu/hingesim/pkg/export"
	"github.com/spf13/cobra"
)

var runStrict bool

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a scenario script",
	Long: `Run a hinge scenario script. Scripts define hinges with (hinge ...) and
(hinge-with ...) and register work with (check ...) and (sweep ...).

Examples:
  hingesim run examples/clamshell.hinge
  hingesim run --json --strict examples/sharp.hinge`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "exit with an error if anything collides")
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	result := application.RunScript(string(source))

	if outputJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printScript(cmd.OutOrStdout(), result)
	}

	if !result.OK() {
		return fmt.Errorf("%s: %d error(s)", args[0], len(result.Errors))
	}
	if runStrict && result.Collisions() > 0 {
		return fmt.Errorf("%s: %d collision(s)", args[0], result.Collisions())
	}
	return nil
}

func printScript(w io.Writer, r app.ScriptResult) {
	for _, e := range r.Errors {
		if e.Line > 0 {
			fmt.Fprintf(w, "error: line %d: %s\n", e.Line, e.Message)
		} else {
			fmt.Fprintf(w, "error: %s\n", e.Message)
		}
	}

	for _, c := range r.Checks {
		fmt.Fprintf(w, "check %s @ %g°: %s, %s\n", c.Name, c.Angle, export.GapLabel(c.MinGap), c.Status)
		for _, m := range c.Warnings {
			fmt.Fprintf(w, "  warning: %s: %s\n", m.Field, m.Message)
		}
	}

	for _, s := range r.Sweeps {
		fmt.Fprintf(w, "\nsweep %s (%g to %g step %g)\n", s.Name, s.Report.Range.From, s.Report.Range.To, s.Report.Range.Step)
		printReport(w, s.Report, true)
	}
}
