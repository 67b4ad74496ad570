package cmd

import (
	"fmt"
	"io"

	"github.com/chazu/hingesim/pkg/app"
	"github.com/chazu/hingesim/pkg/export"
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/spf13/cobra"
)

var evalStrict bool

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a single pose",
	Long: `Evaluate the hinge at one opening angle and report the minimum gap,
the safety status and, on collision, the penetration depth.

Examples:
  hingesim eval                               # Defaults, closed
  hingesim eval --angle 30 --lcd-fillet 0     # Sharp lid corner at 30 degrees
  hingesim eval --json --angle 180            # Machine-readable output`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	addParamFlags(evalCmd)
	evalCmd.Flags().BoolVar(&evalStrict, "strict", false, "exit with an error on collision")
}

func runEval(cmd *cobra.Command, args []string) error {
	p, err := parameters(cmd)
	if err != nil {
		return err
	}

	result := application.Evaluate(p)

	if outputJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printEval(cmd.OutOrStdout(), p, result)
	}

	if evalStrict && result.Status == hinge.Collision {
		return fmt.Errorf("collision at %g°", p.AngleDegrees)
	}
	return nil
}

func printEval(w io.Writer, p hinge.Parameters, r app.EvalResult) {
	fmt.Fprintf(w, "Angle:   %g°\n", p.AngleDegrees)
	fmt.Fprintf(w, "Min gap: %s\n", export.GapLabel(r.MinGap))
	fmt.Fprintf(w, "Status:  %s\n", export.StatusLabel(r.Status))
	if r.Penetration > 0 {
		fmt.Fprintf(w, "Depth:   %.3f mm\n", r.Penetration)
	}
	if r.OverlapArea > 0 {
		fmt.Fprintf(w, "Overlap: %.3f mm²\n", r.OverlapArea)
	}
	for _, m := range r.Warnings {
		fmt.Fprintf(w, "  warning: %s: %s\n", m.Field, m.Message)
	}
	for _, m := range r.Errors {
		fmt.Fprintf(w, "  error: %s\n", m.Message)
	}
}
