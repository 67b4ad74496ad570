package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/chazu/hingesim/pkg/export"
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/sweep"
	"github.com/spf13/cobra"
)

var sweepTransitionsOnly bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the lid through a range of angles",
	Long: `Evaluate the hinge at every step of an angle range and summarize where
the status changes, the tightest clear angle and the first collision.

Examples:
  hingesim sweep                              # 0-180 degrees in 1 degree steps
  hingesim sweep --from 90 --to 0 --step -5   # Closing sweep
  hingesim sweep --transitions-only           # Only the status changes`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	addParamFlags(sweepCmd)
	sweepCmd.Flags().Float64("from", sweep.FullOpen.From, "first angle (degrees)")
	sweepCmd.Flags().Float64("to", sweep.FullOpen.To, "last angle (degrees)")
	sweepCmd.Flags().Float64("step", sweep.FullOpen.Step, "angle step (degrees, negative to close)")
	sweepCmd.Flags().BoolVar(&sweepTransitionsOnly, "transitions-only", false, "print only status changes")
}

// sweepRange returns the configured range with any flags applied.
func sweepRange(c *cobra.Command) (sweep.Range, error) {
	r := cfg.Sweep
	for name, target := range map[string]*float64{"from": &r.From, "to": &r.To, "step": &r.Step} {
		if !c.Flags().Changed(name) {
			continue
		}
		v, err := c.Flags().GetFloat64(name)
		if err != nil {
			return sweep.Range{}, fmt.Errorf("--%s: %w", name, err)
		}
		*target = v
	}
	return r, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, err := parameters(cmd)
	if err != nil {
		return err
	}
	r, err := sweepRange(cmd)
	if err != nil {
		return err
	}

	rep, err := application.Sweep(p, r)
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	printReport(cmd.OutOrStdout(), rep, sweepTransitionsOnly)
	return nil
}

func printReport(w io.Writer, rep *sweep.Report, transitionsOnly bool) {
	if !transitionsOnly {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ANGLE\tMIN GAP\tSTATUS\tDEPTH")
		for _, s := range rep.Samples {
			depth := "-"
			if s.Status == hinge.Collision {
				depth = fmt.Sprintf("%.3f", s.Penetration)
			}
			fmt.Fprintf(tw, "%g\t%s\t%s\t%s\n", s.Angle, export.GapLabel(s.MinGap), s.Status, depth)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	for _, t := range rep.Transitions {
		fmt.Fprintf(w, "%g°: %s -> %s\n", t.Angle, t.From, t.To)
	}

	if math.IsNaN(rep.MinGap) {
		fmt.Fprintln(w, "Tightest clear angle: none")
	} else {
		fmt.Fprintf(w, "Tightest clear angle: %g° (%s)\n", rep.MinGapAngle, export.GapLabel(rep.MinGap))
	}
	if rep.FirstCollision != nil {
		fmt.Fprintf(w, "First collision: %g° (max depth %.3f mm)\n", *rep.FirstCollision, rep.MaxPenetration)
	} else {
		fmt.Fprintln(w, "No collision")
	}
}
