package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFormat string
	exportTrace  bool
	exportScale  float64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a pose to SVG or DXF",
	Long: `Render one pose of the hinge. SVG output shows both bodies, the pivot,
the reference planes and a status caption; DXF output puts each body on its
own layer for CAD import.

With --trace the lid is opened from 0 to the target angle in 1 degree steps
first, so the SVG shows the path of the LCD nose.

Examples:
  hingesim export -o closed.svg
  hingesim export -o open.svg --angle 120 --trace
  hingesim export -o pose.dxf --angle 45`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addParamFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (- for stdout, SVG only)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "svg or dxf (default: from the output extension)")
	exportCmd.Flags().BoolVar(&exportTrace, "trace", false, "draw the nose trace from 0 to the target angle")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 0, "SVG pixels per mm (default from config)")

	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := parameters(cmd)
	if err != nil {
		return err
	}

	format := strings.ToLower(exportFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(exportOutput)), ".")
	}

	switch format {
	case "dxf":
		if exportOutput == "-" {
			return fmt.Errorf("dxf output needs a file path")
		}
		return application.ExportDXF(exportOutput, p)

	case "svg":
		opts := cfg.Export
		if cmd.Flags().Changed("scale") {
			opts.Scale = exportScale
		}

		application.ResetTrace()
		if exportTrace {
			traceTo(p.AngleDegrees, func(angle float64) {
				q := p.WithAngle(angle)
				q.ShowTrace = true
				application.Evaluate(q)
			})
		}

		if exportOutput == "-" {
			return application.ExportSVG(cmd.OutOrStdout(), p, opts)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		if err := application.ExportSVG(f, p, opts); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	default:
		return fmt.Errorf("unknown export format %q (want svg or dxf)", format)
	}
}

// traceTo calls visit for every whole degree from 0 toward target, then for
// target itself.
func traceTo(target float64, visit func(angle float64)) {
	step := 1.0
	if target < 0 {
		step = -1
	}
	for a := 0.0; math.Abs(a) < math.Abs(target); a += step {
		visit(a)
	}
	visit(target)
}
