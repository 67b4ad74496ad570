package cmd

import (
	"fmt"

	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/spf13/cobra"
)

// paramFlags are the hinge parameter overrides shared by eval, sweep and
// export. Flag names match the scenario script keywords.
var paramFlags = []struct {
	name  string
	usage string
	field func(p *hinge.Parameters) *float64
}{
	{"lcd-thickness", "LCD lid thickness (mm)", func(p *hinge.Parameters) *float64 { return &p.LCDThickness }},
	{"system-thickness", "System base thickness (mm)", func(p *hinge.Parameters) *float64 { return &p.SystemThickness }},
	{"pivot-horizontal", "pivot distance behind the front face (mm)", func(p *hinge.Parameters) *float64 { return &p.PivotHorizontalOffset }},
	{"pivot-vertical", "pivot depth below the top plane (mm)", func(p *hinge.Parameters) *float64 { return &p.PivotVerticalOffset }},
	{"initial-gap", "closed gap between lid and base (mm)", func(p *hinge.Parameters) *float64 { return &p.InitialGap }},
	{"lcd-fillet", "LCD front fillet radius (mm)", func(p *hinge.Parameters) *float64 { return &p.LCDFilletRadius }},
	{"system-top-fillet", "System front-top fillet radius (mm)", func(p *hinge.Parameters) *float64 { return &p.SystemTopFilletRadius }},
	{"system-bottom-fillet", "System front-bottom fillet radius (mm)", func(p *hinge.Parameters) *float64 { return &p.SystemBottomFilletRadius }},
	{"angle", "opening angle (degrees)", func(p *hinge.Parameters) *float64 { return &p.AngleDegrees }},
}

// addParamFlags registers the parameter override flags on c.
func addParamFlags(c *cobra.Command) {
	def := hinge.DefaultParameters()
	for _, f := range paramFlags {
		c.Flags().Float64(f.name, *f.field(&def), f.usage)
	}
}

// parameters returns the configured parameters with any flags the user set
// applied on top.
func parameters(c *cobra.Command) (hinge.Parameters, error) {
	p := cfg.Parameters
	for _, f := range paramFlags {
		if !c.Flags().Changed(f.name) {
			continue
		}
		v, err := c.Flags().GetFloat64(f.name)
		if err != nil {
			return hinge.Parameters{}, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.field(&p) = v
	}
	if err := p.CheckFinite(); err != nil {
		return hinge.Parameters{}, err
	}
	return p, nil
}
