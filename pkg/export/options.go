// Package export renders an evaluated hinge pose to files: SVG for viewing
// and DXF for CAD import. Coordinates are millimeters with y pointing down,
// as in package hinge.
package export

import (
	"fmt"

	"github.com/chazu/hingesim/pkg/hinge"
)

// Options controls SVG rendering.
type Options struct {
	// Scale is pixels per millimeter.
	Scale float64 `json:"scale" yaml:"scale"`

	// Margin is the border around the geometry in millimeters.
	Margin float64 `json:"margin" yaml:"margin"`

	// Grid draws a light 5 mm grid behind the bodies.
	Grid bool `json:"grid" yaml:"grid"`
}

// DefaultOptions returns 10 px/mm with a 20 mm margin and a grid.
func DefaultOptions() Options {
	return Options{Scale: 10, Margin: 20, Grid: true}
}

// Validate rejects options that cannot produce an image.
func (o Options) Validate() error {
	if !(o.Scale > 0) {
		return fmt.Errorf("export: scale must be > 0, got %v", o.Scale)
	}
	if !(o.Margin >= 0) {
		return fmt.Errorf("export: margin must be >= 0, got %v", o.Margin)
	}
	return nil
}

// GapLabel formats a gap for display: millimeters to three places, or
// COLLISION.
func GapLabel(gap float64) string {
	if gap < 0 {
		return "COLLISION"
	}
	return fmt.Sprintf("%.3f mm", gap)
}

// StatusLabel is the banner text for a status.
func StatusLabel(s hinge.SafetyStatus) string {
	switch s {
	case hinge.Collision:
		return "COLLISION: interference detected"
	case hinge.Warning:
		return fmt.Sprintf("WARNING: gap < %g mm", hinge.WarningThreshold)
	default:
		return "SAFE"
	}
}
