// Package hinge models the side profile of a laptop hinge: a stationary
// System base and an LCD lid that rotates about a pivot. Evaluate turns a
// Parameters snapshot into the two outlines, their clearance and a safety
// status. Every call recomputes from scratch; nothing is cached.
package hinge

import (
	"fmt"
	"math"

	"github.com/chazu/hingesim/pkg/geom"
)

// Fixed body lengths in mm. They are not part of Parameters.
const (
	SystemWidth = 250.0
	LCDLength   = 200.0
)

// Parameters describes the mechanism. All lengths are millimeters and are
// expected to be non-negative; a zero fillet radius is a sharp corner.
type Parameters struct {
	LCDThickness             float64 `json:"lcdThickness" yaml:"lcd_thickness"`
	SystemThickness          float64 `json:"systemThickness" yaml:"system_thickness"`
	PivotHorizontalOffset    float64 `json:"pivotHorizontalOffset" yaml:"pivot_horizontal_offset"`
	PivotVerticalOffset      float64 `json:"pivotVerticalOffset" yaml:"pivot_vertical_offset"`
	InitialGap               float64 `json:"initialGap" yaml:"initial_gap"`
	LCDFilletRadius          float64 `json:"lcdFilletRadius" yaml:"lcd_fillet_radius"`
	SystemTopFilletRadius    float64 `json:"systemTopFilletRadius" yaml:"system_top_fillet_radius"`
	SystemBottomFilletRadius float64 `json:"systemBottomFilletRadius" yaml:"system_bottom_fillet_radius"`

	// AngleDegrees is the opening angle, conventionally 0 (closed) to 180.
	AngleDegrees float64 `json:"angleDegrees" yaml:"angle_degrees"`

	// ShowTrace is a display toggle. Evaluate ignores it.
	ShowTrace bool `json:"showTrace" yaml:"show_trace"`
}

// DefaultParameters returns a typical 14" clamshell: a 5.5 mm lid over an
// 18 mm base, pivot 10 mm behind the front face and 8 mm below the top.
func DefaultParameters() Parameters {
	return Parameters{
		LCDThickness:             5.5,
		SystemThickness:          18.0,
		PivotHorizontalOffset:    10.0,
		PivotVerticalOffset:      8.0,
		InitialGap:               0.5,
		LCDFilletRadius:          2.0,
		SystemTopFilletRadius:    1.0,
		SystemBottomFilletRadius: 3.0,
		AngleDegrees:             0,
		ShowTrace:                true,
	}
}

// WithAngle returns a copy of p opened to deg degrees.
func (p Parameters) WithAngle(deg float64) Parameters {
	p.AngleDegrees = deg
	return p
}

// Pivot returns the rotation center of the LCD.
func (p Parameters) Pivot() geom.Point {
	return geom.Point{X: -p.PivotHorizontalOffset, Y: p.PivotVerticalOffset}
}

// CheckFinite returns an error naming the first value that is NaN or
// infinite. Evaluate itself accepts such input; callers that must produce
// JSON or a drawing reject it up front.
func (p Parameters) CheckFinite() error {
	values := []struct {
		field string
		value float64
	}{
		{"lcdThickness", p.LCDThickness},
		{"systemThickness", p.SystemThickness},
		{"pivotHorizontalOffset", p.PivotHorizontalOffset},
		{"pivotVerticalOffset", p.PivotVerticalOffset},
		{"initialGap", p.InitialGap},
		{"lcdFilletRadius", p.LCDFilletRadius},
		{"systemTopFilletRadius", p.SystemTopFilletRadius},
		{"systemBottomFilletRadius", p.SystemBottomFilletRadius},
		{"angleDegrees", p.AngleDegrees},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("hinge: %s must be finite, got %v", v.field, v.value)
		}
	}
	return nil
}
