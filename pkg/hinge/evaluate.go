package hinge

import "github.com/chazu/hingesim/pkg/geom"

// Result is one evaluation of a Parameters snapshot. It owns its polygons;
// nothing is shared with other results.
type Result struct {
	// MinGap is the clearance in mm, or geom.Collision (-1) on overlap.
	MinGap        float64      `json:"minGap"`
	Status        SafetyStatus `json:"status"`
	SystemPolygon geom.Polygon `json:"systemPolygon"`
	LCDPolygon    geom.Polygon `json:"lcdPolygon"`
	Pivot         geom.Point   `json:"pivot"`
}

// Evaluate builds both bodies, rotates the LCD about the pivot, measures the
// clearance and classifies it.
func Evaluate(p Parameters) Result {
	system := SystemPolygon(p)
	pivot := p.Pivot()
	lcd := geom.RotatePolygon(pivot, LCDReference(p), p.AngleDegrees)

	gap := geom.MinDistance(lcd, system)

	return Result{
		MinGap:        gap,
		Status:        Classify(gap),
		SystemPolygon: system,
		LCDPolygon:    lcd,
		Pivot:         pivot,
	}
}

// Nose returns the LCD's leading vertex in this pose, the point a motion
// trace follows.
func (r Result) Nose() geom.Point {
	if len(r.LCDPolygon) == 0 {
		return geom.Point{}
	}
	return r.LCDPolygon[0]
}

// Colliding reports whether the bodies interfere.
func (r Result) Colliding() bool {
	return r.Status == Collision
}
