package hinge

import (
	"math"

	"github.com/chazu/hingesim/pkg/geom"
)

// SystemPolygon returns the base outline: sharp top-back corner, rounded
// top-front and bottom-front corners, sharp bottom-back corner.
//
// Each front fillet is centered one radius in from the front face and one
// radius in from the face it meets, so the arcs are tangent to both.
// Radii larger than the body are not clamped.
func SystemPolygon(p Parameters) geom.Polygon {
	rt := p.SystemTopFilletRadius
	rb := p.SystemBottomFilletRadius
	z := p.SystemThickness

	poly := geom.Polygon{{X: -SystemWidth, Y: 0}}
	poly = append(poly, geom.FilletArc(
		geom.Point{X: -rt, Y: rt}, rt, -math.Pi/2, 0, geom.DefaultArcSegments)...)
	poly = append(poly, geom.FilletArc(
		geom.Point{X: -rb, Y: z - rb}, rb, 0, math.Pi/2, geom.DefaultArcSegments)...)
	poly = append(poly, geom.Point{X: -SystemWidth, Y: z})
	return poly
}

// LCDReference returns the lid outline in its closed pose (angle 0): the
// bottom face sits InitialGap above the System's top face and only the
// bottom-front corner is rounded.
//
// The first vertex is the start of the bottom-front fillet, the lid's
// leading point when it swings open.
func LCDReference(p Parameters) geom.Polygon {
	r := p.LCDFilletRadius
	g := p.InitialGap
	top := -(g + p.LCDThickness)

	poly := geom.Polygon(geom.FilletArc(
		geom.Point{X: -r, Y: -g - r}, r, 0, math.Pi/2, geom.DefaultArcSegments))
	poly = append(poly,
		geom.Point{X: -LCDLength, Y: -g},
		geom.Point{X: -LCDLength, Y: top},
		geom.Point{X: 0, Y: top},
	)
	return poly
}

// LCDPolygon returns the lid outline rotated to p.AngleDegrees about the
// pivot.
func LCDPolygon(p Parameters) geom.Polygon {
	return geom.RotatePolygon(p.Pivot(), LCDReference(p), p.AngleDegrees)
}
