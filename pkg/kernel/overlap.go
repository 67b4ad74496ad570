package kernel

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/chazu/hingesim/pkg/geom"
)

// OverlapArea returns the area in mm² shared by the two outlines. Separated
// or merely touching bodies yield 0.
func OverlapArea(a, b geom.Polygon) float64 {
	if len(a) < 3 || len(b) < 3 {
		return 0
	}

	subject := polyclip.Polygon{toContour(a)}
	clipping := polyclip.Polygon{toContour(b)}

	result := subject.Construct(polyclip.INTERSECTION, clipping)

	area := 0.0
	for _, c := range result {
		area += contourArea(c)
	}
	return area
}

func toContour(poly geom.Polygon) polyclip.Contour {
	c := make(polyclip.Contour, len(poly))
	for i, p := range poly {
		c[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return c
}

// contourArea is the shoelace area, independent of winding.
func contourArea(c polyclip.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(sum) / 2
}
