package geom

import "math"

// Collision is the gap value reported when two polygons interfere. It is a
// flag, not a penetration depth.
const Collision = -1.0

// DistToSegment returns the distance from p to the closest point of segment
// v→w. A zero-length segment is treated as the point v.
func DistToSegment(p, v, w Point) float64 {
	d := w.Sub(v)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Distance(v)
	}
	t := p.Sub(v).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	proj := Point{X: v.X + t*d.X, Y: v.Y + t*d.Y}
	return p.Distance(proj)
}

// Overlaps reports whether any vertex of a lies inside b or any vertex of b
// lies inside a.
func Overlaps(a, b Polygon) bool {
	for _, p := range a {
		if Contains(b, p) {
			return true
		}
	}
	for _, p := range b {
		if Contains(a, p) {
			return true
		}
	}
	return false
}

// MinDistance returns the clearance between a and b, or Collision when they
// overlap.
//
// The clearance is the smallest vertex-to-edge distance taken in both
// directions. Edge-to-edge closest pairs that touch no vertex are not
// searched, so for general non-convex outlines the result is an upper bound.
// For fillet-sampled bodies the vertices are dense where the bodies approach
// each other, which keeps the error small. Edge crossings without a contained
// vertex are likewise not detected.
func MinDistance(a, b Polygon) float64 {
	if Overlaps(a, b) {
		return Collision
	}
	return math.Min(vertexEdgeMin(a, b), vertexEdgeMin(b, a))
}

// vertexEdgeMin is the minimum distance from any vertex of pts to any edge of
// poly, closing edge included.
func vertexEdgeMin(pts, poly Polygon) float64 {
	minD := math.Inf(1)
	for _, p := range pts {
		for i := range poly {
			v, w := poly.Edge(i)
			minD = math.Min(minD, DistToSegment(p, v, w))
		}
	}
	return minD
}
