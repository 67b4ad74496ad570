package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate in millimeters.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// String formats the point with three decimals, enough for 1 µm.
func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Polygon is an ordered, implicitly closed outline.
type Polygon []Point

// Edge returns the i-th edge. Edge n-1 is the closing edge from the last
// vertex back to the first.
func (poly Polygon) Edge(i int) (Point, Point) {
	return poly[i], poly[(i+1)%len(poly)]
}

// Clone returns a copy that shares no storage with poly.
func (poly Polygon) Clone() Polygon {
	if poly == nil {
		return nil
	}
	out := make(Polygon, len(poly))
	copy(out, poly)
	return out
}

// Bounds returns the axis-aligned bounding box. An empty polygon yields
// two zero points.
func (poly Polygon) Bounds() (min, max Point) {
	if len(poly) == 0 {
		return Point{}, Point{}
	}
	min, max = poly[0], poly[0]
	for _, p := range poly[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Centroid returns the vertex average. For convex outlines it lies inside.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range poly {
		c = c.Add(p)
	}
	n := float64(len(poly))
	return Point{X: c.X / n, Y: c.Y / n}
}
