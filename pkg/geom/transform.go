package geom

import "math"

// rotation is a precomputed 2x2 rotation about a pivot.
type rotation struct {
	pivot    Point
	sin, cos float64
	identity bool
}

func newRotation(pivot Point, angleDeg float64) rotation {
	rad := angleDeg * math.Pi / 180.0
	return rotation{
		pivot:    pivot,
		sin:      math.Sin(rad),
		cos:      math.Cos(rad),
		identity: angleDeg == 0,
	}
}

func (r rotation) apply(q Point) Point {
	if r.identity {
		return q
	}
	qx := q.X - r.pivot.X
	qy := q.Y - r.pivot.Y
	return Point{
		X: qx*r.cos - qy*r.sin + r.pivot.X,
		Y: qx*r.sin + qy*r.cos + r.pivot.Y,
	}
}

// RotatePoint rotates q about pivot by angleDeg degrees. Positive angles turn
// +x toward +y, which with y pointing down lifts the back of the LCD.
// A zero angle returns q unchanged.
func RotatePoint(pivot, q Point, angleDeg float64) Point {
	return newRotation(pivot, angleDeg).apply(q)
}

// RotatePolygon rotates every vertex of poly about pivot and returns the
// result as a new polygon. poly is not modified.
func RotatePolygon(pivot Point, poly Polygon, angleDeg float64) Polygon {
	r := newRotation(pivot, angleDeg)
	out := make(Polygon, len(poly))
	for i, q := range poly {
		out[i] = r.apply(q)
	}
	return out
}
