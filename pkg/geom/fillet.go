package geom

import "math"

// DefaultArcSegments is the number of chords used to approximate a fillet.
const DefaultArcSegments = 10

// FilletArc samples a circular arc of the given radius around center from
// angle start to angle end (radians), returning segments+1 points including
// both endpoints. The sweep direction follows start→end, so a reversed range
// yields a reversed arc.
//
// A radius <= 0 collapses the fillet into a sharp corner: the result is the
// single point center. segments <= 0 falls back to DefaultArcSegments.
func FilletArc(center Point, radius, start, end float64, segments int) []Point {
	if radius <= 0 {
		return []Point{center}
	}
	if segments <= 0 {
		segments = DefaultArcSegments
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := start + (end-start)*(float64(i)/float64(segments))
		points = append(points, Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return points
}
