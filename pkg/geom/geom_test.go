package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func unitSquare(x, y float64) Polygon {
	return Polygon{Pt(x, y), Pt(x+1, y), Pt(x+1, y+1), Pt(x, y+1)}
}

// ---------------------------------------------------------------------------
// Fillet arcs
// ---------------------------------------------------------------------------

func TestFilletArcPointCount(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		want     int
	}{
		{"default segments", DefaultArcSegments, 11},
		{"one segment", 1, 2},
		{"twenty segments", 20, 21},
		{"zero falls back to default", 0, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := FilletArc(Pt(0, 0), 2, 0, math.Pi/2, tt.segments)
			if len(pts) != tt.want {
				t.Errorf("len = %d, want %d", len(pts), tt.want)
			}
		})
	}
}

func TestFilletArcEndpointsAndRadius(t *testing.T) {
	c := Pt(-3, 5)
	r := 3.0
	pts := FilletArc(c, r, 0, math.Pi/2, 10)

	if first := pts[0]; !near(first.X, 0, eps) || !near(first.Y, 5, eps) {
		t.Errorf("first point = %v, want (0, 5)", first)
	}
	if last := pts[len(pts)-1]; !near(last.X, -3, eps) || !near(last.Y, 8, eps) {
		t.Errorf("last point = %v, want (-3, 8)", last)
	}
	for i, p := range pts {
		if d := p.Distance(c); !near(d, r, eps) {
			t.Errorf("point %d at distance %f from center, want %f", i, d, r)
		}
	}
}

func TestFilletArcZeroRadiusIsCorner(t *testing.T) {
	for _, r := range []float64{0, -1} {
		pts := FilletArc(Pt(4, -2), r, 0, math.Pi/2, 10)
		if len(pts) != 1 {
			t.Fatalf("radius %v: expected a single point, got %d", r, len(pts))
		}
		if pts[0] != Pt(4, -2) {
			t.Errorf("radius %v: point = %v, want center", r, pts[0])
		}
	}
}

func TestFilletArcReversedRange(t *testing.T) {
	fwd := FilletArc(Pt(0, 0), 1, 0, math.Pi/2, 8)
	rev := FilletArc(Pt(0, 0), 1, math.Pi/2, 0, 8)
	for i := range fwd {
		j := len(rev) - 1 - i
		if !near(fwd[i].X, rev[j].X, eps) || !near(fwd[i].Y, rev[j].Y, eps) {
			t.Errorf("fwd[%d] = %v, rev[%d] = %v", i, fwd[i], j, rev[j])
		}
	}
}

// ---------------------------------------------------------------------------
// Rotation
// ---------------------------------------------------------------------------

func TestRotatePointZeroIsIdentity(t *testing.T) {
	pivot := Pt(-10, 8)
	for _, q := range []Point{Pt(0.1, -0.5), Pt(-200, -6), Pt(-0.3, 0.7)} {
		if got := RotatePoint(pivot, q, 0); got != q {
			t.Errorf("RotatePoint(%v, 0) = %v, want exact %v", q, got, q)
		}
	}
}

func TestRotatePointQuarterTurn(t *testing.T) {
	got := RotatePoint(Pt(0, 0), Pt(1, 0), 90)
	if !near(got.X, 0, eps) || !near(got.Y, 1, eps) {
		t.Errorf("rotating (1,0) by 90° = %v, want (0,1)", got)
	}

	got = RotatePoint(Pt(1, 1), Pt(2, 1), 180)
	if !near(got.X, 0, eps) || !near(got.Y, 1, eps) {
		t.Errorf("rotating (2,1) about (1,1) by 180° = %v, want (0,1)", got)
	}
}

func TestRotatePivotIsFixed(t *testing.T) {
	pivot := Pt(-10, 8)
	for _, a := range []float64{15, 90, 133.7, -45} {
		got := RotatePoint(pivot, pivot, a)
		if !near(got.X, pivot.X, eps) || !near(got.Y, pivot.Y, eps) {
			t.Errorf("angle %v moved the pivot to %v", a, got)
		}
	}
}

func TestRotatePolygonInvertible(t *testing.T) {
	pivot := Pt(-10, 8)
	poly := Polygon{Pt(0, -0.5), Pt(-200, -0.5), Pt(-200, -6), Pt(0, -6)}
	for _, a := range []float64{1, 37.5, 90, 179, 270, -12} {
		back := RotatePolygon(pivot, RotatePolygon(pivot, poly, a), -a)
		for i := range poly {
			if !near(back[i].X, poly[i].X, 1e-9) || !near(back[i].Y, poly[i].Y, 1e-9) {
				t.Errorf("angle %v: vertex %d = %v, want %v", a, i, back[i], poly[i])
			}
		}
	}
}

func TestRotatePolygonDoesNotMutateInput(t *testing.T) {
	poly := unitSquare(0, 0)
	orig := poly.Clone()
	_ = RotatePolygon(Pt(0, 0), poly, 30)
	for i := range poly {
		if poly[i] != orig[i] {
			t.Fatalf("input vertex %d changed from %v to %v", i, orig[i], poly[i])
		}
	}
}

// ---------------------------------------------------------------------------
// Containment
// ---------------------------------------------------------------------------

func TestContainsCentroidAndFarPoints(t *testing.T) {
	shapes := map[string]Polygon{
		"unit square": unitSquare(0, 0),
		"triangle":    {Pt(0, 0), Pt(4, 0), Pt(2, 3)},
		"hexagon": {
			Pt(2, 0), Pt(1, 1.7), Pt(-1, 1.7), Pt(-2, 0), Pt(-1, -1.7), Pt(1, -1.7),
		},
	}
	for name, poly := range shapes {
		t.Run(name, func(t *testing.T) {
			if !Contains(poly, poly.Centroid()) {
				t.Errorf("centroid %v reported outside", poly.Centroid())
			}
			min, max := poly.Bounds()
			far := []Point{
				Pt(max.X+100, max.Y+100),
				Pt(min.X-100, min.Y),
				Pt(min.X, max.Y+50),
			}
			for _, p := range far {
				if Contains(poly, p) {
					t.Errorf("far point %v reported inside", p)
				}
			}
		})
	}
}

func TestContainsNonConvex(t *testing.T) {
	// An L-shape: the notch at (1.5, 1.5) is outside.
	l := Polygon{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}
	if !Contains(l, Pt(0.5, 1.5)) {
		t.Error("point in the L's vertical arm reported outside")
	}
	if !Contains(l, Pt(1.5, 0.5)) {
		t.Error("point in the L's horizontal arm reported outside")
	}
	if Contains(l, Pt(1.5, 1.5)) {
		t.Error("point in the notch reported inside")
	}
}

func TestContainsDegenerate(t *testing.T) {
	if Contains(nil, Pt(0, 0)) {
		t.Error("nil polygon contains a point")
	}
	if Contains(Polygon{Pt(0, 0), Pt(1, 1)}, Pt(0.5, 0.5)) {
		t.Error("two-vertex polygon contains a point")
	}
}

// The crossing-number rule leaves boundary points to the comparisons. These
// cases pin the current classification so a change is noticed, not to claim
// it is the geometrically "right" answer.
func TestContainsBoundaryClassification(t *testing.T) {
	sq := unitSquare(0, 0)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		// Left edge x=0: the right edge still crosses to the right.
		{"on left edge", Pt(0, 0.5), true},
		// Right edge x=1: no crossing strictly right of p.
		{"on right edge", Pt(1, 0.5), false},
		// Level with the top edge y=0: both side edges have one endpoint
		// with y > 0, so the right one counts.
		{"on top edge", Pt(0.5, 0), true},
		// Level with the bottom edge y=1: no endpoint has y > 1.
		{"on bottom edge", Pt(0.5, 1), false},
		{"top-left vertex", Pt(0, 0), true},
		{"bottom-right vertex", Pt(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(sq, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, pinned %v", tt.p, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Distances
// ---------------------------------------------------------------------------

func TestDistToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, v, w Point
		want    float64
	}{
		{"perpendicular foot inside", Pt(1, 1), Pt(0, 0), Pt(2, 0), 1},
		{"clamped to start", Pt(-3, 4), Pt(0, 0), Pt(2, 0), 5},
		{"clamped to end", Pt(5, 4), Pt(0, 0), Pt(2, 0), 5},
		{"on segment", Pt(1, 0), Pt(0, 0), Pt(2, 0), 0},
		{"zero-length segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
		{"diagonal", Pt(0, 2), Pt(0, 0), Pt(2, 2), math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistToSegment(tt.p, tt.v, tt.w); !near(got, tt.want, eps) {
				t.Errorf("DistToSegment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinDistanceOverlapSentinel(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygon
	}{
		{"offset squares", unitSquare(0, 0), unitSquare(0.5, 0.5)},
		{"small offset", unitSquare(0, 0), unitSquare(0.1, 0.9)},
		{"b inside a", Polygon{Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-5, 5)}, unitSquare(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinDistance(tt.a, tt.b); got != Collision {
				t.Errorf("MinDistance = %v, want exactly %v", got, Collision)
			}
			if got := MinDistance(tt.b, tt.a); got != Collision {
				t.Errorf("MinDistance (swapped) = %v, want exactly %v", got, Collision)
			}
		})
	}
}

func TestMinDistanceSeparated(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygon
		want float64
	}{
		{"side by side", unitSquare(0, 0), unitSquare(3, 0), 2},
		{"stacked", unitSquare(0, 0), unitSquare(0, 1.25), 0.25},
		{"diagonal corners", unitSquare(0, 0), unitSquare(4, 5), 5},
		{"vertex to closing edge", unitSquare(0, 0), Polygon{Pt(-2, 0.5), Pt(-3, 0), Pt(-3, 1)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinDistance(tt.a, tt.b); !near(got, tt.want, eps) {
				t.Errorf("MinDistance = %v, want %v", got, tt.want)
			}
			if got := MinDistance(tt.b, tt.a); !near(got, tt.want, eps) {
				t.Errorf("MinDistance (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinDistanceUsesClosingEdge(t *testing.T) {
	// The only close edge of b is its closing edge (last → first).
	a := Polygon{Pt(0, 0), Pt(1, 0), Pt(0.5, -1)}
	b := Polygon{Pt(3, -5), Pt(10, -5), Pt(10, 5), Pt(3, 5)}
	if got := MinDistance(a, b); !near(got, 2, eps) {
		t.Errorf("MinDistance = %v, want 2", got)
	}
}

func TestPolygonBoundsAndEdges(t *testing.T) {
	poly := Polygon{Pt(-2, 3), Pt(4, -1), Pt(1, 7)}
	min, max := poly.Bounds()
	if min != Pt(-2, -1) || max != Pt(4, 7) {
		t.Errorf("Bounds = %v, %v", min, max)
	}
	v, w := poly.Edge(2)
	if v != Pt(1, 7) || w != Pt(-2, 3) {
		t.Errorf("closing edge = %v→%v", v, w)
	}
}
