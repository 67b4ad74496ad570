package kernel

import (
	"math"
	"testing"

	"github.com/chazu/hingesim/pkg/geom"
)

// --- Outline helper method tests ---

func TestOutlineVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2}, 1},
		{"four vertices", []float32{0, 0, 1, 0, 1, 1, 0, 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Outline{Vertices: tt.vertices}
			if got := o.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutlineEdgeCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"single point", []float32{1, 2}, 0},
		{"triangle", []float32{0, 0, 1, 0, 0, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Outline{Vertices: tt.vertices}
			if got := o.EdgeCount(); got != tt.want {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutlineIsEmpty(t *testing.T) {
	t.Run("empty outline", func(t *testing.T) {
		o := &Outline{}
		if !o.IsEmpty() {
			t.Error("IsEmpty() = false for empty outline, want true")
		}
	})
	t.Run("non-empty outline", func(t *testing.T) {
		o := &Outline{Vertices: []float32{1, 2}}
		if o.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty outline, want false")
		}
	})
}

func TestToOutline(t *testing.T) {
	o := ToOutline("lcd", geom.Polygon{geom.Pt(0, -0.5), geom.Pt(-200, -0.5), geom.Pt(-200, -6)})
	if o.PartName != "lcd" {
		t.Errorf("PartName = %q", o.PartName)
	}
	want := []float32{0, -0.5, -200, -0.5, -200, -6}
	if len(o.Vertices) != len(want) {
		t.Fatalf("got %d floats, want %d", len(o.Vertices), len(want))
	}
	for i := range want {
		if o.Vertices[i] != want[i] {
			t.Errorf("Vertices[%d] = %v, want %v", i, o.Vertices[i], want[i])
		}
	}
}

// --- Penetration with a stub kernel ---

// boxProfile is an exact signed distance for an axis-aligned rectangle.
type boxProfile struct {
	min, max geom.Point
}

func (b *boxProfile) Distance(p geom.Point) float64 {
	cx, cy := (b.min.X+b.max.X)/2, (b.min.Y+b.max.Y)/2
	hx, hy := (b.max.X-b.min.X)/2, (b.max.Y-b.min.Y)/2
	dx := math.Abs(p.X-cx) - hx
	dy := math.Abs(p.Y-cy) - hy
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside
}

func (b *boxProfile) Bounds() (min, max geom.Point) {
	return b.min, b.max
}

// stubKernel treats every polygon as its bounding box, which is exact for
// the rectangles used here.
type stubKernel struct{}

func (k *stubKernel) Profile(poly geom.Polygon) (Profile, error) {
	min, max := poly.Bounds()
	return &boxProfile{min: min, max: max}, nil
}

// Compile-time checks that the stubs implement the interfaces.
var _ Profile = (*boxProfile)(nil)
var _ Kernel = (*stubKernel)(nil)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1)}
}

func TestPenetrationSeparated(t *testing.T) {
	depth, err := Penetration(&stubKernel{}, rect(0, 0, 1, 1), rect(3, 0, 4, 1))
	if err != nil {
		t.Fatalf("Penetration() error = %v", err)
	}
	if depth != 0 {
		t.Errorf("depth = %v, want 0 for separated bodies", depth)
	}
}

func TestPenetrationOverlapping(t *testing.T) {
	// b's corner (0.75, 0.75) sits 0.25 inside a.
	depth, err := Penetration(&stubKernel{}, rect(0, 0, 1, 1), rect(0.75, 0.75, 2, 2))
	if err != nil {
		t.Fatalf("Penetration() error = %v", err)
	}
	if math.Abs(depth-0.25) > 1e-12 {
		t.Errorf("depth = %v, want 0.25", depth)
	}
}

func TestOverlapArea(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Polygon
		want float64
	}{
		{"separated", rect(0, 0, 1, 1), rect(3, 0, 4, 1), 0},
		{"quarter", rect(0, 0, 2, 2), rect(1, 1, 3, 3), 1},
		{"contained", rect(0, 0, 4, 4), rect(1, 1, 2, 3), 2},
		{"degenerate", geom.Polygon{geom.Pt(0, 0), geom.Pt(1, 1)}, rect(0, 0, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapArea(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapArea() = %v, want %v", got, tt.want)
			}
		})
	}
}
