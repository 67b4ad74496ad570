// Package kernel defines the abstract 2D geometry kernel interface.
// Implementations (sdfx) turn an outline into a signed distance field that
// can be probed at arbitrary points. The gap metric in package geom does not
// depend on a kernel; the kernel supplies diagnostics such as penetration
// depth that the vertex-based metric cannot.
package kernel

import (
	"fmt"
	"math"

	"github.com/chazu/hingesim/pkg/geom"
)

// Profile is an opaque handle to a kernel's representation of a closed
// outline.
type Profile interface {
	// Distance returns the signed distance from p to the outline:
	// negative inside, positive outside.
	Distance(p geom.Point) float64

	// Bounds returns the axis-aligned bounding box.
	Bounds() (min, max geom.Point)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	Profile(poly geom.Polygon) (Profile, error)
}

// Penetration returns how deep the two bodies interfere: the largest depth
// of any vertex of a inside b or of b inside a, measured with the kernel's
// signed distance. Separated bodies yield 0.
func Penetration(k Kernel, a, b geom.Polygon) (float64, error) {
	pa, err := k.Profile(a)
	if err != nil {
		return 0, fmt.Errorf("kernel: profile a: %w", err)
	}
	pb, err := k.Profile(b)
	if err != nil {
		return 0, fmt.Errorf("kernel: profile b: %w", err)
	}

	depth := 0.0
	for _, v := range a {
		depth = math.Max(depth, -pb.Distance(v))
	}
	for _, v := range b {
		depth = math.Max(depth, -pa.Distance(v))
	}
	return depth, nil
}
