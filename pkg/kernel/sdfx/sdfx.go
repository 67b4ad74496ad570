// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/chazu/hingesim/pkg/geom"
	"github.com/chazu/hingesim/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxProfile wraps an sdf.SDF2 to implement kernel.Profile.
type sdfxProfile struct {
	s sdf.SDF2
}

// Distance evaluates the signed distance field at p.
func (s *sdfxProfile) Distance(p geom.Point) float64 {
	return s.s.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

// Bounds returns the axis-aligned bounding box.
func (s *sdfxProfile) Bounds() (min, max geom.Point) {
	bb := s.s.BoundingBox()
	return geom.Point{X: bb.Min.X, Y: bb.Min.Y}, geom.Point{X: bb.Max.X, Y: bb.Max.Y}
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// Profile builds a polygon SDF from poly. Repeated consecutive vertices,
// which zero-radius fillets produce, are dropped first because sdfx cannot
// normalize a zero-length edge.
func (k *SdfxKernel) Profile(poly geom.Polygon) (kernel.Profile, error) {
	vertices := dedupe(poly)
	if len(vertices) < 3 {
		return nil, fmt.Errorf("sdfx: polygon needs 3 distinct vertices, got %d", len(vertices))
	}

	s, err := sdf.Polygon2D(vertices)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
	}
	return &sdfxProfile{s: s}, nil
}

// dedupe converts poly to sdfx vectors, skipping any vertex equal to its
// predecessor, the closing pair included.
func dedupe(poly geom.Polygon) []v2.Vec {
	out := make([]v2.Vec, 0, len(poly))
	for _, p := range poly {
		v := v2.Vec{X: p.X, Y: p.Y}
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
