package kernel

import "github.com/chazu/hingesim/pkg/geom"

// Outline is a closed 2D outline in a flat format suitable for rendering.
// Vertices holds 2 floats per vertex (x,y); the closing edge is implied.
type Outline struct {
	Vertices []float32 `json:"vertices"` // [x0,y0, x1,y1, ...]
	PartName string    `json:"partName"` // "system" or "lcd"
}

// ToOutline flattens poly into an Outline.
func ToOutline(name string, poly geom.Polygon) *Outline {
	vertices := make([]float32, 0, len(poly)*2)
	for _, p := range poly {
		vertices = append(vertices, float32(p.X), float32(p.Y))
	}
	return &Outline{Vertices: vertices, PartName: name}
}

// VertexCount returns the number of vertices.
func (o *Outline) VertexCount() int {
	return len(o.Vertices) / 2
}

// EdgeCount returns the number of edges, closing edge included.
func (o *Outline) EdgeCount() int {
	if o.VertexCount() < 2 {
		return 0
	}
	return o.VertexCount()
}

// IsEmpty returns true if the outline has no geometry.
func (o *Outline) IsEmpty() bool {
	return len(o.Vertices) == 0
}
