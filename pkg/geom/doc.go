// Package geom implements the 2D primitives used by the hinge simulator:
// points, implicitly closed polygons, fillet arc sampling, rigid rotation,
// point containment and polygon-to-polygon clearance.
//
// Coordinates are millimeters. The origin sits on the System body's
// front-top corner, y grows downward (into the base) and the bodies extend
// toward negative x.
//
// A Polygon is an ordered vertex list. The closing edge from the last vertex
// back to the first is implicit; every routine in this package walks edges
// through Polygon.Edge, which includes it.
package geom
