package geom

// Contains reports whether p lies inside poly using the crossing-number
// rule: a horizontal ray cast toward +x from p toggles the state for every
// edge with exactly one endpoint whose y is greater than p.Y and whose
// crossing lies to the right of p.
//
// The test is valid for any simple polygon, convex or not. Points exactly on
// an edge, or level with a vertex, get whatever the comparisons produce; no
// tie-breaking is applied. Polygons with fewer than three vertices contain
// nothing.
func Contains(poly Polygon, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
