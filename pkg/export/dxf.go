package export

import (
	"fmt"

	"github.com/chazu/hingesim/pkg/geom"
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerSystem = "SYSTEM"
	LayerLCD    = "LCD"
	LayerPivot  = "PIVOT"
)

// pivotRadius is the DXF pivot marker radius in mm.
const pivotRadius = 1.0

// DXF writes res to path with each body on its own layer. The y axis is
// flipped so the drawing reads upright in y-up CAD tools.
func DXF(path string, res hinge.Result) error {
	if len(res.SystemPolygon) < 3 || len(res.LCDPolygon) < 3 {
		return fmt.Errorf("export: result has no geometry")
	}

	d := dxf.NewDrawing()

	layers := []struct {
		name string
		cl   color.ColorNumber
		poly geom.Polygon
	}{
		{LayerSystem, color.White, res.SystemPolygon},
		{LayerLCD, color.Red, res.LCDPolygon},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("export: layer %s: %w", l.name, err)
		}
		if err := outline(d, l.poly); err != nil {
			return fmt.Errorf("export: layer %s: %w", l.name, err)
		}
	}

	if _, err := d.AddLayer(LayerPivot, color.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export: layer %s: %w", LayerPivot, err)
	}
	if _, err := d.Circle(res.Pivot.X, -res.Pivot.Y, 0, pivotRadius); err != nil {
		return fmt.Errorf("export: pivot: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// outline draws every edge of poly, closing edge included, on the current
// layer. Zero-length edges are skipped.
func outline(d *drawing.Drawing, poly geom.Polygon) error {
	for i := range poly {
		a, b := poly.Edge(i)
		if a == b {
			continue
		}
		if _, err := d.Line(a.X, -a.Y, 0, b.X, -b.Y, 0); err != nil {
			return err
		}
	}
	return nil
}
