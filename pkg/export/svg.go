package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/chazu/hingesim/pkg/geom"
	"github.com/chazu/hingesim/pkg/hinge"
)

const (
	systemStyle = "fill:rgba(31,41,55,0.9);stroke:#111827;stroke-width:1"
	lcdStyle    = "fill:rgba(239,68,68,0.7);stroke:#b91c1c;stroke-width:1"
	traceStyle  = "fill:none;stroke:rgba(239,68,68,0.4);stroke-width:1;stroke-dasharray:5,5"
	gridStyle   = "stroke:#e5e7eb;stroke-width:1"
	refStyle    = "stroke:#3b82f6;stroke-width:2"
	pivotStyle  = "fill:none;stroke:#10b981;stroke-width:2"
	labelStyle  = "font-family:Inter,sans-serif;font-size:12px;fill:#6b7280"

	gridStep       = 5.0 // mm
	pivotCrossHalf = 5.0 // mm
	pivotRadiusPx  = 3
	captionHeight  = 40 // px reserved under the drawing

	// MaxCanvasPx bounds the drawing's width and height.
	MaxCanvasPx = 20000
)

var statusColor = map[hinge.SafetyStatus]string{
	hinge.Safe:      "#22c55e",
	hinge.Warning:   "#eab308",
	hinge.Collision: "#ef4444",
}

// frame maps model millimeters to canvas pixels.
type frame struct {
	min, max geom.Point
	scale    float64
}

func (f frame) x(mm float64) int { return int(math.Round((mm - f.min.X) * f.scale)) }
func (f frame) y(mm float64) int { return int(math.Round((mm - f.min.Y) * f.scale)) }

func (f frame) width() int  { return f.x(f.max.X) }
func (f frame) height() int { return f.y(f.max.Y) }

// fits reports whether the canvas stays within MaxCanvasPx. It works in
// floating point so non-finite or huge extents are caught before any int
// conversion.
func (f frame) fits() bool {
	w := (f.max.X - f.min.X) * f.scale
	h := (f.max.Y - f.min.Y) * f.scale
	return w <= MaxCanvasPx && h <= MaxCanvasPx
}

func (f frame) poly(pts []geom.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = f.x(p.X), f.y(p.Y)
	}
	return xs, ys
}

// newFrame fits every point plus the origin, padded by the margin.
func newFrame(opts Options, groups ...[]geom.Point) frame {
	min, max := geom.Point{}, geom.Point{}
	for _, g := range groups {
		for _, p := range g {
			min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
			max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
		}
	}
	m := opts.Margin
	return frame{
		min:   geom.Point{X: min.X - m, Y: min.Y - m},
		max:   geom.Point{X: max.X + m, Y: max.Y + m},
		scale: opts.Scale,
	}
}

// SVG draws res to w: grid, reference planes, the nose trace, both bodies,
// the pivot and a status caption.
func SVG(w io.Writer, res hinge.Result, trace []geom.Point, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(res.SystemPolygon) < 3 || len(res.LCDPolygon) < 3 {
		return fmt.Errorf("export: result has no geometry")
	}

	pivot := res.Pivot
	f := newFrame(opts, res.SystemPolygon, res.LCDPolygon, trace, []geom.Point{
		{X: pivot.X - pivotCrossHalf, Y: pivot.Y - pivotCrossHalf},
		{X: pivot.X + pivotCrossHalf, Y: pivot.Y + pivotCrossHalf},
	})
	if !f.fits() {
		return fmt.Errorf("export: drawing spans %.0f x %.0f mm, too large for a %d px canvas at scale %g",
			f.max.X-f.min.X, f.max.Y-f.min.Y, MaxCanvasPx, f.scale)
	}
	width, height := f.width(), f.height()

	canvas := svg.New(w)
	canvas.Start(width, height+captionHeight)
	canvas.Rect(0, 0, width, height+captionHeight, "fill:white")

	if opts.Grid {
		for x := math.Ceil(f.min.X/gridStep) * gridStep; x <= f.max.X; x += gridStep {
			canvas.Line(f.x(x), 0, f.x(x), height, gridStyle)
		}
		for y := math.Ceil(f.min.Y/gridStep) * gridStep; y <= f.max.Y; y += gridStep {
			canvas.Line(0, f.y(y), width, f.y(y), gridStyle)
		}
	}

	// Top plane y=0 and front plane x=0.
	canvas.Line(0, f.y(0), width, f.y(0), refStyle)
	canvas.Line(f.x(0), 0, f.x(0), height, refStyle)
	canvas.Text(f.x(0)+5, 15, "Front Plane (X=0)", labelStyle)
	canvas.Text(5, f.y(0)-5, "Top Plane (Y=0)", labelStyle)

	if len(trace) > 1 {
		xs, ys := f.poly(trace)
		canvas.Polyline(xs, ys, traceStyle)
	}

	xs, ys := f.poly(res.SystemPolygon)
	canvas.Polygon(xs, ys, systemStyle)
	xs, ys = f.poly(res.LCDPolygon)
	canvas.Polygon(xs, ys, lcdStyle)

	px, py := f.x(pivot.X), f.y(pivot.Y)
	canvas.Circle(px, py, pivotRadiusPx, pivotStyle)
	canvas.Line(f.x(pivot.X-pivotCrossHalf), py, f.x(pivot.X+pivotCrossHalf), py, pivotStyle)
	canvas.Line(px, f.y(pivot.Y-pivotCrossHalf), px, f.y(pivot.Y+pivotCrossHalf), pivotStyle)

	caption := fmt.Sprintf("Min gap: %s  |  %s", GapLabel(res.MinGap), StatusLabel(res.Status))
	canvas.Text(10, height+25, caption,
		fmt.Sprintf("font-family:Inter,sans-serif;font-size:16px;font-weight:bold;fill:%s", statusColor[res.Status]))

	canvas.End()
	return nil
}
