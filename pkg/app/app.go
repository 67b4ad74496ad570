// Package app is the binding layer between hingesim's packages and a
// front end (the CLI, or a renderer that wants JSON). It owns the only
// long-lived state, the nose trace, and converts results into
// JSON-serializable shapes with non-nil slices.
package app

import (
	"fmt"
	"io"

	"github.com/chazu/hingesim/pkg/engine"
	"github.com/chazu/hingesim/pkg/export"
	"github.com/chazu/hingesim/pkg/geom"
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/kernel"
	"github.com/chazu/hingesim/pkg/kernel/sdfx"
	"github.com/chazu/hingesim/pkg/sweep"
	"github.com/sirupsen/logrus"
)

// Outline colors, matching the SVG export fills.
const (
	systemColor = "#1f2937"
	lcdColor    = "#ef4444"
)

// App evaluates hinge poses, sweeps and scripts for a front end.
type App struct {
	log    logrus.FieldLogger
	engine *engine.Engine
	kernel kernel.Kernel
	trace  *sweep.Trace
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) { a.log = l }
}

// WithKernel sets the geometry kernel used for penetration depth. A nil
// kernel disables it.
func WithKernel(k kernel.Kernel) Option {
	return func(a *App) { a.kernel = k }
}

// WithTraceCapacity sets the trace window size.
func WithTraceCapacity(n int) Option {
	return func(a *App) { a.trace = sweep.NewTrace(n) }
}

// New creates an App with an engine, the sdfx kernel and a default trace.
func New(opts ...Option) *App {
	a := &App{
		log:    logrus.StandardLogger(),
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
		trace:  sweep.NewTrace(sweep.DefaultTraceCapacity),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OutlineData is a flattened body outline for a renderer.
type OutlineData struct {
	Vertices []float32 `json:"vertices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// MessageData is a JSON-serializable error or warning.
type MessageData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result of one pose evaluation.
type EvalResult struct {
	MinGap        float64            `json:"minGap"`
	Status        hinge.SafetyStatus `json:"status"`
	SystemPolygon geom.Polygon       `json:"systemPolygon"`
	LCDPolygon    geom.Polygon       `json:"lcdPolygon"`
	Pivot         geom.Point         `json:"pivot"`
	Penetration   float64            `json:"penetration"`
	OverlapArea   float64            `json:"overlapArea"`
	Outlines      []OutlineData      `json:"outlines"`
	Trace         []geom.Point       `json:"trace"`
	Warnings      []MessageData      `json:"warnings"`
	Errors        []MessageData      `json:"errors"`
}

// Evaluate computes one pose and updates the trace: the LCD nose is pushed
// when p.ShowTrace is set, otherwise the trace is cleared.
func (a *App) Evaluate(p hinge.Parameters) EvalResult {
	result, res := a.evaluate(p)

	if p.ShowTrace {
		a.trace.Push(res.Nose())
	} else {
		a.trace.Reset()
	}
	result.Trace = a.trace.Points()

	a.log.WithFields(logrus.Fields{
		"angle":  p.AngleDegrees,
		"minGap": result.MinGap,
		"status": result.Status,
	}).Debug("evaluated pose")
	return result
}

// evaluate computes one pose without touching the trace.
func (a *App) evaluate(p hinge.Parameters) (EvalResult, hinge.Result) {
	res := hinge.Evaluate(p)
	result := EvalResult{
		MinGap:        res.MinGap,
		Status:        res.Status,
		SystemPolygon: res.SystemPolygon,
		LCDPolygon:    res.LCDPolygon,
		Pivot:         res.Pivot,
		Outlines: []OutlineData{
			outlineData(kernel.ToOutline("system", res.SystemPolygon), systemColor),
			outlineData(kernel.ToOutline("lcd", res.LCDPolygon), lcdColor),
		},
		Trace:    []geom.Point{},
		Warnings: []MessageData{},
		Errors:   []MessageData{},
	}

	for _, f := range hinge.Validate(p) {
		result.Warnings = append(result.Warnings, MessageData{
			Field:   f.Field,
			Message: fmt.Sprintf("%s: %s", f.Severity, f.Message),
		})
	}

	if res.Colliding() {
		result.OverlapArea = kernel.OverlapArea(res.LCDPolygon, res.SystemPolygon)
	}
	if res.Colliding() && a.kernel != nil {
		depth, err := kernel.Penetration(a.kernel, res.LCDPolygon, res.SystemPolygon)
		if err != nil {
			a.log.WithError(err).Warn("penetration depth unavailable")
			result.Errors = append(result.Errors, MessageData{
				Message: "penetration: " + err.Error(),
			})
		} else {
			result.Penetration = depth
		}
	}
	return result, res
}

func outlineData(o *kernel.Outline, color string) OutlineData {
	return OutlineData{Vertices: o.Vertices, PartName: o.PartName, Color: color}
}

// Sweep evaluates p over r. The trace is not touched.
func (a *App) Sweep(p hinge.Parameters, r sweep.Range) (*sweep.Report, error) {
	rep, err := sweep.Run(p, r, a.kernel)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"from":        r.From,
		"to":          r.To,
		"step":        r.Step,
		"samples":     len(rep.Samples),
		"transitions": len(rep.Transitions),
	}
	if rep.FirstCollision != nil {
		fields["firstCollision"] = *rep.FirstCollision
	}
	a.log.WithFields(fields).Debug("sweep complete")
	return rep, nil
}

// Trace returns a copy of the current trace window.
func (a *App) Trace() []geom.Point {
	return a.trace.Points()
}

// ResetTrace clears the trace window.
func (a *App) ResetTrace() {
	a.trace.Reset()
}

// ExportSVG renders the pose p with the current trace.
func (a *App) ExportSVG(w io.Writer, p hinge.Parameters, opts export.Options) error {
	if err := export.SVG(w, hinge.Evaluate(p), a.trace.Points(), opts); err != nil {
		return err
	}
	a.log.WithField("angle", p.AngleDegrees).Debug("exported svg")
	return nil
}

// ExportDXF writes the pose p to a DXF file at path.
func (a *App) ExportDXF(path string, p hinge.Parameters) error {
	if err := export.DXF(path, hinge.Evaluate(p)); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"angle": p.AngleDegrees, "path": path}).Debug("exported dxf")
	return nil
}
