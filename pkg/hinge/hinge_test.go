package hinge

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/chazu/hingesim/pkg/geom"
)

// sharpParams is the reference pose with every corner sharp.
func sharpParams() Parameters {
	return Parameters{
		LCDThickness:          5.5,
		SystemThickness:       18.0,
		PivotHorizontalOffset: 10.0,
		PivotVerticalOffset:   8.0,
		InitialGap:            0.5,
	}
}

// ---------------------------------------------------------------------------
// Polygon builder
// ---------------------------------------------------------------------------

func TestSystemPolygonSharp(t *testing.T) {
	got := SystemPolygon(sharpParams())
	want := geom.Polygon{
		{X: -SystemWidth, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 18}, {X: -SystemWidth, Y: 18},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d vertices, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSystemPolygonFillets(t *testing.T) {
	p := DefaultParameters()
	got := SystemPolygon(p)

	// top-back + two arcs of 11 points + bottom-back
	if len(got) != 2+2*(geom.DefaultArcSegments+1) {
		t.Fatalf("unexpected vertex count %d", len(got))
	}

	top := got[1 : 1+geom.DefaultArcSegments+1]
	center := geom.Pt(-p.SystemTopFilletRadius, p.SystemTopFilletRadius)
	for i, v := range top {
		if d := v.Distance(center); math.Abs(d-p.SystemTopFilletRadius) > 1e-9 {
			t.Errorf("top fillet point %d off the arc: distance %f", i, d)
		}
	}
	if first := top[0]; math.Abs(first.Y) > 1e-9 || math.Abs(first.X+p.SystemTopFilletRadius) > 1e-9 {
		t.Errorf("top fillet should start tangent to the top face, got %v", first)
	}
	if last := top[len(top)-1]; math.Abs(last.X) > 1e-9 {
		t.Errorf("top fillet should end on the front face, got %v", last)
	}

	bottom := got[len(got)-1-(geom.DefaultArcSegments+1) : len(got)-1]
	if last := bottom[len(bottom)-1]; math.Abs(last.Y-p.SystemThickness) > 1e-9 {
		t.Errorf("bottom fillet should end on the bottom face, got %v", last)
	}
}

func TestLCDReferenceSharp(t *testing.T) {
	got := LCDReference(sharpParams())
	want := geom.Polygon{
		{X: 0, Y: -0.5}, {X: -LCDLength, Y: -0.5}, {X: -LCDLength, Y: -6}, {X: 0, Y: -6},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d vertices, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLCDReferenceFilletStartsOnFrontFace(t *testing.T) {
	p := DefaultParameters()
	got := LCDReference(p)
	if len(got) != geom.DefaultArcSegments+1+3 {
		t.Fatalf("unexpected vertex count %d", len(got))
	}
	nose := got[0]
	wantY := -p.InitialGap - p.LCDFilletRadius
	if math.Abs(nose.X) > 1e-9 || math.Abs(nose.Y-wantY) > 1e-9 {
		t.Errorf("nose = %v, want (0, %v)", nose, wantY)
	}
	end := got[geom.DefaultArcSegments]
	if math.Abs(end.Y+p.InitialGap) > 1e-9 {
		t.Errorf("fillet should end on the bottom face, got %v", end)
	}
}

func TestLCDPolygonZeroAngleMatchesReference(t *testing.T) {
	p := DefaultParameters()
	ref := LCDReference(p)
	got := LCDPolygon(p)
	for i := range ref {
		if got[i] != ref[i] {
			t.Errorf("vertex %d = %v, want exact %v", i, got[i], ref[i])
		}
	}
}

func TestPivot(t *testing.T) {
	p := sharpParams()
	if got := p.Pivot(); got != geom.Pt(-10, 8) {
		t.Errorf("Pivot() = %v, want (-10, 8)", got)
	}
}

// ---------------------------------------------------------------------------
// Classifier
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	tests := []struct {
		gap  float64
		want SafetyStatus
	}{
		{geom.Collision, Collision},
		{-0.0001, Collision},
		{0, Warning},
		{0.5, Warning},
		{0.7999, Warning},
		{WarningThreshold, Safe},
		{0.8001, Safe},
		{25, Safe},
	}
	for _, tt := range tests {
		if got := Classify(tt.gap); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.gap, got, tt.want)
		}
	}
}

func TestSafetyStatusText(t *testing.T) {
	for _, s := range []SafetyStatus{Safe, Warning, Collision} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", s, err)
		}
		var back SafetyStatus
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("%q decoded to %s", text, back)
		}
	}

	if _, err := SafetyStatus(42).MarshalText(); err == nil {
		t.Error("expected error for out-of-range status")
	}
	var s SafetyStatus
	if err := s.UnmarshalText([]byte("MAYBE")); err == nil {
		t.Error("expected error for unknown status name")
	}
}

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

func TestEvaluateReferenceScenario(t *testing.T) {
	res := Evaluate(sharpParams())
	if res.MinGap != 0.5 {
		t.Errorf("MinGap = %v, want exactly 0.5", res.MinGap)
	}
	// 0.5 mm is below the 0.8 mm threshold.
	if res.Status != Warning {
		t.Errorf("Status = %s, want WARNING", res.Status)
	}
	if res.Pivot != geom.Pt(-10, 8) {
		t.Errorf("Pivot = %v", res.Pivot)
	}
}

func TestEvaluateSharpZeroAngleGapEqualsInitialGap(t *testing.T) {
	// Dyadic values keep every intermediate exactly representable.
	gaps := []float64{0.25, 0.5, 0.75, 1, 2.5, 4}
	thicknesses := []float64{4, 5.5, 6.25}
	for _, g := range gaps {
		for _, th := range thicknesses {
			p := sharpParams()
			p.InitialGap = g
			p.LCDThickness = th
			if got := Evaluate(p).MinGap; got != g {
				t.Errorf("gap %v, thickness %v: MinGap = %v, want exactly %v", g, th, got, g)
			}
		}
	}
}

func TestEvaluateFilletsDoNotReduceClosedGap(t *testing.T) {
	base := Evaluate(sharpParams()).MinGap

	setters := map[string]func(*Parameters, float64){
		"lcd":           func(p *Parameters, r float64) { p.LCDFilletRadius = r },
		"system top":    func(p *Parameters, r float64) { p.SystemTopFilletRadius = r },
		"system bottom": func(p *Parameters, r float64) { p.SystemBottomFilletRadius = r },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			for _, r := range []float64{0.5, 1, 2, 3, 5} {
				p := sharpParams()
				set(&p, r)
				got := Evaluate(p).MinGap
				if got < base-1e-9 {
					t.Errorf("radius %v: MinGap %v dropped below sharp-corner gap %v", r, got, base)
				}
			}
		})
	}
}

func TestEvaluateCollisions(t *testing.T) {
	for _, angle := range []float64{30, 180} {
		res := Evaluate(sharpParams().WithAngle(angle))
		if res.MinGap != geom.Collision {
			t.Errorf("angle %v: MinGap = %v, want sentinel %v", angle, res.MinGap, geom.Collision)
		}
		if res.Status != Collision || !res.Colliding() {
			t.Errorf("angle %v: Status = %s, want COLLISION", angle, res.Status)
		}
	}
}

func TestEvaluateSafe(t *testing.T) {
	p := sharpParams()
	p.InitialGap = 2
	res := Evaluate(p)
	if res.MinGap != 2 || res.Status != Safe {
		t.Errorf("got gap %v status %s, want 2 SAFE", res.MinGap, res.Status)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	p := DefaultParameters().WithAngle(12.5)
	a := Evaluate(p)
	b := Evaluate(p)
	if a.MinGap != b.MinGap || a.Status != b.Status {
		t.Fatalf("repeated evaluation differs: %v/%s vs %v/%s", a.MinGap, a.Status, b.MinGap, b.Status)
	}
	a.LCDPolygon[0] = geom.Pt(999, 999)
	if b.LCDPolygon[0] == a.LCDPolygon[0] {
		t.Error("results share polygon storage")
	}
}

func TestEvaluateIgnoresShowTrace(t *testing.T) {
	p := DefaultParameters().WithAngle(5)
	p.ShowTrace = false
	q := p
	q.ShowTrace = true
	if Evaluate(p).MinGap != Evaluate(q).MinGap {
		t.Error("ShowTrace changed the gap")
	}
}

func TestEvaluateNose(t *testing.T) {
	res := Evaluate(DefaultParameters().WithAngle(45))
	if res.Nose() != res.LCDPolygon[0] {
		t.Errorf("Nose() = %v, want first LCD vertex %v", res.Nose(), res.LCDPolygon[0])
	}
	if (Result{}).Nose() != (geom.Point{}) {
		t.Error("empty result should have a zero nose")
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Evaluate(sharpParams()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"minGap":0.5`, `"status":"WARNING"`, `"systemPolygon":[`, `"lcdPolygon":[`, `"pivot":{"x":-10,"y":8}`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s: %s", want, s)
		}
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func findingFor(findings []Finding, field string) *Finding {
	for i := range findings {
		if findings[i].Field == field {
			return &findings[i]
		}
	}
	return nil
}

func TestValidateDefaultsClean(t *testing.T) {
	if f := Validate(DefaultParameters()); len(f) != 0 {
		t.Errorf("expected no findings for defaults, got %v", f)
	}
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Parameters)
		field    string
		severity Severity
	}{
		{"negative thickness", func(p *Parameters) { p.LCDThickness = -1 }, "lcdThickness", SeverityError},
		{"NaN gap", func(p *Parameters) { p.InitialGap = math.NaN() }, "initialGap", SeverityError},
		{"infinite angle", func(p *Parameters) { p.AngleDegrees = math.Inf(1) }, "angleDegrees", SeverityError},
		{"oversize lcd fillet", func(p *Parameters) { p.LCDFilletRadius = 8 }, "lcdFilletRadius", SeverityWarning},
		{"system fillets overlap", func(p *Parameters) { p.SystemTopFilletRadius = 10; p.SystemBottomFilletRadius = 10 }, "systemTopFilletRadius", SeverityWarning},
		{"pivot below base", func(p *Parameters) { p.PivotVerticalOffset = 30 }, "pivotVerticalOffset", SeverityWarning},
		{"negative angle", func(p *Parameters) { p.AngleDegrees = -5 }, "angleDegrees", SeverityWarning},
		{"over-open", func(p *Parameters) { p.AngleDegrees = 200 }, "angleDegrees", SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			findings := Validate(p)
			f := findingFor(findings, tt.field)
			if f == nil {
				t.Fatalf("expected a finding for %s, got %v", tt.field, findings)
			}
			if f.Severity != tt.severity {
				t.Errorf("severity = %s, want %s", f.Severity, tt.severity)
			}
			if HasErrors(findings) != (tt.severity == SeverityError) {
				t.Errorf("HasErrors = %v for %v", HasErrors(findings), findings)
			}
		})
	}
}

func TestEvaluateDoesNotRejectImplausibleInput(t *testing.T) {
	p := DefaultParameters()
	p.LCDFilletRadius = 50
	p.AngleDegrees = -720
	res := Evaluate(p)
	if len(res.LCDPolygon) == 0 || len(res.SystemPolygon) == 0 {
		t.Fatal("expected polygons even for implausible input")
	}
}

func TestCheckFinite(t *testing.T) {
	if err := DefaultParameters().CheckFinite(); err != nil {
		t.Fatalf("defaults: %v", err)
	}

	tests := []struct {
		name  string
		set   func(p *Parameters)
		field string
	}{
		{"NaN angle", func(p *Parameters) { p.AngleDegrees = math.NaN() }, "angleDegrees"},
		{"infinite gap", func(p *Parameters) { p.InitialGap = math.Inf(1) }, "initialGap"},
		{"negative infinite pivot", func(p *Parameters) { p.PivotVerticalOffset = math.Inf(-1) }, "pivotVerticalOffset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.set(&p)
			err := p.CheckFinite()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}

	// Negative lengths are implausible but finite.
	p := DefaultParameters()
	p.InitialGap = -1
	if err := p.CheckFinite(); err != nil {
		t.Errorf("negative gap: %v", err)
	}
}
