package hinge

import (
	"fmt"
	"math"
)

// Severity indicates how implausible a parameter is.
type Severity int

const (
	SeverityError   Severity = iota // physically meaningless
	SeverityWarning                 // computable, but outside the intended scenario
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding describes one questionable parameter.
type Finding struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (f Finding) Error() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// Validate reports parameters a user interface may want to flag. It is
// advisory: Evaluate accepts every input and never consults Validate.
// An empty slice means nothing looked wrong.
func Validate(p Parameters) []Finding {
	var findings []Finding
	findings = append(findings, validateLengths(p)...)
	findings = append(findings, validateFillets(p)...)
	findings = append(findings, validateAngle(p)...)
	return findings
}

// validateLengths checks that every length is finite and non-negative.
func validateLengths(p Parameters) []Finding {
	var findings []Finding

	lengths := []struct {
		field string
		value float64
	}{
		{"lcdThickness", p.LCDThickness},
		{"systemThickness", p.SystemThickness},
		{"pivotHorizontalOffset", p.PivotHorizontalOffset},
		{"pivotVerticalOffset", p.PivotVerticalOffset},
		{"initialGap", p.InitialGap},
		{"lcdFilletRadius", p.LCDFilletRadius},
		{"systemTopFilletRadius", p.SystemTopFilletRadius},
		{"systemBottomFilletRadius", p.SystemBottomFilletRadius},
	}

	for _, l := range lengths {
		switch {
		case math.IsNaN(l.value) || math.IsInf(l.value, 0):
			findings = append(findings, Finding{
				Field:    l.field,
				Message:  fmt.Sprintf("%v is not a finite length", l.value),
				Severity: SeverityError,
			})
		case l.value < 0:
			findings = append(findings, Finding{
				Field:    l.field,
				Message:  fmt.Sprintf("length is %.4f mm, must not be negative", l.value),
				Severity: SeverityError,
			})
		}
	}

	return findings
}

// validateFillets warns when a radius exceeds the dimension it rounds. The
// builder does not clamp, so such outlines may self-intersect.
func validateFillets(p Parameters) []Finding {
	var findings []Finding

	if p.LCDFilletRadius > p.LCDThickness {
		findings = append(findings, Finding{
			Field: "lcdFilletRadius",
			Message: fmt.Sprintf("radius %.2f mm exceeds LCD thickness %.2f mm; the outline may self-intersect",
				p.LCDFilletRadius, p.LCDThickness),
			Severity: SeverityWarning,
		})
	}

	if sum := p.SystemTopFilletRadius + p.SystemBottomFilletRadius; sum > p.SystemThickness {
		findings = append(findings, Finding{
			Field: "systemTopFilletRadius",
			Message: fmt.Sprintf("top and bottom radii total %.2f mm, more than system thickness %.2f mm; the front face inverts",
				sum, p.SystemThickness),
			Severity: SeverityWarning,
		})
	}

	if p.PivotVerticalOffset > p.SystemThickness {
		findings = append(findings, Finding{
			Field: "pivotVerticalOffset",
			Message: fmt.Sprintf("pivot %.2f mm below the top face lies under the base (thickness %.2f mm)",
				p.PivotVerticalOffset, p.SystemThickness),
			Severity: SeverityWarning,
		})
	}

	return findings
}

// validateAngle checks the opening angle against the 0–180° convention.
func validateAngle(p Parameters) []Finding {
	a := p.AngleDegrees
	switch {
	case math.IsNaN(a) || math.IsInf(a, 0):
		return []Finding{{
			Field:    "angleDegrees",
			Message:  fmt.Sprintf("%v is not a finite angle", a),
			Severity: SeverityError,
		}}
	case a < 0 || a > 180:
		return []Finding{{
			Field:    "angleDegrees",
			Message:  fmt.Sprintf("angle %.1f° is outside 0–180°; the result is computed but not physical", a),
			Severity: SeverityWarning,
		}}
	}
	return nil
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
