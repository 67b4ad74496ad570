// Package sweep evaluates a hinge over a range of opening angles and keeps
// the motion trace of the LCD's leading point. Each angle is evaluated from
// scratch; samples share no state.
package sweep

import (
	"fmt"
	"math"

	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/kernel"
	"gonum.org/v1/gonum/floats"
)

// MaxSamples bounds the number of angles in a single sweep.
const MaxSamples = 100000

// Range is an inclusive angle range in degrees.
type Range struct {
	From float64 `json:"from" yaml:"from"`
	To   float64 `json:"to" yaml:"to"`
	Step float64 `json:"step" yaml:"step"`
}

// FullOpen is the conventional 0–180° range in 1° steps.
var FullOpen = Range{From: 0, To: 180, Step: 1}

// Validate checks that the range terminates and stays within MaxSamples.
// Step may be negative for a closing sweep.
func (r Range) Validate() error {
	for _, v := range []float64{r.From, r.To, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sweep: range values must be finite, got %+v", r)
		}
	}
	if r.Step == 0 {
		return fmt.Errorf("sweep: step must be non-zero")
	}
	if (r.To-r.From)*r.Step < 0 {
		return fmt.Errorf("sweep: step %v moves away from %v toward %v", r.Step, r.From, r.To)
	}
	if steps := r.steps(); !(steps < MaxSamples) {
		return fmt.Errorf("sweep: %g samples exceeds limit of %d", math.Floor(steps)+1, MaxSamples)
	}
	return nil
}

// steps returns the number of whole steps from From to To as a float, so
// huge ranges can be rejected before any int conversion.
func (r Range) steps() float64 {
	// The epsilon lets To land on the last step despite rounding.
	return math.Floor((r.To-r.From)/r.Step + 1e-9)
}

// count returns the number of samples; the range must be valid.
func (r Range) count() int {
	return int(r.steps()) + 1
}

// Angles lists the sampled angles. To is included when it falls on a step.
func (r Range) Angles() ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	n := r.count()
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = r.From + float64(i)*r.Step
	}
	return angles, nil
}

// Sample is the evaluation at one angle.
type Sample struct {
	Angle  float64            `json:"angle"`
	MinGap float64            `json:"minGap"`
	Status hinge.SafetyStatus `json:"status"`

	// Penetration is the interference depth in mm for colliding samples,
	// measured by the kernel. Zero when clear or when no kernel was given.
	Penetration float64 `json:"penetration"`
}

// Transition records a status change between two adjacent samples.
type Transition struct {
	Angle float64            `json:"angle"` // first angle with the new status
	From  hinge.SafetyStatus `json:"from"`
	To    hinge.SafetyStatus `json:"to"`
}

// Report summarizes a sweep.
type Report struct {
	Range       Range        `json:"range"`
	Samples     []Sample     `json:"samples"`
	Transitions []Transition `json:"transitions"`

	// MinGap and MinGapAngle describe the tightest clear sample. Both are
	// NaN when every sample collides.
	MinGap      float64 `json:"-"`
	MinGapAngle float64 `json:"-"`

	// FirstCollision is the first colliding angle, or nil.
	FirstCollision *float64 `json:"firstCollision,omitempty"`

	// MaxPenetration is the deepest interference seen.
	MaxPenetration float64 `json:"maxPenetration"`

	// MaxJump is the largest gap change between adjacent clear samples.
	MaxJump float64 `json:"maxJump"`
}

// Clear reports whether no sample collided.
func (r *Report) Clear() bool {
	return r.FirstCollision == nil
}

// Count returns the number of samples with the given status.
func (r *Report) Count(s hinge.SafetyStatus) int {
	n := 0
	for _, smp := range r.Samples {
		if smp.Status == s {
			n++
		}
	}
	return n
}

// Run evaluates p at every angle of r. The angle in p is ignored. When k is
// non-nil, colliding samples also get a penetration depth.
func Run(p hinge.Parameters, r Range, k kernel.Kernel) (*Report, error) {
	angles, err := r.Angles()
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Range:       r,
		Samples:     make([]Sample, 0, len(angles)),
		Transitions: []Transition{},
		MinGap:      math.NaN(),
		MinGapAngle: math.NaN(),
	}

	for _, a := range angles {
		res := hinge.Evaluate(p.WithAngle(a))
		smp := Sample{Angle: a, MinGap: res.MinGap, Status: res.Status}

		if res.Colliding() && k != nil {
			depth, err := kernel.Penetration(k, res.LCDPolygon, res.SystemPolygon)
			if err != nil {
				return nil, fmt.Errorf("sweep: penetration at %v°: %w", a, err)
			}
			smp.Penetration = depth
		}

		rep.Samples = append(rep.Samples, smp)
	}

	summarize(rep)
	return rep, nil
}

// summarize fills the derived fields of rep from its samples.
func summarize(rep *Report) {
	var clearGaps, clearAngles []float64

	for i, smp := range rep.Samples {
		if i > 0 {
			prev := rep.Samples[i-1]
			if prev.Status != smp.Status {
				rep.Transitions = append(rep.Transitions, Transition{
					Angle: smp.Angle, From: prev.Status, To: smp.Status,
				})
			}
			if prev.Status != hinge.Collision && smp.Status != hinge.Collision {
				rep.MaxJump = math.Max(rep.MaxJump, math.Abs(smp.MinGap-prev.MinGap))
			}
		}

		if smp.Status == hinge.Collision {
			if rep.FirstCollision == nil {
				a := smp.Angle
				rep.FirstCollision = &a
			}
			rep.MaxPenetration = math.Max(rep.MaxPenetration, smp.Penetration)
			continue
		}
		clearGaps = append(clearGaps, smp.MinGap)
		clearAngles = append(clearAngles, smp.Angle)
	}

	if len(clearGaps) > 0 {
		i := floats.MinIdx(clearGaps)
		rep.MinGap = clearGaps[i]
		rep.MinGapAngle = clearAngles[i]
	}
}
