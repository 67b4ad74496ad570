package engine

import (
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/sweep"
)

// Check is a single-pose evaluation requested by a script.
type Check struct {
	Name       string           `json:"name"`
	Parameters hinge.Parameters `json:"parameters"`
}

// SweepSpec is an angle sweep requested by a script. Parameters.AngleDegrees
// is ignored by the sweep.
type SweepSpec struct {
	Name       string           `json:"name"`
	Parameters hinge.Parameters `json:"parameters"`
	Range      sweep.Range      `json:"range"`
}

// Scenario collects the checks and sweeps a script registered, in order.
// It describes work; it holds no results.
type Scenario struct {
	Checks []Check     `json:"checks"`
	Sweeps []SweepSpec `json:"sweeps"`
}

// NewScenario returns an empty scenario with non-nil slices.
func NewScenario() *Scenario {
	return &Scenario{Checks: []Check{}, Sweeps: []SweepSpec{}}
}

// IsEmpty reports whether the scenario requests nothing.
func (s *Scenario) IsEmpty() bool {
	return len(s.Checks) == 0 && len(s.Sweeps) == 0
}

// Lookup returns the check or sweep with the given name. At most one of the
// results is non-nil.
func (s *Scenario) Lookup(name string) (*Check, *SweepSpec) {
	for i := range s.Checks {
		if s.Checks[i].Name == name {
			return &s.Checks[i], nil
		}
	}
	for i := range s.Sweeps {
		if s.Sweeps[i].Name == name {
			return nil, &s.Sweeps[i]
		}
	}
	return nil, nil
}

func (s *Scenario) hasName(name string) bool {
	c, sw := s.Lookup(name)
	return c != nil || sw != nil
}
