package app

import (
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/sweep"
	"github.com/sirupsen/logrus"
)

// CheckResult is the outcome of one scripted check.
type CheckResult struct {
	Name        string             `json:"name"`
	Angle       float64            `json:"angle"`
	MinGap      float64            `json:"minGap"`
	Status      hinge.SafetyStatus `json:"status"`
	Penetration float64            `json:"penetration"`
	OverlapArea float64            `json:"overlapArea"`
	Warnings    []MessageData      `json:"warnings"`
}

// SweepResult is the outcome of one scripted sweep.
type SweepResult struct {
	Name   string        `json:"name"`
	Report *sweep.Report `json:"report"`
}

// ScriptResult is the full result of running a scenario script.
type ScriptResult struct {
	Checks []CheckResult `json:"checks"`
	Sweeps []SweepResult `json:"sweeps"`
	Errors []MessageData `json:"errors"`
}

// OK reports whether the script ran without errors.
func (r ScriptResult) OK() bool {
	return len(r.Errors) == 0
}

// Collisions returns how many checks collided plus how many sweeps hit a
// collision anywhere in their range.
func (r ScriptResult) Collisions() int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == hinge.Collision {
			n++
		}
	}
	for _, s := range r.Sweeps {
		if s.Report != nil && !s.Report.Clear() {
			n++
		}
	}
	return n
}

// RunScript evaluates a scenario script and runs every check and sweep it
// registers, in order. Scripted checks do not touch the trace.
func (a *App) RunScript(source string) ScriptResult {
	result := ScriptResult{
		Checks: []CheckResult{},
		Sweeps: []SweepResult{},
		Errors: []MessageData{},
	}

	// Step 1: Run the script into a scenario.
	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.log.WithError(err).Error("script evaluation failed")
		result.Errors = append(result.Errors, MessageData{Message: err.Error()})
		return result
	}

	// Step 2: Report script errors.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, MessageData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Evaluate the checks.
	for _, c := range sc.Checks {
		er, _ := a.evaluate(c.Parameters)
		result.Checks = append(result.Checks, CheckResult{
			Name:        c.Name,
			Angle:       c.Parameters.AngleDegrees,
			MinGap:      er.MinGap,
			Status:      er.Status,
			Penetration: er.Penetration,
			OverlapArea: er.OverlapArea,
			Warnings:    er.Warnings,
		})
		result.Errors = append(result.Errors, er.Errors...)
	}

	// Step 4: Run the sweeps.
	for _, s := range sc.Sweeps {
		rep, err := a.Sweep(s.Parameters, s.Range)
		if err != nil {
			a.log.WithError(err).WithField("sweep", s.Name).Warn("sweep failed")
			result.Errors = append(result.Errors, MessageData{Message: s.Name + ": " + err.Error()})
			continue
		}
		result.Sweeps = append(result.Sweeps, SweepResult{Name: s.Name, Report: rep})
	}

	a.log.WithFields(logrus.Fields{
		"checks":     len(result.Checks),
		"sweeps":     len(result.Sweeps),
		"collisions": result.Collisions(),
	}).Info("script complete")
	return result
}
