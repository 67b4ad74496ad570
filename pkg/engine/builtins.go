package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/sweep"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpHinge wraps a hinge.Parameters value so it can be bound with def and
// passed between builtins.
type sexpHinge struct {
	p hinge.Parameters
}

func (h *sexpHinge) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(hinge :lcd-thickness %g :system-thickness %g :initial-gap %g :angle %g)",
		h.p.LCDThickness, h.p.SystemThickness, h.p.InitialGap, h.p.AngleDegrees)
}
func (h *sexpHinge) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	order      []string
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A keyword
// at the end with no value maps to SexpNull. order records keywords as they
// appear so errors are reported deterministically.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if _, seen := result.kw[name]; !seen {
			result.order = append(result.order, name)
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a finite float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		if math.IsNaN(v.Val) || math.IsInf(v.Val, 0) {
			return 0, fmt.Errorf("expected finite number, got %v", v.Val)
		}
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp. Keywords are accepted by name so
// that both :full-open and "full-open" work as names.
func toString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toHinge extracts hinge parameters from a sexpHinge.
func toHinge(s zygo.Sexp) (hinge.Parameters, error) {
	if h, ok := s.(*sexpHinge); ok {
		return h.p, nil
	}
	return hinge.Parameters{}, fmt.Errorf("expected hinge, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Hinge parameter keywords
// ---------------------------------------------------------------------------

// hingeFields maps script keywords to Parameters fields.
var hingeFields = map[string]func(p *hinge.Parameters) *float64{
	"lcd-thickness":        func(p *hinge.Parameters) *float64 { return &p.LCDThickness },
	"system-thickness":     func(p *hinge.Parameters) *float64 { return &p.SystemThickness },
	"pivot-horizontal":     func(p *hinge.Parameters) *float64 { return &p.PivotHorizontalOffset },
	"pivot-vertical":       func(p *hinge.Parameters) *float64 { return &p.PivotVerticalOffset },
	"initial-gap":          func(p *hinge.Parameters) *float64 { return &p.InitialGap },
	"lcd-fillet":           func(p *hinge.Parameters) *float64 { return &p.LCDFilletRadius },
	"system-top-fillet":    func(p *hinge.Parameters) *float64 { return &p.SystemTopFilletRadius },
	"system-bottom-fillet": func(p *hinge.Parameters) *float64 { return &p.SystemBottomFilletRadius },
	"angle":                func(p *hinge.Parameters) *float64 { return &p.AngleDegrees },
}

// hingeKeywords lists the accepted keywords for error messages.
func hingeKeywords() string {
	names := make([]string, 0, len(hingeFields))
	for k := range hingeFields {
		names = append(names, ":"+k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// applyHingeArgs sets every keyword in pa on p. Unknown keywords and
// positional arguments are errors.
func applyHingeArgs(fn string, p *hinge.Parameters, pa kwArgs) error {
	for _, k := range pa.order {
		field, ok := hingeFields[k]
		if !ok {
			return fmt.Errorf("%s: unknown keyword :%s (expected one of %s)", fn, k, hingeKeywords())
		}
		f, err := toFloat64(pa.kw[k])
		if err != nil {
			return fmt.Errorf("%s: %s: %w", fn, k, err)
		}
		*field(p) = f
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scenario builtins into a zygomys environment.
// check and sweep append to sc as the script runs.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *Scenario) {

	// -----------------------------------------------------------------------
	// (hinge :lcd-thickness 5.5 :system-thickness 18 :angle 0 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("hinge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("hinge takes only keyword arguments")
		}
		p := hinge.DefaultParameters()
		if err := applyHingeArgs("hinge", &p, pa); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpHinge{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (hinge-with h :initial-gap 1.5)
	//
	// Registered as "hinge_with"; the preprocessor rewrites the hyphen.
	// -----------------------------------------------------------------------
	env.AddFunction("hinge_with", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("hinge-with requires exactly one hinge argument, got %d", len(pa.positional))
		}
		p, err := toHinge(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hinge-with: %w", err)
		}
		if err := applyHingeArgs("hinge-with", &p, pa); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpHinge{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (check h :angle 45 :name "half-open")
	// -----------------------------------------------------------------------
	env.AddFunction("check", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("check requires exactly one hinge argument, got %d", len(pa.positional))
		}
		p, err := toHinge(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("check: %w", err)
		}

		checkName := fmt.Sprintf("check-%d", len(sc.Checks)+1)
		for _, k := range pa.order {
			switch k {
			case "angle":
				a, err := toFloat64(pa.kw[k])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("check: angle: %w", err)
				}
				p.AngleDegrees = a
			case "name":
				s, err := toString(pa.kw[k])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("check: name: %w", err)
				}
				checkName = s
			default:
				return zygo.SexpNull, fmt.Errorf("check: unknown keyword :%s (expected :angle or :name)", k)
			}
		}
		if sc.hasName(checkName) {
			return zygo.SexpNull, fmt.Errorf("check: name %q already used", checkName)
		}

		sc.Checks = append(sc.Checks, Check{Name: checkName, Parameters: p})
		return &sexpHinge{p: p}, nil
	})

	// -----------------------------------------------------------------------
	// (sweep h :from 0 :to 180 :step 1 :name "full-open")
	// -----------------------------------------------------------------------
	env.AddFunction("sweep", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("sweep requires exactly one hinge argument, got %d", len(pa.positional))
		}
		p, err := toHinge(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sweep: %w", err)
		}

		r := sweep.FullOpen
		sweepName := fmt.Sprintf("sweep-%d", len(sc.Sweeps)+1)
		for _, k := range pa.order {
			var target *float64
			switch k {
			case "from":
				target = &r.From
			case "to":
				target = &r.To
			case "step":
				target = &r.Step
			case "name":
				s, err := toString(pa.kw[k])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("sweep: name: %w", err)
				}
				sweepName = s
				continue
			default:
				return zygo.SexpNull, fmt.Errorf("sweep: unknown keyword :%s (expected :from, :to, :step or :name)", k)
			}
			f, err := toFloat64(pa.kw[k])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sweep: %s: %w", k, err)
			}
			*target = f
		}
		if err := r.Validate(); err != nil {
			return zygo.SexpNull, err
		}
		if sc.hasName(sweepName) {
			return zygo.SexpNull, fmt.Errorf("sweep: name %q already used", sweepName)
		}

		sc.Sweeps = append(sc.Sweeps, SweepSpec{Name: sweepName, Parameters: p, Range: r})
		return &sexpHinge{p: p}, nil
	})
}
