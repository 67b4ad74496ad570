package hinge

import "fmt"

// WarningThreshold is the clearance in mm below which a pose is flagged.
const WarningThreshold = 0.8

// SafetyStatus classifies a clearance value.
type SafetyStatus int

const (
	Safe      SafetyStatus = iota // clearance >= WarningThreshold
	Warning                       // 0 <= clearance < WarningThreshold
	Collision                     // bodies interfere
)

func (s SafetyStatus) String() string {
	switch s {
	case Safe:
		return "SAFE"
	case Warning:
		return "WARNING"
	case Collision:
		return "COLLISION"
	default:
		return fmt.Sprintf("SafetyStatus(%d)", int(s))
	}
}

// MarshalText encodes the status by name so JSON and YAML carry "SAFE",
// "WARNING" or "COLLISION".
func (s SafetyStatus) MarshalText() ([]byte, error) {
	switch s {
	case Safe, Warning, Collision:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("hinge: invalid safety status %d", int(s))
}

// UnmarshalText decodes a status name.
func (s *SafetyStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "SAFE":
		*s = Safe
	case "WARNING":
		*s = Warning
	case "COLLISION":
		*s = Collision
	default:
		return fmt.Errorf("hinge: unknown safety status %q", text)
	}
	return nil
}

// Classify maps a signed gap to a status. Any negative gap, including the
// collision sentinel, is a Collision.
func Classify(gap float64) SafetyStatus {
	switch {
	case gap < 0:
		return Collision
	case gap < WarningThreshold:
		return Warning
	default:
		return Safe
	}
}
