// Package movement classifies AIS samples as moving, not moving or unknown
package movement

import (
	"fmt"
	"strings"

	"seatime/internal/core/sample"
)

// Verdict is the tri-state movement classification
type Verdict uint8

const (
	// Unknown means the sample cannot be trusted either way
	Unknown Verdict = iota
	// NotMoving means speed at or below the threshold
	NotMoving
	// Moving means speed strictly above the threshold
	Moving
)

func (v Verdict) String() string {
	switch v {
	case Moving:
		return "moving"
	case NotMoving:
		return "not_moving"
	default:
		return "unknown"
	}
}

// IsMoving returns the boolean verdict and whether it is known at all
func (v Verdict) IsMoving() (moving bool, known bool) {
	switch v {
	case Moving:
		return true, true
	case NotMoving:
		return false, true
	default:
		return false, false
	}
}

// ParseVerdict reverses String
func ParseVerdict(s string) (Verdict, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moving":
		return Moving, nil
	case "not_moving":
		return NotMoving, nil
	case "unknown", "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("movement: unknown verdict %q", s)
}

// Policy holds the classification thresholds
type Policy struct {
	// ThresholdKnots is the speed a vessel must exceed to count as moving
	ThresholdKnots float64
	// CeilingKnots is the highest plausible speed; anything above is a bad reading
	CeilingKnots float64
}

// DefaultPolicy ignores anchor drift below 2 knots and rejects readings above 60
func DefaultPolicy() Policy { return Policy{ThresholdKnots: 2.0, CeilingKnots: 60} }

// Reasons returned by Explain
const (
	ReasonMissingSpeed = "missing_speed"
	ReasonNegative     = "negative_speed"
	ReasonImplausible  = "implausible_speed"
	ReasonStale        = "not_newer_than_recent"
	ReasonAbove        = "above_threshold"
	ReasonBelow        = "at_or_below_threshold"
)

// Classify maps s to a verdict given the recently processed samples for the same vessel
// a sample that is not newer than the latest of recent is a duplicate or out of order reading
func Classify(s sample.Sample, recent []sample.Sample, p Policy) Verdict {
	v, _ := Explain(s, recent, p)
	return v
}

// Explain is Classify plus the reason the verdict was reached
func Explain(s sample.Sample, recent []sample.Sample, p Policy) (Verdict, string) {
	if s.SpeedKnots == nil {
		return Unknown, ReasonMissingSpeed
	}
	sog := *s.SpeedKnots
	switch {
	case sog < 0:
		return Unknown, ReasonNegative
	case p.CeilingKnots > 0 && sog > p.CeilingKnots:
		return Unknown, ReasonImplausible
	}
	if last := sample.Latest(recent); !last.IsZero() && !s.Timestamp.After(last) {
		return Unknown, ReasonStale
	}
	if sog > p.ThresholdKnots {
		return Moving, ReasonAbove
	}
	return NotMoving, ReasonBelow
}
