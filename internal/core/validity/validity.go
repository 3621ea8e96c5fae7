// Package validity decides which sea time entries count toward certification
//
// Nothing is ever dropped here. Entries below the minimum or lacking position
// data are classified and flagged so a human can still review them.
package validity

import (
	"math"
	"time"

	"seatime/internal/core/interval"
)

// Compliance is the regulatory classification of an entry
type Compliance string

const (
	// Open entries have no end yet
	Open Compliance = "open"
	// Compliant entries meet the minimum duration
	Compliant Compliance = "compliant"
	// NonCompliant entries are closed but below the minimum
	NonCompliant Compliance = "non_compliant"
)

// Reason explains why an entry is not confirmable
type Reason string

const (
	ReasonOpen            Reason = "open"
	ReasonUnderMinimum    Reason = "under_minimum"
	ReasonMissingPosition Reason = "missing_position"
)

// tolerance keeps 4.00 compliant after a float round trip through numeric columns
const tolerance = 1e-9

// Policy holds the gating thresholds
type Policy struct {
	MinimumHours float64
}

// DefaultPolicy is the 4 hour minimum sea service increment
func DefaultPolicy() Policy { return Policy{MinimumHours: 4.0} }

// Entry is the slice of a sea time entry the filter looks at
type Entry struct {
	Start          time.Time
	End            *time.Time
	DurationHours  *float64
	StartLatitude  *float64
	StartLongitude *float64
	EndLatitude    *float64
	EndLongitude   *float64
}

// Result is the outcome of Evaluate
type Result struct {
	Compliance  Compliance `json:"compliance"`
	Confirmable bool       `json:"confirmable"`
	Reasons     []Reason   `json:"reasons,omitempty"`
}

// Evaluate classifies e under p
func Evaluate(e Entry, p Policy) Result {
	var r Result
	if !hasPosition(e.StartLatitude, e.StartLongitude) || !hasPosition(e.EndLatitude, e.EndLongitude) {
		r.Reasons = append(r.Reasons, ReasonMissingPosition)
	}
	if e.End == nil {
		r.Compliance = Open
		r.Reasons = append([]Reason{ReasonOpen}, r.Reasons...)
		return r
	}

	hours := interval.Duration(e.Start, *e.End)
	if e.DurationHours != nil {
		hours = *e.DurationHours
	}
	if hours+tolerance >= p.MinimumHours {
		r.Compliance = Compliant
	} else {
		r.Compliance = NonCompliant
		r.Reasons = append([]Reason{ReasonUnderMinimum}, r.Reasons...)
	}
	r.Confirmable = len(r.Reasons) == 0
	return r
}

func hasPosition(lat, lon *float64) bool {
	return lat != nil && lon != nil && !math.IsNaN(*lat) && !math.IsNaN(*lon)
}
