// Package interval is the per vessel open/closed sea time state machine
//
// It is pure: callers load the current State, ask Decide what to do with the
// next classified sample, and persist the returned Transition themselves.
package interval

import (
	"time"

	"seatime/internal/core/movement"
	"seatime/internal/core/sample"
)

// State is Closed (zero value) or Open on a specific entry
type State struct {
	EntryID int64
	Start   time.Time
	open    bool
}

// Closed is the state with no open entry
func Closed() State { return State{} }

// Opened is the state tracking entry id, started at start
func Opened(id int64, start time.Time) State {
	return State{EntryID: id, Start: start, open: true}
}

// IsOpen reports whether an entry is open
func (s State) IsOpen() bool { return s.open }

func (s State) String() string {
	if s.open {
		return "open"
	}
	return "closed"
}

// Kind names the transition taken
type Kind uint8

const (
	// Noop leaves storage untouched apart from the audit row
	Noop Kind = iota
	// Open creates a new pending entry
	Open
	// Continue keeps the open entry as is
	Continue
	// Close sets end time, end position and duration on the open entry
	Close
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Continue:
		return "continue"
	case Close:
		return "close"
	default:
		return "noop"
	}
}

// Noop reasons
const (
	ReasonUnknown      = "unknown_verdict"
	ReasonIdle         = "idle"
	ReasonBeforeStart  = "close_before_start"
	ReasonAlreadyMoved = "underway"
)

// Transition is what to write for one sample
type Transition struct {
	Kind    Kind
	EntryID int64 // the open entry for Continue and Close
	At      time.Time
	Lat     *float64
	Lon     *float64
	// DurationHours is set on Close
	DurationHours *float64
	Reason        string
}

// Decide returns the transition for verdict v on sample s in state st
func Decide(st State, v movement.Verdict, s sample.Sample) Transition {
	moving, known := v.IsMoving()
	if !known {
		return Transition{Kind: Noop, EntryID: st.EntryID, Reason: ReasonUnknown}
	}
	switch {
	case !st.open && moving:
		return Transition{Kind: Open, At: s.Timestamp, Lat: s.Latitude, Lon: s.Longitude}
	case !st.open:
		return Transition{Kind: Noop, Reason: ReasonIdle}
	case moving:
		return Transition{Kind: Continue, EntryID: st.EntryID, Reason: ReasonAlreadyMoved}
	case s.Timestamp.Before(st.Start):
		return Transition{Kind: Noop, EntryID: st.EntryID, Reason: ReasonBeforeStart}
	}
	d := Duration(st.Start, s.Timestamp)
	return Transition{
		Kind:          Close,
		EntryID:       st.EntryID,
		At:            s.Timestamp,
		Lat:           s.Latitude,
		Lon:           s.Longitude,
		DurationHours: &d,
	}
}

// Next is the state after t is applied; newID is the id storage assigned on Open
func (t Transition) Next(st State, newID int64) State {
	switch t.Kind {
	case Open:
		return Opened(newID, t.At)
	case Close:
		return Closed()
	default:
		return st
	}
}

// Duration is end minus start in hours, derived from the timestamps only
func Duration(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
