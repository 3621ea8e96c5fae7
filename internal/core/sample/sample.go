// Package sample defines the normalized AIS observation shared by the pipeline
package sample

import "time"

// Sample is one normalized AIS observation
// nil numeric fields mean the provider did not report them, never zero
type Sample struct {
	MMSI       string    `json:"mmsi"`
	VesselName string    `json:"vessel_name,omitempty"`
	SpeedKnots *float64  `json:"speed_knots"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
	RawStatus  string    `json:"raw_status,omitempty"`
	Source     string    `json:"source,omitempty"`
}

// HasSpeed reports whether speed over ground was reported
func (s Sample) HasSpeed() bool { return s.SpeedKnots != nil }

// HasPosition reports whether both coordinates were reported
func (s Sample) HasPosition() bool { return s.Latitude != nil && s.Longitude != nil }

// Latest returns the newest timestamp in recent, zero when empty
func Latest(recent []Sample) time.Time {
	var t time.Time
	for _, r := range recent {
		if r.Timestamp.After(t) {
			t = r.Timestamp
		}
	}
	return t
}
