package ais

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"seatime/internal/core/sample"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AIS "not available" values
const (
	sogNotAvailable = 102.3
	latNotAvailable = 91.0
	lonNotAvailable = 181.0
)

// position is the provider's vessel position document
type position struct {
	MMSI      json.Number `json:"mmsi"`
	Name      string      `json:"name"`
	SOG       *float64    `json:"sog"`
	Lat       *float64    `json:"lat"`
	Lon       *float64    `json:"lon"`
	Timestamp string      `json:"timestamp"`
	NavStatus string      `json:"nav_status"`
}

// envelope is the wrapped form some plans return
type envelope struct {
	Data *position `json:"data"`
}

func (p position) empty() bool {
	return p.SOG == nil && p.Lat == nil && p.Lon == nil && p.Timestamp == ""
}

// decode accepts a bare or data-wrapped document; ok is false for an empty payload
func decode(body []byte) (position, bool, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return position{}, false, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return position{}, false, err
	}
	if env.Data != nil {
		return *env.Data, !env.Data.empty(), nil
	}
	var p position
	if err := json.Unmarshal(body, &p); err != nil {
		return position{}, false, err
	}
	return p, !p.empty(), nil
}

var tsLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05"}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range tsLayouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// normalize maps provider quirks onto a Sample; unreported values stay nil
func normalize(p position, mmsi, source string) (sample.Sample, error) {
	ts, err := parseTimestamp(p.Timestamp)
	if err != nil {
		return sample.Sample{}, err
	}
	s := sample.Sample{
		MMSI:       mmsi,
		VesselName: displayName(p.Name),
		SpeedKnots: notAvailable(p.SOG, func(v float64) bool { return v >= sogNotAvailable }),
		Latitude:   notAvailable(p.Lat, func(v float64) bool { return v == latNotAvailable || v < -90 || v > 90 }),
		Longitude:  notAvailable(p.Lon, func(v float64) bool { return v == lonNotAvailable || v < -180 || v > 180 }),
		Timestamp:  ts,
		RawStatus:  strings.TrimSpace(p.NavStatus),
		Source:     source,
	}
	if m := p.MMSI.String(); m != "" {
		s.MMSI = m
	}
	return s, nil
}

func notAvailable(v *float64, bad func(float64) bool) *float64 {
	if v == nil || bad(*v) {
		return nil
	}
	out := *v
	return &out
}

// displayName turns "EVER  GIVEN" into "Ever Given"
func displayName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}
