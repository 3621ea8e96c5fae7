// Package domain holds the sea time types, ports and errors
package domain

import (
	"time"

	"seatime/internal/core/sample"
	"seatime/internal/core/validity"
)

// ServiceType is the category a mariner assigns when confirming an entry
type ServiceType string

// Service types accepted by ConfirmEntry
const (
	SeaService   ServiceType = "sea_service"
	Watchkeeping ServiceType = "watchkeeping"
	Standby      ServiceType = "standby"
	YardService  ServiceType = "yard_service"
)

// Valid reports whether t is one of the known service types
func (t ServiceType) Valid() bool {
	switch t {
	case SeaService, Watchkeeping, Standby, YardService:
		return true
	}
	return false
}

// Status is the confirmation state of an entry
type Status string

// Entry statuses; confirmed and rejected are terminal
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// TaskTypeAISCheck is the only scheduled task type
const TaskTypeAISCheck = "ais_check"

// Particulars are optional registry details of a vessel
type Particulars struct {
	IMO          *string  `json:"imo,omitempty"           validate:"omitempty,numeric,len=7" example:"9074729"`
	CallSign     *string  `json:"call_sign,omitempty"     validate:"omitempty,max=16" example:"9HA2044"`
	Flag         *string  `json:"flag,omitempty"          validate:"omitempty,max=64" example:"MT"`
	VesselType   *string  `json:"vessel_type,omitempty"   validate:"omitempty,max=64" example:"Passenger"`
	LengthM      *float64 `json:"length_m,omitempty"      validate:"omitempty,gt=0" example:"293.5"`
	GrossTonnage *float64 `json:"gross_tonnage,omitempty" validate:"omitempty,gt=0" example:"142714"`
}

// Vessel is a tracked ship owned by one user
type Vessel struct {
	ID      string `json:"id" example:"8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10"`
	OwnerID string `json:"owner_id"`
	MMSI    string `json:"mmsi" example:"248123456"`
	Name    string `json:"name" example:"Ocean Spirit"`
	Particulars
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AISCheck is one append only audit row per poll, whatever the outcome
type AISCheck struct {
	ID         int64      `json:"id"`
	VesselID   string     `json:"vessel_id"`
	CheckTime  time.Time  `json:"check_time"`
	SampleTime *time.Time `json:"sample_time"`
	// IsMoving is nil when the verdict is unknown
	IsMoving   *bool    `json:"is_moving"`
	Verdict    string   `json:"verdict" example:"moving"`
	SpeedKnots *float64 `json:"speed_knots"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	RawStatus  string   `json:"raw_status,omitempty"`
	ErrorCode  *string  `json:"error_code,omitempty"`
	Manual     bool     `json:"manual"`
}

// Entry is a detected sea time interval
type Entry struct {
	ID             int64        `json:"id"`
	VesselID       string       `json:"vessel_id"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        *time.Time   `json:"end_time"`
	DurationHours  *float64     `json:"duration_hours"`
	Status         Status       `json:"status" example:"pending"`
	ServiceType    *ServiceType `json:"service_type,omitempty"`
	Notes          string       `json:"notes"`
	StartLatitude  *float64     `json:"start_latitude"`
	StartLongitude *float64     `json:"start_longitude"`
	EndLatitude    *float64     `json:"end_latitude"`
	EndLongitude   *float64     `json:"end_longitude"`
	ResolvedAt     *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// IsOpen reports whether the interval has no end yet
func (e Entry) IsOpen() bool { return e.EndTime == nil }

// Validity projects e onto the validity filter input
func (e Entry) Validity() validity.Entry {
	return validity.Entry{
		Start:          e.StartTime,
		End:            e.EndTime,
		DurationHours:  e.DurationHours,
		StartLatitude:  e.StartLatitude,
		StartLongitude: e.StartLongitude,
		EndLatitude:    e.EndLatitude,
		EndLongitude:   e.EndLongitude,
	}
}

// EntryView is an entry with its validity flags attached
type EntryView struct {
	Entry
	Validity validity.Result `json:"validity"`
}

// CheckResult is what one pipeline run produced
type CheckResult struct {
	Check AISCheck `json:"check"`
	// Sample is nil when the provider returned nothing usable
	Sample     *sample.Sample `json:"sample,omitempty"`
	Verdict    string         `json:"verdict" example:"moving"`
	Transition string         `json:"transition" example:"open"`
	Reason     string         `json:"reason,omitempty" example:"above_threshold"`
	// Entry is the opened, continued or closed entry, nil on a noop
	Entry *EntryView `json:"entry,omitempty"`
}

// EntryFilter narrows ListEntries
type EntryFilter struct {
	VesselID string
	Status   Status
	// Closed drops the open entry
	Closed bool
	Limit  int
}

// PositionPatch fills in missing coordinates; nil fields are left as stored
type PositionPatch struct {
	EntryID        int64
	StartLatitude  *float64
	StartLongitude *float64
	EndLatitude    *float64
	EndLongitude   *float64
}

// Empty reports whether p changes nothing
func (p PositionPatch) Empty() bool {
	return p.StartLatitude == nil && p.StartLongitude == nil && p.EndLatitude == nil && p.EndLongitude == nil
}
