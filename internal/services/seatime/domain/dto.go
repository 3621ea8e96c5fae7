package domain

// VesselInput registers a vessel for the caller
type VesselInput struct {
	MMSI string `json:"mmsi" validate:"required,mmsi" example:"248123456"`
	Name string `json:"name" validate:"required,min=1,max=200" example:"Ocean Spirit"`
	Particulars
	// Activate makes the new vessel the tracked one in the same transaction
	Activate bool `json:"activate" example:"true"`
}

// VesselRef addresses one vessel
type VesselRef struct {
	VesselID string `json:"vessel_id" validate:"required,uuid" example:"8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10"`
}

// CheckInput asks for a manual AIS check
type CheckInput struct {
	VesselID string `json:"vessel_id" validate:"required,uuid" example:"8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10"`
	// ForceRefresh bypasses the provider response cache
	ForceRefresh bool `json:"force_refresh" example:"false"`
}

// ChecksQuery lists the audit trail of a vessel
type ChecksQuery struct {
	VesselID string `json:"vessel_id" validate:"required,uuid" example:"8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=500" example:"50"`
}

// EntriesQuery lists entries, optionally for one vessel
type EntriesQuery struct {
	VesselID string `json:"vessel_id,omitempty" validate:"omitempty,uuid" example:"8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=500" example:"100"`
}

// SinceQuery is the watermark read
type SinceQuery struct {
	AfterID int64 `json:"after_id" validate:"gte=0" example:"0"`
	Limit   int   `json:"limit" validate:"omitempty,min=1,max=500" example:"100"`
}

// EntryRef addresses one entry
type EntryRef struct {
	EntryID int64 `json:"entry_id" validate:"required,gt=0" example:"42"`
}

// ConfirmInput confirms a pending entry under a service type
type ConfirmInput struct {
	EntryID     int64       `json:"entry_id" validate:"required,gt=0" example:"42"`
	ServiceType ServiceType `json:"service_type" validate:"required,oneof=sea_service watchkeeping standby yard_service" example:"sea_service"` //nolint:lll
}

// PositionsInput corrects missing coordinates on a pending entry
type PositionsInput struct {
	EntryID        int64    `json:"entry_id" validate:"required,gt=0" example:"42"`
	StartLatitude  *float64 `json:"start_latitude,omitempty"  validate:"omitempty,latitude" example:"35.8989"`
	StartLongitude *float64 `json:"start_longitude,omitempty" validate:"omitempty,longitude" example:"14.5146"`
	EndLatitude    *float64 `json:"end_latitude,omitempty"    validate:"omitempty,latitude" example:"37.9420"`
	EndLongitude   *float64 `json:"end_longitude,omitempty"   validate:"omitempty,longitude" example:"23.6465"`
}

// Patch converts the input to the service form
func (in PositionsInput) Patch() PositionPatch {
	return PositionPatch{
		EntryID:        in.EntryID,
		StartLatitude:  in.StartLatitude,
		StartLongitude: in.StartLongitude,
		EndLatitude:    in.EndLatitude,
		EndLongitude:   in.EndLongitude,
	}
}

// NotesInput replaces the free text notes of an entry
type NotesInput struct {
	EntryID int64  `json:"entry_id" validate:"required,gt=0" example:"42"`
	Notes   string `json:"notes" validate:"max=2000" example:"Passage Valletta to Piraeus"`
}
