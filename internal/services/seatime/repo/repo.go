// Package repo provides the seatime repository implementation
package repo

import (
	"context"
	"time"

	"seatime/internal/core/sample"
	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/store"
	"seatime/internal/services/seatime/domain"
)

// Repo defines the seatime repository contract
type Repo interface {
	// Vessels
	InsertVessel(ctx context.Context, v domain.Vessel) (domain.Vessel, error)
	GetVessel(ctx context.Context, ownerID, id string) (domain.Vessel, error)
	FindVessel(ctx context.Context, id string) (domain.Vessel, error)
	LockVessel(ctx context.Context, id string) (domain.Vessel, error)
	ListVessels(ctx context.Context, ownerID string) ([]domain.Vessel, error)
	DeactivateOthers(ctx context.Context, ownerID, keepID string) ([]string, error)
	SetActive(ctx context.Context, id string, active bool) (domain.Vessel, error)
	DeleteVessel(ctx context.Context, ownerID, id string) (bool, error)

	// Scheduled task row owned by the activation flow
	EnsureTask(ctx context.Context, vesselID string, intervalHours float64, nextRun time.Time) error
	DeactivateTasks(ctx context.Context, vesselIDs ...string) error

	// Append only audit trail
	InsertCheck(ctx context.Context, c domain.AISCheck) (domain.AISCheck, error)
	RecentSamples(ctx context.Context, vesselID string, limit int) ([]sample.Sample, error)
	ListChecks(ctx context.Context, vesselID string, limit int) ([]domain.AISCheck, error)

	// Interval state
	OpenEntry(ctx context.Context, vesselID string) (*domain.Entry, error)
	InsertEntry(ctx context.Context, vesselID string, start time.Time, lat, lon *float64) (domain.Entry, error)
	CloseEntry(ctx context.Context, id int64, end time.Time, lat, lon, hours *float64) (domain.Entry, error)

	// Entry reads and resolution, all owner scoped
	GetEntry(ctx context.Context, ownerID string, id int64) (domain.Entry, error)
	LockEntry(ctx context.Context, ownerID string, id int64) (domain.Entry, error)
	ListEntries(ctx context.Context, ownerID string, f domain.EntryFilter) ([]domain.Entry, error)
	EntriesSince(ctx context.Context, ownerID string, afterID int64, limit int) ([]domain.Entry, error)
	Resolve(ctx context.Context, id int64, to domain.Status, t *domain.ServiceType, at time.Time) (domain.Entry, bool, error)
	CorrectPositions(ctx context.Context, p domain.PositionPatch) (domain.Entry, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (domain.Entry, error)
}

type (
	// PG is a Postgres seatime repository
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG constructs a Postgres seatime repository
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Queryer to a Postgres implementation of Repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const vesselCols = `
	v.id::text, v.owner_id, v.mmsi, v.name, v.imo, v.call_sign, v.flag, v.vessel_type,
	v.length_m, v.gross_tonnage, v.is_active, v.created_at, v.updated_at`

const checkCols = `
	id, vessel_id::text, check_time, sample_time, is_moving, verdict,
	speed_knots, latitude, longitude, raw_status, error_code, manual`

const entryCols = `
	e.id, e.vessel_id::text, e.start_time, e.end_time, e.duration_hours, e.status, e.service_type,
	e.notes, e.start_latitude, e.start_longitude, e.end_latitude, e.end_longitude,
	e.resolved_at, e.created_at`

func scanVessel(r store.Row) (domain.Vessel, error) {
	var v domain.Vessel
	err := r.Scan(
		&v.ID, &v.OwnerID, &v.MMSI, &v.Name, &v.IMO, &v.CallSign, &v.Flag, &v.VesselType,
		&v.LengthM, &v.GrossTonnage, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

func scanCheck(r store.Row) (domain.AISCheck, error) {
	var c domain.AISCheck
	err := r.Scan(
		&c.ID, &c.VesselID, &c.CheckTime, &c.SampleTime, &c.IsMoving, &c.Verdict,
		&c.SpeedKnots, &c.Latitude, &c.Longitude, &c.RawStatus, &c.ErrorCode, &c.Manual,
	)
	return c, err
}

func scanEntry(r store.Row) (domain.Entry, error) {
	var (
		e      domain.Entry
		status string
		st     *string
	)
	err := r.Scan(
		&e.ID, &e.VesselID, &e.StartTime, &e.EndTime, &e.DurationHours, &status, &st,
		&e.Notes, &e.StartLatitude, &e.StartLongitude, &e.EndLatitude, &e.EndLongitude,
		&e.ResolvedAt, &e.CreatedAt,
	)
	if err != nil {
		return e, err
	}
	e.Status = domain.Status(status)
	if st != nil {
		t := domain.ServiceType(*st)
		e.ServiceType = &t
	}
	return e, nil
}
