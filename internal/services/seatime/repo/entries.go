package repo

import (
	"context"
	"errors"
	"time"

	perr "seatime/internal/platform/errors"
	"seatime/internal/platform/store"
	"seatime/internal/services/seatime/domain"
)

// OpenEntry returns the vessel's open entry, nil when it has none
func (r *queries) OpenEntry(ctx context.Context, vesselID string) (*domain.Entry, error) {
	const sql = `SELECT` + entryCols + ` FROM sea_time_entries e WHERE e.vessel_id = $1 AND e.end_time IS NULL`
	e, err := store.One(ctx, r.q, scanEntry, sql, vesselID)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// InsertEntry opens a pending entry
func (r *queries) InsertEntry(ctx context.Context, vesselID string, start time.Time, lat, lon *float64) (domain.Entry, error) {
	const sql = `
		INSERT INTO sea_time_entries AS e (vessel_id, start_time, start_latitude, start_longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING` + entryCols
	return store.One(ctx, r.q, scanEntry, sql, vesselID, start, lat, lon)
}

// CloseEntry sets the end of an open entry; a closed entry is reported as not found
func (r *queries) CloseEntry(ctx context.Context, id int64, end time.Time, lat, lon, hours *float64) (domain.Entry, error) {
	const sql = `
		UPDATE sea_time_entries AS e
		SET end_time = $2, end_latitude = $3, end_longitude = $4, duration_hours = $5
		WHERE e.id = $1 AND e.end_time IS NULL
		RETURNING` + entryCols
	return store.One(ctx, r.q, scanEntry, sql, id, end, lat, lon, hours)
}

// GetEntry loads an entry of ownerID
func (r *queries) GetEntry(ctx context.Context, ownerID string, id int64) (domain.Entry, error) {
	const sql = `
		SELECT` + entryCols + `
		FROM sea_time_entries e
		JOIN vessels v ON v.id = e.vessel_id
		WHERE e.id = $1 AND v.owner_id = $2`
	return store.One(ctx, r.q, scanEntry, sql, id, ownerID)
}

// LockEntry is GetEntry holding the entry row lock until the tx ends
func (r *queries) LockEntry(ctx context.Context, ownerID string, id int64) (domain.Entry, error) {
	const sql = `
		SELECT` + entryCols + `
		FROM sea_time_entries e
		JOIN vessels v ON v.id = e.vessel_id
		WHERE e.id = $1 AND v.owner_id = $2
		FOR UPDATE OF e`
	return store.One(ctx, r.q, scanEntry, sql, id, ownerID)
}

// ListEntries returns entries of ownerID newest first
func (r *queries) ListEntries(ctx context.Context, ownerID string, f domain.EntryFilter) ([]domain.Entry, error) {
	const sql = `
		SELECT` + entryCols + `
		FROM sea_time_entries e
		JOIN vessels v ON v.id = e.vessel_id
		WHERE v.owner_id = $1
		  AND ($2 = '' OR e.vessel_id::text = $2)
		  AND ($3 = '' OR e.status = $3)
		  AND (NOT $4 OR e.end_time IS NOT NULL)
		ORDER BY e.start_time DESC, e.id DESC
		LIMIT $5`
	return store.Many(ctx, r.q, scanEntry, sql, ownerID, f.VesselID, string(f.Status), f.Closed, f.Limit)
}

// EntriesSince returns entries with id above afterID in id order
func (r *queries) EntriesSince(ctx context.Context, ownerID string, afterID int64, limit int) ([]domain.Entry, error) {
	const sql = `
		SELECT` + entryCols + `
		FROM sea_time_entries e
		JOIN vessels v ON v.id = e.vessel_id
		WHERE v.owner_id = $1 AND e.id > $2
		ORDER BY e.id
		LIMIT $3`
	return store.Many(ctx, r.q, scanEntry, sql, ownerID, afterID, limit)
}

// Resolve moves a pending entry to a terminal status
// ok is false when the entry was no longer pending
func (r *queries) Resolve(ctx context.Context, id int64, to domain.Status, t *domain.ServiceType, at time.Time) (domain.Entry, bool, error) {
	const sql = `
		UPDATE sea_time_entries AS e
		SET status = $2, service_type = $3, resolved_at = $4
		WHERE e.id = $1 AND e.status = 'pending'
		RETURNING` + entryCols
	var st *string
	if t != nil {
		s := string(*t)
		st = &s
	}
	e, err := store.One(ctx, r.q, scanEntry, sql, id, string(to), st, at)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Entry{}, false, nil
	}
	if err != nil {
		return domain.Entry{}, false, err
	}
	return e, true, nil
}

// CorrectPositions fills coordinates on a pending entry; nil arguments keep the stored value
func (r *queries) CorrectPositions(ctx context.Context, p domain.PositionPatch) (domain.Entry, error) {
	const sql = `
		UPDATE sea_time_entries AS e
		SET start_latitude  = COALESCE($2, e.start_latitude),
		    start_longitude = COALESCE($3, e.start_longitude),
		    end_latitude    = COALESCE($4, e.end_latitude),
		    end_longitude   = COALESCE($5, e.end_longitude)
		WHERE e.id = $1 AND e.status = 'pending'
		RETURNING` + entryCols
	return store.One(ctx, r.q, scanEntry, sql,
		p.EntryID, p.StartLatitude, p.StartLongitude, p.EndLatitude, p.EndLongitude,
	)
}

// UpdateNotes replaces the notes of an entry
func (r *queries) UpdateNotes(ctx context.Context, id int64, notes string) (domain.Entry, error) {
	const sql = `
		UPDATE sea_time_entries AS e
		SET notes = $2
		WHERE e.id = $1
		RETURNING` + entryCols
	return store.One(ctx, r.q, scanEntry, sql, id, notes)
}
