package repo

import (
	"context"
	"time"

	"seatime/internal/platform/store"
	"seatime/internal/services/seatime/domain"
)

// InsertVessel stores v and returns the row as written
func (r *queries) InsertVessel(ctx context.Context, v domain.Vessel) (domain.Vessel, error) {
	const sql = `
		INSERT INTO vessels AS v
			(id, owner_id, mmsi, name, imo, call_sign, flag, vessel_type, length_m, gross_tonnage, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
		RETURNING` + vesselCols
	return store.One(ctx, r.q, scanVessel, sql,
		v.ID, v.OwnerID, v.MMSI, v.Name, v.IMO, v.CallSign, v.Flag, v.VesselType, v.LengthM, v.GrossTonnage,
	)
}

// GetVessel loads one vessel of ownerID
func (r *queries) GetVessel(ctx context.Context, ownerID, id string) (domain.Vessel, error) {
	const sql = `SELECT` + vesselCols + ` FROM vessels v WHERE v.id = $1 AND v.owner_id = $2`
	return store.One(ctx, r.q, scanVessel, sql, id, ownerID)
}

// FindVessel loads a vessel by id whoever owns it
func (r *queries) FindVessel(ctx context.Context, id string) (domain.Vessel, error) {
	const sql = `SELECT` + vesselCols + ` FROM vessels v WHERE v.id = $1`
	return store.One(ctx, r.q, scanVessel, sql, id)
}

// LockVessel loads a vessel by id and holds its row lock until the tx ends
func (r *queries) LockVessel(ctx context.Context, id string) (domain.Vessel, error) {
	const sql = `SELECT` + vesselCols + ` FROM vessels v WHERE v.id = $1 FOR UPDATE`
	return store.One(ctx, r.q, scanVessel, sql, id)
}

// ListVessels returns the owner's vessels, the active one first
func (r *queries) ListVessels(ctx context.Context, ownerID string) ([]domain.Vessel, error) {
	const sql = `
		SELECT` + vesselCols + `
		FROM vessels v
		WHERE v.owner_id = $1
		ORDER BY v.is_active DESC, v.created_at DESC`
	return store.Many(ctx, r.q, scanVessel, sql, ownerID)
}

// DeactivateOthers clears is_active on every other vessel of ownerID and returns their ids
func (r *queries) DeactivateOthers(ctx context.Context, ownerID, keepID string) ([]string, error) {
	const sql = `
		UPDATE vessels
		SET is_active = false, updated_at = NOW()
		WHERE owner_id = $1 AND id <> $2 AND is_active
		RETURNING id::text`
	return store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, sql, ownerID, keepID)
}

// SetActive flips is_active on one vessel
func (r *queries) SetActive(ctx context.Context, id string, active bool) (domain.Vessel, error) {
	const sql = `
		UPDATE vessels AS v
		SET is_active = $2, updated_at = NOW()
		WHERE v.id = $1
		RETURNING` + vesselCols
	return store.One(ctx, r.q, scanVessel, sql, id, active)
}

// DeleteVessel removes a vessel; checks, entries and tasks cascade
func (r *queries) DeleteVessel(ctx context.Context, ownerID, id string) (bool, error) {
	const sql = `DELETE FROM vessels WHERE id = $1 AND owner_id = $2`
	tag, err := r.q.Exec(ctx, sql, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// EnsureTask creates or reactivates the ais_check task of a vessel
func (r *queries) EnsureTask(ctx context.Context, vesselID string, intervalHours float64, nextRun time.Time) error {
	const sql = `
		INSERT INTO scheduled_tasks (vessel_id, task_type, interval_hours, next_run, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (vessel_id, task_type) DO UPDATE
		SET is_active      = true,
		    interval_hours = excluded.interval_hours,
		    next_run       = LEAST(scheduled_tasks.next_run, excluded.next_run),
		    updated_at     = NOW()`
	_, err := r.q.Exec(ctx, sql, vesselID, domain.TaskTypeAISCheck, intervalHours, nextRun)
	return err
}

// DeactivateTasks stops scheduling the given vessels
func (r *queries) DeactivateTasks(ctx context.Context, vesselIDs ...string) error {
	if len(vesselIDs) == 0 {
		return nil
	}
	const sql = `
		UPDATE scheduled_tasks
		SET is_active = false, updated_at = NOW()
		WHERE vessel_id::text = ANY($1) AND is_active`
	_, err := r.q.Exec(ctx, sql, vesselIDs)
	return err
}
