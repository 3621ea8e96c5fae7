package repo

import (
	"context"

	"seatime/internal/core/sample"
	"seatime/internal/platform/store"
	"seatime/internal/services/seatime/domain"
)

// InsertCheck appends one audit row
func (r *queries) InsertCheck(ctx context.Context, c domain.AISCheck) (domain.AISCheck, error) {
	const sql = `
		INSERT INTO ais_checks
			(vessel_id, check_time, sample_time, is_moving, verdict,
			 speed_knots, latitude, longitude, raw_status, error_code, manual)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + checkCols
	return store.One(ctx, r.q, scanCheck, sql,
		c.VesselID, c.CheckTime, c.SampleTime, c.IsMoving, c.Verdict,
		c.SpeedKnots, c.Latitude, c.Longitude, c.RawStatus, c.ErrorCode, c.Manual,
	)
}

// RecentSamples returns the newest samples already recorded for a vessel
func (r *queries) RecentSamples(ctx context.Context, vesselID string, limit int) ([]sample.Sample, error) {
	const sql = `
		SELECT sample_time, speed_knots, latitude, longitude, raw_status
		FROM ais_checks
		WHERE vessel_id = $1 AND sample_time IS NOT NULL
		ORDER BY sample_time DESC
		LIMIT $2`
	return store.Many(ctx, r.q, func(row store.Row) (sample.Sample, error) {
		var s sample.Sample
		err := row.Scan(&s.Timestamp, &s.SpeedKnots, &s.Latitude, &s.Longitude, &s.RawStatus)
		return s, err
	}, sql, vesselID, limit)
}

// ListChecks returns the audit trail of a vessel, newest first
func (r *queries) ListChecks(ctx context.Context, vesselID string, limit int) ([]domain.AISCheck, error) {
	const sql = `
		SELECT` + checkCols + `
		FROM ais_checks
		WHERE vessel_id = $1
		ORDER BY check_time DESC, id DESC
		LIMIT $2`
	return store.Many(ctx, r.q, scanCheck, sql, vesselID, limit)
}
