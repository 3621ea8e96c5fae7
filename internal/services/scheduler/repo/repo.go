// Package repo provides the scheduler repository implementation
package repo

import (
	"context"
	"time"

	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/store"
	"seatime/internal/services/scheduler/domain"
)

// TaskType is the task kind this scheduler drives
const TaskType = "ais_check"

// Repo defines the scheduler repository contract
type Repo interface {
	// LeaseDue claims up to n due tasks of active vessels and pushes their next_run out by leaseFor
	LeaseDue(ctx context.Context, now time.Time, n int, leaseFor time.Duration) ([]domain.Task, error)
	// MarkRun records an execution and schedules the next one interval_hours after ranAt
	MarkRun(ctx context.Context, id int64, ranAt time.Time, lastErr *string) error

	// Reconciliation steps, run together in one tx
	CountActive(ctx context.Context, ownerID string) (int, error)
	ReactivateTasks(ctx context.Context, ownerID string, now time.Time) (int, error)
	CreateMissingTasks(ctx context.Context, ownerID string, intervalHours float64, now time.Time) (int, error)
	DeactivateOrphans(ctx context.Context, ownerID string) (int, error)

	ListTasks(ctx context.Context, ownerID string) ([]domain.TaskView, error)
}

type (
	// PG is a Postgres scheduler repository
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG constructs a Postgres scheduler repository
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Queryer to a Postgres implementation of Repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// LeaseDue claims due tasks; rows locked by another scheduler are skipped
func (r *queries) LeaseDue(ctx context.Context, now time.Time, n int, leaseFor time.Duration) ([]domain.Task, error) {
	const sql = `
		WITH cte AS (
			SELECT t.id
			FROM scheduled_tasks t
			JOIN vessels v ON v.id = t.vessel_id
			WHERE t.is_active AND v.is_active AND t.task_type = $4 AND t.next_run <= $1
			ORDER BY t.next_run ASC
			LIMIT $2
			FOR UPDATE OF t SKIP LOCKED
		)
		UPDATE scheduled_tasks t
		SET next_run = $1::timestamptz + $3::interval, updated_at = NOW()
		FROM cte
		WHERE t.id = cte.id
		RETURNING t.id, t.vessel_id::text, t.task_type, t.interval_hours, t.last_run, t.next_run, t.is_active, t.last_error
	`
	return store.Many(ctx, r.q, scanTask, sql, now, n, leaseFor.String(), TaskType)
}

// MarkRun stores the outcome and the next due time whatever the outcome was
func (r *queries) MarkRun(ctx context.Context, id int64, ranAt time.Time, lastErr *string) error {
	const sql = `
		UPDATE scheduled_tasks
		SET last_run   = $2::timestamptz,
		    next_run   = $2::timestamptz + interval_hours * INTERVAL '1 hour',
		    last_error = $3,
		    updated_at = NOW()
		WHERE id = $1
	`
	return store.ExecOne(ctx, r.q, sql, id, ranAt, lastErr)
}

// CountActive counts active tasks of active vessels
func (r *queries) CountActive(ctx context.Context, ownerID string) (int, error) {
	const sql = `
		SELECT count(*)
		FROM scheduled_tasks t
		JOIN vessels v ON v.id = t.vessel_id
		WHERE t.task_type = $2 AND t.is_active AND v.is_active
		  AND ($1 = '' OR v.owner_id = $1)
	`
	n, err := store.Scalar[int64](ctx, r.q, sql, ownerID, TaskType)
	return int(n), err
}

// ReactivateTasks turns inactive tasks of active vessels back on, due now at the latest
func (r *queries) ReactivateTasks(ctx context.Context, ownerID string, now time.Time) (int, error) {
	const sql = `
		UPDATE scheduled_tasks t
		SET is_active = true, next_run = LEAST(t.next_run, $3), updated_at = NOW()
		FROM vessels v
		WHERE v.id = t.vessel_id AND t.task_type = $2 AND NOT t.is_active AND v.is_active
		  AND ($1 = '' OR v.owner_id = $1)
	`
	return affected(r.q.Exec(ctx, sql, ownerID, TaskType, now))
}

// CreateMissingTasks inserts a task for every active vessel that has none
func (r *queries) CreateMissingTasks(ctx context.Context, ownerID string, intervalHours float64, now time.Time) (int, error) {
	const sql = `
		INSERT INTO scheduled_tasks (vessel_id, task_type, interval_hours, next_run, is_active)
		SELECT v.id, $2::text, $3::float8, $4::timestamptz, true
		FROM vessels v
		WHERE v.is_active
		  AND ($1 = '' OR v.owner_id = $1)
		  AND NOT EXISTS (
			SELECT 1 FROM scheduled_tasks t WHERE t.vessel_id = v.id AND t.task_type = $2
		  )
		ON CONFLICT (vessel_id, task_type) DO NOTHING
	`
	return affected(r.q.Exec(ctx, sql, ownerID, TaskType, intervalHours, now))
}

// DeactivateOrphans turns off active tasks whose vessel is no longer tracked
func (r *queries) DeactivateOrphans(ctx context.Context, ownerID string) (int, error) {
	const sql = `
		UPDATE scheduled_tasks t
		SET is_active = false, updated_at = NOW()
		FROM vessels v
		WHERE v.id = t.vessel_id AND t.task_type = $2 AND t.is_active AND NOT v.is_active
		  AND ($1 = '' OR v.owner_id = $1)
	`
	return affected(r.q.Exec(ctx, sql, ownerID, TaskType))
}

// ListTasks returns tasks soonest first
func (r *queries) ListTasks(ctx context.Context, ownerID string) ([]domain.TaskView, error) {
	const sql = `
		SELECT t.id, t.vessel_id::text, t.task_type, t.interval_hours, t.last_run, t.next_run, t.is_active, t.last_error,
		       v.name, v.mmsi, v.is_active
		FROM scheduled_tasks t
		JOIN vessels v ON v.id = t.vessel_id
		WHERE ($1 = '' OR v.owner_id = $1)
		ORDER BY t.is_active DESC, t.next_run ASC
	`
	return store.Many(ctx, r.q, func(row store.Row) (domain.TaskView, error) {
		var tv domain.TaskView
		err := row.Scan(
			&tv.ID, &tv.VesselID, &tv.TaskType, &tv.IntervalHours, &tv.LastRun, &tv.NextRun, &tv.IsActive, &tv.LastError,
			&tv.VesselName, &tv.MMSI, &tv.VesselActive,
		)
		return tv, err
	}, sql, ownerID)
}

func scanTask(row store.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.VesselID, &t.TaskType, &t.IntervalHours, &t.LastRun, &t.NextRun, &t.IsActive, &t.LastError)
	return t, err
}

func affected(tag store.CommandTag, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
