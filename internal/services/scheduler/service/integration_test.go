//go:build integration_pg

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"seatime/internal/modkit"
	"seatime/internal/platform/migrate"
	"seatime/internal/platform/store"
	"seatime/internal/platform/testkit"

	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) store.TxRunner {
	t.Helper()
	ctx := context.Background()
	dsn := testkit.StartPostgres(t)
	require.NoError(t, migrate.Up(ctx, dsn))

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 8}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	const vessels = `
		INSERT INTO vessels (id, owner_id, mmsi, name, is_active) VALUES
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e10', 'o1', '248000001', 'Missing', true),
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e11', 'o2', '248000002', 'Off', true),
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e12', 'o3', '248000003', 'Fine', true),
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e13', 'o3', '248000004', 'Gone', false)`
	const tasks = `
		INSERT INTO scheduled_tasks (vessel_id, task_type, interval_hours, next_run, is_active) VALUES
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e11', 'ais_check', 1, $1, false),
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e12', 'ais_check', 1, $1, true),
			('8d0f6a3e-3a41-4bb4-9d6f-1f2a6c8b9e13', 'ais_check', 1, $1, true)`
	_, err = st.PG.Exec(ctx, vessels)
	require.NoError(t, err)
	_, err = st.PG.Exec(ctx, tasks, t0)
	require.NoError(t, err)
	return st.PG
}

func TestPG_ReconcileThenLeaseOnce(t *testing.T) {
	db := seed(t)
	ctx := context.Background()
	now := func() time.Time { return t0.Add(time.Minute) }

	c := &checker{fail: map[string]error{}, hold: 10 * time.Millisecond}
	a := New(modkit.Deps{PG: db, Now: now}, Config{}, c)
	b := New(modkit.Deps{PG: db, Now: now}, Config{}, c)

	rep, err := a.Reconcile(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 1, rep.Created)
	require.Equal(t, 1, rep.Reactivated)
	require.Equal(t, 1, rep.AlreadyActive)
	require.Equal(t, 1, rep.Deactivated)

	// two schedulers racing never run a task twice
	var wg sync.WaitGroup
	var claimed [2]int
	var errs [2]error
	for i, s := range []*Svc{a, b} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.RunOnce(ctx)
			claimed[i], errs[i] = r.Claimed, err
		}()
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, 3, claimed[0]+claimed[1])
	require.Len(t, c.calls, 3)

	ts, err := a.ListTasks(ctx, "")
	require.NoError(t, err)
	for _, tv := range ts {
		if !tv.IsActive {
			continue
		}
		require.NotNil(t, tv.LastRun)
		require.WithinDuration(t, now().Add(time.Hour), tv.NextRun, time.Second)
	}
}
