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
	"seatime/internal/services/seatime/domain"

	"github.com/stretchr/testify/require"
)

func openPG(t *testing.T) store.TxRunner {
	t.Helper()
	ctx := context.Background()
	dsn := testkit.StartPostgres(t)
	require.NoError(t, migrate.Up(ctx, dsn))

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 8}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st.PG
}

// two services share the database but not the in process lock, like two processes would
func TestPG_ConcurrentProcessesKeepOneOpenEntry(t *testing.T) {
	db := openPG(t)
	ctx := context.Background()

	var svcs []*Svc
	for range 2 {
		f := &fakeAIS{}
		for i := range 10 {
			f.push(at(float64(i)/10, 8))
		}
		svcs = append(svcs, New(modkit.Deps{PG: db, Now: func() time.Time { return t0 }}, Config{Fetcher: f}))
	}

	v, err := svcs[0].RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "248123456", Name: "Ocean Spirit", Activate: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, s := range svcs {
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.CheckVesselAIS(ctx, "owner-1", v.ID, false)
			}()
		}
	}
	wg.Wait()

	open, err := store.Scalar[int64](ctx, db,
		`SELECT count(*) FROM sea_time_entries WHERE vessel_id = $1 AND end_time IS NULL`, v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), open)

	checks, err := store.Scalar[int64](ctx, db, `SELECT count(*) FROM ais_checks WHERE vessel_id = $1`, v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(20), checks)
}

func TestPG_ActivationKeepsOneActiveVessel(t *testing.T) {
	db := openPG(t)
	ctx := context.Background()
	s := New(modkit.Deps{PG: db}, Config{Fetcher: &fakeAIS{}})

	a, err := s.RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "248123456", Name: "Alpha", Activate: true})
	require.NoError(t, err)
	b, err := s.RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "248654321", Name: "Bravo"})
	require.NoError(t, err)

	_, err = s.ActivateVessel(ctx, "owner-1", b.ID)
	require.NoError(t, err)

	vs, err := s.ListVessels(ctx, "owner-1")
	require.NoError(t, err)
	active := map[string]bool{}
	for _, v := range vs {
		active[v.ID] = v.IsActive
	}
	require.False(t, active[a.ID])
	require.True(t, active[b.ID])

	n, err := store.Scalar[int64](ctx, db,
		`SELECT count(*) FROM scheduled_tasks WHERE is_active AND task_type = 'ais_check'`)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = s.RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "248123456", Name: "Again"})
	require.ErrorIs(t, err, domain.ErrDuplicateVessel)
}
