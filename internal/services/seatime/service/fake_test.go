package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"seatime/internal/adapters/ais"
	"seatime/internal/core/sample"
	"seatime/internal/modkit"
	"seatime/internal/modkit/repokit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/platform/store"
	"seatime/internal/platform/testkit"
	"seatime/internal/services/seatime/domain"
	"seatime/internal/services/seatime/repo"

	"github.com/jackc/pgx/v5/pgconn"
)

var t0 = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

// fakeDB serializes transactions the way row and advisory locks would
type fakeDB struct {
	txMu sync.Mutex
	mu   sync.Mutex
	sql  []string
}

type fakeTag struct{}

func (fakeTag) String() string      { return "OK" }
func (fakeTag) RowsAffected() int64 { return 0 }

type errRow struct{}

func (errRow) Scan(...any) error { return errors.New("fakeDB: unexpected QueryRow") }

func (d *fakeDB) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	d.mu.Lock()
	d.sql = append(d.sql, sql)
	d.mu.Unlock()
	return fakeTag{}, nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("fakeDB: unexpected Query")
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) store.Row { return errRow{} }

func (d *fakeDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	d.txMu.Lock()
	defer d.txMu.Unlock()
	return fn(d)
}

func (d *fakeDB) execs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.sql...)
}

type task struct {
	interval float64
	next     time.Time
	active   bool
}

// mem is an in memory Repo mirroring the schema constraints that matter
type mem struct {
	mu        sync.Mutex
	vessels   map[string]domain.Vessel
	checks    []domain.AISCheck
	entries   map[int64]domain.Entry
	tasks     map[string]task
	nextCheck int64
	nextEntry int64
}

func newMem() *mem {
	return &mem{
		vessels: map[string]domain.Vessel{},
		entries: map[int64]domain.Entry{},
		tasks:   map[string]task{},
	}
}

var _ repo.Repo = (*mem)(nil)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func (m *mem) InsertVessel(_ context.Context, v domain.Vessel) (domain.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.vessels {
		if o.OwnerID == v.OwnerID && o.MMSI == v.MMSI {
			return domain.Vessel{}, uniqueViolation("vessels_owner_id_mmsi_key")
		}
	}
	v.IsActive = false
	v.CreatedAt, v.UpdatedAt = t0, t0
	m.vessels[v.ID] = v
	return v, nil
}

func (m *mem) GetVessel(_ context.Context, ownerID, id string) (domain.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok || v.OwnerID != ownerID {
		return domain.Vessel{}, perr.ErrNotFound
	}
	return v, nil
}

func (m *mem) FindVessel(_ context.Context, id string) (domain.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok {
		return domain.Vessel{}, perr.ErrNotFound
	}
	return v, nil
}

func (m *mem) LockVessel(ctx context.Context, id string) (domain.Vessel, error) {
	return m.FindVessel(ctx, id)
}

func (m *mem) ListVessels(_ context.Context, ownerID string) ([]domain.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Vessel
	for _, v := range m.vessels {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsActive && !out[j].IsActive })
	return out, nil
}

func (m *mem) DeactivateOthers(_ context.Context, ownerID, keepID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id, v := range m.vessels {
		if v.OwnerID == ownerID && id != keepID && v.IsActive {
			v.IsActive = false
			m.vessels[id] = v
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mem) SetActive(_ context.Context, id string, active bool) (domain.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok {
		return domain.Vessel{}, perr.ErrNotFound
	}
	if active {
		for oid, o := range m.vessels {
			if oid != id && o.OwnerID == v.OwnerID && o.IsActive {
				return domain.Vessel{}, uniqueViolation("vessels_one_active_per_owner")
			}
		}
	}
	v.IsActive = active
	m.vessels[id] = v
	return v, nil
}

func (m *mem) DeleteVessel(_ context.Context, ownerID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok || v.OwnerID != ownerID {
		return false, nil
	}
	delete(m.vessels, id)
	delete(m.tasks, id)
	for eid, e := range m.entries {
		if e.VesselID == id {
			delete(m.entries, eid)
		}
	}
	kept := m.checks[:0]
	for _, c := range m.checks {
		if c.VesselID != id {
			kept = append(kept, c)
		}
	}
	m.checks = kept
	return true, nil
}

func (m *mem) EnsureTask(_ context.Context, vesselID string, intervalHours float64, nextRun time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[vesselID]
	if ok && t.next.Before(nextRun) {
		nextRun = t.next
	}
	m.tasks[vesselID] = task{interval: intervalHours, next: nextRun, active: true}
	return nil
}

func (m *mem) DeactivateTasks(_ context.Context, vesselIDs ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range vesselIDs {
		if t, ok := m.tasks[id]; ok {
			t.active = false
			m.tasks[id] = t
		}
	}
	return nil
}

func (m *mem) InsertCheck(_ context.Context, c domain.AISCheck) (domain.AISCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if (c.Verdict == "unknown") != (c.IsMoving == nil) {
		return domain.AISCheck{}, errors.New("check constraint: verdict and is_moving disagree")
	}
	m.nextCheck++
	c.ID = m.nextCheck
	m.checks = append(m.checks, c)
	return c, nil
}

func (m *mem) RecentSamples(_ context.Context, vesselID string, limit int) ([]sample.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sample.Sample
	for _, c := range m.checks {
		if c.VesselID == vesselID && c.SampleTime != nil {
			out = append(out, sample.Sample{Timestamp: *c.SampleTime, SpeedKnots: c.SpeedKnots})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mem) ListChecks(_ context.Context, vesselID string, limit int) ([]domain.AISCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AISCheck
	for i := len(m.checks) - 1; i >= 0 && len(out) < limit; i-- {
		if m.checks[i].VesselID == vesselID {
			out = append(out, m.checks[i])
		}
	}
	return out, nil
}

func (m *mem) OpenEntry(_ context.Context, vesselID string) (*domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.VesselID == vesselID && e.EndTime == nil {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mem) InsertEntry(_ context.Context, vesselID string, start time.Time, lat, lon *float64) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.VesselID == vesselID && e.EndTime == nil {
			return domain.Entry{}, uniqueViolation("sea_time_entries_one_open")
		}
	}
	m.nextEntry++
	e := domain.Entry{
		ID:             m.nextEntry,
		VesselID:       vesselID,
		StartTime:      start,
		Status:         domain.StatusPending,
		StartLatitude:  lat,
		StartLongitude: lon,
		CreatedAt:      start,
	}
	m.entries[e.ID] = e
	return e, nil
}

func (m *mem) CloseEntry(_ context.Context, id int64, end time.Time, lat, lon, hours *float64) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.EndTime != nil {
		return domain.Entry{}, perr.ErrNotFound
	}
	e.EndTime, e.EndLatitude, e.EndLongitude, e.DurationHours = &end, lat, lon, hours
	m.entries[id] = e
	return e, nil
}

func (m *mem) owned(ownerID string, id int64) (domain.Entry, bool) {
	e, ok := m.entries[id]
	if !ok || m.vessels[e.VesselID].OwnerID != ownerID {
		return domain.Entry{}, false
	}
	return e, true
}

func (m *mem) GetEntry(_ context.Context, ownerID string, id int64) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.owned(ownerID, id)
	if !ok {
		return domain.Entry{}, perr.ErrNotFound
	}
	return e, nil
}

func (m *mem) LockEntry(ctx context.Context, ownerID string, id int64) (domain.Entry, error) {
	return m.GetEntry(ctx, ownerID, id)
}

func (m *mem) sorted(ownerID string, keep func(domain.Entry) bool) []domain.Entry {
	var out []domain.Entry
	for _, e := range m.entries {
		if m.vessels[e.VesselID].OwnerID == ownerID && keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *mem) ListEntries(_ context.Context, ownerID string, f domain.EntryFilter) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.sorted(ownerID, func(e domain.Entry) bool {
		return (f.VesselID == "" || e.VesselID == f.VesselID) &&
			(f.Status == "" || e.Status == f.Status) &&
			(!f.Closed || e.EndTime != nil)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *mem) EntriesSince(_ context.Context, ownerID string, afterID int64, limit int) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.sorted(ownerID, func(e domain.Entry) bool { return e.ID > afterID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mem) Resolve(_ context.Context, id int64, to domain.Status, t *domain.ServiceType, at time.Time) (domain.Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.Status != domain.StatusPending {
		return domain.Entry{}, false, nil
	}
	e.Status, e.ServiceType, e.ResolvedAt = to, t, &at
	m.entries[id] = e
	return e, true, nil
}

func (m *mem) CorrectPositions(_ context.Context, p domain.PositionPatch) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[p.EntryID]
	if !ok || e.Status != domain.StatusPending {
		return domain.Entry{}, perr.ErrNotFound
	}
	if p.StartLatitude != nil {
		e.StartLatitude = p.StartLatitude
	}
	if p.StartLongitude != nil {
		e.StartLongitude = p.StartLongitude
	}
	if p.EndLatitude != nil {
		e.EndLatitude = p.EndLatitude
	}
	if p.EndLongitude != nil {
		e.EndLongitude = p.EndLongitude
	}
	m.entries[p.EntryID] = e
	return e, nil
}

func (m *mem) UpdateNotes(_ context.Context, id int64, notes string) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return domain.Entry{}, perr.ErrNotFound
	}
	e.Notes = notes
	m.entries[id] = e
	return e, nil
}

func (m *mem) openCount(vesselID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.VesselID == vesselID && e.EndTime == nil {
			n++
		}
	}
	return n
}

func (m *mem) checkCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.checks)
}

// fakeAIS replays scripted fetch outcomes in order
type fakeAIS struct {
	mu     sync.Mutex
	steps  []step
	calls  int
	forced []bool
}

type step struct {
	s   sample.Sample
	err error
}

func (f *fakeAIS) push(s sample.Sample) { f.steps = append(f.steps, step{s: s}) }

func (f *fakeAIS) fail(err error) { f.steps = append(f.steps, step{err: err}) }

func (f *fakeAIS) Fetch(_ context.Context, t ais.Target, force bool) (sample.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced = append(f.forced, force)
	if f.calls >= len(f.steps) {
		return sample.Sample{}, &ais.FetchError{Kind: ais.ErrNoDataForVessel}
	}
	st := f.steps[f.calls]
	f.calls++
	st.s.MMSI = t.MMSI
	return st.s, st.err
}

// slowAIS holds every fetch for a while and records how many overlap
type slowAIS struct {
	hold     time.Duration
	mu       sync.Mutex
	inflight int
	peak     int
	calls    int
}

func (f *slowAIS) Fetch(_ context.Context, t ais.Target, _ bool) (sample.Sample, error) {
	f.mu.Lock()
	f.inflight++
	f.calls++
	n := f.calls
	f.peak = max(f.peak, f.inflight)
	f.mu.Unlock()

	time.Sleep(f.hold)

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()
	s := at(float64(n), 0)
	s.MMSI = t.MMSI
	return s, nil
}

type harness struct {
	svc   *Svc
	mem   *mem
	db    *fakeDB
	ais   *fakeAIS
	clock *testkit.Clock
}

func newHarness() *harness {
	h := &harness{
		mem:   newMem(),
		db:    &fakeDB{},
		ais:   &fakeAIS{},
		clock: testkit.NewClock(t0),
	}
	deps := modkit.Deps{PG: h.db, Now: h.clock.Now}
	b := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return h.mem })
	h.svc = newSvc(deps, Config{Fetcher: h.ais}, b)
	return h
}

// peer is a second service over the same store, as another process would be
func (h *harness) peer(f Fetcher) *Svc {
	deps := modkit.Deps{PG: h.db, Now: h.clock.Now}
	b := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return h.mem })
	return newSvc(deps, Config{Fetcher: f}, b)
}

// vessel registers and activates a vessel for owner
func (h *harness) vessel(owner, mmsi string) domain.Vessel {
	v, err := h.svc.RegisterVessel(context.Background(), owner, domain.VesselInput{
		MMSI: mmsi, Name: "Test " + mmsi, Activate: true,
	})
	if err != nil {
		panic(err)
	}
	return v
}

func kn(v float64) *float64 { return &v }

// at is a sample h hours after t0 at a position that drifts with h
func at(hours, speed float64) sample.Sample {
	lat, lon := 35.9+hours/10, 14.5+hours/10
	return sample.Sample{
		SpeedKnots: kn(speed),
		Latitude:   &lat,
		Longitude:  &lon,
		Timestamp:  t0.Add(time.Duration(hours * float64(time.Hour))),
		Source:     "fake",
	}
}
