package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"seatime/internal/modkit"
	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/store"
	"seatime/internal/platform/testkit"
	"seatime/internal/services/scheduler/domain"
	"seatime/internal/services/scheduler/repo"
	stdomain "seatime/internal/services/seatime/domain"
)

var t0 = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

type fakeDB struct{ mu sync.Mutex }

func (d *fakeDB) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, errors.New("fakeDB: unexpected Exec")
}

func (d *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("fakeDB: unexpected Query")
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) store.Row { return nil }

func (d *fakeDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d)
}

// board is an in memory task table joined to vessel activity
type board struct {
	mu      sync.Mutex
	tasks   map[int64]*domain.Task
	vessels map[string]bool
	owners  map[string]string
	marks   []int64
	nextID  int64
}

func newBoard() *board {
	return &board{tasks: map[int64]*domain.Task{}, vessels: map[string]bool{}, owners: map[string]string{}}
}

func (b *board) vessel(owner, id string, active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vessels[id], b.owners[id] = active, owner
}

func (b *board) task(vesselID string, next time.Time, active bool) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.tasks[b.nextID] = &domain.Task{
		ID: b.nextID, VesselID: vesselID, TaskType: repo.TaskType,
		IntervalHours: 1, NextRun: next, IsActive: active,
	}
	return b.nextID
}

func (b *board) get(id int64) domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.tasks[id]
}

func (b *board) scoped(owner, vesselID string) bool { return owner == "" || b.owners[vesselID] == owner }

func (b *board) Bind(repokit.Queryer) repo.Repo { return b }

func (b *board) LeaseDue(_ context.Context, now time.Time, n int, leaseFor time.Duration) ([]domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var due []*domain.Task
	for _, t := range b.tasks {
		if t.IsActive && b.vessels[t.VesselID] && !t.NextRun.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextRun.Before(due[j].NextRun) })
	if len(due) > n {
		due = due[:n]
	}
	out := make([]domain.Task, 0, len(due))
	for _, t := range due {
		t.NextRun = now.Add(leaseFor)
		out = append(out, *t)
	}
	return out, nil
}

func (b *board) MarkRun(_ context.Context, id int64, ranAt time.Time, lastErr *string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.tasks[id]
	t.LastRun = &ranAt
	t.NextRun = ranAt.Add(time.Duration(t.IntervalHours * float64(time.Hour)))
	t.LastError = lastErr
	b.marks = append(b.marks, id)
	return nil
}

func (b *board) CountActive(_ context.Context, owner string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, t := range b.tasks {
		if t.IsActive && b.vessels[t.VesselID] && b.scoped(owner, t.VesselID) {
			n++
		}
	}
	return n, nil
}

func (b *board) ReactivateTasks(_ context.Context, owner string, now time.Time) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, t := range b.tasks {
		if !t.IsActive && b.vessels[t.VesselID] && b.scoped(owner, t.VesselID) {
			t.IsActive = true
			if t.NextRun.After(now) {
				t.NextRun = now
			}
			n++
		}
	}
	return n, nil
}

func (b *board) CreateMissingTasks(_ context.Context, owner string, hours float64, now time.Time) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	has := map[string]bool{}
	for _, t := range b.tasks {
		has[t.VesselID] = true
	}
	ids := make([]string, 0, len(b.vessels))
	for id, active := range b.vessels {
		if active && !has[id] && b.scoped(owner, id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		b.nextID++
		b.tasks[b.nextID] = &domain.Task{
			ID: b.nextID, VesselID: id, TaskType: repo.TaskType, IntervalHours: hours, NextRun: now, IsActive: true,
		}
	}
	return len(ids), nil
}

func (b *board) DeactivateOrphans(_ context.Context, owner string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, t := range b.tasks {
		if t.IsActive && !b.vessels[t.VesselID] && b.scoped(owner, t.VesselID) {
			t.IsActive = false
			n++
		}
	}
	return n, nil
}

func (b *board) ListTasks(_ context.Context, owner string) ([]domain.TaskView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.TaskView
	for _, t := range b.tasks {
		if b.scoped(owner, t.VesselID) {
			out = append(out, domain.TaskView{Task: *t, VesselActive: b.vessels[t.VesselID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextRun.Before(out[j].NextRun) })
	return out, nil
}

// checker is a scripted seatime check port that tracks overlap
type checker struct {
	mu       sync.Mutex
	fail     map[string]error
	calls    []string
	inflight int
	peak     int
	hold     time.Duration
}

func (c *checker) CheckVesselAIS(context.Context, string, string, bool) (stdomain.CheckResult, error) {
	return stdomain.CheckResult{}, errors.New("checker: manual checks are not scheduled")
}

func (c *checker) RunScheduledCheck(_ context.Context, vesselID string) (stdomain.CheckResult, error) {
	c.mu.Lock()
	c.calls = append(c.calls, vesselID)
	c.inflight++
	if c.inflight > c.peak {
		c.peak = c.inflight
	}
	err := c.fail[vesselID]
	c.mu.Unlock()

	time.Sleep(c.hold)

	c.mu.Lock()
	c.inflight--
	c.mu.Unlock()
	if err != nil {
		return stdomain.CheckResult{}, err
	}
	return stdomain.CheckResult{Verdict: "moving", Transition: "continue"}, nil
}

func newHarness(cfg Config) (*Svc, *board, *checker, *testkit.Clock) {
	clk := testkit.NewClock(t0)
	b := newBoard()
	c := &checker{fail: map[string]error{}}
	s := newSvc(modkit.Deps{PG: &fakeDB{}, Now: clk.Now}, cfg, c, b)
	return s, b, c, clk
}
