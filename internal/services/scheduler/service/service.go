// Package service contains the scheduler workflows
package service

import (
	"context"
	"errors"
	"time"

	"seatime/internal/modkit"
	"seatime/internal/modkit/repokit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/platform/logger"
	"seatime/internal/services/scheduler/domain"
	"seatime/internal/services/scheduler/repo"
	stdomain "seatime/internal/services/seatime/domain"
)

// Service defines the scheduler service contract
type Service interface {
	domain.WorkerPort
	domain.RunnerPort
	domain.ReconcilerPort
	domain.TasksPort
}

// Config holds scheduler knobs
type Config struct {
	// IntervalHours is the cadence given to tasks the reconciler creates
	IntervalHours float64
	// Lease pushes claimed tasks out so a second process skips them
	Lease time.Duration
	// Concurrency bounds how many vessels are checked at once
	Concurrency int
	// Batch caps how many due tasks one pass claims
	Batch int
	// Tick is the poll period of Run
	Tick time.Duration
	// ReconcileEvery is how often Run sweeps every owner; zero disables the periodic sweep
	ReconcileEvery   time.Duration
	StatementTimeout time.Duration
}

// Svc implements the scheduler service
type Svc struct {
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	config  Config
	checker stdomain.CheckPort
	now     func() time.Time
	log     *logger.Logger
}

// New constructs a scheduler driving checker
func New(deps modkit.Deps, cfg Config, checker stdomain.CheckPort) *Svc {
	if deps.PG == nil {
		panic("scheduler.Service requires a non nil TxRunner")
	}
	return newSvc(deps, cfg, checker, repo.NewPG())
}

func newSvc(deps modkit.Deps, cfg Config, checker stdomain.CheckPort, b repokit.Binder[repo.Repo]) *Svc {
	if checker == nil {
		panic("scheduler.Service requires a check port")
	}
	return &Svc{
		binder:  b,
		db:      repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(cfg.StatementTimeout)),
		config:  withDefaults(cfg),
		checker: checker,
		now:     deps.Clock(),
		log:     logger.Named("scheduler"),
	}
}

func withDefaults(c Config) Config {
	if c.IntervalHours <= 0 {
		c.IntervalHours = 1
	}
	if c.Lease <= 0 {
		c.Lease = 5 * time.Minute
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if c.Batch <= 0 {
		c.Batch = 64
	}
	if c.Tick <= 0 {
		c.Tick = 30 * time.Second
	}
	return c
}

func (s *Svc) repo() repo.Repo { return s.binder.Bind(s.db) }

// Reconcile restores one active ais_check task per active vessel in a single tx
func (s *Svc) Reconcile(ctx context.Context, ownerID string) (domain.ReconcileReport, error) {
	var rep domain.ReconcileReport
	now := s.now().UTC()
	err := repokit.InTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		var err error
		// counted first so the rows touched below are not double counted
		if rep.AlreadyActive, err = r.CountActive(ctx, ownerID); err != nil {
			return err
		}
		if rep.Reactivated, err = r.ReactivateTasks(ctx, ownerID, now); err != nil {
			return err
		}
		if rep.Created, err = r.CreateMissingTasks(ctx, ownerID, s.config.IntervalHours, now); err != nil {
			return err
		}
		rep.Deactivated, err = r.DeactivateOrphans(ctx, ownerID)
		return err
	})
	if err != nil {
		return domain.ReconcileReport{}, dbErr(err, "reconcile scheduled tasks")
	}

	ev := s.log.Debug()
	if rep.Created+rep.Reactivated+rep.Deactivated > 0 {
		ev = s.log.Info()
	}
	ev.Str("owner_id", ownerID).
		Int("created", rep.Created).
		Int("reactivated", rep.Reactivated).
		Int("already_active", rep.AlreadyActive).
		Int("deactivated", rep.Deactivated).
		Msg("scheduled tasks reconciled")
	return rep, nil
}

// ListTasks returns tasks soonest first
func (s *Svc) ListTasks(ctx context.Context, ownerID string) ([]domain.TaskView, error) {
	ts, err := s.repo().ListTasks(ctx, ownerID)
	if err != nil {
		return nil, dbErr(err, "list scheduled tasks")
	}
	return ts, nil
}

func dbErr(err error, msg string) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return perr.FromPostgres(err, msg)
}
