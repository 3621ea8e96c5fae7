// Package service contains the sea time workflows
package service

import (
	"context"
	"errors"
	"time"

	"seatime/internal/adapters/ais"
	"seatime/internal/core/movement"
	"seatime/internal/core/sample"
	"seatime/internal/core/validity"
	"seatime/internal/modkit"
	"seatime/internal/modkit/repokit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/platform/logger"
	"seatime/internal/services/seatime/domain"
	"seatime/internal/services/seatime/repo"
)

// Service defines the seatime service contract
type Service interface {
	domain.CheckPort
	domain.EntriesPort
	domain.VesselsPort
}

// Fetcher is the slice of the AIS client the pipeline needs
type Fetcher interface {
	Fetch(ctx context.Context, t ais.Target, force bool) (sample.Sample, error)
}

// Config carries the pipeline thresholds and storage knobs
type Config struct {
	Movement movement.Policy
	Validity validity.Policy

	// IntervalHours is the ais_check cadence written when a vessel is activated
	IntervalHours float64
	// RecentWindow is how many recorded samples the classifier compares against
	RecentWindow int
	// ListLimit caps list reads when the caller asks for none
	ListLimit int
	// StatementTimeout bounds every statement run inside a service tx
	StatementTimeout time.Duration
	// LockWait bounds the wait for another process's in flight check of the same vessel
	LockWait time.Duration
	// MirrorTable receives a copy of each check when a clickhouse store is wired
	MirrorTable string

	AIS ais.Options
	// Fetcher overrides the client built from AIS
	Fetcher Fetcher
}

// Svc implements the seatime service
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	deps   modkit.Deps
	config Config
	ais    Fetcher
	locks  *keyedLock
	now    func() time.Time
	log    *logger.Logger
}

// New constructs a seatime service
func New(deps modkit.Deps, cfg Config) *Svc {
	if deps.PG == nil {
		panic("seatime.Service requires a non nil TxRunner")
	}
	return newSvc(deps, cfg, repo.NewPG())
}

func newSvc(deps modkit.Deps, cfg Config, b repokit.Binder[repo.Repo]) *Svc {
	cfg = withDefaults(cfg)

	f := cfg.Fetcher
	if f == nil {
		f = ais.NewClient(cfg.AIS)
	}
	return &Svc{
		binder: b,
		db:     repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(cfg.StatementTimeout)),
		deps:   deps,
		config: cfg,
		ais:    f,
		locks:  newKeyedLock(),
		now:    deps.Clock(),
		log:    logger.Named("seatime"),
	}
}

func withDefaults(c Config) Config {
	if c.Movement.ThresholdKnots <= 0 {
		c.Movement = movement.DefaultPolicy()
	}
	if c.Validity.MinimumHours <= 0 {
		c.Validity = validity.DefaultPolicy()
	}
	if c.IntervalHours <= 0 {
		c.IntervalHours = 1
	}
	if c.RecentWindow <= 0 {
		c.RecentWindow = 5
	}
	if c.ListLimit <= 0 {
		c.ListLimit = 200
	}
	if c.LockWait <= 0 {
		c.LockWait = time.Minute
	}
	if c.MirrorTable == "" {
		c.MirrorTable = "ais_checks"
	}
	return c
}

// repo binds the repository outside any tx
func (s *Svc) repo() repo.Repo { return s.binder.Bind(s.db) }

// tx runs fn with a repo bound to one transaction
func (s *Svc) tx(ctx context.Context, fn func(q repokit.Queryer, r repo.Repo) error) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		return fn(q, repokit.MustBind(s.binder, q))
	})
}

func (s *Svc) view(e domain.Entry) domain.EntryView {
	return domain.EntryView{Entry: e, Validity: validity.Evaluate(e.Validity(), s.config.Validity)}
}

func (s *Svc) views(es []domain.Entry) []domain.EntryView {
	out := make([]domain.EntryView, 0, len(es))
	for _, e := range es {
		out = append(out, s.view(e))
	}
	return out
}

func (s *Svc) limit(n int) int {
	if n <= 0 || n > s.config.ListLimit {
		return s.config.ListLimit
	}
	return n
}

// notFound swaps the store's generic not found for a domain sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, perr.ErrNotFound) {
		return sentinel
	}
	return err
}

// dbErr codes raw storage errors and leaves already coded ones alone
func dbErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return perr.FromPostgres(err, msg)
}
