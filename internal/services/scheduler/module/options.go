package module

import (
	"time"

	"seatime/internal/platform/config"
)

// Options controls scheduler behavior. Values are read from env
type Options struct {
	IntervalHours    float64
	Lease            time.Duration
	Concurrency      int
	Batch            int
	Tick             time.Duration
	ReconcileEvery   time.Duration
	StatementTimeout time.Duration
}

// FromConfig reads options using the SCHEDULER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SCHEDULER_")
	return Options{
		IntervalHours:    c.MayFloat64("INTERVAL_HOURS", 1.0),
		Lease:            c.MayDuration("LEASE", 5*time.Minute),
		Concurrency:      c.MayInt("CONCURRENCY", 4),
		Batch:            c.MayInt("BATCH", 64),
		Tick:             c.MayDuration("TICK", 30*time.Second),
		ReconcileEvery:   c.MayDuration("RECONCILE_EVERY", 15*time.Minute),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
}
