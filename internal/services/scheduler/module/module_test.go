package module

import (
	"testing"
	"time"

	"seatime/internal/platform/config"
)

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New())
	if o.IntervalHours != 1 || o.Lease != 5*time.Minute || o.Concurrency != 4 || o.Batch != 64 {
		t.Fatalf("defaults = %+v", o)
	}
	if o.ReconcileEvery != 15*time.Minute {
		t.Fatalf("reconcile every = %v", o.ReconcileEvery)
	}
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("SCHEDULER_CONCURRENCY", "9")
	t.Setenv("SCHEDULER_LEASE", "90s")
	t.Setenv("SCHEDULER_INTERVAL_HOURS", "0.5")

	o := FromConfig(config.New())
	if o.Concurrency != 9 || o.Lease != 90*time.Second || o.IntervalHours != 0.5 {
		t.Fatalf("options = %+v", o)
	}
}
