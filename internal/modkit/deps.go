// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/config"
	"seatime/internal/platform/logger"
	"seatime/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	// CH is nil unless the analytics mirror is enabled
	CH store.Clickhouse
	// Now overrides the wall clock; nil means time.Now
	Now func() time.Time
}

// Clock returns the injected clock or time.Now
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}
