package service

import (
	"context"
	"fmt"
	"time"

	"seatime/internal/platform/store"
	pstrings "seatime/internal/platform/strings"
	"seatime/internal/services/seatime/domain"
)

const mirrorTimeout = 2 * time.Second

const mirrorDDL = `
	CREATE TABLE IF NOT EXISTS %s (
		id          Int64,
		vessel_id   String,
		check_time  DateTime64(3, 'UTC'),
		sample_time Nullable(DateTime64(3, 'UTC')),
		verdict     LowCardinality(String),
		speed_knots Nullable(Float64),
		latitude    Nullable(Float64),
		longitude   Nullable(Float64),
		error_code  LowCardinality(String),
		manual      Bool
	)
	ENGINE = ReplacingMergeTree
	ORDER BY (vessel_id, check_time, id)`

// EnsureMirror creates the clickhouse check table when it is missing
func EnsureMirror(ctx context.Context, ch store.Clickhouse, table string) error {
	if ch == nil {
		return nil
	}
	if table == "" {
		table = "ais_checks"
	}
	return ch.Exec(ctx, fmt.Sprintf(mirrorDDL, table))
}

// mirror copies a committed check into clickhouse when the analytics store is wired
// failures are logged and never surface to the caller
func (s *Svc) mirror(ctx context.Context, c domain.AISCheck) {
	if s.deps.CH == nil || c.ID == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mirrorTimeout)
	defer cancel()

	row := []any{
		c.ID,
		c.VesselID,
		c.CheckTime,
		c.SampleTime,
		c.Verdict,
		c.SpeedKnots,
		c.Latitude,
		c.Longitude,
		pstrings.Deref(c.ErrorCode),
		c.Manual,
	}
	if err := s.deps.CH.Insert(ctx, s.config.MirrorTable, [][]any{row}); err != nil {
		s.log.Warn().Err(err).Int64("check_id", c.ID).Str("table", s.config.MirrorTable).Msg("ch mirror failed")
	}
}
