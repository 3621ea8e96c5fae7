package service

import (
	"context"
	"errors"
	"time"

	"seatime/internal/adapters/ais"
	"seatime/internal/core/interval"
	"seatime/internal/core/movement"
	"seatime/internal/core/sample"
	"seatime/internal/modkit/repokit"
	ptime "seatime/internal/platform/time"
	"seatime/internal/services/seatime/domain"
	"seatime/internal/services/seatime/repo"
)

// CheckVesselAIS samples the owner's vessel now and applies the result
func (s *Svc) CheckVesselAIS(ctx context.Context, ownerID, vesselID string, force bool) (domain.CheckResult, error) {
	return s.run(ctx, ownerID, vesselID, true, force)
}

// RunScheduledCheck is CheckVesselAIS for the scheduler
func (s *Svc) RunScheduledCheck(ctx context.Context, vesselID string) (domain.CheckResult, error) {
	return s.run(ctx, "", vesselID, false, false)
}

func vesselLockKey(id string) string { return "seatime:vessel:" + id }

// run is one pass of fetch, classify, transition and persist for a vessel
// an empty ownerID skips the ownership check
func (s *Svc) run(ctx context.Context, ownerID, vesselID string, manual, force bool) (domain.CheckResult, error) {
	release, err := s.locks.Lock(ctx, vesselID)
	if err != nil {
		return domain.CheckResult{}, err
	}
	defer release()

	var v domain.Vessel
	if ownerID == "" {
		v, err = s.repo().FindVessel(ctx, vesselID)
	} else {
		v, err = s.repo().GetVessel(ctx, ownerID, vesselID)
	}
	if err != nil {
		return domain.CheckResult{}, dbErr(notFound(err, domain.ErrVesselNotFound), "load vessel")
	}
	if !v.IsActive {
		return domain.CheckResult{}, domain.ErrVesselNotActive
	}

	var (
		res  domain.CheckResult
		ferr error
	)
	err = s.tx(ctx, func(q repokit.Queryer, r repo.Repo) error {
		// held across the provider call; api and scheduler processes share it
		if err := repokit.RunMidHooks(ctx, q,
			repokit.MidHook(repokit.StatementTimeout(s.config.LockWait)),
			repokit.AdvisoryXactLock(vesselLockKey(v.ID)),
			repokit.MidHook(repokit.StatementTimeout(s.config.StatementTimeout)),
		); err != nil {
			return err
		}

		var smp sample.Sample
		smp, ferr = s.ais.Fetch(ctx, ais.Target{VesselID: v.ID, MMSI: v.MMSI}, force)
		checkedAt := s.now().UTC()

		cur, err := r.LockVessel(ctx, v.ID)
		if err != nil {
			return notFound(err, domain.ErrVesselNotFound)
		}
		if !cur.IsActive {
			return domain.ErrVesselNotActive
		}
		if ferr != nil {
			res, err = s.recordFailure(ctx, r, v.ID, checkedAt, manual, ferr)
			return err
		}
		res, err = s.apply(ctx, r, v.ID, checkedAt, manual, smp)
		return err
	})
	if err != nil {
		return domain.CheckResult{}, dbErr(err, "ais check")
	}

	s.mirror(ctx, res.Check)
	s.logResult(v, res, ferr)

	if ferr != nil && !errors.Is(ferr, ais.ErrNoDataForVessel) {
		return res, ferr
	}
	return res, nil
}

// recordFailure writes the audit row for a poll that produced no sample
func (s *Svc) recordFailure(ctx context.Context, r repo.Repo, vesselID string, at time.Time, manual bool, ferr error) (domain.CheckResult, error) {
	code := ais.Code(ferr)
	c, err := r.InsertCheck(ctx, domain.AISCheck{
		VesselID:  vesselID,
		CheckTime: at,
		Verdict:   movement.Unknown.String(),
		ErrorCode: &code,
		Manual:    manual,
	})
	if err != nil {
		return domain.CheckResult{}, err
	}
	return domain.CheckResult{
		Check:      c,
		Verdict:    movement.Unknown.String(),
		Transition: interval.Noop.String(),
		Reason:     code,
	}, nil
}

// apply classifies smp against the vessel history and persists the transition
func (s *Svc) apply(ctx context.Context, r repo.Repo, vesselID string, at time.Time, manual bool, smp sample.Sample) (domain.CheckResult, error) {
	recent, err := r.RecentSamples(ctx, vesselID, s.config.RecentWindow)
	if err != nil {
		return domain.CheckResult{}, err
	}
	verdict, why := movement.Explain(smp, recent, s.config.Movement)

	open, err := r.OpenEntry(ctx, vesselID)
	if err != nil {
		return domain.CheckResult{}, err
	}
	st := interval.Closed()
	if open != nil {
		st = interval.Opened(open.ID, open.StartTime)
	}
	tr := interval.Decide(st, verdict, smp)

	check := domain.AISCheck{
		VesselID:   vesselID,
		CheckTime:  at,
		SampleTime: ptime.Ptr(smp.Timestamp),
		Verdict:    verdict.String(),
		SpeedKnots: smp.SpeedKnots,
		Latitude:   smp.Latitude,
		Longitude:  smp.Longitude,
		RawStatus:  smp.RawStatus,
		Manual:     manual,
	}
	if moving, known := verdict.IsMoving(); known {
		check.IsMoving = &moving
	}
	saved, err := r.InsertCheck(ctx, check)
	if err != nil {
		return domain.CheckResult{}, err
	}

	res := domain.CheckResult{
		Check:      saved,
		Sample:     &smp,
		Verdict:    verdict.String(),
		Transition: tr.Kind.String(),
		Reason:     why,
	}
	if tr.Reason != "" && verdict != movement.Unknown {
		res.Reason = tr.Reason
	}

	var entry *domain.Entry
	switch tr.Kind {
	case interval.Open:
		e, err := r.InsertEntry(ctx, vesselID, tr.At, tr.Lat, tr.Lon)
		if err != nil {
			return domain.CheckResult{}, err
		}
		entry = &e
	case interval.Continue:
		entry = open
	case interval.Close:
		e, err := r.CloseEntry(ctx, tr.EntryID, tr.At, tr.Lat, tr.Lon, tr.DurationHours)
		if err != nil {
			return domain.CheckResult{}, err
		}
		entry = &e
	}
	if entry != nil {
		v := s.view(*entry)
		res.Entry = &v
	}
	return res, nil
}

func (s *Svc) logResult(v domain.Vessel, res domain.CheckResult, ferr error) {
	if ferr != nil {
		s.log.Warn().
			Str("vessel_id", v.ID).
			Str("mmsi", v.MMSI).
			Str("error_code", ais.Code(ferr)).
			Dur("retry_after", ais.RetryAfter(ferr)).
			Err(ferr).
			Msg("ais poll failed")
		return
	}
	ev := s.log.Debug()
	if res.Transition == interval.Open.String() || res.Transition == interval.Close.String() {
		ev = s.log.Info()
	}
	ev = ev.Str("vessel_id", v.ID).
		Int64("check_id", res.Check.ID).
		Str("verdict", res.Verdict).
		Str("transition", res.Transition).
		Str("reason", res.Reason)
	if res.Entry != nil {
		ev = ev.Int64("entry_id", res.Entry.ID)
		if res.Entry.DurationHours != nil {
			ev = ev.Float64("duration_hours", *res.Entry.DurationHours)
		}
	}
	ev.Msg("ais check applied")
}
