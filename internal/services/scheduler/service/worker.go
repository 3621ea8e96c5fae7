package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"seatime/internal/adapters/ais"
	ptime "seatime/internal/platform/time"
	"seatime/internal/services/scheduler/domain"

	"golang.org/x/sync/errgroup"
)

// RunOnce claims the due tasks and checks their vessels, several vessels at a time
func (s *Svc) RunOnce(ctx context.Context) (domain.RunReport, error) {
	tasks, err := s.repo().LeaseDue(ctx, s.now().UTC(), s.config.Batch, s.config.Lease)
	if err != nil {
		return domain.RunReport{}, dbErr(err, "lease due tasks")
	}
	rep := domain.RunReport{Claimed: len(tasks)}
	if len(tasks) == 0 {
		return rep, nil
	}

	var ok, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)
	for _, t := range tasks {
		g.Go(func() error {
			if s.execute(ctx, t) {
				ok.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	rep.Succeeded, rep.Failed = int(ok.Load()), int(failed.Load())
	return rep, ctx.Err()
}

// execute runs one check and reschedules the task whatever happened
func (s *Svc) execute(ctx context.Context, t domain.Task) bool {
	res, cerr := s.checker.RunScheduledCheck(ctx, t.VesselID)

	ranAt := s.now().UTC()
	next := ranAt.Add(ptime.FromHours(t.IntervalHours))
	var lastErr *string
	if cerr != nil {
		msg := trimErr(cerr)
		lastErr = &msg
	}

	// the run is recorded even when the caller is shutting down
	mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.repo().MarkRun(mctx, t.ID, ranAt, lastErr); err != nil {
		s.log.Error().Err(err).Int64("task_id", t.ID).Str("vessel_id", t.VesselID).Msg("mark task run failed")
	}

	if cerr != nil {
		ev := s.log.Warn()
		if errors.Is(cerr, context.Canceled) {
			ev = s.log.Debug()
		}
		ev.Err(cerr).
			Int64("task_id", t.ID).
			Str("vessel_id", t.VesselID).
			Str("error_code", errorCode(cerr)).
			Time("next_run", next).
			Msg("scheduled check failed")
		return false
	}
	s.log.Debug().
		Int64("task_id", t.ID).
		Str("vessel_id", t.VesselID).
		Str("verdict", res.Verdict).
		Str("transition", res.Transition).
		Time("next_run", next).
		Msg("scheduled check done")
	return true
}

// Run polls for due tasks every Tick and reconciles every ReconcileEvery until ctx ends
func (s *Svc) Run(ctx context.Context) error {
	s.sweep(ctx)
	lastSweep := s.now()

	t := time.NewTicker(s.config.Tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if s.config.ReconcileEvery > 0 && s.now().Sub(lastSweep) >= s.config.ReconcileEvery {
				s.sweep(ctx)
				lastSweep = s.now()
			}
			rep, err := s.RunOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Warn().Err(err).Msg("scheduler pass failed")
				continue
			}
			if rep.Claimed > 0 {
				s.log.Info().
					Int("claimed", rep.Claimed).
					Int("succeeded", rep.Succeeded).
					Int("failed", rep.Failed).
					Msg("scheduler pass")
			}
		}
	}
}

func (s *Svc) sweep(ctx context.Context) {
	if _, err := s.Reconcile(ctx, ""); err != nil && ctx.Err() == nil {
		s.log.Warn().Err(err).Msg("reconcile sweep failed")
	}
}

// errorCode is the short failure name logged next to the vessel
func errorCode(err error) string {
	if c := ais.Code(err); c != "error" {
		return c
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "error"
}

func trimErr(err error) string {
	const n = 500
	s := err.Error()
	if len(s) <= n {
		return s
	}
	return s[:n]
}
