package service

import (
	"context"

	"seatime/internal/modkit/repokit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/services/seatime/domain"
	"seatime/internal/services/seatime/repo"

	"github.com/google/uuid"
)

func ownerLockKey(ownerID string) string { return "seatime:owner:" + ownerID }

// RegisterVessel stores a new vessel and optionally makes it the tracked one
func (s *Svc) RegisterVessel(ctx context.Context, ownerID string, in domain.VesselInput) (domain.Vessel, error) {
	var out domain.Vessel
	err := s.tx(ctx, func(q repokit.Queryer, r repo.Repo) error {
		v, err := r.InsertVessel(ctx, domain.Vessel{
			ID:          uuid.New().String(),
			OwnerID:     ownerID,
			MMSI:        in.MMSI,
			Name:        in.Name,
			Particulars: in.Particulars,
		})
		if err != nil {
			if perr.IsDuplicateKey(err) {
				return domain.ErrDuplicateVessel
			}
			return err
		}
		out = v
		if !in.Activate {
			return nil
		}
		out, err = s.activate(ctx, q, r, ownerID, v.ID)
		return err
	})
	if err != nil {
		return domain.Vessel{}, dbErr(err, "register vessel")
	}
	return out, nil
}

// ListVessels returns the owner's vessels, the tracked one first
func (s *Svc) ListVessels(ctx context.Context, ownerID string) ([]domain.Vessel, error) {
	vs, err := s.repo().ListVessels(ctx, ownerID)
	if err != nil {
		return nil, dbErr(err, "list vessels")
	}
	return vs, nil
}

// ActivateVessel makes vesselID the owner's only tracked vessel and schedules its checks
func (s *Svc) ActivateVessel(ctx context.Context, ownerID, vesselID string) (domain.Vessel, error) {
	var out domain.Vessel
	err := s.tx(ctx, func(q repokit.Queryer, r repo.Repo) error {
		var err error
		out, err = s.activate(ctx, q, r, ownerID, vesselID)
		return err
	})
	if err != nil {
		return domain.Vessel{}, dbErr(err, "activate vessel")
	}
	s.log.Info().Str("vessel_id", out.ID).Str("mmsi", out.MMSI).Msg("vessel activated")
	return out, nil
}

// activate runs inside the caller's tx: deactivate the others, activate this one, ensure its task
func (s *Svc) activate(ctx context.Context, q repokit.Queryer, r repo.Repo, ownerID, vesselID string) (domain.Vessel, error) {
	if err := repokit.RunMidHooks(ctx, q, repokit.AdvisoryXactLock(ownerLockKey(ownerID))); err != nil {
		return domain.Vessel{}, err
	}
	if _, err := r.GetVessel(ctx, ownerID, vesselID); err != nil {
		return domain.Vessel{}, notFound(err, domain.ErrVesselNotFound)
	}
	others, err := r.DeactivateOthers(ctx, ownerID, vesselID)
	if err != nil {
		return domain.Vessel{}, err
	}
	if err := r.DeactivateTasks(ctx, others...); err != nil {
		return domain.Vessel{}, err
	}
	v, err := r.SetActive(ctx, vesselID, true)
	if err != nil {
		return domain.Vessel{}, err
	}
	if err := r.EnsureTask(ctx, vesselID, s.config.IntervalHours, s.now().UTC()); err != nil {
		return domain.Vessel{}, err
	}
	return v, nil
}

// DeactivateVessel stops tracking a vessel; its entries and checks are kept
func (s *Svc) DeactivateVessel(ctx context.Context, ownerID, vesselID string) (domain.Vessel, error) {
	var out domain.Vessel
	err := s.tx(ctx, func(_ repokit.Queryer, r repo.Repo) error {
		if _, err := r.GetVessel(ctx, ownerID, vesselID); err != nil {
			return notFound(err, domain.ErrVesselNotFound)
		}
		v, err := r.SetActive(ctx, vesselID, false)
		if err != nil {
			return err
		}
		out = v
		return r.DeactivateTasks(ctx, vesselID)
	})
	if err != nil {
		return domain.Vessel{}, dbErr(err, "deactivate vessel")
	}
	return out, nil
}

// DeleteVessel removes a vessel with its checks, entries and task
func (s *Svc) DeleteVessel(ctx context.Context, ownerID, vesselID string) error {
	ok, err := s.repo().DeleteVessel(ctx, ownerID, vesselID)
	if err != nil {
		return dbErr(err, "delete vessel")
	}
	if !ok {
		return domain.ErrVesselNotFound
	}
	s.log.Info().Str("vessel_id", vesselID).Msg("vessel deleted")
	return nil
}

// AISChecks returns the audit trail of one of the owner's vessels
func (s *Svc) AISChecks(ctx context.Context, ownerID, vesselID string, limit int) ([]domain.AISCheck, error) {
	if _, err := s.repo().GetVessel(ctx, ownerID, vesselID); err != nil {
		return nil, dbErr(notFound(err, domain.ErrVesselNotFound), "load vessel")
	}
	cs, err := s.repo().ListChecks(ctx, vesselID, s.limit(limit))
	if err != nil {
		return nil, dbErr(err, "list checks")
	}
	return cs, nil
}
