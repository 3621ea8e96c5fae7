package service

import (
	"context"

	"seatime/internal/core/validity"
	"seatime/internal/modkit/repokit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/services/seatime/domain"
	"seatime/internal/services/seatime/repo"
)

// SeaTimeEntries lists entries with validity flags, newest first
// non compliant entries are included and flagged
func (s *Svc) SeaTimeEntries(ctx context.Context, ownerID string, f domain.EntryFilter) ([]domain.EntryView, error) {
	if f.VesselID != "" {
		if _, err := s.repo().GetVessel(ctx, ownerID, f.VesselID); err != nil {
			return nil, dbErr(notFound(err, domain.ErrVesselNotFound), "load vessel")
		}
	}
	f.Limit = s.limit(f.Limit)
	es, err := s.repo().ListEntries(ctx, ownerID, f)
	if err != nil {
		return nil, dbErr(err, "list entries")
	}
	return s.views(es), nil
}

// PendingEntries lists closed entries awaiting a decision
func (s *Svc) PendingEntries(ctx context.Context, ownerID string) ([]domain.EntryView, error) {
	return s.SeaTimeEntries(ctx, ownerID, domain.EntryFilter{Status: domain.StatusPending, Closed: true})
}

// EntriesSince returns entries created after the afterID watermark
func (s *Svc) EntriesSince(ctx context.Context, ownerID string, afterID int64, limit int) ([]domain.EntryView, error) {
	if afterID < 0 {
		return nil, perr.WithField(perr.Validationf("after_id must not be negative"), "after_id")
	}
	es, err := s.repo().EntriesSince(ctx, ownerID, afterID, s.limit(limit))
	if err != nil {
		return nil, dbErr(err, "entries since")
	}
	return s.views(es), nil
}

// ConfirmEntry resolves a pending, confirmable entry as confirmed
func (s *Svc) ConfirmEntry(ctx context.Context, ownerID string, entryID int64, t domain.ServiceType) (domain.EntryView, error) {
	if !t.Valid() {
		return domain.EntryView{}, domain.ErrInvalidServiceType
	}
	return s.resolve(ctx, ownerID, entryID, func(e domain.Entry) error {
		res := validity.Evaluate(e.Validity(), s.config.Validity)
		if !res.Confirmable {
			return perr.Wrapf(domain.ErrNotConfirmable, perr.ErrorCodeValidation, "entry %d is not confirmable %v", e.ID, res.Reasons)
		}
		return nil
	}, domain.StatusConfirmed, &t)
}

// RejectEntry resolves a closed pending entry as rejected
func (s *Svc) RejectEntry(ctx context.Context, ownerID string, entryID int64) (domain.EntryView, error) {
	return s.resolve(ctx, ownerID, entryID, func(e domain.Entry) error {
		if e.IsOpen() {
			return domain.ErrEntryOpen
		}
		return nil
	}, domain.StatusRejected, nil)
}

// resolve locks the entry, runs check, then applies the conditional status update
// a concurrent resolver that got there first yields ErrAlreadyResolved
func (s *Svc) resolve(
	ctx context.Context,
	ownerID string,
	entryID int64,
	check func(domain.Entry) error,
	to domain.Status,
	t *domain.ServiceType,
) (domain.EntryView, error) {
	var out domain.Entry
	err := s.tx(ctx, func(_ repokit.Queryer, r repo.Repo) error {
		e, err := r.LockEntry(ctx, ownerID, entryID)
		if err != nil {
			return notFound(err, domain.ErrEntryNotFound)
		}
		if e.Status != domain.StatusPending {
			return domain.ErrAlreadyResolved
		}
		if err := check(e); err != nil {
			return err
		}
		updated, ok, err := r.Resolve(ctx, e.ID, to, t, s.now().UTC())
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyResolved
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.EntryView{}, dbErr(err, "resolve entry")
	}
	s.log.Info().
		Int64("entry_id", out.ID).
		Str("vessel_id", out.VesselID).
		Str("status", string(out.Status)).
		Msg("entry resolved")
	return s.view(out), nil
}

// CorrectEntryPositions fills in missing coordinates on a pending entry
func (s *Svc) CorrectEntryPositions(ctx context.Context, ownerID string, p domain.PositionPatch) (domain.EntryView, error) {
	if p.Empty() {
		return domain.EntryView{}, perr.Validationf("no coordinates given")
	}
	var out domain.Entry
	err := s.tx(ctx, func(_ repokit.Queryer, r repo.Repo) error {
		e, err := r.LockEntry(ctx, ownerID, p.EntryID)
		if err != nil {
			return notFound(err, domain.ErrEntryNotFound)
		}
		if e.Status != domain.StatusPending {
			return domain.ErrAlreadyResolved
		}
		if e.IsOpen() && (p.EndLatitude != nil || p.EndLongitude != nil) {
			return domain.ErrEntryOpen
		}
		out, err = r.CorrectPositions(ctx, p)
		return err
	})
	if err != nil {
		return domain.EntryView{}, dbErr(err, "correct positions")
	}
	return s.view(out), nil
}

// UpdateEntryNotes replaces the free text notes of an entry
func (s *Svc) UpdateEntryNotes(ctx context.Context, ownerID string, entryID int64, notes string) (domain.EntryView, error) {
	var out domain.Entry
	err := s.tx(ctx, func(_ repokit.Queryer, r repo.Repo) error {
		if _, err := r.LockEntry(ctx, ownerID, entryID); err != nil {
			return notFound(err, domain.ErrEntryNotFound)
		}
		var err error
		out, err = r.UpdateNotes(ctx, entryID, notes)
		return err
	})
	if err != nil {
		return domain.EntryView{}, dbErr(err, "update notes")
	}
	return s.view(out), nil
}
