// Package http provides http transport for seatime
package http

import (
	stdhttp "net/http"

	"seatime/internal/modkit/httpkit"
	"seatime/internal/services/seatime/domain"
	svc "seatime/internal/services/seatime/service"
)

// Register mounts the seatime routes; callers put them behind auth
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetJSON(r, "/vessels", h.listVessels)
	httpkit.PostJSON[domain.VesselInput](r, "/vessels", h.registerVessel)
	httpkit.PostJSON[domain.VesselRef](r, "/vessels/activate", h.activateVessel)
	httpkit.PostJSON[domain.VesselRef](r, "/vessels/deactivate", h.deactivateVessel)
	httpkit.PostJSON[domain.VesselRef](r, "/vessels/delete", h.deleteVessel)

	httpkit.PostJSON[domain.CheckInput](r, "/ais/check", h.checkVesselAIS)
	httpkit.PostJSON[domain.ChecksQuery](r, "/ais/checks", h.aisChecks)

	httpkit.PostJSON[domain.EntriesQuery](r, "/entries", h.entries)
	httpkit.GetJSON(r, "/entries/pending", h.pending)
	httpkit.PostJSON[domain.SinceQuery](r, "/entries/since", h.since)
	httpkit.PostJSON[domain.ConfirmInput](r, "/entries/confirm", h.confirm)
	httpkit.PostJSON[domain.EntryRef](r, "/entries/reject", h.reject)
	httpkit.PostJSON[domain.PositionsInput](r, "/entries/positions", h.positions)
	httpkit.PostJSON[domain.NotesInput](r, "/entries/notes", h.notes)
}

type handlers struct{ svc svc.Service }

// @Summary List vessels
// @Tags vessels
// @Produce json
// @Security bearerAuth
// @Success 200 {array} domain.Vessel "ok"
// @Router /vessels [get]
func (h *handlers) listVessels(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ListVessels(r.Context(), owner)
}

// @Summary Register a vessel
// @Tags vessels
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.VesselInput true "Vessel"
// @Success 201 {object} domain.Vessel "created"
// @Failure 409 {object} httpkit.Envelope "duplicate mmsi"
// @Router /vessels [post]
func (h *handlers) registerVessel(r *stdhttp.Request, in domain.VesselInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	v, err := h.svc.RegisterVessel(r.Context(), owner, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(v), nil
}

// @Summary Make a vessel the tracked one
// @Tags vessels
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.VesselRef true "Vessel"
// @Success 200 {object} domain.Vessel "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /vessels/activate [post]
func (h *handlers) activateVessel(r *stdhttp.Request, in domain.VesselRef) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ActivateVessel(r.Context(), owner, in.VesselID)
}

// @Summary Stop tracking a vessel
// @Tags vessels
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.VesselRef true "Vessel"
// @Success 200 {object} domain.Vessel "ok"
// @Router /vessels/deactivate [post]
func (h *handlers) deactivateVessel(r *stdhttp.Request, in domain.VesselRef) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DeactivateVessel(r.Context(), owner, in.VesselID)
}

// @Summary Delete a vessel with its history
// @Tags vessels
// @Accept json
// @Security bearerAuth
// @Param payload body domain.VesselRef true "Vessel"
// @Success 204 "deleted"
// @Router /vessels/delete [post]
func (h *handlers) deleteVessel(r *stdhttp.Request, in domain.VesselRef) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteVessel(r.Context(), owner, in.VesselID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Check the tracked vessel's AIS now
// @Tags ais
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.CheckInput true "Check"
// @Success 200 {object} domain.CheckResult "ok"
// @Failure 409 {object} httpkit.Envelope "vessel not active"
// @Failure 429 {object} httpkit.Envelope "provider rate limited"
// @Failure 503 {object} httpkit.Envelope "provider unavailable"
// @Failure 504 {object} httpkit.Envelope "provider timed out"
// @Router /ais/check [post]
func (h *handlers) checkVesselAIS(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CheckVesselAIS(r.Context(), owner, in.VesselID, in.ForceRefresh)
}

// @Summary AIS check audit trail
// @Tags ais
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.ChecksQuery true "Query"
// @Success 200 {array} domain.AISCheck "ok"
// @Router /ais/checks [post]
func (h *handlers) aisChecks(r *stdhttp.Request, in domain.ChecksQuery) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.AISChecks(r.Context(), owner, in.VesselID, in.Limit)
}

// @Summary Sea time entries, newest first, with validity flags
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.EntriesQuery true "Query"
// @Success 200 {array} domain.EntryView "ok"
// @Router /entries [post]
func (h *handlers) entries(r *stdhttp.Request, in domain.EntriesQuery) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SeaTimeEntries(r.Context(), owner, domain.EntryFilter{VesselID: in.VesselID, Limit: in.Limit})
}

// @Summary Closed entries awaiting confirmation
// @Tags entries
// @Produce json
// @Security bearerAuth
// @Success 200 {array} domain.EntryView "ok"
// @Router /entries/pending [get]
func (h *handlers) pending(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PendingEntries(r.Context(), owner)
}

// @Summary Entries created after a watermark id
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.SinceQuery true "Watermark"
// @Success 200 {array} domain.EntryView "ok"
// @Router /entries/since [post]
func (h *handlers) since(r *stdhttp.Request, in domain.SinceQuery) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.EntriesSince(r.Context(), owner, in.AfterID, in.Limit)
}

// @Summary Confirm a pending entry
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.ConfirmInput true "Confirm"
// @Success 200 {object} domain.EntryView "ok"
// @Failure 400 {object} httpkit.Envelope "not confirmable"
// @Failure 409 {object} httpkit.Envelope "already resolved"
// @Router /entries/confirm [post]
func (h *handlers) confirm(r *stdhttp.Request, in domain.ConfirmInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ConfirmEntry(r.Context(), owner, in.EntryID, in.ServiceType)
}

// @Summary Reject a pending entry
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.EntryRef true "Entry"
// @Success 200 {object} domain.EntryView "ok"
// @Failure 409 {object} httpkit.Envelope "already resolved"
// @Router /entries/reject [post]
func (h *handlers) reject(r *stdhttp.Request, in domain.EntryRef) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.RejectEntry(r.Context(), owner, in.EntryID)
}

// @Summary Fill in missing coordinates on a pending entry
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.PositionsInput true "Positions"
// @Success 200 {object} domain.EntryView "ok"
// @Router /entries/positions [post]
func (h *handlers) positions(r *stdhttp.Request, in domain.PositionsInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CorrectEntryPositions(r.Context(), owner, in.Patch())
}

// @Summary Replace entry notes
// @Tags entries
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.NotesInput true "Notes"
// @Success 200 {object} domain.EntryView "ok"
// @Router /entries/notes [post]
func (h *handlers) notes(r *stdhttp.Request, in domain.NotesInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateEntryNotes(r.Context(), owner, in.EntryID, in.Notes)
}
