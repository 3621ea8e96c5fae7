package domain

import "context"

// CheckPort runs the detection pipeline for one vessel
type CheckPort interface {
	// CheckVesselAIS is the manual, owner scoped check
	CheckVesselAIS(ctx context.Context, ownerID, vesselID string, force bool) (CheckResult, error)
	// RunScheduledCheck is the scheduler entry point; it is not owner scoped
	RunScheduledCheck(ctx context.Context, vesselID string) (CheckResult, error)
}

// EntriesPort reads and resolves sea time entries
type EntriesPort interface {
	SeaTimeEntries(ctx context.Context, ownerID string, f EntryFilter) ([]EntryView, error)
	PendingEntries(ctx context.Context, ownerID string) ([]EntryView, error)
	// EntriesSince returns entries with id > afterID in id order, for watermark readers
	EntriesSince(ctx context.Context, ownerID string, afterID int64, limit int) ([]EntryView, error)

	ConfirmEntry(ctx context.Context, ownerID string, entryID int64, t ServiceType) (EntryView, error)
	RejectEntry(ctx context.Context, ownerID string, entryID int64) (EntryView, error)

	CorrectEntryPositions(ctx context.Context, ownerID string, p PositionPatch) (EntryView, error)
	UpdateEntryNotes(ctx context.Context, ownerID string, entryID int64, notes string) (EntryView, error)
}

// VesselsPort manages the owner's vessels and the single tracked one
type VesselsPort interface {
	RegisterVessel(ctx context.Context, ownerID string, in VesselInput) (Vessel, error)
	ListVessels(ctx context.Context, ownerID string) ([]Vessel, error)
	ActivateVessel(ctx context.Context, ownerID, vesselID string) (Vessel, error)
	DeactivateVessel(ctx context.Context, ownerID, vesselID string) (Vessel, error)
	DeleteVessel(ctx context.Context, ownerID, vesselID string) error
	AISChecks(ctx context.Context, ownerID, vesselID string, limit int) ([]AISCheck, error)
}
