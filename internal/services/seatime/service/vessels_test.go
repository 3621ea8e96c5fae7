package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "seatime/internal/platform/errors"
	"seatime/internal/services/seatime/domain"
)

func TestActivateVessel_SwitchesTrackedVessel(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	a := h.vessel("owner-1", "248123456")
	b, err := h.svc.RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "215000111", Name: "Second"})
	if err != nil {
		t.Fatal(err)
	}
	if b.IsActive {
		t.Fatalf("registered without activate must be inactive")
	}

	got, err := h.svc.ActivateVessel(ctx, "owner-1", b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsActive {
		t.Fatalf("activated vessel inactive")
	}

	vs, err := h.svc.ListVessels(ctx, "owner-1")
	if err != nil || len(vs) != 2 {
		t.Fatalf("list = %v, %v", vs, err)
	}
	active := 0
	for _, v := range vs {
		if v.IsActive {
			active++
		}
	}
	if active != 1 || !vs[0].IsActive || vs[0].ID != b.ID {
		t.Fatalf("vessels = %+v", vs)
	}
	if h.mem.tasks[a.ID].active || !h.mem.tasks[b.ID].active {
		t.Fatalf("tasks = %+v", h.mem.tasks)
	}
	if !h.mem.tasks[b.ID].next.Equal(t0) || h.mem.tasks[b.ID].interval != 1 {
		t.Fatalf("task = %+v", h.mem.tasks[b.ID])
	}

	locked := false
	for _, sql := range h.db.execs() {
		if strings.Contains(sql, "pg_advisory_xact_lock") {
			locked = true
		}
	}
	if !locked {
		t.Fatalf("activation must take the owner advisory lock")
	}
}

func TestActivateVessel_ForeignOrMissing(t *testing.T) {
	h := newHarness()
	a := h.vessel("owner-1", "248123456")
	if _, err := h.svc.ActivateVessel(context.Background(), "owner-2", a.ID); !errors.Is(err, domain.ErrVesselNotFound) {
		t.Fatalf("foreign: %v", err)
	}
	if perr.HTTPStatus(domain.ErrVesselNotFound) != 404 {
		t.Fatalf("not found must map to 404")
	}
}

func TestRegisterVessel_Duplicate(t *testing.T) {
	h := newHarness()
	h.vessel("owner-1", "248123456")
	_, err := h.svc.RegisterVessel(context.Background(), "owner-1", domain.VesselInput{MMSI: "248123456", Name: "Again"})
	if !errors.Is(err, domain.ErrDuplicateVessel) || perr.HTTPStatus(err) != 409 {
		t.Fatalf("duplicate: %v", err)
	}
	// same mmsi under another owner is fine
	if _, err := h.svc.RegisterVessel(context.Background(), "owner-2", domain.VesselInput{MMSI: "248123456", Name: "Theirs"}); err != nil {
		t.Fatal(err)
	}
}

func TestDeactivateAndDeleteVessel(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	v := h.vessel("owner-1", "248123456")
	closedPassage(t, h, v.ID, 5)

	got, err := h.svc.DeactivateVessel(ctx, "owner-1", v.ID)
	if err != nil || got.IsActive {
		t.Fatalf("deactivate = %+v, %v", got, err)
	}
	if h.mem.tasks[v.ID].active {
		t.Fatalf("task still active")
	}
	if _, err := h.svc.RunScheduledCheck(ctx, v.ID); !errors.Is(err, domain.ErrVesselNotActive) {
		t.Fatalf("check after deactivate: %v", err)
	}

	checks, err := h.svc.AISChecks(ctx, "owner-1", v.ID, 10)
	if err != nil || len(checks) != 2 || checks[0].ID < checks[1].ID {
		t.Fatalf("checks = %+v, %v", checks, err)
	}

	if err := h.svc.DeleteVessel(ctx, "owner-2", v.ID); !errors.Is(err, domain.ErrVesselNotFound) {
		t.Fatalf("foreign delete: %v", err)
	}
	if err := h.svc.DeleteVessel(ctx, "owner-1", v.ID); err != nil {
		t.Fatal(err)
	}
	if h.mem.checkCount() != 0 {
		t.Fatalf("checks must cascade")
	}
	es, _ := h.svc.SeaTimeEntries(ctx, "owner-1", domain.EntryFilter{})
	if len(es) != 0 {
		t.Fatalf("entries must cascade")
	}
}
