package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"seatime/internal/adapters/ais"
	"seatime/internal/core/validity"
	"seatime/internal/modkit"
	perr "seatime/internal/platform/errors"
	"seatime/internal/platform/testkit"
	"seatime/internal/services/seatime/domain"
)

func TestNew_NilPGPanics(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}, Config{}) })
}

func TestPipeline_ShortPassageIsFlagged(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	ctx := context.Background()

	// 2.0 is not above the threshold, 6 opens, 7 continues, 0 closes two hours later
	for i, sog := range []float64{2, 1, 6, 7, 0} {
		h.ais.push(at(float64(i), sog))
	}
	want := []string{"noop", "noop", "open", "continue", "close"}
	var last domain.CheckResult
	for i := range want {
		h.clock.Set(t0.Add(time.Duration(i) * time.Hour))
		res, err := h.svc.RunScheduledCheck(ctx, v.ID)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if res.Transition != want[i] {
			t.Fatalf("step %d: transition = %s, want %s", i, res.Transition, want[i])
		}
		if res.Check.Manual {
			t.Fatalf("scheduled check recorded as manual")
		}
		last = res
	}

	if last.Entry == nil || last.Entry.DurationHours == nil {
		t.Fatalf("close must return the closed entry")
	}
	if got := *last.Entry.DurationHours; got != 2.0 {
		t.Fatalf("duration = %v, want 2.0", got)
	}
	if last.Entry.Validity.Compliance != validity.NonCompliant || last.Entry.Validity.Confirmable {
		t.Fatalf("validity = %+v", last.Entry.Validity)
	}

	// flagged entries stay visible
	pending, err := h.svc.PendingEntries(ctx, "owner-1")
	if err != nil || len(pending) != 1 {
		t.Fatalf("pending = %v, %v", pending, err)
	}

	_, err = h.svc.ConfirmEntry(ctx, "owner-1", last.Entry.ID, domain.SeaService)
	if !errors.Is(err, domain.ErrNotConfirmable) || perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("confirm short entry: %v", err)
	}
	if _, err := h.svc.RejectEntry(ctx, "owner-1", last.Entry.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := h.svc.RejectEntry(ctx, "owner-1", last.Entry.ID); !errors.Is(err, domain.ErrAlreadyResolved) {
		t.Fatalf("second reject: %v", err)
	}
	if h.mem.checkCount() != 5 {
		t.Fatalf("checks = %d, want one per poll", h.mem.checkCount())
	}
}

func TestPipeline_DuplicateSampleIsUnknown(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	ctx := context.Background()

	h.ais.push(at(0, 8))
	h.ais.push(at(0, 8))
	if _, err := h.svc.RunScheduledCheck(ctx, v.ID); err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.RunScheduledCheck(ctx, v.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Verdict != "unknown" || res.Transition != "noop" || res.Check.IsMoving != nil {
		t.Fatalf("repeat sample = %+v", res)
	}
	if h.mem.openCount(v.ID) != 1 {
		t.Fatalf("open entries = %d", h.mem.openCount(v.ID))
	}
}

func closedPassage(t *testing.T, h *harness, vesselID string, hours float64) domain.EntryView {
	t.Helper()
	h.ais.push(at(0, 9))
	h.ais.push(at(hours, 0.5))
	ctx := context.Background()
	if _, err := h.svc.CheckVesselAIS(ctx, "owner-1", vesselID, false); err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.CheckVesselAIS(ctx, "owner-1", vesselID, true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Entry == nil || res.Transition != "close" {
		t.Fatalf("expected close, got %+v", res)
	}
	return *res.Entry
}

func TestConfirm_ExactlyFourHours(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	e := closedPassage(t, h, v.ID, 4)

	if !e.Validity.Confirmable {
		t.Fatalf("4.00h with positions must be confirmable: %+v", e.Validity)
	}
	got, err := h.svc.ConfirmEntry(context.Background(), "owner-1", e.ID, domain.Watchkeeping)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusConfirmed || got.ServiceType == nil || *got.ServiceType != domain.Watchkeeping {
		t.Fatalf("confirmed = %+v", got.Entry)
	}
	if got.ResolvedAt == nil {
		t.Fatalf("resolved_at not set")
	}
	if h.ais.forced[1] != true || h.ais.forced[0] != false {
		t.Fatalf("force flags = %v", h.ais.forced)
	}
}

func TestConfirm_ConcurrentResolversSerialize(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	e := closedPassage(t, h, v.ID, 6)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, lost int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = h.svc.ConfirmEntry(context.Background(), "owner-1", e.ID, domain.SeaService)
			} else {
				_, err = h.svc.RejectEntry(context.Background(), "owner-1", e.ID)
			}
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrAlreadyResolved):
				lost++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()
	if ok != 1 || lost != 7 {
		t.Fatalf("ok=%d lost=%d, want exactly one winner", ok, lost)
	}
	if perr.HTTPStatus(domain.ErrAlreadyResolved) != 409 {
		t.Fatalf("already resolved must map to 409")
	}
}

func TestConfirm_ResolvedEntryIsNotMutated(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	e := closedPassage(t, h, v.ID, 6)
	ctx := context.Background()

	first, err := h.svc.ConfirmEntry(ctx, "owner-1", e.ID, domain.SeaService)
	if err != nil {
		t.Fatal(err)
	}
	h.clock.Advance(time.Hour)

	if _, err := h.svc.ConfirmEntry(ctx, "owner-1", e.ID, domain.Watchkeeping); !errors.Is(err, domain.ErrAlreadyResolved) {
		t.Fatalf("second confirm err = %v, want already resolved", err)
	}
	if _, err := h.svc.RejectEntry(ctx, "owner-1", e.ID); !errors.Is(err, domain.ErrAlreadyResolved) {
		t.Fatalf("reject after confirm err = %v, want already resolved", err)
	}

	got, err := h.mem.GetEntry(ctx, "owner-1", e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status = %s", got.Status)
	}
	if got.ServiceType == nil || *got.ServiceType != domain.SeaService {
		t.Fatalf("service_type = %v, want sea_service", got.ServiceType)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(*first.ResolvedAt) {
		t.Fatalf("resolved_at = %v, want %v", got.ResolvedAt, first.ResolvedAt)
	}
}

func TestConfirm_RejectsUnknownServiceType(t *testing.T) {
	h := newHarness()
	_, err := h.svc.ConfirmEntry(context.Background(), "owner-1", 1, domain.ServiceType("shore_leave"))
	if !errors.Is(err, domain.ErrInvalidServiceType) {
		t.Fatalf("err = %v", err)
	}
}

func TestCorrectPositions_UnblocksConfirmation(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	ctx := context.Background()

	h.ais.push(at(0, 9))
	end := at(5, 0)
	end.Latitude, end.Longitude = nil, nil
	h.ais.push(end)
	if _, err := h.svc.RunScheduledCheck(ctx, v.ID); err != nil {
		t.Fatal(err)
	}
	res, err := h.svc.RunScheduledCheck(ctx, v.ID)
	if err != nil {
		t.Fatal(err)
	}
	ev := res.Entry
	if ev == nil || ev.Validity.Confirmable || ev.Validity.Compliance != validity.Compliant {
		t.Fatalf("entry without end position = %+v", ev)
	}
	if _, err := h.svc.ConfirmEntry(ctx, "owner-1", ev.ID, domain.SeaService); !errors.Is(err, domain.ErrNotConfirmable) {
		t.Fatalf("confirm before correction: %v", err)
	}

	fixed, err := h.svc.CorrectEntryPositions(ctx, "owner-1", domain.PositionPatch{
		EntryID: ev.ID, EndLatitude: kn(37.94), EndLongitude: kn(23.64),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !fixed.Validity.Confirmable {
		t.Fatalf("after correction = %+v", fixed.Validity)
	}
	if _, err := h.svc.ConfirmEntry(ctx, "owner-1", ev.ID, domain.SeaService); err != nil {
		t.Fatalf("confirm after correction: %v", err)
	}
	if _, err := h.svc.CorrectEntryPositions(ctx, "owner-1", domain.PositionPatch{EntryID: ev.ID, StartLatitude: kn(1)}); !errors.Is(err, domain.ErrAlreadyResolved) {
		t.Fatalf("correct resolved entry: %v", err)
	}
	if _, err := h.svc.CorrectEntryPositions(ctx, "owner-1", domain.PositionPatch{EntryID: ev.ID}); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("empty patch: %v", err)
	}
}

func TestPipeline_NoDataStillAudits(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")

	h.ais.fail(&ais.FetchError{Kind: ais.ErrNoDataForVessel, Status: 404})
	res, err := h.svc.CheckVesselAIS(context.Background(), "owner-1", v.ID, false)
	if err != nil {
		t.Fatalf("no data must not fail the call: %v", err)
	}
	if res.Verdict != "unknown" || res.Check.ErrorCode == nil || *res.Check.ErrorCode != "no_data" {
		t.Fatalf("result = %+v", res)
	}
	if !res.Check.Manual || res.Sample != nil {
		t.Fatalf("manual flag or sample wrong: %+v", res)
	}
}

func TestPipeline_TransientErrorAuditsAndFails(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")

	h.ais.fail(&ais.FetchError{Kind: ais.ErrRateLimited, Status: 429, RetryAfter: time.Minute})
	res, err := h.svc.RunScheduledCheck(context.Background(), v.ID)
	if !errors.Is(err, ais.ErrRateLimited) {
		t.Fatalf("err = %v", err)
	}
	if perr.HTTPStatus(err) != 429 {
		t.Fatalf("status = %d", perr.HTTPStatus(err))
	}
	if res.Check.ErrorCode == nil || *res.Check.ErrorCode != "rate_limited" {
		t.Fatalf("audit row = %+v", res.Check)
	}
	if h.mem.checkCount() != 1 {
		t.Fatalf("checks = %d", h.mem.checkCount())
	}
}

func TestPipeline_InactiveAndForeignVessel(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	v, err := h.svc.RegisterVessel(ctx, "owner-1", domain.VesselInput{MMSI: "248123456", Name: "Idle"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.svc.CheckVesselAIS(ctx, "owner-1", v.ID, false); !errors.Is(err, domain.ErrVesselNotActive) {
		t.Fatalf("inactive: %v", err)
	}
	if _, err := h.svc.CheckVesselAIS(ctx, "owner-2", v.ID, false); !errors.Is(err, domain.ErrVesselNotFound) {
		t.Fatalf("foreign: %v", err)
	}
	if h.ais.calls != 0 || len(h.ais.forced) != 0 {
		t.Fatalf("provider must not be called")
	}
}

func TestPipeline_ConcurrentChecksKeepOneOpenEntry(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	for i := 0; i < 10; i++ {
		h.ais.push(at(float64(i)/10, 12))
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(manual bool) {
			defer wg.Done()
			var err error
			if manual {
				_, err = h.svc.CheckVesselAIS(context.Background(), "owner-1", v.ID, false)
			} else {
				_, err = h.svc.RunScheduledCheck(context.Background(), v.ID)
			}
			if err != nil {
				t.Errorf("check: %v", err)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	if n := h.mem.openCount(v.ID); n != 1 {
		t.Fatalf("open entries = %d, want 1", n)
	}
	if h.svc.locks.size() != 0 {
		t.Fatalf("vessel locks leaked")
	}
}

func TestPipeline_ManualAndScheduledNeverOverlap(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	f := &slowAIS{hold: 50 * time.Millisecond}
	api, sched := h.peer(f), h.peer(f)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = api.CheckVesselAIS(context.Background(), "owner-1", v.ID, true)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = sched.RunScheduledCheck(context.Background(), v.ID)
	}()
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if f.calls != 2 || f.peak != 1 {
		t.Fatalf("calls=%d peak=%d, want two provider calls one at a time", f.calls, f.peak)
	}
	if n := h.mem.checkCount(); n != 2 {
		t.Fatalf("checks = %d, want 2", n)
	}
}

func TestEntriesSince_Watermark(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	closedPassage(t, h, v.ID, 5)
	h.ais.push(at(6, 10))
	if _, err := h.svc.RunScheduledCheck(context.Background(), v.ID); err != nil {
		t.Fatal(err)
	}

	all, err := h.svc.EntriesSince(context.Background(), "owner-1", 0, 0)
	if err != nil || len(all) != 2 || all[0].ID >= all[1].ID {
		t.Fatalf("since 0 = %v, %v", all, err)
	}
	rest, err := h.svc.EntriesSince(context.Background(), "owner-1", all[0].ID, 10)
	if err != nil || len(rest) != 1 || rest[0].ID != all[1].ID {
		t.Fatalf("since first = %v, %v", rest, err)
	}
	if _, err := h.svc.EntriesSince(context.Background(), "owner-1", -1, 10); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("negative watermark: %v", err)
	}
	other, _ := h.svc.EntriesSince(context.Background(), "owner-2", 0, 10)
	if len(other) != 0 {
		t.Fatalf("entries leaked across owners")
	}
}

func TestSeaTimeEntries_NewestFirstWithFlags(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	closedPassage(t, h, v.ID, 1)
	h.ais.push(at(3, 10))
	if _, err := h.svc.RunScheduledCheck(context.Background(), v.ID); err != nil {
		t.Fatal(err)
	}

	got, err := h.svc.SeaTimeEntries(context.Background(), "owner-1", domain.EntryFilter{VesselID: v.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !got[0].IsOpen() {
		t.Fatalf("entries = %+v", got)
	}
	if got[0].Validity.Compliance != validity.Open || got[1].Validity.Compliance != validity.NonCompliant {
		t.Fatalf("flags = %+v / %+v", got[0].Validity, got[1].Validity)
	}
	if _, err := h.svc.RejectEntry(context.Background(), "owner-1", got[0].ID); !errors.Is(err, domain.ErrEntryOpen) {
		t.Fatalf("reject open entry: %v", err)
	}
	if _, err := h.svc.SeaTimeEntries(context.Background(), "owner-2", domain.EntryFilter{VesselID: v.ID}); !errors.Is(err, domain.ErrVesselNotFound) {
		t.Fatalf("foreign vessel filter: %v", err)
	}
}

func TestUpdateEntryNotes(t *testing.T) {
	h := newHarness()
	v := h.vessel("owner-1", "248123456")
	e := closedPassage(t, h, v.ID, 5)

	got, err := h.svc.UpdateEntryNotes(context.Background(), "owner-1", e.ID, "Valletta to Piraeus")
	if err != nil || got.Notes != "Valletta to Piraeus" {
		t.Fatalf("notes = %+v, %v", got, err)
	}
	if _, err := h.svc.UpdateEntryNotes(context.Background(), "owner-2", e.ID, "x"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("foreign entry: %v", err)
	}
}
