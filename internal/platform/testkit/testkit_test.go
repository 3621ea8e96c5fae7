package testkit

import (
	"testing"
	"time"
)

var seam = func() string { return "orig" }

func TestSwap_Restores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func() string { return "fake" })
		if got := seam(); got != "fake" {
			t.Fatalf("seam() = %q, want fake", got)
		}
	})
	if got := seam(); got != "orig" {
		t.Fatalf("seam not restored, got %q", got)
	}
}

func TestClock_Advance(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(start)
	c.Advance(90 * time.Minute)
	if got := c.Now(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("Now() = %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Set did not move clock")
	}
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}
