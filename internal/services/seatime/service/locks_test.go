package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestKeyedLock_SerializesPerKey(t *testing.T) {
	l := newKeyedLock()
	release, err := l.Lock(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}

	// another key is independent
	other, err := l.Lock(context.Background(), "b")
	if err != nil {
		t.Fatal(err)
	}
	other()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "a"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second holder of a: %v", err)
	}

	got := make(chan struct{})
	go func() {
		r, err := l.Lock(context.Background(), "a")
		if err == nil {
			r()
		}
		close(got)
	}()
	release()
	release() // idempotent
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatalf("waiter never acquired")
	}
	if l.size() != 0 {
		t.Fatalf("slots leaked: %d", l.size())
	}
}
