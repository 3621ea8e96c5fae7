package net

import (
	"context"
	"net/http"
	"testing"

	perr "seatime/internal/platform/errors"
)

func TestContextIDs(t *testing.T) {
	ctx := WithOwner(WithRequestID(context.Background(), "req-7"), "owner-1")
	if RequestID(ctx) != "req-7" || OwnerID(ctx) != "owner-1" {
		t.Fatalf("ids lost: %q %q", RequestID(ctx), OwnerID(ctx))
	}
	if OwnerID(context.Background()) != "" || RequestID(context.Background()) != "" {
		t.Fatalf("empty ctx should have no ids")
	}
}

func TestError(t *testing.T) {
	status, w := Error(perr.Unauthorizedf("missing bearer token"), "req-1")
	if status != http.StatusUnauthorized || w.Error != "missing bearer token" || w.RequestID != "req-1" {
		t.Fatalf("Error() = %d %+v", status, w)
	}
}
