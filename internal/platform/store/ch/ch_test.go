package ch

import (
	"context"
	"testing"
)

func TestOpen_RejectsBadDSN(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := Open(context.Background(), Config{URL: "clickhouse://host:9000/db?dial_timeout=notaduration"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBuildClientInfo(t *testing.T) {
	ci := BuildClientInfo(" scheduler ", "")
	if len(ci.Products) != 4 {
		t.Fatalf("products = %d", len(ci.Products))
	}
	if ci.Products[0].Name != "seatime" || ci.Products[1].Version != "scheduler" {
		t.Fatalf("unexpected products %+v", ci.Products)
	}
}
