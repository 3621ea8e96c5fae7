package logger

import (
	"bytes"
	"context"
	"testing"

	kit "seatime/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		" INFO ":   zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_NamedAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "seatime-test", Writer: &buf})

	Named("scheduler").Info().Msg("tick")
	ctx := WithRequest(context.Background(), "req-1", "owner-9")
	C(ctx).Warn().Msg("rate limited")

	out := buf.String()
	if out == "" {
		t.Skip("root logger was initialized by another test in this binary")
	}
	kit.MustContain(t, out, `"component":"scheduler"`)
	kit.MustContain(t, out, `"request_id":"req-1"`)
	kit.MustContain(t, out, `"owner_id":"owner-9"`)
	kit.MustContain(t, out, `"service":"seatime-test"`)
}
