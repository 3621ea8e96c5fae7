package raw

import "testing"

func TestGetters(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_SAMPLE_EVERY", "4")
	t.Setenv("LOG_BAD", "-2")

	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get default = %q", got)
	}
	if !c.GetBool("CALLER", false) {
		t.Fatalf("GetBool want true")
	}
	if !c.GetBool("UNSET", true) {
		t.Fatalf("GetBool default want true")
	}
	if got := c.GetInt("SAMPLE_EVERY", 0); got != 4 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := c.GetInt("BAD", 1); got != 1 {
		t.Fatalf("GetInt negative fallback = %d", got)
	}
}
