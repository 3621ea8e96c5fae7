// Package strings holds small string helpers shared by repos and transports
package strings

import std "strings"

// IfEmpty returns def when in is empty
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Ptr returns nil for a blank string, otherwise a pointer to the trimmed value
func Ptr(s string) *string {
	s = std.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed value or ""
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
