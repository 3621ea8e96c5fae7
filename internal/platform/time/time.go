// Package time contains time helpers shared by repos
package time

import "time"

// Ptr returns nil for the zero time, otherwise a pointer to t in UTC
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

// FromHours converts fractional hours to a Duration, rounded to the nearest second
func FromHours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour)).Round(time.Second)
}
