package ais

import (
	"errors"
	"fmt"
	"time"

	perr "seatime/internal/platform/errors"
)

// Fetch failures; match with errors.Is
var (
	ErrProviderUnavailable = perr.New(perr.ErrorCodeUnavailable, "ais provider unavailable")
	ErrRateLimited         = perr.New(perr.ErrorCodeTooManyRequests, "ais provider rate limited")
	ErrNoDataForVessel     = perr.New(perr.ErrorCodeNotFound, "no current ais data for vessel")
	ErrTimeout             = perr.New(perr.ErrorCodeTimeout, "ais provider timed out")
)

// FetchError carries the sentinel kind plus what the provider told us
type FetchError struct {
	Kind       error
	Status     int
	RetryAfter time.Duration
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Kind.Error()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fail(kind error, status int, cause error) error {
	return &FetchError{Kind: kind, Status: status, Err: cause}
}

// Code is the short machine name recorded on audit rows
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoDataForVessel):
		return "no_data"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	default:
		return "error"
	}
}

// RetryAfter returns the provider's backoff hint, if any
func RetryAfter(err error) time.Duration {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.RetryAfter
	}
	return 0
}
