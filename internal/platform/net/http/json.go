package http

import (
	"net/http"

	"seatime/internal/platform/net/http/bind"
)

// JSONHandler binds and validates T from the body, then wraps fn's result in the envelope
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return wrap(out)
	})
}

// JSONHandlerNoBody wraps fn's result in the envelope without reading a body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return wrap(out)
	})
}

// wrap passes a handler built Response through and envelopes anything else
func wrap(out any) Response {
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
