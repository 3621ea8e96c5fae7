package middleware

import (
	"encoding/json"
	"net/http"

	"seatime/internal/platform/logger"
	pnet "seatime/internal/platform/net"
)

// AuthPort resolves the caller from a request
type AuthPort interface {
	// Parse returns the owner id for the request or an error
	Parse(r *http.Request) (ownerID string, err error)
}

// Auth rejects requests the port cannot resolve and stores the owner id on the context
func Auth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(body)
				return
			}
			ctx := pnet.WithOwner(r.Context(), owner)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
