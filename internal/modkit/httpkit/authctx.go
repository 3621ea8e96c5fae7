package httpkit

import (
	"net/http"

	perrs "seatime/internal/platform/errors"
	pnet "seatime/internal/platform/net"
)

// Owner returns the authenticated owner id from the request context
func Owner(r *http.Request) (string, error) {
	id := pnet.OwnerID(r.Context())
	if id == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return id, nil
}
