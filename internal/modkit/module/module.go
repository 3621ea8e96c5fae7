// Package module holds the module contract and a bootstrap registry for cross wiring ports
package module

import (
	phttp "seatime/internal/platform/net/http"
)

// Module mirrors modkit.Module; it lives here so a module exporting its own ports type avoids import cycles
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
