package modkit

import (
	"net/http"

	"seatime/internal/modkit/httpkit"
)

// Router is the routing seam modules mount against
type Router = httpkit.Router

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(Router)
}

// Build applies Option funcs and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount mounts fn under b.Prefix with b.Mw, then runs b.Register on the same router
func (b Built) Mount(r Router, fn func(Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub Router) {
		fn(sub)
		b.Register(sub)
	})
}
