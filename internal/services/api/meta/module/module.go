// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"seatime/internal/modkit"
	"seatime/internal/modkit/httpkit"

	metahttp "seatime/internal/services/api/meta/http"
)

// Module serves health, readiness and build info without auth
type Module struct {
	built modkit.Built
	meta  metahttp.Deps
}

// New constructs a meta module reporting as service
func New(deps modkit.Deps, service string, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	now := deps.Clock()
	return &Module{built: b, meta: metahttp.Deps{
		ServiceName: service,
		StartedAt:   now(),
		Now:         now,
		PG:          deps.PG,
		CH:          deps.CH,
	}}
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Ports returns nil; meta exposes no ports
func (m *Module) Ports() any { return nil }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// MountRoutes mounts the meta routes under /meta
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, m.meta)
	})
}
