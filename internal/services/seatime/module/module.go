// Package module wires the seatime service and exposes its ports
package module

import (
	"seatime/internal/adapters/ais"
	"seatime/internal/core/movement"
	"seatime/internal/core/validity"
	"seatime/internal/modkit"
	"seatime/internal/modkit/httpkit"

	sthttp "seatime/internal/services/seatime/http"
	"seatime/internal/services/seatime/service"
)

// Module defines the seatime module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports
	svc   *service.Svc
	opts  Options
}

// New constructs the seatime module from env backed options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return NewWithOptions(deps, FromConfig(deps.Cfg), opts...)
}

// NewWithOptions constructs the seatime module from explicit options
func NewWithOptions(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("seatime"),
	}, opts...)...)

	svc := service.New(deps, service.Config{
		Movement:         movement.Policy{ThresholdKnots: o.ThresholdKnots, CeilingKnots: o.CeilingKnots},
		Validity:         validity.Policy{MinimumHours: o.MinimumHours},
		IntervalHours:    o.IntervalHours,
		RecentWindow:     o.RecentWindow,
		ListLimit:        o.ListLimit,
		StatementTimeout: o.StatementTimeout,
		LockWait:         o.LockWait,
		MirrorTable:      o.MirrorTable,
		AIS: ais.Options{
			BaseURL:    o.AISBaseURL,
			UserAgent:  o.AISUserAgent,
			Source:     o.AISSource,
			Timeout:    o.AISTimeout,
			StaleAfter: o.AISStaleAfter,
			CacheTTL:   o.AISCacheTTL,
			RatePerSec: o.AISRatePerSec,
			Burst:      o.AISBurst,
			APIKeys:    o.AISKeys,
		},
	})

	m := &Module{deps: deps, built: b, svc: svc, opts: o}
	m.ports = Ports{
		Check:   svc,
		Entries: svc,
		Vessels: svc,
	}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Ports returns the module ports (Check, Entries, Vessels)
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// MountRoutes mounts the seatime routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(sub httpkit.Router) {
		sthttp.Register(sub, m.svc)
	})
}
