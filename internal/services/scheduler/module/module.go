// Package module wires the scheduler service and exposes its ports
package module

import (
	"seatime/internal/modkit"
	"seatime/internal/modkit/httpkit"

	schttp "seatime/internal/services/scheduler/http"
	"seatime/internal/services/scheduler/service"
	stdomain "seatime/internal/services/seatime/domain"
)

// Module defines the scheduler module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports
	svc   *service.Svc
	opts  Options
}

// New constructs the scheduler module from env backed options; checker runs the actual AIS checks
func New(deps modkit.Deps, checker stdomain.CheckPort, opts ...modkit.Option) *Module {
	return NewWithOptions(deps, checker, FromConfig(deps.Cfg), opts...)
}

// NewWithOptions constructs the scheduler module from explicit options
func NewWithOptions(deps modkit.Deps, checker stdomain.CheckPort, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("scheduler"),
	}, opts...)...)

	svc := service.New(deps, service.Config{
		IntervalHours:    o.IntervalHours,
		Lease:            o.Lease,
		Concurrency:      o.Concurrency,
		Batch:            o.Batch,
		Tick:             o.Tick,
		ReconcileEvery:   o.ReconcileEvery,
		StatementTimeout: o.StatementTimeout,
	}, checker)

	m := &Module{deps: deps, built: b, svc: svc, opts: o}
	m.ports = Ports{
		Worker:     svc,
		Runner:     svc,
		Reconciler: svc,
		Tasks:      svc,
	}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Ports returns the module ports (Worker, Runner, Reconciler, Tasks)
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// Service returns the scheduler for the worker binary
func (m *Module) Service() service.Service { return m.svc }

// MountRoutes mounts the scheduler routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(sub httpkit.Router) {
		schttp.Register(sub, m.svc)
	})
}
