// Package http provides http transport for the scheduler
package http

import (
	stdhttp "net/http"

	"seatime/internal/modkit/httpkit"
	"seatime/internal/services/scheduler/domain"
)

// Ports is what the scheduler routes call
type Ports interface {
	domain.ReconcilerPort
	domain.TasksPort
}

// Register mounts the scheduler routes; callers put them behind auth
func Register(r httpkit.Router, p Ports) {
	h := &handlers{p: p}
	httpkit.GetJSON(r, "/scheduler/tasks", h.tasks)
	httpkit.PostJSON[struct{}](r, "/scheduler/reconcile", h.reconcile)
}

type handlers struct{ p Ports }

// @Summary List scheduled tasks
// @Description Tasks of the caller's vessels, soonest next_run first
// @Tags scheduler
// @Produce json
// @Security bearerAuth
// @Success 200 {array} domain.TaskView "ok"
// @Router /scheduler/tasks [get]
func (h *handlers) tasks(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.p.ListTasks(r.Context(), owner)
}

// @Summary Verify and repair scheduled tasks
// @Description Ensures each active vessel of the caller has exactly one active ais_check task
// @Tags scheduler
// @Produce json
// @Security bearerAuth
// @Success 200 {object} domain.ReconcileReport "ok"
// @Router /scheduler/reconcile [post]
func (h *handlers) reconcile(r *stdhttp.Request, _ struct{}) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.p.Reconcile(r.Context(), owner)
}
