package module

import "seatime/internal/services/scheduler/domain"

// Ports defines scheduler module ports exposed via the registry
type Ports struct {
	Worker     domain.WorkerPort
	Runner     domain.RunnerPort
	Reconciler domain.ReconcilerPort
	Tasks      domain.TasksPort
}
