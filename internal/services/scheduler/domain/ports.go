package domain

import "context"

// WorkerPort runs the long lived scheduler loop
type WorkerPort interface {
	Run(ctx context.Context) error
}

// RunnerPort claims and executes whatever is due right now
type RunnerPort interface {
	RunOnce(ctx context.Context) (RunReport, error)
}

// ReconcilerPort repairs the one active task per active vessel invariant
// an empty ownerID sweeps every owner
type ReconcilerPort interface {
	Reconcile(ctx context.Context, ownerID string) (ReconcileReport, error)
}

// TasksPort lists tasks and when they run next
// an empty ownerID lists every owner
type TasksPort interface {
	ListTasks(ctx context.Context, ownerID string) ([]TaskView, error)
}
