// Package domain defines the scheduler types and ports
package domain

import "time"

// Task is one scheduled_tasks row
type Task struct {
	ID            int64      `json:"id"`
	VesselID      string     `json:"vessel_id"`
	TaskType      string     `json:"task_type" example:"ais_check"`
	IntervalHours float64    `json:"interval_hours" example:"1"`
	LastRun       *time.Time `json:"last_run"`
	NextRun       time.Time  `json:"next_run"`
	IsActive      bool       `json:"is_active"`
	LastError     *string    `json:"last_error,omitempty"`
}

// TaskView is a task with the vessel it samples
type TaskView struct {
	Task
	VesselName   string `json:"vessel_name"`
	MMSI         string `json:"mmsi"`
	VesselActive bool   `json:"vessel_active"`
}

// ReconcileReport counts what one reconciliation sweep did
type ReconcileReport struct {
	Created       int `json:"created"`
	Reactivated   int `json:"reactivated"`
	AlreadyActive int `json:"already_active"`
	Deactivated   int `json:"deactivated"`
}

// RunReport counts the outcome of one scheduler pass
type RunReport struct {
	Claimed   int `json:"claimed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
