package request

import (
	"strings"

	"mecanica_os/internal/domain/entities"
)

// AddTaskRequest creates one task on an existing work order.
type AddTaskRequest struct {
	ServiceTypeID  string  `json:"service_type_id" binding:"required"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       int     `json:"priority"`
}

func (r AddTaskRequest) ResolveServiceTypeID() string {
	return strings.TrimSpace(r.ServiceTypeID)
}

// UpdateTaskStatusRequest drives a task through its state machine.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus normalizes the payload into a known task status; the zero
// value signals an unknown one.
func (r UpdateTaskStatusRequest) ResolveStatus() entities.TaskStatus {
	s := entities.TaskStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !s.IsValid() {
		return ""
	}
	return s
}
