package response

import (
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/pkg"
)

type TaskResponse struct {
	ID             string    `json:"id"`
	WorkOrderID    string    `json:"work_order_id"`
	ServiceTypeID  string    `json:"service_type_id"`
	Description    string    `json:"description,omitempty"`
	Priority       int       `json:"priority"`
	PriorityBand   string    `json:"priority_band"`
	Status         string    `json:"status"`
	EstimatedHours float64   `json:"estimated_hours,omitempty"`
	ActualHours    float64   `json:"actual_hours,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		WorkOrderID:    t.WorkOrderID,
		ServiceTypeID:  t.ServiceTypeID,
		Description:    t.Description,
		Priority:       t.Priority,
		PriorityBand:   string(t.PriorityBand()),
		Status:         string(t.Status),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

// TaskStatusChangeResponse carries the updated task plus cascade warnings.
type TaskStatusChangeResponse struct {
	Task     TaskResponse      `json:"task"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
}

func FromTaskStatusChange(t entities.Task, warnings []pkg.Warning) TaskStatusChangeResponse {
	return TaskStatusChangeResponse{
		Task:     FromTask(t),
		Warnings: FromWarnings(warnings),
	}
}
